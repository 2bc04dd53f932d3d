package heightbrush

import (
	"github.com/esimov/heightbrush/imop"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// AddChannel raises the red channel of img by the brush weights scaled by factor.
// The result is written as a gray value, alpha is preserved.
// Use a negative factor to lower the terrain.
func AddChannel(img, brush *Image, pos f32.Vec2, factor float32) error {
	return applyBrush(img, brush, pos, factor, imop.AddOp{})
}

// LerpChannel moves a single channel of img toward target, by the amount of
// the brush weights scaled by factor. Channel must be in the 0..3 range.
func LerpChannel(img, brush *Image, pos f32.Vec2, factor, target float32, channel int) error {
	if channel < 0 || channel > 3 {
		return errors.Wrapf(ErrInvalidArgument, "channel index %d out of the 0..3 range", channel)
	}
	return applyBrush(img, brush, pos, factor, imop.LerpChannelOp{
		Channel: channel,
		Target:  target,
	})
}

// LerpColor moves every channel of img toward the matching channel of target,
// by the amount of the brush weights scaled by factor.
func LerpColor(img, brush *Image, pos f32.Vec2, factor float32, target Color) error {
	return applyBrush(img, brush, pos, factor, imop.LerpColorOp{Target: target})
}

// SmoothChannel flattens the bumps under the brush by moving the red channel
// toward the brush weighted average height.
func SmoothChannel(img, brush *Image, pos f32.Vec2, factor float32) error {
	avg, err := WeightedChannelAverage(img, brush, pos, 1)
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			return nil
		}
		return err
	}
	return LerpChannel(img, brush, pos, factor, avg, 0)
}
