package heightbrush

import (
	"math"

	"github.com/esimov/heightbrush/imop"
	"github.com/esimov/heightbrush/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// Painter options
type Painter struct {
	// Brush is the stamp used by every painting operation.
	Brush *Image
	// Color is the target color of the color mode.
	Color Color
	// Mode is one of the imop blend modes.
	Mode string
	// Factor scales the brush weights.
	Factor float32
	// Value is the target value of the lerp mode.
	Value float32
	// Channel is the channel modified by the lerp mode.
	Channel int
	// Spacing is the distance in pixels between two stamps of a stroke.
	Spacing float32
}

// Stamp paints a single brush stamp with its top-left corner at pos.
func (p *Painter) Stamp(img *Image, pos f32.Vec2) error {
	if p.Brush == nil {
		return errors.Wrap(ErrInvalidArgument, "painter has no brush")
	}

	switch p.Mode {
	case imop.Add:
		return AddChannel(img, p.Brush, pos, p.Factor)
	case imop.Subtract:
		return AddChannel(img, p.Brush, pos, -p.Factor)
	case imop.Lerp:
		return LerpChannel(img, p.Brush, pos, p.Factor, p.Value, p.Channel)
	case imop.LerpColor:
		return LerpColor(img, p.Brush, pos, p.Factor, p.Color)
	case imop.Smooth:
		return SmoothChannel(img, p.Brush, pos, p.Factor)
	}
	return errors.Wrapf(ErrInvalidArgument, "unsupported blend mode %q", p.Mode)
}

// Stroke stamps the brush along the from-to segment, every Spacing pixels.
// Both ends of the segment are always stamped.
func (p *Painter) Stroke(img *Image, from, to f32.Vec2) error {
	if !isFinite(from[0], from[1], to[0], to[1]) {
		return errors.Wrapf(ErrInvalidArgument, "non finite stroke from %v to %v", from, to)
	}
	dx, dy := to[0]-from[0], to[1]-from[1]
	length := float32(math.Hypot(float64(dx), float64(dy)))
	spacing := utils.Max(p.Spacing, 1)

	steps := int(math.Ceil(float64(length / spacing)))
	if steps == 0 {
		return p.Stamp(img, from)
	}

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		pos := f32.Vec2{
			utils.Lerp(from[0], to[0], t),
			utils.Lerp(from[1], to[1], t),
		}
		if err := p.Stamp(img, pos); err != nil {
			return err
		}
	}

	return nil
}
