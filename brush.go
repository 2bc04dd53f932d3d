package heightbrush

import (
	"github.com/esimov/heightbrush/imop"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/math/f32"
)

// applyBrush stamps the brush onto img with its top-left corner at pos.
// For every target pixel covered by the brush the red channel of the brush
// is sampled, scaled by factor, and handed to op together with the current
// pixel value. The pixel is written back only when op changed it.
//
// The region covered by the brush is clipped to the target bounds, but the
// brush-local coordinates are derived from the unclipped origin, so a brush
// hanging over the edge of the target is never sampled out of its own bounds.
func applyBrush[T imop.Op](img, brush *Image, pos f32.Vec2, factor float32, op T) error {
	if err := checkImages(img, brush); err != nil {
		return err
	}
	if !isFinite(pos[0], pos[1], factor) {
		return errors.Wrapf(ErrInvalidArgument, "non finite brush placement %v or factor %v", pos, factor)
	}

	rng := RegionFromPosition(pos, brush.Size())
	minXNoClamp, minYNoClamp := rng.MinX, rng.MinY
	rng = rng.Clip(img.Size())

	if rng.Empty() {
		Logger().Debug("brush outside of the target image",
			zap.Float32("x", pos[0]),
			zap.Float32("y", pos[1]),
			zap.Int("width", img.width),
			zap.Int("height", img.height),
		)
		return nil
	}

	img.lock()
	defer img.unlock()

	if brush != img {
		brush.lock()
		defer brush.unlock()
	}

	for y := rng.MinY; y < rng.MaxY; y++ {
		by := y - minYNoClamp

		for x := rng.MinX; x < rng.MaxX; x++ {
			bx := x - minXNoClamp

			w := brush.Pix[brush.offset(bx, by)] * factor
			c := img.pixel(x, y)
			if nc := op.Apply(c, w); nc != c {
				img.setPixel(x, y, nc)
			}
		}
	}

	return nil
}
