package heightbrush

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/heightbrush/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GenerateRadialFalloffBrush fills img with a round brush shape: full strength
// at the center, fading out with a cubic falloff to zero at the radius,
// which is half of the smallest image dimension. The value is written as
// an opaque gray pixel.
//
// It returns the sum of all the written values, which can be used to
// normalize operations depending on the brush area.
func GenerateRadialFalloffBrush(img *Image) (float32, error) {
	if err := checkImages(img); err != nil {
		return 0, err
	}

	w, h := img.width, img.height
	cx, cy := float64(w/2), float64(h/2)
	radius := float64(utils.Min(w, h) / 2)

	if radius <= 0.1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "brush radius %v is too small for a %dx%d image", radius, w, h)
	}

	img.lock()
	defer img.unlock()

	var sum float32
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / radius
			v := float32(utils.Clamp(1-d*d*d, 0, 1))
			img.setPixel(x, y, Color{R: v, G: v, B: v, A: 1})
			sum += v
		}
	}

	Logger().Debug("radial falloff brush generated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Float32("sum", sum),
	)

	return sum, nil
}

// NewRadialFalloffBrush allocates a size x size brush and fills it
// with the radial falloff shape.
func NewRadialFalloffBrush(size int) (*Image, float32, error) {
	brush := NewImage(size, size)
	sum, err := GenerateRadialFalloffBrush(brush)
	if err != nil {
		return nil, 0, err
	}
	return brush, sum, nil
}

// BrushFromImage converts an arbitrary picture into a brush. The picture is
// resampled to size x size pixels (kept unchanged for a non positive size)
// and its luminance is used as the brush weight.
func BrushFromImage(src image.Image, size int) (*Image, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil brush source image")
	}
	if src.Bounds().Empty() {
		return nil, errors.Wrap(ErrInvalidArgument, "empty brush source image")
	}

	var img image.Image = src
	if size > 0 && (src.Bounds().Dx() != size || src.Bounds().Dy() != size) {
		img = imaging.Resize(src, size, size, imaging.Lanczos)
	}
	gray := imaging.Grayscale(img)

	brush := FromImage(gray)
	for i := 0; i < len(brush.Pix); i += 4 {
		// imaging.Grayscale keeps the alpha channel, fold it into the weight.
		v := brush.Pix[i] * brush.Pix[i+3]
		brush.Pix[i+0] = v
		brush.Pix[i+1] = v
		brush.Pix[i+2] = v
		brush.Pix[i+3] = 1
	}

	return brush, nil
}
