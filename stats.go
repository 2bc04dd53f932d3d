package heightbrush

import (
	"github.com/esimov/heightbrush/imop"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// ChannelRange returns the minimum and maximum of the red channel
// over the part of rect lying inside the image.
// ErrOutOfRange is returned when rect does not intersect the image.
func ChannelRange(img *Image, rect Rect) (min, max float32, err error) {
	if err := checkImages(img); err != nil {
		return 0, 0, err
	}

	rng := RegionFromRect(rect).Clip(img.Size())
	if rng.Empty() {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "rect %v does not intersect the %dx%d image",
			rect, img.width, img.height)
	}

	img.lock()
	defer img.unlock()

	min = img.Pix[img.offset(rng.MinX, rng.MinY)]
	max = min

	for y := rng.MinY; y < rng.MaxY; y++ {
		for x := rng.MinX; x < rng.MaxX; x++ {
			v := img.Pix[img.offset(x, y)]

			if v > max {
				max = v
			} else if v < min {
				min = v
			}
		}
	}

	return min, max, nil
}

// ChannelSum returns the sum of the red channel over the part of rect lying
// inside the image. A rect falling outside of the image sums to zero.
func ChannelSum(img *Image, rect Rect) (float32, error) {
	if err := checkImages(img); err != nil {
		return 0, err
	}

	rng := RegionFromRect(rect).Clip(img.Size())

	img.lock()
	defer img.unlock()

	var sum float32
	for y := rng.MinY; y < rng.MaxY; y++ {
		for x := rng.MinX; x < rng.MaxX; x++ {
			sum += img.Pix[img.offset(x, y)]
		}
	}

	return sum, nil
}

// WeightedChannelSum returns the sum of the red channel of img weighted by
// the brush placed at pos. The image is left untouched.
func WeightedChannelSum(img, brush *Image, pos f32.Vec2, factor float32) (float32, error) {
	acc := &imop.AccumulateOp{}
	if err := applyBrush(img, brush, pos, factor, acc); err != nil {
		return 0, err
	}
	return acc.Sum, nil
}

// WeightedChannelAverage returns the weighted mean of the red channel under
// the brush placed at pos. Only the brush pixels overlapping the image take
// part in the average. ErrOutOfRange is returned when the overlapping weights
// sum to zero.
func WeightedChannelAverage(img, brush *Image, pos f32.Vec2, factor float32) (float32, error) {
	acc := &imop.AccumulateOp{}
	if err := applyBrush(img, brush, pos, factor, acc); err != nil {
		return 0, err
	}
	if acc.Weight == 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "no brush weight over the image at %v", pos)
	}
	return acc.Sum / acc.Weight, nil
}
