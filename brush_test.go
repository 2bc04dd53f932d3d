package heightbrush

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

// newCodedBrush returns a brush where every weight encodes its own coordinates.
func newCodedBrush(width, height int) *Image {
	brush := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := brushCode(x, y, width)
			brush.SetPixel(x, y, Color{R: v, G: v, B: v, A: 1})
		}
	}
	return brush
}

func brushCode(x, y, width int) float32 {
	return float32(y*width+x+1) / 100
}

func TestBrush_LocalCoordinates(t *testing.T) {
	const bw, bh = 4, 3

	testCases := []struct {
		name       string
		pos        f32.Vec2
		minX, minY int
	}{
		{name: "inside", pos: f32.Vec2{2, 3}, minX: 2, minY: 3},
		{name: "fractional", pos: f32.Vec2{1.7, 2.9}, minX: 1, minY: 2},
		{name: "top-left edge", pos: f32.Vec2{-2, -1}, minX: -2, minY: -1},
		{name: "bottom-right edge", pos: f32.Vec2{8, 8}, minX: 8, minY: 8},
		{name: "negative fractional", pos: f32.Vec2{-0.5, 8.5}, minX: -1, minY: 8},
		{name: "outside", pos: f32.Vec2{-10, 20}, minX: -10, minY: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := NewImage(imgWidth, imgHeight)
			brush := newCodedBrush(bw, bh)

			err := AddChannel(img, brush, tc.pos, 1)
			require.NoError(t, err)

			for y := 0; y < imgHeight; y++ {
				for x := 0; x < imgWidth; x++ {
					bx, by := x-tc.minX, y-tc.minY

					var want float32
					if bx >= 0 && bx < bw && by >= 0 && by < bh {
						want = brushCode(bx, by, bw)
					}
					assert.Equal(t, want, img.Red(x, y), "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestBrush_InvalidArguments(t *testing.T) {
	img := newFilledImage(imgWidth, imgHeight, 0.25)
	brush := newFilledImage(3, 3, 1)
	before := snapshot(img)

	testCases := []struct {
		name   string
		img    *Image
		brush  *Image
		pos    f32.Vec2
		factor float32
	}{
		{name: "nil image", img: nil, brush: brush, factor: 1},
		{name: "nil brush", img: img, brush: nil, factor: 1},
		{name: "NaN position", img: img, brush: brush, pos: f32.Vec2{float32(math.NaN()), 0}, factor: 1},
		{name: "infinite factor", img: img, brush: brush, factor: float32(math.Inf(1))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := AddChannel(tc.img, tc.brush, tc.pos, tc.factor)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Equal(t, before, img.Pix)
		})
	}
}

func TestBrush_SameImageAsBrush(t *testing.T) {
	img := newFilledImage(2, 2, 0.5)

	err := AddChannel(img, img, f32.Vec2{0, 0}, 1)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, float32(1), img.Red(x, y))
		}
	}
}

func TestBrush_OutsideLeavesImageUntouched(t *testing.T) {
	img := newFilledImage(imgWidth, imgHeight, 0.25)
	brush := newFilledImage(3, 3, 1)
	before := snapshot(img)

	for _, pos := range []f32.Vec2{{-3, 0}, {0, -3}, {imgWidth, 0}, {0, imgHeight}, {-100, -100}} {
		assert.NoError(t, AddChannel(img, brush, pos, 1))
	}
	assert.Equal(t, before, img.Pix)
}
