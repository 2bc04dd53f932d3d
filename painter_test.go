package heightbrush

import (
	"testing"

	"github.com/esimov/heightbrush/imop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

var p *Painter

func init() {
	p = &Painter{
		Factor:  0.5,
		Value:   1,
		Channel: 0,
		Color:   Color{R: 1, G: 1, B: 1, A: 1},
		Spacing: 1,
	}
}

func TestPainter_Stamp(t *testing.T) {
	testCases := []struct {
		mode string
		want float32
	}{
		{mode: imop.Add, want: 0.75},
		{mode: imop.Subtract, want: -0.25},
		{mode: imop.Lerp, want: 0.625},
		{mode: imop.LerpColor, want: 0.625},
		{mode: imop.Smooth, want: 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			img := newFilledImage(4, 4, 0.25)
			painter := *p
			painter.Mode = tc.mode
			painter.Brush = newFilledImage(2, 2, 1)

			err := painter.Stamp(img, f32.Vec2{1, 1})
			require.NoError(t, err)

			assert.InDelta(t, tc.want, img.Red(1, 1), 1e-6)
			assert.InDelta(t, tc.want, img.Red(2, 2), 1e-6)
			assert.Equal(t, float32(0.25), img.Red(0, 0))
			assert.Equal(t, float32(0.25), img.Red(3, 3))
		})
	}
}

func TestPainter_StampInvalid(t *testing.T) {
	img := newFilledImage(4, 4, 0.25)

	painter := *p
	painter.Mode = imop.Add
	err := painter.Stamp(img, f32.Vec2{0, 0})
	assert.True(t, errors.Is(err, ErrInvalidArgument), "missing brush")

	painter.Brush = newFilledImage(2, 2, 1)
	painter.Mode = "unknown"
	err = painter.Stamp(img, f32.Vec2{0, 0})
	assert.True(t, errors.Is(err, ErrInvalidArgument), "unknown mode")
}

func TestPainter_Stroke(t *testing.T) {
	testCases := []struct {
		name    string
		spacing float32
		from    f32.Vec2
		to      f32.Vec2
		painted []int
	}{
		{name: "spaced", spacing: 5, from: f32.Vec2{0, 0}, to: f32.Vec2{10, 0}, painted: []int{0, 5, 10}},
		{name: "dense", spacing: 0, from: f32.Vec2{2, 0}, to: f32.Vec2{6, 0}, painted: []int{2, 3, 4, 5, 6}},
		{name: "single point", spacing: 4, from: f32.Vec2{7, 0}, to: f32.Vec2{7, 0}, painted: []int{7}},
		{name: "backwards", spacing: 3, from: f32.Vec2{9, 0}, to: f32.Vec2{3, 0}, painted: []int{3, 6, 9}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := NewImage(12, 1)
			painter := &Painter{
				Mode:    imop.Add,
				Factor:  1,
				Spacing: tc.spacing,
				Brush:   newFilledImage(1, 1, 1),
			}

			require.NoError(t, painter.Stroke(img, tc.from, tc.to))

			for x := 0; x < img.Width(); x++ {
				var want float32
				for _, px := range tc.painted {
					if px == x {
						want = 1
					}
				}
				assert.Equal(t, want, img.Red(x, 0), "pixel %d", x)
			}
		})
	}
}
