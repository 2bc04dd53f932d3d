package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2, Max(1, 2))
	assert.Equal(2, Max(2, 1))
	assert.Equal(float32(-0.5), Min[float32](-0.5, 0.5))
}

func TestMath_AbsClamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Abs(-3))
	assert.Equal(0.25, Abs(0.25))
	assert.Equal(0, Clamp(-4, 0, 10))
	assert.Equal(10, Clamp(14, 0, 10))
	assert.Equal(float32(0.3), Clamp[float32](0.3, 0, 1))
}

func TestMath_Lerp(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(0.5, Lerp(0.0, 1.0, 0.5), 1e-9)
	assert.InDelta(2.0, Lerp(1.0, 2.0, 1.0), 1e-9)
	// t is not clamped
	assert.InDelta(3.0, Lerp(1.0, 2.0, 2.0), 1e-9)
	assert.InDelta(0.0, Lerp(1.0, 2.0, -1.0), 1e-9)
}

func TestColor_HexToRGBA(t *testing.T) {
	testCases := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{hex: "#ff0000", want: color.NRGBA{R: 0xff, A: 0xff}},
		{hex: "00ff0080", want: color.NRGBA{G: 0xff, A: 0x80}},
		{hex: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{hex: "#0f08", want: color.NRGBA{G: 0xff, A: 0x88}},
		{hex: "#12345", wantErr: true},
		{hex: "#zzzzzz", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			c, err := HexToRGBA(tc.hex)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}
