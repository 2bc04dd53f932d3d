package imop

import "github.com/esimov/heightbrush/utils"

// Color is a pixel value made of four floating point channels.
// Heightmaps only make use of the red channel.
type Color struct {
	R, G, B, A float32
}

// Channel returns the value of the channel at index i (0: R, 1: G, 2: B, 3: A).
// It returns 0 for an out of range index.
func (c Color) Channel(i int) float32 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	return 0
}

// WithChannel returns a copy of c with the channel at index i replaced by v.
func (c Color) WithChannel(i int, v float32) Color {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	}
	return c
}

// Lerp interpolates every channel of c toward to by t.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: utils.Lerp(c.R, to.R, t),
		G: utils.Lerp(c.G, to.G, t),
		B: utils.Lerp(c.B, to.B, t),
		A: utils.Lerp(c.A, to.A, t),
	}
}

// Op is a blend policy. Apply receives the current pixel and the brush weight
// and returns the pixel value to store back. Returning the pixel unchanged
// means nothing is written.
type Op interface {
	Apply(c Color, weight float32) Color
}

var (
	_ Op = AddOp{}
	_ Op = LerpChannelOp{}
	_ Op = LerpColorOp{}
	_ Op = (*AccumulateOp)(nil)
)

// AddOp raises the red channel by the brush weight and writes the result
// as a gray value. Alpha is preserved.
type AddOp struct{}

// Apply implements Op.
func (AddOp) Apply(c Color, weight float32) Color {
	if weight == 0 {
		return c
	}
	v := c.R + weight
	return Color{R: v, G: v, B: v, A: c.A}
}

// LerpChannelOp moves a single channel toward Target.
type LerpChannelOp struct {
	Channel int
	Target  float32
}

// Apply implements Op.
func (o LerpChannelOp) Apply(c Color, weight float32) Color {
	return c.WithChannel(o.Channel, utils.Lerp(c.Channel(o.Channel), o.Target, weight))
}

// LerpColorOp moves every channel toward the matching channel of Target.
type LerpColorOp struct {
	Target Color
}

// Apply implements Op.
func (o LerpColorOp) Apply(c Color, weight float32) Color {
	return c.Lerp(o.Target, weight)
}

// AccumulateOp is a read-only policy summing the weighted red channel.
// Weight holds the sum of the brush weights visited so far.
type AccumulateOp struct {
	Sum    float32
	Weight float32
}

// Apply implements Op.
func (o *AccumulateOp) Apply(c Color, weight float32) Color {
	o.Sum += c.R * weight
	o.Weight += weight
	return c
}
