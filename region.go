package heightbrush

import (
	"image"
	"math"

	"github.com/esimov/heightbrush/utils"
	"golang.org/x/image/math/f32"
)

// Rect is a floating point rectangle expressed in the pixel space of an image.
type Rect struct {
	Position f32.Vec2
	Size     f32.Vec2
}

// NewRect creates a Rect from its top-left corner and its dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Position: f32.Vec2{x, y}, Size: f32.Vec2{w, h}}
}

// Region is a half open integer rectangle [MinX, MaxX) x [MinY, MaxY)
// of the pixels to visit.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RegionFromPosition builds the region covered by an object of the given size
// having its top-left corner at pos.
func RegionFromPosition(pos f32.Vec2, size image.Point) Region {
	minX := floor(pos[0])
	minY := floor(pos[1])
	return Region{
		MinX: minX,
		MinY: minY,
		MaxX: minX + size.X,
		MaxY: minY + size.Y,
	}
}

// RegionFromRect builds the smallest region containing every point of r.
// A rectangle with a negative size yields an empty region.
func RegionFromRect(r Rect) Region {
	minX := floor(r.Position[0])
	minY := floor(r.Position[1])
	return Region{
		MinX: minX,
		MinY: minY,
		MaxX: utils.Max(minX, ceil(r.Position[0]+r.Size[0])),
		MaxY: utils.Max(minY, ceil(r.Position[1]+r.Size[1])),
	}
}

// Clip returns the intersection of the region with the [0, size) bounds.
// The result satisfies 0 <= Min <= Max <= size on both axis.
func (r Region) Clip(size image.Point) Region {
	c := Region{
		MinX: utils.Clamp(r.MinX, 0, size.X),
		MinY: utils.Clamp(r.MinY, 0, size.Y),
		MaxX: utils.Clamp(r.MaxX, 0, size.X),
		MaxY: utils.Clamp(r.MaxY, 0, size.Y),
	}
	c.MaxX = utils.Max(c.MinX, c.MaxX)
	c.MaxY = utils.Max(c.MinY, c.MaxY)

	return c
}

// Dx returns the width of the region.
func (r Region) Dx() int { return r.MaxX - r.MinX }

// Dy returns the height of the region.
func (r Region) Dy() int { return r.MaxY - r.MinY }

// Empty reports whether the region contains no pixel.
func (r Region) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Rectangle converts the region to an image.Rectangle.
func (r Region) Rectangle() image.Rectangle {
	return image.Rect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}

func isFinite(v ...float32) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}
