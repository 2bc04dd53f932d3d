package heightbrush

import (
	"image"
	"image/color"
	"sync"

	"github.com/esimov/heightbrush/imop"
	"github.com/esimov/heightbrush/utils"
)

// Color is a floating point RGBA pixel value.
type Color = imop.Color

// Image is a 2D grid of floating point RGBA pixels. Heightmaps keep the height
// in the red channel. The zero value is an empty image.
//
// Image implements image.Image so it can be handed over to any image/draw or
// imaging function. Channel values are clamped to [0, 1] by At.
type Image struct {
	mu     sync.Mutex
	width  int
	height int
	// Pix holds the channels of the pixels in R, G, B, A order, row by row.
	Pix []float32
}

var _ image.Image = (*Image)(nil)

// NewImage allocates a new image with all channels set to zero.
func NewImage(width, height int) *Image {
	width, height = utils.Max(width, 0), utils.Max(height, 0)
	return &Image{
		width:  width,
		height: height,
		Pix:    make([]float32, width*height*4),
	}
}

// Width returns the width of the image.
func (img *Image) Width() int { return img.width }

// Height returns the height of the image.
func (img *Image) Height() int { return img.height }

// Size returns the image dimensions.
func (img *Image) Size() image.Point {
	return image.Pt(img.width, img.height)
}

// lock acquires exclusive access to the pixel buffer. Not reentrant.
func (img *Image) lock() { img.mu.Lock() }

func (img *Image) unlock() { img.mu.Unlock() }

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

func (img *Image) offset(x, y int) int {
	return (y*img.width + x) * 4
}

// Pixel returns the color of the pixel at (x, y).
// It returns the zero Color when the coordinates are out of bounds.
func (img *Image) Pixel(x, y int) Color {
	if !img.inBounds(x, y) {
		return Color{}
	}
	return img.pixel(x, y)
}

// SetPixel sets the color of the pixel at (x, y).
// Out of bounds coordinates are ignored.
func (img *Image) SetPixel(x, y int, c Color) {
	if !img.inBounds(x, y) {
		return
	}
	img.setPixel(x, y, c)
}

// Red returns the primary channel of the pixel at (x, y).
func (img *Image) Red(x, y int) float32 {
	if !img.inBounds(x, y) {
		return 0
	}
	return img.Pix[img.offset(x, y)]
}

func (img *Image) pixel(x, y int) Color {
	i := img.offset(x, y)
	p := img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (img *Image) setPixel(x, y int, c Color) {
	i := img.offset(x, y)
	p := img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel of the image to c.
func (img *Image) Fill(c Color) {
	img.lock()
	defer img.unlock()

	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	img.lock()
	defer img.unlock()

	dst := NewImage(img.width, img.height)
	copy(dst.Pix, img.Pix)

	return dst
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.NRGBA64Model
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	c := img.Pixel(x, y)
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}
}

func to16(v float32) uint16 {
	return uint16(utils.Clamp(v, 0, 1)*0xffff + 0.5)
}

// FromImage converts any image type to *Image with min-point at (0, 0).
// Channel values are normalized to the [0, 1] range. Grayscale images
// are expanded, their value being stored in the R, G and B channels.
func FromImage(src image.Image) *Image {
	srcBounds := src.Bounds()
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstW := srcBounds.Dx()
	dstH := srcBounds.Dy()
	dst := NewImage(dstW, dstH)

	switch src := src.(type) {
	case *Image:
		copy(dst.Pix, src.Pix)
	case *image.Gray16:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.offset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				v := float32(src.Gray16At(srcMinX+dstX, srcMinY+dstY).Y) / 0xffff
				dst.Pix[di+0] = v
				dst.Pix[di+1] = v
				dst.Pix[di+2] = v
				dst.Pix[di+3] = 1
				di += 4
			}
		}
	case *image.Gray:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.offset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				v := float32(src.GrayAt(srcMinX+dstX, srcMinY+dstY).Y) / 0xff
				dst.Pix[di+0] = v
				dst.Pix[di+1] = v
				dst.Pix[di+2] = v
				dst.Pix[di+3] = 1
				di += 4
			}
		}
	case *image.NRGBA:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.offset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				dst.Pix[di+0] = float32(src.Pix[si+0]) / 0xff
				dst.Pix[di+1] = float32(src.Pix[si+1]) / 0xff
				dst.Pix[di+2] = float32(src.Pix[si+2]) / 0xff
				dst.Pix[di+3] = float32(src.Pix[si+3]) / 0xff
				di += 4
				si += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.offset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBA64Model.Convert(src.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA64)
				dst.Pix[di+0] = float32(c.R) / 0xffff
				dst.Pix[di+1] = float32(c.G) / 0xffff
				dst.Pix[di+2] = float32(c.B) / 0xffff
				dst.Pix[di+3] = float32(c.A) / 0xffff
				di += 4
			}
		}
	}

	return dst
}

// ToGray16 converts the red channel of the image into a 16 bit grayscale image,
// which is the usual storage format of heightmaps.
func (img *Image) ToGray16() *image.Gray16 {
	img.lock()
	defer img.unlock()

	dst := image.NewGray16(img.Bounds())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			dst.SetGray16(x, y, color.Gray16{Y: to16(img.Pix[img.offset(x, y)])})
		}
	}

	return dst
}

// ToNRGBA64 converts the image to a 16 bit per channel non-premultiplied image.
func (img *Image) ToNRGBA64() *image.NRGBA64 {
	img.lock()
	defer img.unlock()

	dst := image.NewNRGBA64(img.Bounds())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.pixel(x, y)
			dst.SetNRGBA64(x, y, color.NRGBA64{
				R: to16(c.R),
				G: to16(c.G),
				B: to16(c.B),
				A: to16(c.A),
			})
		}
	}

	return dst
}
