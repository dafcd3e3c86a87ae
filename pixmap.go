package cssgrad

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels, 4 bytes
// per pixel in row-major order. A new Pixmap is fully transparent.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap. Negative dimensions are treated as 0.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA, non-premultiplied).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.put((y*p.width+x)*4, c.NRGBA())
}

// GetPixel returns the color of a single pixel, Transparent when out of bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	v := c.NRGBA()
	for i := 0; i < len(p.data); i += 4 {
		p.put(i, v)
	}
}

// FillRow fills row y with c. Rows outside the pixmap are ignored.
func (p *Pixmap) FillRow(y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	v := c.NRGBA()
	row := y * p.width * 4
	for x := 0; x < p.width; x++ {
		p.put(row+x*4, v)
	}
}

// FillColumn fills column x with c. Columns outside the pixmap are ignored.
func (p *Pixmap) FillColumn(x int, c Color) {
	if x < 0 || x >= p.width {
		return
	}
	v := c.NRGBA()
	stride := p.width * 4
	for i := x * 4; i < len(p.data); i += stride {
		p.put(i, v)
	}
}

func (p *Pixmap) put(i int, v color.NRGBA) {
	p.data[i+0] = v.R
	p.data[i+1] = v.G
	p.data[i+2] = v.B
	p.data[i+3] = v.A
}

// ToImage copies the pixmap into an image.NRGBA for encoding.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
