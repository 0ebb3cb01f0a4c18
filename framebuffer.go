package astra

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Framebuffer owns the packed color buffer and the depth buffer for one
// render target. Depth is +Inf for empty pixels; smaller is nearer.
type Framebuffer struct {
	Width      int
	Height     int
	Color      []uint32
	Depth      []float64
	Background Color
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:      width,
		Height:     height,
		Color:      make([]uint32, width*height),
		Depth:      make([]float64, width*height),
		Background: Black,
	}
	fb.Clear()
	return fb
}

// Clear resets every pixel to the background color and +Inf depth.
func (fb *Framebuffer) Clear() {
	bg := fb.Background.Pack()
	inf := math.Inf(1)
	for i := range fb.Color {
		fb.Color[i] = bg
		fb.Depth[i] = inf
	}
}

// ShouldDraw reports whether a fragment at depth d would pass the depth
// test at (x, y). Out-of-bounds pixels never draw.
func (fb *Framebuffer) ShouldDraw(x, y int, d float64) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	return d < fb.Depth[y*fb.Width+x]
}

// Point writes a depth-tested pixel. The stored depth at a pixel only ever
// decreases between clears.
func (fb *Framebuffer) Point(x, y int, d float64, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if d < fb.Depth[i] {
		fb.Color[i] = c.Pack()
		fb.Depth[i] = d
	}
}

func (fb *Framebuffer) At(x, y int) Color {
	return UnpackColor(fb.Color[y*fb.Width+x])
}

func (fb *Framebuffer) DepthAt(x, y int) float64 {
	return fb.Depth[y*fb.Width+x]
}

// Bytes expands the packed buffer to RGBA bytes for presentation.
func (fb *Framebuffer) Bytes() []byte {
	out := make([]byte, len(fb.Color)*4)
	for i, p := range fb.Color {
		out[i*4+0] = uint8(p >> 16)
		out[i*4+1] = uint8(p >> 8)
		out[i*4+2] = uint8(p)
		out[i*4+3] = 255
	}
	return out
}

func (fb *Framebuffer) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, p := range fb.Color {
		im.Pix[i*4+0] = uint8(p >> 16)
		im.Pix[i*4+1] = uint8(p >> 8)
		im.Pix[i*4+2] = uint8(p)
		im.Pix[i*4+3] = 255
	}
	return im
}

// SavePNG writes a snapshot. A non-zero targetWidth resamples the image,
// keeping the aspect ratio.
func (fb *Framebuffer) SavePNG(path string, targetWidth int) error {
	var im image.Image = fb.Image()
	if targetWidth > 0 && targetWidth != fb.Width {
		im = resize.Resize(uint(targetWidth), 0, im, resize.Lanczos3)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}
