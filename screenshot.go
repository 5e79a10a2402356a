package visage

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Screenshot is a captured canvas frame. Pixels are straight-alpha NRGBA,
// converted from the premultiplied data the surface reads back.
type Screenshot struct {
	img *image.NRGBA
}

// newScreenshot converts premultiplied RGBA pixel data into a screenshot.
func newScreenshot(pixels []byte, w, h int) *Screenshot {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return &Screenshot{img: img}
}

// Image returns the captured frame. The caller may read or retain it; the
// screenshot does not alias the canvas surface.
func (s *Screenshot) Image() *image.NRGBA {
	return s.img
}

// Width returns the captured frame width in pixels.
func (s *Screenshot) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the captured frame height in pixels.
func (s *Screenshot) Height() int {
	return s.img.Rect.Dy()
}

// SavePNG writes the screenshot to a PNG file at the given path.
func (s *Screenshot) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
