package media

import (
	"image"
	"image/color"
	"image/draw"
)

var monoPalette = color.Palette{color.Black, color.White}

// Binarize reduces an image to two intensity levels and returns a
// row-major buffer with one byte per pixel: 0 for dark, 255 for light.
// With dither set, Floyd-Steinberg error diffusion spreads quantization
// error to neighboring pixels; otherwise each pixel is thresholded at
// mid-gray on its own.
func Binarize(src image.Image, dither bool) []uint8 {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h)

	if dither {
		dst := image.NewPaletted(image.Rect(0, 0, w, h), monoPalette)
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
		for i, idx := range dst.Pix {
			if idx != 0 {
				pix[i] = 255
			}
		}
		return pix
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if c.Y >= 128 {
				pix[y*w+x] = 255
			}
		}
	}
	return pix
}
