package bundle

import "fmt"

// PackedFrameSize returns the byte length of one packed frame,
// ceil(width*height/8). It depends only on the dimensions, never on
// frame content.
func PackedFrameSize(width, height int) int {
	return (width*height + 7) / 8
}

// PackFrame packs a row-major 2-level raster into a dense bitstream, eight
// pixels per byte. pix holds one intensity byte per pixel where 0 is dark;
// bit k (least significant first) of output byte j is set when pixel j*8+k
// is dark. When the pixel count is not a multiple of eight, the final
// byte's out-of-range bits stay zero.
//
// The dark-pixel-sets-bit polarity must hold exactly: downstream renderers
// treat 1 as "pixel on".
func PackFrame(pix []uint8, width, height int) ([]byte, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrDimensionMismatch, len(pix), width, height)
	}
	packed := make([]byte, PackedFrameSize(width, height))
	for i, v := range pix {
		if v == 0 {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed, nil
}

// UnpackFrame expands a packed frame back into one intensity byte per
// pixel, 0 for set bits (dark) and 255 otherwise. It inverts PackFrame
// exactly: repacking the result reproduces the input bytes.
func UnpackFrame(packed []byte, width, height int) ([]uint8, error) {
	if len(packed) != PackedFrameSize(width, height) {
		return nil, fmt.Errorf("%w: %d packed bytes for %dx%d", ErrDimensionMismatch, len(packed), width, height)
	}
	pix := make([]uint8, width*height)
	for i := range pix {
		if packed[i/8]&(1<<(i%8)) != 0 {
			pix[i] = 0
		} else {
			pix[i] = 255
		}
	}
	return pix, nil
}
