package media

import (
	"image"
	"image/color"
	"testing"
)

func grayImage(w, h int, fill uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	return img
}

func TestBinarizeThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	img.Pix = []uint8{0, 127, 128, 255}

	pix := Binarize(img, false)
	want := []uint8{0, 0, 255, 255}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestBinarizeLength(t *testing.T) {
	for _, dither := range []bool{false, true} {
		pix := Binarize(grayImage(17, 5, 90), dither)
		if len(pix) != 17*5 {
			t.Errorf("dither=%v: len = %d, want %d", dither, len(pix), 17*5)
		}
	}
}

func TestBinarizeUniformExtremes(t *testing.T) {
	for _, dither := range []bool{false, true} {
		for _, tt := range []struct {
			fill uint8
			want uint8
		}{
			{0, 0},
			{255, 255},
		} {
			pix := Binarize(grayImage(8, 8, tt.fill), dither)
			for i, v := range pix {
				if v != tt.want {
					t.Fatalf("dither=%v fill=%d: pix[%d] = %d, want %d", dither, tt.fill, i, v, tt.want)
				}
			}
		}
	}
}

func TestBinarizeTwoLevelsOnly(t *testing.T) {
	// A gradient must still come out strictly two-level either way.
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 16)})
		}
	}
	for _, dither := range []bool{false, true} {
		for i, v := range Binarize(img, dither) {
			if v != 0 && v != 255 {
				t.Fatalf("dither=%v: pix[%d] = %d, want 0 or 255", dither, i, v)
			}
		}
	}
}

func TestBinarizeNonZeroOrigin(t *testing.T) {
	// Bounds not anchored at (0,0) must not shift pixels.
	img := image.NewGray(image.Rect(10, 10, 14, 11))
	img.SetGray(10, 10, color.Gray{Y: 255})

	pix := Binarize(img, false)
	if pix[0] != 255 {
		t.Errorf("pix[0] = %d, want 255", pix[0])
	}
	for i := 1; i < 4; i++ {
		if pix[i] != 0 {
			t.Errorf("pix[%d] = %d, want 0", i, pix[i])
		}
	}
}
