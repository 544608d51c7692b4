package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/bmp"
)

// FrameDir reads the BMP frames ffmpeg produced, in filename order, and
// hands them to the muxer one at a time. Frames are decoded lazily so only
// a single raster is in memory at once. It implements bundle.FrameSource.
type FrameDir struct {
	paths  []string
	dither bool
}

// OpenFrameDir lists dir's frame*.bmp files in order. The dither flag
// controls how frames are reduced to two levels, see Binarize.
func OpenFrameDir(dir string, dither bool) (*FrameDir, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "frame*.bmp"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return &FrameDir{paths: paths, dither: dither}, nil
}

// Len returns the number of frames found.
func (d *FrameDir) Len() int { return len(d.paths) }

// Frame decodes frame i and returns its two-level row-major pixel buffer.
func (d *FrameDir) Frame(i int) ([]uint8, error) {
	f, err := os.Open(d.paths[i])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(d.paths[i]), err)
	}
	return Binarize(img, d.dither), nil
}
