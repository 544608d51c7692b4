package bundle

import (
	"fmt"
	"io"
	"math"
)

// FrameSource is an ordered, finite sequence of rasters, all at the same
// resolution. Frame returns the row-major intensity buffer for frame i,
// one byte per pixel, already reduced to two levels (0 = dark).
type FrameSource interface {
	Len() int
	Frame(i int) ([]uint8, error)
}

// MemFrames adapts in-memory pixel buffers to FrameSource.
type MemFrames [][]uint8

func (m MemFrames) Len() int { return len(m) }

func (m MemFrames) Frame(i int) ([]uint8, error) { return m[i], nil }

// EncodeOptions carries the stream parameters for one encode.
type EncodeOptions struct {
	Width      int
	Height     int
	SampleRate int
	FPS        int

	// Progress, when non-nil, is called after each frame is written with
	// the 1-based frame number and the total frame count.
	Progress func(frame, total int)
}

// Encode writes a complete bundle: header, then one packed frame block
// followed by one audio chunk per frame. A cursor slices audio in
// ChunkSize steps; every byte before exhaustion lands in exactly one
// chunk, and once the buffer runs out the remaining chunks are empty while
// frames keep going. An empty frame source yields a valid header-only
// bundle.
//
// Any failure aborts the whole encode. Nothing already written to w is
// undone; a partial output is not a valid bundle and the caller must
// discard it before retrying.
func Encode(w io.Writer, frames FrameSource, audio []byte, opts EncodeOptions) error {
	if opts.Width < 1 || opts.Width > math.MaxUint8 || opts.Height < 1 || opts.Height > math.MaxUint8 {
		return fmt.Errorf("%w: %dx%d", ErrDimensionRange, opts.Width, opts.Height)
	}
	if opts.SampleRate > math.MaxUint16 {
		return fmt.Errorf("bundle: sample rate %d exceeds 16-bit header field", opts.SampleRate)
	}
	chunkSize, err := ChunkSize(opts.SampleRate, opts.FPS)
	if err != nil {
		return err
	}

	total := frames.Len()
	hdr := Header{
		FrameCount: uint32(total),
		ChunkSize:  chunkSize,
		SampleRate: uint16(opts.SampleRate),
		Height:     uint8(opts.Height),
		Width:      uint8(opts.Width),
	}
	raw, _ := hdr.MarshalBinary()
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("bundle: write header: %w", err)
	}

	cursor := 0
	for i := 0; i < total; i++ {
		pix, err := frames.Frame(i)
		if err != nil {
			return fmt.Errorf("bundle: frame %d: %w", i, err)
		}
		packed, err := PackFrame(pix, opts.Width, opts.Height)
		if err != nil {
			return fmt.Errorf("bundle: frame %d: %w", i, err)
		}
		if _, err := w.Write(packed); err != nil {
			return fmt.Errorf("bundle: write frame %d: %w", i, err)
		}

		end := cursor + int(chunkSize)
		if end > len(audio) {
			end = len(audio)
		}
		if end > cursor {
			if _, err := w.Write(audio[cursor:end]); err != nil {
				return fmt.Errorf("bundle: write audio chunk %d: %w", i, err)
			}
		}
		cursor = end

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}
	return nil
}
