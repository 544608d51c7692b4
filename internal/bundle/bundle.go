// Package bundle implements the BND container format: a sequence of
// bit-packed 1-bit monochrome frames interleaved with fixed-size chunks of
// raw unsigned 8-bit stereo PCM, built for playback on memory-constrained
// displays. A bundle is written once, front to back; there is no index and
// no random access.
//
// Layout:
//
//	[Header 18 bytes][frame 0][chunk 0][frame 1][chunk 1]...
//
// Each frame block is ceil(width*height/8) bytes. Each audio chunk is
// Header.ChunkSize bytes except once the source audio runs out, after which
// chunks shrink to whatever remains and then to nothing. Frames keep being
// written either way: video length is authoritative, audio may under-run.
package bundle

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Signature identifies a BND bundle. It is the first 7 bytes of every file.
const Signature = "BND!VID"

// Version is the current format revision.
const Version = 1

// HeaderSize is the fixed byte length of an encoded header:
// 7-byte signature, version, frame count, chunk size, sample rate,
// height, width.
const HeaderSize = 18

var (
	// ErrDimensionMismatch reports a pixel buffer whose length disagrees
	// with the declared width*height.
	ErrDimensionMismatch = errors.New("bundle: pixel buffer does not match frame dimensions")

	// ErrDimensionRange reports a width or height outside 1..255. The
	// header stores dimensions in single bytes; anything larger must be
	// rejected up front rather than silently narrowed.
	ErrDimensionRange = errors.New("bundle: frame dimensions must be 1..255")

	// ErrChunkSizeOverflow reports a derived audio chunk size that does
	// not fit the 16-bit header field.
	ErrChunkSizeOverflow = errors.New("bundle: audio chunk size exceeds 16-bit field")

	// ErrBadHeader reports a header that is too short, carries the wrong
	// signature, or an unsupported version.
	ErrBadHeader = errors.New("bundle: malformed header")

	// ErrTruncated reports a bundle shorter than its header accounts for.
	ErrTruncated = errors.New("bundle: truncated")
)

// Header is the fixed-size record at the start of every bundle.
// FPS is deliberately not stored: a reader that needs exact playback timing
// recovers it from SampleRate/ChunkSize or learns it out of band.
type Header struct {
	FrameCount uint32 // number of frame blocks that follow
	ChunkSize  uint16 // bytes of audio per frame, round(sampleRate/fps)
	SampleRate uint16 // audio sampling rate in Hz
	Height     uint8  // frame height in pixels
	Width      uint8  // frame width in pixels
}

// FrameSize returns the byte length of one packed frame block.
func (h Header) FrameSize() int {
	return PackedFrameSize(int(h.Width), int(h.Height))
}

// MarshalBinary encodes the header into its wire form, little-endian
// throughout. Height precedes width, matching the on-disk order.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	copy(buf, Signature)
	buf[7] = Version
	binary.LittleEndian.PutUint32(buf[8:], h.FrameCount)
	binary.LittleEndian.PutUint16(buf[12:], h.ChunkSize)
	binary.LittleEndian.PutUint16(buf[14:], h.SampleRate)
	buf[16] = h.Height
	buf[17] = h.Width
	return buf, nil
}

// UnmarshalBinary decodes an encoded header.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need %d", ErrBadHeader, len(data), HeaderSize)
	}
	if string(data[:7]) != Signature {
		return fmt.Errorf("%w: bad signature %q", ErrBadHeader, data[:7])
	}
	if data[7] != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrBadHeader, data[7])
	}
	h.FrameCount = binary.LittleEndian.Uint32(data[8:])
	h.ChunkSize = binary.LittleEndian.Uint16(data[12:])
	h.SampleRate = binary.LittleEndian.Uint16(data[14:])
	h.Height = data[16]
	h.Width = data[17]
	return nil
}

// ChunkSize derives the per-frame audio chunk size, round(sampleRate/fps)
// with halves rounded away from zero (math.Round). The result must fit the
// header's 16-bit field.
func ChunkSize(sampleRate, fps int) (uint16, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("bundle: fps must be positive, got %d", fps)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("bundle: sample rate must be positive, got %d", sampleRate)
	}
	size := int(math.Round(float64(sampleRate) / float64(fps)))
	if size > math.MaxUint16 {
		return 0, fmt.Errorf("%w: round(%d/%d) = %d", ErrChunkSizeOverflow, sampleRate, fps, size)
	}
	return uint16(size), nil
}
