package bundle

import (
	"fmt"
	"io"
)

// Reader walks a complete in-memory bundle frame by frame.
//
// The format carries no length field for the final audio chunk, so a short
// chunk is only detectable by byte accounting against the whole container:
// everything past the header and the frame blocks is audio. Reader does
// that accounting up front, which is why it takes the full bundle rather
// than a stream.
type Reader struct {
	header    Header
	data      []byte
	pos       int
	frame     int
	audioLeft int
}

// NewReader parses and validates the header and byte-accounts the audio
// budget. A bundle shorter than header plus frame blocks is truncated.
func NewReader(data []byte) (*Reader, error) {
	var hdr Header
	if err := hdr.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	frameBytes := int(hdr.FrameCount) * hdr.FrameSize()
	audio := len(data) - HeaderSize - frameBytes
	if audio < 0 {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for %d frames",
			ErrTruncated, len(data), HeaderSize+frameBytes, hdr.FrameCount)
	}
	return &Reader{
		header:    hdr,
		data:      data,
		pos:       HeaderSize,
		audioLeft: audio,
	}, nil
}

// Header returns the parsed bundle header.
func (r *Reader) Header() Header { return r.header }

// Next returns the next packed frame block and its audio chunk. The chunk
// is Header.ChunkSize bytes until the audio budget runs out, then shorter,
// then empty. Both slices alias the underlying bundle. Next returns io.EOF
// once all frames have been read.
func (r *Reader) Next() (frame, chunk []byte, err error) {
	if r.frame >= int(r.header.FrameCount) {
		return nil, nil, io.EOF
	}
	fsize := r.header.FrameSize()
	frame = r.data[r.pos : r.pos+fsize]
	r.pos += fsize

	csize := int(r.header.ChunkSize)
	if csize > r.audioLeft {
		csize = r.audioLeft
	}
	chunk = r.data[r.pos : r.pos+csize]
	r.pos += csize
	r.audioLeft -= csize

	r.frame++
	return frame, chunk, nil
}
