package media

import (
	"encoding/binary"
	"fmt"
	"io"
)

// wavHeader is a standard 44-byte RIFF/WAVE header for uncompressed PCM.
type wavHeader struct {
	RiffID        [4]byte
	FileSize      uint32
	WaveID        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

// WriteWAV wraps a raw unsigned 8-bit interleaved PCM buffer in a WAV
// container so the extracted audio is playable on its own.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels int) error {
	dataSize := uint32(len(pcm))
	hdr := wavHeader{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      36 + dataSize,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1, // PCM
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels),
		BlockAlign:    uint16(channels),
		BitsPerSample: 8,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	return nil
}
