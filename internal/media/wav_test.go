package media

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteWAV(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm, 44100, 2); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out := buf.Bytes()
	if len(out) != 44+len(pcm) {
		t.Fatalf("length = %d, want %d", len(out), 44+len(pcm))
	}
	if string(out[:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE markers: %q %q", out[:4], out[8:12])
	}
	if got := binary.LittleEndian.Uint32(out[24:]); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	if got := binary.LittleEndian.Uint16(out[22:]); got != 2 {
		t.Errorf("channels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:]); got != 8 {
		t.Errorf("bits per sample = %d, want 8", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
	if !bytes.Equal(out[44:], pcm) {
		t.Error("payload does not match source PCM")
	}
}
