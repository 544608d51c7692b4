// Package media turns arbitrary source video into the two raw artifacts the
// bundle muxer consumes: a directory of fixed-resolution grayscale frames
// and a contiguous unsigned 8-bit stereo PCM buffer. Decoding is delegated
// to an external ffmpeg binary; this package never parses container
// formats itself.
package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Extractor runs ffmpeg against a local media file.
type Extractor struct {
	// FFmpegPath overrides the ffmpeg binary to run. Empty means "ffmpeg"
	// resolved from PATH.
	FFmpegPath string
}

func (e *Extractor) ffmpeg() string {
	if e.FFmpegPath != "" {
		return e.FFmpegPath
	}
	return "ffmpeg"
}

// ExtractAudio decodes the input's audio track to raw unsigned 8-bit
// interleaved stereo PCM at the given rate, returned as one contiguous
// buffer. The output is headerless: exactly the bytes the muxer slices
// into chunks.
func (e *Extractor) ExtractAudio(ctx context.Context, input string, sampleRate int) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.ffmpeg(),
		"-i", input,
		"-vn",
		"-f", "u8",
		"-acodec", "pcm_u8",
		"-ac", "2",
		"-ar", strconv.Itoa(sampleRate),
		"-af", fmt.Sprintf("aresample=%d", sampleRate),
		"-loglevel", "error",
		"pipe:1",
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg audio %s: %w", input, err)
	}
	return out, nil
}

// ExtractFrames renders the input's video track into dir as grayscale BMP
// files named frame0000001.bmp onward, resampled to the given frame rate
// and scaled to width x height. The directory is created if needed; stale
// frame files from a previous run are removed first.
func (e *Extractor) ExtractFrames(ctx context.Context, input, dir string, width, height, fps int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create frames dir: %w", err)
	}
	stale, err := filepath.Glob(filepath.Join(dir, "frame*.bmp"))
	if err != nil {
		return err
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("remove stale frame: %w", err)
		}
	}

	cmd := exec.CommandContext(ctx, e.ffmpeg(),
		"-i", input,
		"-vf", fmt.Sprintf("fps=%d,scale=%d:%d,format=gray", fps, width, height),
		"-loglevel", "error",
		"-y",
		filepath.Join(dir, "frame%07d.bmp"),
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg frames %s: %w: %s", input, err, out)
	}
	return nil
}
