// Package convert runs the full source-video-to-bundle pipeline: extract
// frames and audio into a scratch workspace, encode the bundle, clean up.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/embedvid/bndvid/internal/bundle"
	"github.com/embedvid/bndvid/internal/media"
)

// Extractor produces the two raw artifacts the muxer consumes. Satisfied
// by media.Extractor; tests substitute fakes.
type Extractor interface {
	ExtractAudio(ctx context.Context, input string, sampleRate int) ([]byte, error)
	ExtractFrames(ctx context.Context, input, dir string, width, height, fps int) error
}

// Options carries the target stream parameters for one conversion.
type Options struct {
	Width      int
	Height     int
	FPS        int
	SampleRate int
	Dither     bool

	// Progress, when non-nil, is forwarded to the bundle encoder.
	Progress func(frame, total int)
}

// Converter drives an Extractor through the pipeline.
type Converter struct {
	extractor Extractor
}

// New returns a Converter using the given extractor.
func New(extractor Extractor) *Converter {
	return &Converter{extractor: extractor}
}

// Convert turns the media file at src into a bundle at dst. Frames and
// audio are extracted concurrently into a per-job workspace under the
// system temp directory, which is removed again on every path. On any
// failure the output file is deleted: a partial bundle is not valid.
func (c *Converter) Convert(ctx context.Context, src, dst string, opts Options) error {
	work := filepath.Join(os.TempDir(), "bndvid-"+uuid.NewString())
	if err := os.MkdirAll(work, 0755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	defer os.RemoveAll(work)

	framesDir := filepath.Join(work, "frames")

	var audio []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.extractor.ExtractFrames(gctx, src, framesDir, opts.Width, opts.Height, opts.FPS)
	})
	g.Go(func() error {
		var err error
		audio, err = c.extractor.ExtractAudio(gctx, src, opts.SampleRate)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	frames, err := media.OpenFrameDir(framesDir, opts.Dither)
	if err != nil {
		return fmt.Errorf("open frames: %w", err)
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create bundle dir: %w", err)
		}
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}

	if err := bundle.Encode(out, frames, audio, bundle.EncodeOptions{
		Width:      opts.Width,
		Height:     opts.Height,
		SampleRate: opts.SampleRate,
		FPS:        opts.FPS,
		Progress:   opts.Progress,
	}); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close bundle: %w", err)
	}
	return nil
}
