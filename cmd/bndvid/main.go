package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/embedvid/bndvid/internal/config"
	"github.com/embedvid/bndvid/internal/convert"
	"github.com/embedvid/bndvid/internal/download"
	"github.com/embedvid/bndvid/internal/media"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.FromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	streamFlags := []cli.Flag{
		&cli.IntFlag{Name: "width", Usage: "frame width in pixels (max 255)", Value: cfg.Width},
		&cli.IntFlag{Name: "height", Usage: "frame height in pixels (max 255)", Value: cfg.Height},
		&cli.IntFlag{Name: "fps", Usage: "target frame rate", Value: cfg.FPS},
		&cli.IntFlag{Name: "sample-rate", Usage: "audio sample rate in Hz", Value: cfg.SampleRate},
		&cli.StringFlag{Name: "output-dir", Usage: "directory for results", Value: cfg.OutputDir},
		&cli.BoolFlag{Name: "no-dither", Usage: "threshold frames instead of error-diffusion dithering"},
	}

	app := &cli.App{
		Name:  "bndvid",
		Usage: "pack video into BND bundles for small monochrome displays",
		Commands: []*cli.Command{
			{
				Name:      "download",
				Usage:     "Fetch a remote video with yt-dlp and convert it to a bundle",
				ArgsUsage: "<url>",
				Flags:     streamFlags,
				Action: func(c *cli.Context) error {
					url := c.Args().First()
					if url == "" {
						return cli.Exit("a video URL is required", 1)
					}

					dl := &download.Client{YTDLPPath: cfg.YTDLPPath}
					log.Printf("Downloading %s", url)
					src, err := dl.Fetch(c.Context, url, c.String("output-dir"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					log.Printf("Saved %s", src)

					return convertFile(c, cfg, src)
				},
			},
			{
				Name:      "convert",
				Usage:     "Convert a local video file to a bundle",
				ArgsUsage: "<file>",
				Flags:     streamFlags,
				Action: func(c *cli.Context) error {
					src := c.Args().First()
					if src == "" {
						return cli.Exit("an input file is required", 1)
					}
					if _, err := os.Stat(src); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return convertFile(c, cfg, src)
				},
			},
			{
				Name:      "extract-audio",
				Usage:     "Extract a video's audio track to an unsigned 8-bit stereo WAV",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sample-rate", Usage: "audio sample rate in Hz", Value: cfg.SampleRate},
					&cli.StringFlag{Name: "output-dir", Usage: "directory for results", Value: cfg.OutputDir},
				},
				Action: func(c *cli.Context) error {
					src := c.Args().First()
					if src == "" {
						return cli.Exit("an input file is required", 1)
					}
					if _, err := os.Stat(src); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return extractAudio(c, cfg, src)
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// convertFile runs the pipeline on a local file, writing
// <output-dir>/<name>.bnd.
func convertFile(c *cli.Context, cfg *config.Config, src string) error {
	dst := filepath.Join(c.String("output-dir"), stem(src)+".bnd")
	conv := convert.New(&media.Extractor{FFmpegPath: cfg.FFmpegPath})

	log.Printf("Creating bundle %s", dst)
	err := conv.Convert(c.Context, src, dst, convert.Options{
		Width:      c.Int("width"),
		Height:     c.Int("height"),
		FPS:        c.Int("fps"),
		SampleRate: c.Int("sample-rate"),
		Dither:     cfg.Dither && !c.Bool("no-dither"),
		Progress: func(frame, total int) {
			log.Printf("Frame %d/%d", frame, total)
		},
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("create bundle: %v", err), 1)
	}

	log.Printf("Bundle created: %s", dst)
	return nil
}

func extractAudio(c *cli.Context, cfg *config.Config, src string) error {
	outDir := c.String("output-dir")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	rate := c.Int("sample-rate")

	ext := &media.Extractor{FFmpegPath: cfg.FFmpegPath}
	log.Printf("Extracting audio from %s", src)
	pcm, err := ext.ExtractAudio(c.Context, src, rate)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	dst := filepath.Join(outDir, stem(src)+".wav")
	f, err := os.Create(dst)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := media.WriteWAV(f, pcm, rate, 2); err != nil {
		f.Close()
		os.Remove(dst)
		return cli.Exit(err.Error(), 1)
	}
	if err := f.Close(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	log.Printf("WAV created: %s", dst)
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
