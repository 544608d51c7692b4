// Package config holds runtime defaults for the bndvid CLI, loaded from
// environment variables. Command-line flags override these per run.
package config

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the environment-driven configuration.
type Config struct {
	// External binaries.
	FFmpegPath string `env:"BNDVID_FFMPEG, default=ffmpeg"`
	YTDLPPath  string `env:"BNDVID_YTDLP, default=yt-dlp"`

	// Where downloads and bundles land.
	OutputDir string `env:"BNDVID_OUTPUT_DIR, default=output"`

	// Target stream parameters. The 128x64 default matches the SSD1306
	// class of displays the format was designed around.
	Width      int  `env:"BNDVID_WIDTH, default=128"`
	Height     int  `env:"BNDVID_HEIGHT, default=64"`
	FPS        int  `env:"BNDVID_FPS, default=24"`
	SampleRate int  `env:"BNDVID_SAMPLE_RATE, default=44100"`
	Dither     bool `env:"BNDVID_DITHER, default=true"`
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FromEnv reads the configuration from the process environment.
func FromEnv(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
