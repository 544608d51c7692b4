package config

import (
	"context"
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BNDVID_FFMPEG", "BNDVID_YTDLP", "BNDVID_OUTPUT_DIR",
		"BNDVID_WIDTH", "BNDVID_HEIGHT", "BNDVID_FPS",
		"BNDVID_SAMPLE_RATE", "BNDVID_DITHER",
	} {
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv(context.Background())
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want ffmpeg", cfg.FFmpegPath)
	}
	if cfg.YTDLPPath != "yt-dlp" {
		t.Errorf("YTDLPPath = %q, want yt-dlp", cfg.YTDLPPath)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want output", cfg.OutputDir)
	}
	if cfg.Width != 128 || cfg.Height != 64 {
		t.Errorf("dimensions = %dx%d, want 128x64", cfg.Width, cfg.Height)
	}
	if cfg.FPS != 24 {
		t.Errorf("FPS = %d, want 24", cfg.FPS)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if !cfg.Dither {
		t.Error("Dither = false, want true by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BNDVID_FFMPEG", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("BNDVID_OUTPUT_DIR", "/srv/bundles")
	t.Setenv("BNDVID_WIDTH", "64")
	t.Setenv("BNDVID_HEIGHT", "32")
	t.Setenv("BNDVID_FPS", "12")
	t.Setenv("BNDVID_SAMPLE_RATE", "22050")
	t.Setenv("BNDVID_DITHER", "false")

	cfg, err := FromEnv(context.Background())
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %q, want env override", cfg.FFmpegPath)
	}
	if cfg.OutputDir != "/srv/bundles" {
		t.Errorf("OutputDir = %q, want env override", cfg.OutputDir)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("dimensions = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.FPS != 12 {
		t.Errorf("FPS = %d, want 12", cfg.FPS)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.SampleRate)
	}
	if cfg.Dither {
		t.Error("Dither = true, want false from env")
	}
}

func TestFromEnvInvalidInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("BNDVID_WIDTH", "not-a-number")

	if _, err := FromEnv(context.Background()); err == nil {
		t.Error("FromEnv with garbage int should fail")
	}
}
