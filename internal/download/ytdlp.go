// Package download fetches remote video through an external yt-dlp binary.
// yt-dlp handles site extraction and stream merging; this package only
// drives it and recovers the path of the merged MP4.
package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FormatSelector prefers an MP4 video stream plus M4A audio, falling back
// to the best single MP4 and then to whatever is best overall.
const FormatSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Client runs yt-dlp.
type Client struct {
	// YTDLPPath overrides the yt-dlp binary to run. Empty means "yt-dlp"
	// resolved from PATH.
	YTDLPPath string
}

func (c *Client) bin() string {
	if c.YTDLPPath != "" {
		return c.YTDLPPath
	}
	return "yt-dlp"
}

// Fetch downloads url into dir as an MP4 named after the video title and
// returns the local file path.
func (c *Client) Fetch(ctx context.Context, url, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.bin(),
		"-f", FormatSelector,
		"--merge-output-format", "mp4",
		"-o", filepath.Join(dir, "%(title).200s.%(ext)s"),
		"--no-warnings",
		"--no-simulate",
		"--print", "after_move:filepath",
		url,
	)

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("yt-dlp %s: %w", url, err)
	}

	path := lastLine(out)
	if path == "" {
		return "", fmt.Errorf("yt-dlp %s: no output file reported", url)
	}
	return path, nil
}

// lastLine returns the final non-empty line of yt-dlp's stdout, which with
// --print after_move:filepath is the path of the finished download.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
