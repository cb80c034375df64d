package prober

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

const defaultTimeout = 30 * time.Second

// FFprobeProber derives a video's duration by shelling out to ffprobe.
// ffprobe reads the uploaded object over HTTP, so the probe runs against the
// durable remote reference, not the staging copy.
type FFprobeProber struct {
	path    string
	timeout time.Duration
}

var _ videos.DurationProber = (*FFprobeProber)(nil)

func NewFFprobeProber(cfg *config.Config) *FFprobeProber {
	path := cfg.Prober.FFprobePath
	if path == "" {
		path = "ffprobe"
	}
	timeout := time.Duration(cfg.Prober.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FFprobeProber{
		path:    path,
		timeout: timeout,
	}
}

func (p *FFprobeProber) Probe(ctx context.Context, ref string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.path,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		ref,
	)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("probe cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("ffprobe execution failed: %w", err)
	}

	return parseDuration(string(out))
}

func parseDuration(out string) (float64, error) {
	s := strings.TrimSpace(out)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}
	duration, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration %q: %w", s, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("ffprobe reported negative duration %f", duration)
	}
	return duration, nil
}
