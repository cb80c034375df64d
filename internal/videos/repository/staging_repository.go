package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

type stagingRepository struct {
	dir string
}

func NewStagingRepository(cfg *config.Config) videos.StagingRepository {
	return &stagingRepository{
		dir: cfg.Staging.Dir,
	}
}

// Remove deletes one staged file. An already-absent file is not an error;
// paths outside the staging dir are refused.
func (s *stagingRepository) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve staged path: %w", err)
	}
	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return fmt.Errorf("failed to resolve staging dir: %w", err)
	}
	if !strings.HasPrefix(abs, absDir+string(os.PathSeparator)) {
		return fmt.Errorf("path %q is outside the staging dir", path)
	}
	if err = os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged file: %w", err)
	}
	return nil
}

// SweepOlderThan removes staged files whose modification time is older than
// maxAge and reports how many were deleted. Crash windows and logged-only
// cleanup failures leave files behind; the reclaimer calls this periodically.
func (s *stagingRepository) SweepOlderThan(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read staging dir: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err = os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
