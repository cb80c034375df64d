package videos

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the upload and lifecycle operations. Every operation
// returns exactly one of these (possibly wrapped with layer context); generic
// unclassified failures never cross the usecase boundary.
var (
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrNotFound            = errors.New("video not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDurationUnavailable = errors.New("video duration unavailable")
	ErrPersistFailed       = errors.New("failed to persist video record")
	ErrDeleteFailed        = errors.New("failed to delete video record")

	// ErrReclaimFailed is never returned to callers; it only appears in logs
	// and reclaim-queue entries.
	ErrReclaimFailed = errors.New("failed to reclaim remote asset")
)

const (
	AssetVideo     = "video"
	AssetThumbnail = "thumbnail"
)

// UploadError reports which asset failed to reach object storage.
type UploadError struct {
	Asset string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %s: %v", e.Asset, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
