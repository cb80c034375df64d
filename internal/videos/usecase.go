package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

// UseCase is the produced interface of the video slice: the upload pipeline,
// the lifecycle operations and the simple catalog reads.
type UseCase interface {
	// Upload runs the full pipeline: video put, thumbnail put, duration
	// probe, catalog insert, staging cleanup. Any failure before the insert
	// rolls back already-uploaded remote assets best-effort.
	Upload(ctx context.Context, input *models.UploadVideoInput) (*models.VideoAsset, error)

	// Update applies partial metadata changes; a supplied thumbnail replaces
	// the remote one (new upload first, old reclaimed after). The video
	// reference and duration are never altered.
	Update(ctx context.Context, videoID uuid.UUID, input *models.UpdateVideoInput) (*models.VideoAsset, error)

	// Delete removes the catalog record first, then reclaims both remote
	// assets best-effort.
	Delete(ctx context.Context, videoID uuid.UUID) error

	TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	Search(ctx context.Context, query string, userID uuid.UUID, sortBy, sortDir string, pq *utils.Pagination) ([]*models.VideoAsset, error)
	AddView(ctx context.Context, videoID uuid.UUID) error
}
