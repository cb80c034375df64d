package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube-backend/internal/models"
)

// Repository is the catalog store. Lookups for missing records return
// ErrNotFound.
type Repository interface {
	CreateVideo(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error)
	GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	UpdateVideo(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error)
	DeleteVideo(ctx context.Context, videoID uuid.UUID) error
	SearchVideos(ctx context.Context, params *models.SearchParams) ([]*models.VideoAsset, error)
	IncrementViews(ctx context.Context, videoID uuid.UUID) error
}
