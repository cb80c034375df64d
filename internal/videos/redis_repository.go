package videos

import (
	"context"
	"time"

	"github.com/vidtube/vidtube-backend/internal/models"
)

// RedisRepository caches catalog records and carries the reclaim retry queue.
type RedisRepository interface {
	// GetVideoCtx returns (nil, nil) on cache miss.
	GetVideoCtx(ctx context.Context, key string) (*models.VideoAsset, error)
	SetVideoCtx(ctx context.Context, key string, seconds int, video *models.VideoAsset) error
	DeleteVideoCtx(ctx context.Context, key string) error

	EnqueueReclaim(ctx context.Context, key string, task *models.ReclaimTask) error
	// DequeueReclaim blocks up to timeout; returns (nil, nil) when the queue
	// stayed empty.
	DequeueReclaim(ctx context.Context, key string, timeout time.Duration) (*models.ReclaimTask, error)
}
