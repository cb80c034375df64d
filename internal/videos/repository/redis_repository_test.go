package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/vidtube/vidtube-backend/internal/models"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client
}

func TestVideoRedisRepo_Cache(t *testing.T) {
	repo := NewVideoRedisRepo(setupTestRedis(t))
	ctx := context.Background()

	video := &models.VideoAsset{
		VideoID:      uuid.New(),
		UserID:       uuid.New(),
		Title:        "cached video",
		VideoURL:     "http://s3.local/bucket/assets/video.mp4",
		ThumbnailURL: "http://s3.local/bucket/assets/thumb.jpg",
		Duration:     120.5,
		Views:        7,
		IsPublished:  true,
		CreatedAt:    time.Now().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().Truncate(time.Microsecond),
	}
	key := "api-video:" + video.VideoID.String()

	if err := repo.SetVideoCtx(ctx, key, 60, video); err != nil {
		t.Fatalf("SetVideoCtx: %v", err)
	}

	got, err := repo.GetVideoCtx(ctx, key)
	if err != nil {
		t.Fatalf("GetVideoCtx: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached record")
	}
	if got.VideoID != video.VideoID || got.Title != video.Title || got.Duration != video.Duration {
		t.Errorf("cached record mismatch: %+v", got)
	}

	if err := repo.DeleteVideoCtx(ctx, key); err != nil {
		t.Fatalf("DeleteVideoCtx: %v", err)
	}
	got, err = repo.GetVideoCtx(ctx, key)
	if err != nil {
		t.Fatalf("GetVideoCtx after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected cache miss after invalidation, got %+v", got)
	}
}

func TestVideoRedisRepo_CacheMiss(t *testing.T) {
	repo := NewVideoRedisRepo(setupTestRedis(t))

	got, err := repo.GetVideoCtx(context.Background(), "api-video:absent")
	if err != nil {
		t.Fatalf("a cache miss is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on cache miss, got %+v", got)
	}
}

func TestVideoRedisRepo_ReclaimQueue(t *testing.T) {
	repo := NewVideoRedisRepo(setupTestRedis(t))
	ctx := context.Background()

	first := &models.ReclaimTask{
		TaskID:   uuid.New().String(),
		Ref:      "http://s3.local/bucket/assets/a.mp4",
		Attempts: 1,
		QueuedAt: time.Now().Truncate(time.Microsecond),
	}
	second := &models.ReclaimTask{
		TaskID:   uuid.New().String(),
		Ref:      "http://s3.local/bucket/assets/b.jpg",
		QueuedAt: time.Now().Truncate(time.Microsecond),
	}

	if err := repo.EnqueueReclaim(ctx, "reclaim:queue", first); err != nil {
		t.Fatalf("EnqueueReclaim: %v", err)
	}
	if err := repo.EnqueueReclaim(ctx, "reclaim:queue", second); err != nil {
		t.Fatalf("EnqueueReclaim: %v", err)
	}

	got, err := repo.DequeueReclaim(ctx, "reclaim:queue", time.Second)
	if err != nil {
		t.Fatalf("DequeueReclaim: %v", err)
	}
	if got == nil || got.TaskID != first.TaskID || got.Ref != first.Ref || got.Attempts != 1 {
		t.Errorf("expected the first queued task back, got %+v", got)
	}

	got, err = repo.DequeueReclaim(ctx, "reclaim:queue", time.Second)
	if err != nil {
		t.Fatalf("DequeueReclaim: %v", err)
	}
	if got == nil || got.TaskID != second.TaskID {
		t.Errorf("expected the second queued task back, got %+v", got)
	}
}
