package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

type videoRedisRepo struct {
	redisClient *redis.Client
}

func NewVideoRedisRepo(redisClient *redis.Client) videos.RedisRepository {
	return &videoRedisRepo{
		redisClient: redisClient,
	}
}

func (v *videoRedisRepo) GetVideoCtx(ctx context.Context, key string) (*models.VideoAsset, error) {
	videoBytes, err := v.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached video: %w", err)
	}
	video := &models.VideoAsset{}
	if err = json.Unmarshal(videoBytes, video); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached video: %w", err)
	}
	return video, nil
}

func (v *videoRedisRepo) SetVideoCtx(ctx context.Context, key string, seconds int, video *models.VideoAsset) error {
	videoBytes, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("failed to marshal video: %w", err)
	}
	if err = v.redisClient.Set(ctx, key, videoBytes, time.Second*time.Duration(seconds)).Err(); err != nil {
		return fmt.Errorf("failed to cache video: %w", err)
	}
	return nil
}

func (v *videoRedisRepo) DeleteVideoCtx(ctx context.Context, key string) error {
	if err := v.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cached video: %w", err)
	}
	return nil
}

func (v *videoRedisRepo) EnqueueReclaim(ctx context.Context, key string, task *models.ReclaimTask) error {
	taskBytes, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal reclaim task: %w", err)
	}
	if err = v.redisClient.LPush(ctx, key, taskBytes).Err(); err != nil {
		return fmt.Errorf("failed to enqueue reclaim task: %w", err)
	}
	return nil
}

func (v *videoRedisRepo) DequeueReclaim(ctx context.Context, key string, timeout time.Duration) (*models.ReclaimTask, error) {
	res, err := v.redisClient.BRPop(ctx, timeout, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue reclaim task: %w", err)
	}
	task := &models.ReclaimTask{}
	if err = json.Unmarshal([]byte(res[1]), task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reclaim task: %w", err)
	}
	return task, nil
}
