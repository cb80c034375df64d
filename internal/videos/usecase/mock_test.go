package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube-backend/internal/models"
)

type mockVideoRepo struct {
	createVideoFn    func(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error)
	getVideoByIDFn   func(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	updateVideoFn    func(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error)
	deleteVideoFn    func(ctx context.Context, videoID uuid.UUID) error
	searchVideosFn   func(ctx context.Context, params *models.SearchParams) ([]*models.VideoAsset, error)
	incrementViewsFn func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockVideoRepo) CreateVideo(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error) {
	if m.createVideoFn != nil {
		return m.createVideoFn(ctx, video)
	}
	return video, nil
}

func (m *mockVideoRepo) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	if m.getVideoByIDFn != nil {
		return m.getVideoByIDFn(ctx, videoID)
	}
	return &models.VideoAsset{VideoID: videoID}, nil
}

func (m *mockVideoRepo) UpdateVideo(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error) {
	if m.updateVideoFn != nil {
		return m.updateVideoFn(ctx, video)
	}
	return video, nil
}

func (m *mockVideoRepo) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, videoID)
	}
	return nil
}

func (m *mockVideoRepo) SearchVideos(ctx context.Context, params *models.SearchParams) ([]*models.VideoAsset, error) {
	if m.searchVideosFn != nil {
		return m.searchVideosFn(ctx, params)
	}
	return nil, nil
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, videoID uuid.UUID) error {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, videoID)
	}
	return nil
}

type mockAWSRepo struct {
	putFileFn      func(ctx context.Context, localPath string) (string, error)
	removeObjectFn func(ctx context.Context, ref string) error

	removed []string
}

func (m *mockAWSRepo) PutFile(ctx context.Context, localPath string) (string, error) {
	if m.putFileFn != nil {
		return m.putFileFn(ctx, localPath)
	}
	return "http://s3.local/bucket/assets/" + localPath, nil
}

func (m *mockAWSRepo) RemoveObject(ctx context.Context, ref string) error {
	m.removed = append(m.removed, ref)
	if m.removeObjectFn != nil {
		return m.removeObjectFn(ctx, ref)
	}
	return nil
}

type mockRedisRepo struct {
	getVideoFn       func(ctx context.Context, key string) (*models.VideoAsset, error)
	setVideoFn       func(ctx context.Context, key string, seconds int, video *models.VideoAsset) error
	deleteVideoFn    func(ctx context.Context, key string) error
	enqueueReclaimFn func(ctx context.Context, key string, task *models.ReclaimTask) error
	dequeueReclaimFn func(ctx context.Context, key string, timeout time.Duration) (*models.ReclaimTask, error)

	enqueued []*models.ReclaimTask
}

func (m *mockRedisRepo) GetVideoCtx(ctx context.Context, key string) (*models.VideoAsset, error) {
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, key)
	}
	return nil, nil
}

func (m *mockRedisRepo) SetVideoCtx(ctx context.Context, key string, seconds int, video *models.VideoAsset) error {
	if m.setVideoFn != nil {
		return m.setVideoFn(ctx, key, seconds, video)
	}
	return nil
}

func (m *mockRedisRepo) DeleteVideoCtx(ctx context.Context, key string) error {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, key)
	}
	return nil
}

func (m *mockRedisRepo) EnqueueReclaim(ctx context.Context, key string, task *models.ReclaimTask) error {
	m.enqueued = append(m.enqueued, task)
	if m.enqueueReclaimFn != nil {
		return m.enqueueReclaimFn(ctx, key, task)
	}
	return nil
}

func (m *mockRedisRepo) DequeueReclaim(ctx context.Context, key string, timeout time.Duration) (*models.ReclaimTask, error) {
	if m.dequeueReclaimFn != nil {
		return m.dequeueReclaimFn(ctx, key, timeout)
	}
	return nil, nil
}

type mockStagingRepo struct {
	removeFn func(path string) error

	removed []string
}

func (m *mockStagingRepo) Remove(path string) error {
	m.removed = append(m.removed, path)
	if m.removeFn != nil {
		return m.removeFn(path)
	}
	return nil
}

func (m *mockStagingRepo) SweepOlderThan(maxAge time.Duration) (int, error) {
	return 0, nil
}

type mockProber struct {
	probeFn func(ctx context.Context, ref string) (float64, error)
}

func (m *mockProber) Probe(ctx context.Context, ref string) (float64, error) {
	if m.probeFn != nil {
		return m.probeFn(ctx, ref)
	}
	return 42.5, nil
}

type nopLogger struct{}

func (l *nopLogger) InitLogger()                                  {}
func (l *nopLogger) Debug(args ...interface{})                    {}
func (l *nopLogger) Debugf(template string, args ...interface{})  {}
func (l *nopLogger) Info(args ...interface{})                     {}
func (l *nopLogger) Infof(template string, args ...interface{})   {}
func (l *nopLogger) Warn(args ...interface{})                     {}
func (l *nopLogger) Warnf(template string, args ...interface{})   {}
func (l *nopLogger) Error(args ...interface{})                    {}
func (l *nopLogger) Errorf(template string, args ...interface{})  {}
func (l *nopLogger) Fatal(args ...interface{})                    {}
func (l *nopLogger) Fatalf(template string, args ...interface{})  {}
