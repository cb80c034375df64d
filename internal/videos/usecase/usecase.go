package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
	"github.com/vidtube/vidtube-backend/pkg/logger"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

const videoCachePrefix = "api-video:"

type videoUC struct {
	cfg         *config.Config
	videoRepo   videos.Repository
	awsRepo     videos.AWSRepository
	redisRepo   videos.RedisRepository
	stagingRepo videos.StagingRepository
	prober      videos.DurationProber
	logger      logger.Logger
}

func NewVideoUseCase(
	cfg *config.Config,
	videoRepo videos.Repository,
	awsRepo videos.AWSRepository,
	redisRepo videos.RedisRepository,
	stagingRepo videos.StagingRepository,
	prober videos.DurationProber,
	log logger.Logger,
) videos.UseCase {
	return &videoUC{
		cfg:         cfg,
		videoRepo:   videoRepo,
		awsRepo:     awsRepo,
		redisRepo:   redisRepo,
		stagingRepo: stagingRepo,
		prober:      prober,
		logger:      log,
	}
}

// Upload moves both staged assets to object storage, probes the duration and
// inserts the catalog record. Each step's failure short-circuits the rest and
// reclaims whatever was already uploaded, so a terminal error never leaves a
// catalog record or an unreferenced remote asset behind (reclaim failures are
// queued for the reclaimer).
func (v *videoUC) Upload(ctx context.Context, input *models.UploadVideoInput) (*models.VideoAsset, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		v.logger.Errorf("Upload - GetUserFromCtx error: %v", err)
		return nil, videos.ErrUnauthorized
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		v.logger.Errorf("Upload - ValidateStruct error: %v", err)
		return nil, errors.Wrap(videos.ErrInvalidInput, err.Error())
	}

	// Once the first byte reaches object storage the pipeline must run to
	// completion or to its rollback point, even if the caller disconnects.
	ctx = context.WithoutCancel(ctx)

	videoRef, err := v.awsRepo.PutFile(ctx, input.VideoPath)
	if err != nil {
		v.logger.Errorf("Upload - video PutFile error: %v", err)
		return nil, &videos.UploadError{Asset: videos.AssetVideo, Err: err}
	}

	thumbnailRef, err := v.awsRepo.PutFile(ctx, input.ThumbnailPath)
	if err != nil {
		v.logger.Errorf("Upload - thumbnail PutFile error: %v", err)
		v.reclaim(ctx, videoRef)
		return nil, &videos.UploadError{Asset: videos.AssetThumbnail, Err: err}
	}

	duration, err := v.prober.Probe(ctx, videoRef)
	if err != nil {
		v.logger.Errorf("Upload - Probe error: %v", err)
		v.reclaim(ctx, videoRef)
		v.reclaim(ctx, thumbnailRef)
		return nil, errors.Wrap(videos.ErrDurationUnavailable, err.Error())
	}

	video := &models.VideoAsset{
		UserID:       user.UserID,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     videoRef,
		ThumbnailURL: thumbnailRef,
		Duration:     duration,
	}
	video.PrepareCreate()

	created, err := v.videoRepo.CreateVideo(ctx, video)
	if err != nil {
		v.logger.Errorf("Upload - CreateVideo error: %v", err)
		v.reclaim(ctx, videoRef)
		v.reclaim(ctx, thumbnailRef)
		return nil, errors.Wrap(videos.ErrPersistFailed, err.Error())
	}

	// The record is durable; staging leftovers are a local leak at worst.
	v.removeStaged(input.VideoPath)
	v.removeStaged(input.ThumbnailPath)

	return created, nil
}

// Update applies partial metadata changes. A replacement thumbnail is
// uploaded before anything else mutates; only after that upload succeeds is
// the old remote thumbnail reclaimed. Omitted fields keep their value.
func (v *videoUC) Update(ctx context.Context, videoID uuid.UUID, input *models.UpdateVideoInput) (*models.VideoAsset, error) {
	if _, err := utils.GetUserFromCtx(ctx); err != nil {
		return nil, videos.ErrUnauthorized
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		return nil, errors.Wrap(videos.ErrInvalidInput, err.Error())
	}

	video, err := v.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	oldThumbnail := ""
	if input.ThumbnailPath != "" {
		newThumbnail, err := v.awsRepo.PutFile(ctx, input.ThumbnailPath)
		if err != nil {
			v.logger.Errorf("Update - thumbnail PutFile error: %v", err)
			return nil, &videos.UploadError{Asset: videos.AssetThumbnail, Err: err}
		}
		oldThumbnail = video.ThumbnailURL
		video.ThumbnailURL = newThumbnail
		v.reclaim(ctx, oldThumbnail)
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}
	video.Normalize()

	updated, err := v.videoRepo.UpdateVideo(ctx, video)
	if err != nil {
		v.logger.Errorf("Update - UpdateVideo error: %v", err)
		if oldThumbnail != "" {
			// The record still references the old thumbnail; the adopted-but-
			// unpersisted replacement is the orphan now.
			v.reclaim(ctx, video.ThumbnailURL)
		}
		return nil, errors.Wrap(videos.ErrPersistFailed, err.Error())
	}

	if input.ThumbnailPath != "" {
		v.removeStaged(input.ThumbnailPath)
	}
	v.invalidateCache(ctx, videoID)

	return updated, nil
}

// Delete removes the catalog record first, so a crash mid-operation can leave
// orphaned remote objects but never a user-visible record pointing at
// reclaimed assets. Both reclamations are independently best-effort.
func (v *videoUC) Delete(ctx context.Context, videoID uuid.UUID) error {
	if _, err := utils.GetUserFromCtx(ctx); err != nil {
		return videos.ErrUnauthorized
	}

	video, err := v.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)

	if err = v.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		if errors.Is(err, videos.ErrNotFound) {
			return err
		}
		v.logger.Errorf("Delete - DeleteVideo error: %v", err)
		return errors.Wrap(videos.ErrDeleteFailed, err.Error())
	}

	v.reclaim(ctx, video.VideoURL)
	v.reclaim(ctx, video.ThumbnailURL)
	v.invalidateCache(ctx, videoID)

	return nil
}

func (v *videoUC) TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	if _, err := utils.GetUserFromCtx(ctx); err != nil {
		return nil, videos.ErrUnauthorized
	}

	video, err := v.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	updated, err := v.videoRepo.UpdateVideo(ctx, video)
	if err != nil {
		v.logger.Errorf("TogglePublish - UpdateVideo error: %v", err)
		return nil, errors.Wrap(videos.ErrPersistFailed, err.Error())
	}
	v.invalidateCache(ctx, videoID)

	return updated, nil
}

func (v *videoUC) GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	cacheKey := videoCachePrefix + videoID.String()

	cached, err := v.redisRepo.GetVideoCtx(ctx, cacheKey)
	if err != nil {
		v.logger.Warnf("GetByID - GetVideoCtx error: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	video, err := v.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err = v.redisRepo.SetVideoCtx(ctx, cacheKey, v.cfg.Redis.VideoCacheTTL, video); err != nil {
		v.logger.Warnf("GetByID - SetVideoCtx error: %v", err)
	}

	return video, nil
}

// Search tokenizes the query on whitespace and matches titles containing any
// token, case-insensitively. An empty query matches everything (owner filter,
// ordering and paging still apply).
func (v *videoUC) Search(ctx context.Context, query string, userID uuid.UUID, sortBy, sortDir string, pq *utils.Pagination) ([]*models.VideoAsset, error) {
	params := &models.SearchParams{
		Tokens:  strings.Fields(strings.ToLower(query)),
		UserID:  userID,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
	if pq != nil {
		params.Limit = pq.GetLimit()
		params.Offset = pq.GetOffset()
	}

	results, err := v.videoRepo.SearchVideos(ctx, params)
	if err != nil {
		v.logger.Errorf("Search - SearchVideos error: %v", err)
		return nil, errors.Wrap(videos.ErrPersistFailed, err.Error())
	}
	return results, nil
}

func (v *videoUC) AddView(ctx context.Context, videoID uuid.UUID) error {
	if err := v.videoRepo.IncrementViews(ctx, videoID); err != nil {
		if errors.Is(err, videos.ErrNotFound) {
			return err
		}
		v.logger.Errorf("AddView - IncrementViews error: %v", err)
		return errors.Wrap(videos.ErrPersistFailed, err.Error())
	}
	v.invalidateCache(ctx, videoID)
	return nil
}

// reclaim deletes a remote asset best-effort. A failed deletion is logged and
// queued for the reclaimer worker; it never alters the caller's outcome.
func (v *videoUC) reclaim(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := v.awsRepo.RemoveObject(ctx, ref); err != nil {
		v.logger.Errorf("reclaim %s: %v: %v", ref, videos.ErrReclaimFailed, err)
		task := &models.ReclaimTask{
			TaskID:   uuid.New().String(),
			Ref:      ref,
			QueuedAt: time.Now(),
		}
		if qErr := v.redisRepo.EnqueueReclaim(ctx, v.cfg.Redis.ReclaimQueue, task); qErr != nil {
			v.logger.Errorf("reclaim enqueue %s: %v", ref, qErr)
		}
	}
}

func (v *videoUC) removeStaged(path string) {
	if err := v.stagingRepo.Remove(path); err != nil {
		v.logger.Warnf("staging cleanup %s: %v", path, err)
	}
}

func (v *videoUC) invalidateCache(ctx context.Context, videoID uuid.UUID) {
	if err := v.redisRepo.DeleteVideoCtx(ctx, videoCachePrefix+videoID.String()); err != nil {
		v.logger.Warnf("cache invalidate %s: %v", videoID, err)
	}
}
