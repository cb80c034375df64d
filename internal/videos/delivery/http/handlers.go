package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
	"github.com/vidtube/vidtube-backend/pkg/logger"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

var (
	videoExtPattern = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm|m4v|mpeg|mpg|3gp|ogv|vob|ts|mxf)$`)
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif)$`)
)

type videoHandler struct {
	cfg     *config.Config
	videoUC videos.UseCase
	logger  logger.Logger
}

func NewVideoHandler(cfg *config.Config, videoUC videos.UseCase, log logger.Logger) videos.Handlers {
	return &videoHandler{
		cfg:     cfg,
		videoUC: videoUC,
		logger:  log,
	}
}

func (h *videoHandler) UploadVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoFile, err := c.FormFile("video")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "video file is required"})
		}
		thumbnailFile, err := c.FormFile("thumbnail")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "thumbnail file is required"})
		}

		videoPath, err := h.saveToStaging(videoFile, videoExtPattern)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		thumbnailPath, err := h.saveToStaging(thumbnailFile, imageExtPattern)
		if err != nil {
			h.discardStaged(videoPath)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		input := &models.UploadVideoInput{
			Title:         c.FormValue("title"),
			Description:   c.FormValue("description"),
			VideoPath:     videoPath,
			ThumbnailPath: thumbnailPath,
		}

		video, err := h.videoUC.Upload(c.Request().Context(), input)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, video)
	}
}

func (h *videoHandler) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}
		video, err := h.videoUC.GetByID(c.Request().Context(), videoID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) UpdateVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}

		input := &models.UpdateVideoInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if thumbnailFile, err := c.FormFile("thumbnail"); err == nil {
			thumbnailPath, err := h.saveToStaging(thumbnailFile, imageExtPattern)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			input.ThumbnailPath = thumbnailPath
		}

		video, err := h.videoUC.Update(c.Request().Context(), videoID, input)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) DeleteVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}
		if err = h.videoUC.Delete(c.Request().Context(), videoID); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Video deleted successfully"})
	}
}

func (h *videoHandler) TogglePublish() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}
		video, err := h.videoUC.TogglePublish(c.Request().Context(), videoID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoHandler) AddView() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}
		if err = h.videoUC.AddView(c.Request().Context(), videoID); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "View counted"})
	}
}

func (h *videoHandler) SearchVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := uuid.Nil
		if rawUserID := c.QueryParam("user_id"); rawUserID != "" {
			parsed, err := uuid.Parse(rawUserID)
			if err != nil {
				return respondError(c, videos.ErrInvalidInput)
			}
			userID = parsed
		}

		pq, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return respondError(c, videos.ErrInvalidInput)
		}

		results, err := h.videoUC.Search(
			c.Request().Context(),
			c.QueryParam("query"),
			userID,
			c.QueryParam("sort_by"),
			c.QueryParam("sort_dir"),
			pq,
		)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, results)
	}
}

// saveToStaging validates the upload's extension and writes it into the
// staging dir under a fresh name. The returned path feeds the pipeline.
func (h *videoHandler) saveToStaging(fileHeader *multipart.FileHeader, extPattern *regexp.Regexp) (string, error) {
	if !extPattern.MatchString(fileHeader.Filename) {
		return "", fmt.Errorf("invalid file format: %s", fileHeader.Filename)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(h.cfg.Staging.Dir, uuid.New().String()+ext)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return dstPath, nil
}

func (h *videoHandler) discardStaged(path string) {
	if err := os.Remove(path); err != nil {
		h.logger.Warnf("discard staged %s: %v", path, err)
	}
}

// respondError maps the usecase error taxonomy to HTTP statuses; this is the
// only place status codes touch video errors.
func respondError(c echo.Context, err error) error {
	var uploadErr *videos.UploadError
	switch {
	case errors.Is(err, videos.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	case errors.Is(err, videos.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Video not found"})
	case errors.Is(err, videos.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &uploadErr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": uploadErr.Error()})
	case errors.Is(err, videos.ErrDurationUnavailable):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
