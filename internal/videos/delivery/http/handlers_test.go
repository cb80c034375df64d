package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

type mockUseCase struct {
	uploadFn        func(ctx context.Context, input *models.UploadVideoInput) (*models.VideoAsset, error)
	updateFn        func(ctx context.Context, videoID uuid.UUID, input *models.UpdateVideoInput) (*models.VideoAsset, error)
	deleteFn        func(ctx context.Context, videoID uuid.UUID) error
	togglePublishFn func(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	getByIDFn       func(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error)
	searchFn        func(ctx context.Context, query string, userID uuid.UUID, sortBy, sortDir string, pq *utils.Pagination) ([]*models.VideoAsset, error)
	addViewFn       func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockUseCase) Upload(ctx context.Context, input *models.UploadVideoInput) (*models.VideoAsset, error) {
	return m.uploadFn(ctx, input)
}

func (m *mockUseCase) Update(ctx context.Context, videoID uuid.UUID, input *models.UpdateVideoInput) (*models.VideoAsset, error) {
	return m.updateFn(ctx, videoID, input)
}

func (m *mockUseCase) Delete(ctx context.Context, videoID uuid.UUID) error {
	return m.deleteFn(ctx, videoID)
}

func (m *mockUseCase) TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	return m.togglePublishFn(ctx, videoID)
}

func (m *mockUseCase) GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	return m.getByIDFn(ctx, videoID)
}

func (m *mockUseCase) Search(ctx context.Context, query string, userID uuid.UUID, sortBy, sortDir string, pq *utils.Pagination) ([]*models.VideoAsset, error) {
	return m.searchFn(ctx, query, userID, sortBy, sortDir, pq)
}

func (m *mockUseCase) AddView(ctx context.Context, videoID uuid.UUID) error {
	return m.addViewFn(ctx, videoID)
}

type nopLogger struct{}

func (l *nopLogger) InitLogger()                                 {}
func (l *nopLogger) Debug(args ...interface{})                   {}
func (l *nopLogger) Debugf(template string, args ...interface{}) {}
func (l *nopLogger) Info(args ...interface{})                    {}
func (l *nopLogger) Infof(template string, args ...interface{})  {}
func (l *nopLogger) Warn(args ...interface{})                    {}
func (l *nopLogger) Warnf(template string, args ...interface{})  {}
func (l *nopLogger) Error(args ...interface{})                   {}
func (l *nopLogger) Errorf(template string, args ...interface{}) {}
func (l *nopLogger) Fatal(args ...interface{})                   {}
func (l *nopLogger) Fatalf(template string, args ...interface{}) {}

func newTestHandler(uc videos.UseCase) videos.Handlers {
	cfg := &config.Config{Staging: config.StagingConfig{Dir: "/tmp"}}
	return NewVideoHandler(cfg, uc, &nopLogger{})
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, target, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestVideoHandlerGetVideoByID(t *testing.T) {
	videoID := uuid.New()

	t.Run("found", func(t *testing.T) {
		uc := &mockUseCase{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.VideoAsset, error) {
				return &models.VideoAsset{VideoID: id, Title: "my video"}, nil
			},
		}
		rec := doRequest(t, newTestHandler(uc).GetVideoByID(), http.MethodGet, "/", "video_id", videoID.String())

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var got models.VideoAsset
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.VideoID != videoID {
			t.Errorf("unexpected record: %+v", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := doRequest(t, newTestHandler(&mockUseCase{}).GetVideoByID(), http.MethodGet, "/", "video_id", "not-a-uuid")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown video", func(t *testing.T) {
		uc := &mockUseCase{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.VideoAsset, error) {
				return nil, videos.ErrNotFound
			},
		}
		rec := doRequest(t, newTestHandler(uc).GetVideoByID(), http.MethodGet, "/", "video_id", videoID.String())
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestVideoHandlerDeleteVideo(t *testing.T) {
	videoID := uuid.New()

	uc := &mockUseCase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			if id != videoID {
				t.Errorf("expected id %s, got %s", videoID, id)
			}
			return nil
		},
	}
	rec := doRequest(t, newTestHandler(uc).DeleteVideo(), http.MethodDelete, "/", "video_id", videoID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestVideoHandlerSearchVideos(t *testing.T) {
	userID := uuid.New()

	uc := &mockUseCase{
		searchFn: func(ctx context.Context, query string, uid uuid.UUID, sortBy, sortDir string, pq *utils.Pagination) ([]*models.VideoAsset, error) {
			if query != "cats" || uid != userID || sortBy != "views" || sortDir != "asc" {
				t.Errorf("unexpected search args: %q %s %q %q", query, uid, sortBy, sortDir)
			}
			if pq.GetLimit() != 5 || pq.GetOffset() != 5 {
				t.Errorf("unexpected paging: limit %d offset %d", pq.GetLimit(), pq.GetOffset())
			}
			return []*models.VideoAsset{{Title: "cats compilation"}}, nil
		},
	}
	target := "/?query=cats&user_id=" + userID.String() + "&sort_by=views&sort_dir=asc&page=2&size=5"
	rec := doRequest(t, newTestHandler(uc).SearchVideos(), http.MethodGet, target, "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []*models.VideoAsset
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected one result, got %d", len(got))
	}
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized", err: videos.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "not found", err: videos.ErrNotFound, want: http.StatusNotFound},
		{name: "invalid input", err: videos.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "upload failure", err: &videos.UploadError{Asset: videos.AssetVideo, Err: errors.New("x")}, want: http.StatusBadGateway},
		{name: "duration unavailable", err: videos.ErrDurationUnavailable, want: http.StatusBadGateway},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := respondError(c, tt.err); err != nil {
				t.Fatalf("respondError returned error: %v", err)
			}
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestVideoHandlerAddView(t *testing.T) {
	videoID := uuid.New()

	uc := &mockUseCase{
		addViewFn: func(ctx context.Context, id uuid.UUID) error {
			return videos.ErrNotFound
		},
	}
	rec := doRequest(t, newTestHandler(uc).AddView(), http.MethodPost, "/", "video_id", videoID.String())
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
