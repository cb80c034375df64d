package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
)

// Columns callers may sort search results by. Anything else falls back to
// created_at; the sort field is interpolated into SQL and must never come
// from the request unchecked.
var sortColumns = map[string]string{
	"title":      "title",
	"views":      "views",
	"duration":   "duration",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type videoRepo struct {
	db *sqlx.DB
}

func NewVideoRepo(db *sqlx.DB) videos.Repository {
	return &videoRepo{
		db: db,
	}
}

func (v *videoRepo) CreateVideo(ctx context.Context, videoAsset *models.VideoAsset) (*models.VideoAsset, error) {
	created := &models.VideoAsset{}
	if err := v.db.QueryRowxContext(
		ctx,
		createVideoQuery,
		videoAsset.UserID,
		videoAsset.Title,
		videoAsset.Description,
		videoAsset.VideoURL,
		videoAsset.ThumbnailURL,
		videoAsset.Duration,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "videoRepo.CreateVideo")
	}
	return created, nil
}

func (v *videoRepo) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*models.VideoAsset, error) {
	video := &models.VideoAsset{}
	if err := v.db.QueryRowxContext(
		ctx,
		getVideoByIDQuery,
		videoID,
	).StructScan(video); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrNotFound
		}
		return nil, errors.Wrap(err, "videoRepo.GetVideoByID")
	}
	return video, nil
}

func (v *videoRepo) UpdateVideo(ctx context.Context, video *models.VideoAsset) (*models.VideoAsset, error) {
	updated := &models.VideoAsset{}
	if err := v.db.QueryRowxContext(
		ctx,
		updateVideoQuery,
		video.Title,
		video.Description,
		video.ThumbnailURL,
		video.IsPublished,
		video.VideoID,
	).StructScan(updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrNotFound
		}
		return nil, errors.Wrap(err, "videoRepo.UpdateVideo")
	}
	return updated, nil
}

func (v *videoRepo) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	res, err := v.db.ExecContext(ctx, deleteVideoQuery, videoID)
	if err != nil {
		return errors.Wrap(err, "videoRepo.DeleteVideo")
	}
	count, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "videoRepo.DeleteVideo.RowsAffected")
	}
	if count == 0 {
		return videos.ErrNotFound
	}
	return nil
}

// SearchVideos matches titles containing any of the tokens (substring,
// case-insensitive). No tokens means no title predicate: the query matches
// every record the other filters allow.
func (v *videoRepo) SearchVideos(ctx context.Context, params *models.SearchParams) ([]*models.VideoAsset, error) {
	var (
		clauses []string
		args    []interface{}
	)

	if len(params.Tokens) > 0 {
		conds := make([]string, 0, len(params.Tokens))
		for _, token := range params.Tokens {
			args = append(args, token)
			conds = append(conds, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
		}
		clauses = append(clauses, "("+strings.Join(conds, " OR ")+")")
	}
	if params.UserID != uuid.Nil {
		args = append(args, params.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := searchVideosBaseQuery
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY " + sortColumn(params.SortBy) + " " + sortDirection(params.SortDir)
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := v.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "videoRepo.SearchVideos")
	}
	defer rows.Close()

	results := make([]*models.VideoAsset, 0)
	for rows.Next() {
		var video models.VideoAsset
		if err = rows.StructScan(&video); err != nil {
			return nil, errors.Wrap(err, "videoRepo.SearchVideos.StructScan")
		}
		results = append(results, &video)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "videoRepo.SearchVideos.rows")
	}
	return results, nil
}

func (v *videoRepo) IncrementViews(ctx context.Context, videoID uuid.UUID) error {
	res, err := v.db.ExecContext(ctx, incrementViewsQuery, videoID)
	if err != nil {
		return errors.Wrap(err, "videoRepo.IncrementViews")
	}
	count, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "videoRepo.IncrementViews.RowsAffected")
	}
	if count == 0 {
		return videos.ErrNotFound
	}
	return nil
}

func sortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return "created_at"
}

func sortDirection(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "ASC"
	}
	return "DESC"
}
