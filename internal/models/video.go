package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VideoAsset is the catalog record for one published or draft video. Both
// remote references are set before the record ever reaches the catalog; a
// local staging path must never be persisted here.
type VideoAsset struct {
	VideoID      uuid.UUID `json:"video_id" db:"video_id" redis:"video_id" validate:"omitempty"`
	UserID       uuid.UUID `json:"user_id" db:"user_id" redis:"user_id" validate:"omitempty"`
	Title        string    `json:"title" db:"title" redis:"title" validate:"required,lte=255"`
	Description  string    `json:"description" db:"description" redis:"description" validate:"omitempty,lte=2000"`
	VideoURL     string    `json:"video_url" db:"video_url" redis:"video_url" validate:"omitempty"`
	ThumbnailURL string    `json:"thumbnail_url" db:"thumbnail_url" redis:"thumbnail_url" validate:"omitempty"`
	Duration     float64   `json:"duration" db:"duration" redis:"duration" validate:"omitempty,gte=0"`
	Views        int64     `json:"views" db:"views" redis:"views" validate:"omitempty,gte=0"`
	IsPublished  bool      `json:"is_published" db:"is_published" redis:"is_published"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" redis:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" redis:"updated_at"`
}

// Normalize lowercases the free-text metadata; applied on every write.
func (v *VideoAsset) Normalize() {
	v.Title = strings.ToLower(strings.TrimSpace(v.Title))
	v.Description = strings.ToLower(strings.TrimSpace(v.Description))
}

// PrepareCreate normalizes user-supplied metadata and resets the
// system-owned fields before the catalog insert.
func (v *VideoAsset) PrepareCreate() {
	v.Normalize()
	v.Views = 0
	v.IsPublished = false
}

// UploadVideoInput carries the staged file paths and metadata for one upload.
// Both paths point at files the delivery layer already wrote to the staging dir.
type UploadVideoInput struct {
	Title         string `json:"title" validate:"required,lte=255"`
	Description   string `json:"description" validate:"omitempty,lte=2000"`
	VideoPath     string `json:"-" validate:"required"`
	ThumbnailPath string `json:"-" validate:"required"`
}

// UpdateVideoInput mirrors the partial-update contract: empty fields keep the
// current value, a non-empty ThumbnailPath replaces the remote thumbnail.
type UpdateVideoInput struct {
	Title         string `json:"title" validate:"omitempty,lte=255"`
	Description   string `json:"description" validate:"omitempty,lte=2000"`
	ThumbnailPath string `json:"-" validate:"omitempty"`
}

// SearchParams filters and orders a catalog search. Tokens is the
// whitespace-split query; an empty slice matches every title. Limit 0 means
// no paging.
type SearchParams struct {
	Tokens  []string
	UserID  uuid.UUID
	SortBy  string
	SortDir string
	Limit   int
	Offset  int
}

// ReclaimTask is a queued retry for a remote asset whose best-effort deletion
// failed inline. Consumed by the reclaimer worker.
type ReclaimTask struct {
	TaskID   string    `json:"task_id"`
	Ref      string    `json:"ref"`
	Attempts int       `json:"attempts"`
	QueuedAt time.Time `json:"queued_at"`
}
