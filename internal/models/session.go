package models

import "github.com/google/uuid"

// Session is the redis-backed login session resolved by the auth middleware.
type Session struct {
	SessionID string    `json:"session_id" redis:"session_id"`
	UserID    uuid.UUID `json:"user_id" redis:"user_id"`
}
