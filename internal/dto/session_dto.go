package dto

import "time"

type CreateSessionRequest struct {
	SourceType string `json:"source_type"`
}

type SessionResponse struct {
	SessionId  string    `json:"session_id"`
	SourceType string    `json:"source_type"`
	Status     string    `json:"status"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
