package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChunkResponse struct {
	ChunkId          uuid.UUID `json:"chunk_id"`
	SessionId        string    `json:"session_id"`
	SourceRef        string    `json:"source_ref"`
	Speaker          string    `json:"speaker"`
	RawText          string    `json:"raw_text"`
	CleanedText      string    `json:"cleaned_text"`
	Subject          string    `json:"subject"`
	Label            string    `json:"label"`
	Confidence       float64   `json:"confidence"`
	Reasoning        string    `json:"reasoning"`
	Suppressed       bool      `json:"suppressed"`
	ManuallyRestored bool      `json:"manually_restored"`
	FlaggedForReview bool      `json:"flagged_for_review"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListChunksResponse struct {
	SessionId string          `json:"session_id"`
	Total     int             `json:"total"`
	Chunks    []ChunkResponse `json:"chunks"`
}

type RestoreChunkResponse struct {
	ChunkId uuid.UUID `json:"chunk_id"`
}

type CopySessionResponse struct {
	SourceSessionId string `json:"source_session_id"`
	TargetSessionId string `json:"target_session_id"`
	CopiedCount     int    `json:"copied_count"`
}
