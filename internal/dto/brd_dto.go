package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSnapshotResponse struct {
	SnapshotId uuid.UUID `json:"snapshot_id"`
	SessionId  string    `json:"session_id"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type SnapshotSignalsResponse struct {
	SnapshotId uuid.UUID       `json:"snapshot_id"`
	Chunks     []ChunkResponse `json:"chunks"`
}

type StoreSectionRequest struct {
	SnapshotId     uuid.UUID   `json:"snapshot_id" validate:"required"`
	SectionName    string      `json:"section_name" validate:"required"`
	Content        string      `json:"content" validate:"required"`
	SourceChunkIds []uuid.UUID `json:"source_chunk_ids"`
}

type SectionResponse struct {
	SectionId      uuid.UUID   `json:"section_id"`
	SessionId      string      `json:"session_id"`
	SnapshotId     uuid.UUID   `json:"snapshot_id"`
	SectionName    string      `json:"section_name"`
	VersionNumber  int         `json:"version_number"`
	Content        string      `json:"content"`
	SourceChunkIds []uuid.UUID `json:"source_chunk_ids"`
	GeneratedAt    time.Time   `json:"generated_at"`
}

type LatestSectionsResponse struct {
	SessionId string            `json:"session_id"`
	Sections  []SectionResponse `json:"sections"`
}
