package store

import "time"

// AnalysisSession tracks one ingestion run in memory. Sessions are
// lightweight coordination state; the chunks themselves live in the
// knowledge store.
type AnalysisSession struct {
	ID         string    `json:"id"`
	SourceType string    `json:"source_type"` // "transcript" | "email" | "chat" | "document"
	Status     string    `json:"status"`      // "PROCESSING" | "COMPLETED" | "FAILED"
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"

	SourceTranscript = "transcript"
	SourceEmail      = "email"
	SourceChat       = "chat"
	SourceDocument   = "document"
)
