package entity

import (
	"time"

	"brd-aks-be/pkg/classify"

	"github.com/google/uuid"
)

// ClassifiedChunk is the atomic unit of the Attributed Knowledge Store: one
// text fragment with provenance and its classification outcome. Provenance
// fields are immutable after creation; only the suppression flags may change
// (via Restore).
type ClassifiedChunk struct {
	Id               uuid.UUID
	SessionId        string
	SourceRef        string
	Speaker          string
	RawText          string
	CleanedText      string
	Subject          string
	SourceType       string
	Label            classify.Label
	Confidence       float64
	Reasoning        string
	Suppressed       bool
	ManuallyRestored bool
	FlaggedForReview bool
	CreatedAt        time.Time
}

// Active reports whether the chunk belongs to the active-signal view.
// Suppressed==false alone is not sufficient: a manual restore also
// reactivates a chunk.
func (c *ClassifiedChunk) Active() bool {
	return !c.Suppressed || c.ManuallyRestored
}
