package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChunkID filters on the chunk primary key
type ByChunkID struct {
	ID uuid.UUID
}

func (s ByChunkID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chunk_id = ?", s.ID)
}

// ByChunkIDs filters on a list of chunk ids (snapshot resolution)
type ByChunkIDs struct {
	IDs []uuid.UUID
}

func (s ByChunkIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chunk_id IN ?", s.IDs)
}

// BySessionID scopes a query to one analysis session
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByLabel filters on the taxonomy label column
type ByLabel struct {
	Label string
}

func (s ByLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("label = ?", s.Label)
}

// ActiveSignals selects chunks in the active view: not suppressed, or
// explicitly brought back by a human.
type ActiveSignals struct{}

func (s ActiveSignals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("suppressed = ? OR manually_restored = ?", false, true)
}

// NoiseOnly selects suppressed chunks that no human has restored.
type NoiseOnly struct{}

func (s NoiseOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("suppressed = ? AND manually_restored = ?", true, false)
}

// FlaggedForReview selects chunks the confidence gate marked uncertain.
type FlaggedForReview struct{}

func (s FlaggedForReview) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("flagged_for_review = ?", true)
}
