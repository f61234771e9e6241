package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassifiedChunk carries the indexed filter columns plus a Data projection
// holding the full payload. The columns are canonical; Data is derived and
// regenerated by the mapper on every write so the two never diverge.
type ClassifiedChunk struct {
	ChunkId          uuid.UUID      `gorm:"type:uuid;primaryKey;column:chunk_id"`
	SessionId        string         `gorm:"type:varchar(255);index"`
	SourceRef        string         `gorm:"type:varchar(255);index"`
	Label            string         `gorm:"type:varchar(50);index"`
	Confidence       float64        `gorm:"not null;default:0"`
	Suppressed       bool           `gorm:"index"`
	ManuallyRestored bool           `gorm:"not null;default:false"`
	FlaggedForReview bool           `gorm:"index"`
	CreatedAt        time.Time      `gorm:"index"`
	Data             datatypes.JSON `gorm:"type:jsonb"`
}

func (ClassifiedChunk) TableName() string {
	return "classified_chunks"
}
