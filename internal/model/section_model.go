package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Section struct {
	SectionId      uuid.UUID      `gorm:"type:uuid;primaryKey;column:section_id"`
	SessionId      string         `gorm:"type:varchar(255);index:idx_sections_session_name"`
	SnapshotId     uuid.UUID      `gorm:"type:uuid"`
	SectionName    string         `gorm:"type:varchar(255);index:idx_sections_session_name"`
	VersionNumber  int            `gorm:"not null"`
	Content        string         `gorm:"type:text"`
	SourceChunkIds datatypes.JSON `gorm:"type:jsonb"`
	GeneratedAt    time.Time
}

func (Section) TableName() string {
	return "sections"
}
