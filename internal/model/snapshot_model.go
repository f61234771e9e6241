package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Snapshot struct {
	SnapshotId uuid.UUID      `gorm:"type:uuid;primaryKey;column:snapshot_id"`
	SessionId  string         `gorm:"type:varchar(255);index"`
	ChunkIds   datatypes.JSON `gorm:"type:jsonb"` // ordered id list, immutable
	CreatedAt  time.Time
}

func (Snapshot) TableName() string {
	return "snapshots"
}
