package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section is one generated document section version. Versions are never
// overwritten; "latest" is the highest VersionNumber per (session, name).
type Section struct {
	Id             uuid.UUID
	SessionId      string
	SnapshotId     uuid.UUID
	SectionName    string
	VersionNumber  int
	Content        string
	SourceChunkIds []uuid.UUID
	GeneratedAt    time.Time
}
