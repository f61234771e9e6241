package entity

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot freezes the ordered set of active signal ids for one session at
// one instant. It never changes after creation and anchors reproducible
// downstream generation.
type Snapshot struct {
	Id        uuid.UUID
	SessionId string
	ChunkIds  []uuid.UUID
	CreatedAt time.Time
}
