package contract

import (
	"context"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChunkRepository interface {
	// StoreBatch upserts keyed by chunk id; conflicts are ignored so
	// redelivery of the same batch is a no-op.
	StoreBatch(ctx context.Context, chunks []*entity.ClassifiedChunk) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassifiedChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassifiedChunk, error)
	// Restore clears suppression and marks the chunk manually restored,
	// keeping the data projection in sync within the same statement.
	Restore(ctx context.Context, chunkId uuid.UUID) error
	DeleteBySessionId(ctx context.Context, sessionId string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
