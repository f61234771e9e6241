package contract

import (
	"context"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.Snapshot) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Snapshot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Snapshot, error)
}
