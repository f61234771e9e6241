package unitofwork

import (
	"context"

	"brd-aks-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChunkRepository() contract.ChunkRepository
	SnapshotRepository() contract.SnapshotRepository
	SectionRepository() contract.SectionRepository
}
