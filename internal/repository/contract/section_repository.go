package contract

import (
	"context"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/repository/specification"
)

type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	// MaxVersion returns 0 when no version of the section exists yet.
	MaxVersion(ctx context.Context, sessionId, sectionName string) (int, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error)
}
