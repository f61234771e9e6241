package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/mapper"
	"brd-aks-be/internal/model"
	"brd-aks-be/internal/repository/contract"
	"brd-aks-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewChunkRepository(db *gorm.DB) contract.ChunkRepository {
	return &ChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *ChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChunkRepositoryImpl) StoreBatch(ctx context.Context, chunks []*entity.ClassifiedChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := r.mapper.ToModels(chunks)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chunk_id"}},
			DoNothing: true,
		}).
		CreateInBatches(models, 100).Error
}

func (r *ChunkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassifiedChunk, error) {
	var m model.ClassifiedChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassifiedChunk, error) {
	var models []*model.ClassifiedChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChunkRepositoryImpl) Restore(ctx context.Context, chunkId uuid.UUID) error {
	var m model.ClassifiedChunk
	if err := r.db.WithContext(ctx).Where("chunk_id = ?", chunkId).First(&m).Error; err != nil {
		return err
	}

	// Flip the flags on the entity and regenerate the data projection so
	// the payload is updated in the same statement as the columns.
	e := r.mapper.ToEntity(&m)
	e.Suppressed = false
	e.ManuallyRestored = true
	updated := r.mapper.ToModel(e)

	return r.db.WithContext(ctx).
		Model(&model.ClassifiedChunk{}).
		Where("chunk_id = ?", chunkId).
		Updates(map[string]interface{}{
			"suppressed":        false,
			"manually_restored": true,
			"data":              json.RawMessage(updated.Data),
		}).Error
}

func (r *ChunkRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ClassifiedChunk{}).Error
}

func (r *ChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ClassifiedChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
