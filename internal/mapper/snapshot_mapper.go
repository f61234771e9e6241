package mapper

import (
	"encoding/json"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/model"

	"github.com/google/uuid"
)

type SnapshotMapper struct{}

func NewSnapshotMapper() *SnapshotMapper {
	return &SnapshotMapper{}
}

func (m *SnapshotMapper) ToEntity(s *model.Snapshot) *entity.Snapshot {
	if s == nil {
		return nil
	}

	var ids []uuid.UUID
	_ = json.Unmarshal(s.ChunkIds, &ids)

	return &entity.Snapshot{
		Id:        s.SnapshotId,
		SessionId: s.SessionId,
		ChunkIds:  ids,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SnapshotMapper) ToModel(s *entity.Snapshot) *model.Snapshot {
	if s == nil {
		return nil
	}

	ids, _ := json.Marshal(s.ChunkIds)

	return &model.Snapshot{
		SnapshotId: s.Id,
		SessionId:  s.SessionId,
		ChunkIds:   ids,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SnapshotMapper) ToEntities(snapshots []*model.Snapshot) []*entity.Snapshot {
	entities := make([]*entity.Snapshot, len(snapshots))
	for i, s := range snapshots {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
