package mapper

import (
	"encoding/json"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/model"

	"github.com/google/uuid"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	var ids []uuid.UUID
	_ = json.Unmarshal(s.SourceChunkIds, &ids)

	return &entity.Section{
		Id:             s.SectionId,
		SessionId:      s.SessionId,
		SnapshotId:     s.SnapshotId,
		SectionName:    s.SectionName,
		VersionNumber:  s.VersionNumber,
		Content:        s.Content,
		SourceChunkIds: ids,
		GeneratedAt:    s.GeneratedAt,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}

	ids, _ := json.Marshal(s.SourceChunkIds)

	return &model.Section{
		SectionId:      s.Id,
		SessionId:      s.SessionId,
		SnapshotId:     s.SnapshotId,
		SectionName:    s.SectionName,
		VersionNumber:  s.VersionNumber,
		Content:        s.Content,
		SourceChunkIds: ids,
		GeneratedAt:    s.GeneratedAt,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
