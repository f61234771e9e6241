package mapper

import (
	"encoding/json"
	"time"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/model"
	"brd-aks-be/pkg/classify"

	"github.com/google/uuid"
)

// chunkPayload is the JSON shape stored in the Data projection. It mirrors
// the entity so read paths can hydrate without touching every column.
type chunkPayload struct {
	ChunkId          uuid.UUID `json:"chunk_id"`
	SessionId        string    `json:"session_id"`
	SourceRef        string    `json:"source_ref"`
	Speaker          string    `json:"speaker"`
	RawText          string    `json:"raw_text"`
	CleanedText      string    `json:"cleaned_text"`
	Subject          string    `json:"subject"`
	SourceType       string    `json:"source_type"`
	Label            string    `json:"label"`
	Confidence       float64   `json:"confidence"`
	Reasoning        string    `json:"reasoning"`
	Suppressed       bool      `json:"suppressed"`
	ManuallyRestored bool      `json:"manually_restored"`
	FlaggedForReview bool      `json:"flagged_for_review"`
	CreatedAt        time.Time `json:"created_at"`
}

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.ClassifiedChunk) *entity.ClassifiedChunk {
	if c == nil {
		return nil
	}

	// Text fields live only in the payload; flags and filter fields come
	// from the canonical columns.
	var payload chunkPayload
	_ = json.Unmarshal(c.Data, &payload)

	return &entity.ClassifiedChunk{
		Id:               c.ChunkId,
		SessionId:        c.SessionId,
		SourceRef:        c.SourceRef,
		Speaker:          payload.Speaker,
		RawText:          payload.RawText,
		CleanedText:      payload.CleanedText,
		Subject:          payload.Subject,
		SourceType:       payload.SourceType,
		Label:            classify.Label(c.Label),
		Confidence:       c.Confidence,
		Reasoning:        payload.Reasoning,
		Suppressed:       c.Suppressed,
		ManuallyRestored: c.ManuallyRestored,
		FlaggedForReview: c.FlaggedForReview,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *ChunkMapper) ToModel(c *entity.ClassifiedChunk) *model.ClassifiedChunk {
	if c == nil {
		return nil
	}

	// Regenerate the projection from the entity on every write so the
	// payload can never disagree with the columns.
	data, _ := json.Marshal(chunkPayload{
		ChunkId:          c.Id,
		SessionId:        c.SessionId,
		SourceRef:        c.SourceRef,
		Speaker:          c.Speaker,
		RawText:          c.RawText,
		CleanedText:      c.CleanedText,
		Subject:          c.Subject,
		SourceType:       c.SourceType,
		Label:            c.Label.String(),
		Confidence:       c.Confidence,
		Reasoning:        c.Reasoning,
		Suppressed:       c.Suppressed,
		ManuallyRestored: c.ManuallyRestored,
		FlaggedForReview: c.FlaggedForReview,
		CreatedAt:        c.CreatedAt,
	})

	return &model.ClassifiedChunk{
		ChunkId:          c.Id,
		SessionId:        c.SessionId,
		SourceRef:        c.SourceRef,
		Label:            c.Label.String(),
		Confidence:       c.Confidence,
		Suppressed:       c.Suppressed,
		ManuallyRestored: c.ManuallyRestored,
		FlaggedForReview: c.FlaggedForReview,
		CreatedAt:        c.CreatedAt,
		Data:             data,
	}
}

func (m *ChunkMapper) ToEntities(chunks []*model.ClassifiedChunk) []*entity.ClassifiedChunk {
	entities := make([]*entity.ClassifiedChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ChunkMapper) ToModels(chunks []*entity.ClassifiedChunk) []*model.ClassifiedChunk {
	models := make([]*model.ClassifiedChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
