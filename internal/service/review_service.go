package service

import (
	"context"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/repository/specification"
	"brd-aks-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	ChunkStatusSignal = "signal"
	ChunkStatusNoise  = "noise"
)

type IReviewService interface {
	ListChunks(ctx context.Context, sessionId, status, label string) (*dto.ListChunksResponse, error)
	Restore(ctx context.Context, chunkId uuid.UUID) (*dto.RestoreChunkResponse, error)
	CopySession(ctx context.Context, sourceSessionId, targetSessionId string) (*dto.CopySessionResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory) IReviewService {
	return &reviewService{
		uowFactory: uowFactory,
	}
}

// ListChunks returns a session's chunks in ingestion order. status narrows
// to the active view ("signal") or the suppressed leftovers ("noise");
// empty status returns everything.
func (s *reviewService) ListChunks(ctx context.Context, sessionId, status, label string) (*dto.ListChunksResponse, error) {
	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionId},
	}
	switch status {
	case ChunkStatusSignal:
		specs = append(specs, specification.ActiveSignals{})
	case ChunkStatusNoise:
		specs = append(specs, specification.NoiseOnly{})
	}
	if label != "" {
		specs = append(specs, specification.ByLabel{Label: label})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at"})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.ChunkRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &dto.ListChunksResponse{
		SessionId: sessionId,
		Total:     len(chunks),
		Chunks:    toChunkResponses(chunks),
	}, nil
}

// Restore brings a suppressed chunk back into the active view. The operation
// is monotonic: restoring an already-restored chunk is a no-op.
func (s *reviewService) Restore(ctx context.Context, chunkId uuid.UUID) (*dto.RestoreChunkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	chunk, err := uow.ChunkRepository().FindOne(ctx, specification.ByChunkID{ID: chunkId})
	if err != nil {
		return nil, err
	}
	if chunk == nil {
		return nil, ErrChunkNotFound
	}

	if err := uow.ChunkRepository().Restore(ctx, chunkId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.RestoreChunkResponse{ChunkId: chunkId}, nil
}

// CopySession replaces the target session's chunks with copies of the
// source's. Rerunning the copy yields the same target state, so it is safe
// to retry.
func (s *reviewService) CopySession(ctx context.Context, sourceSessionId, targetSessionId string) (*dto.CopySessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	source, err := uow.ChunkRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sourceSessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.ChunkRepository().DeleteBySessionId(ctx, targetSessionId); err != nil {
		return nil, err
	}

	copies := make([]*entity.ClassifiedChunk, len(source))
	for i, c := range source {
		clone := *c
		clone.Id = uuid.New()
		clone.SessionId = targetSessionId
		copies[i] = &clone
	}

	if err := uow.ChunkRepository().StoreBatch(ctx, copies); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CopySessionResponse{
		SourceSessionId: sourceSessionId,
		TargetSessionId: targetSessionId,
		CopiedCount:     len(copies),
	}, nil
}

func toChunkResponse(c *entity.ClassifiedChunk) dto.ChunkResponse {
	return dto.ChunkResponse{
		ChunkId:          c.Id,
		SessionId:        c.SessionId,
		SourceRef:        c.SourceRef,
		Speaker:          c.Speaker,
		RawText:          c.RawText,
		CleanedText:      c.CleanedText,
		Subject:          c.Subject,
		Label:            c.Label.String(),
		Confidence:       c.Confidence,
		Reasoning:        c.Reasoning,
		Suppressed:       c.Suppressed,
		ManuallyRestored: c.ManuallyRestored,
		FlaggedForReview: c.FlaggedForReview,
		CreatedAt:        c.CreatedAt,
	}
}

func toChunkResponses(chunks []*entity.ClassifiedChunk) []dto.ChunkResponse {
	responses := make([]dto.ChunkResponse, len(chunks))
	for i, c := range chunks {
		responses[i] = toChunkResponse(c)
	}
	return responses
}
