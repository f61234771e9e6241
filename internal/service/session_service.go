package service

import (
	"context"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/internal/repository/specification"
	"brd-aks-be/internal/repository/unitofwork"
	"brd-aks-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
}

type sessionService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
) ISessionService {
	return &sessionService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
	}
}

func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = store.SourceDocument
	}

	now := time.Now()
	session := &store.AnalysisSession{
		ID:         uuid.NewString(),
		SourceType: sourceType,
		Status:     store.StatusProcessing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.sessionRepo.Save(session)

	return toSessionResponse(session), nil
}

func (s *sessionService) Show(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	if session, found := s.sessionRepo.Get(sessionId); found {
		return toSessionResponse(session), nil
	}

	// The registry is in-memory, so a restart loses it. Fall back to the
	// knowledge store: a session with persisted chunks is a completed one.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ChunkRepository().Count(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrSessionNotFound
	}

	return &dto.SessionResponse{
		SessionId:  sessionId,
		Status:     store.StatusCompleted,
		ChunkCount: int(count),
	}, nil
}

func toSessionResponse(session *store.AnalysisSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId:  session.ID,
		SourceType: session.SourceType,
		Status:     session.Status,
		ChunkCount: session.ChunkCount,
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}
