package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/pkg/store"
	"brd-aks-be/pkg/textutil"

	"github.com/google/uuid"
)

type IIngestionService interface {
	SubmitContent(ctx context.Context, req *dto.SubmitContentRequest) (*dto.SubmitContentResponse, error)
	SubmitData(ctx context.Context, sessionId string, req *dto.SubmitDataRequest) (*dto.SubmitDataResponse, error)
}

type ingestionService struct {
	publisherService IPublisherService
	sessionRepo      *memory.SessionRepository
}

func NewIngestionService(
	publisherService IPublisherService,
	sessionRepo *memory.SessionRepository,
) IIngestionService {
	return &ingestionService{
		publisherService: publisherService,
		sessionRepo:      sessionRepo,
	}
}

// SubmitContent strips boilerplate, chunks the text into paragraphs and hands
// the batch to the classification topic. It returns immediately with the
// session id; classification runs in the background.
func (s *ingestionService) SubmitContent(ctx context.Context, req *dto.SubmitContentRequest) (*dto.SubmitContentResponse, error) {
	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = store.SourceDocument
	}

	cleaned := textutil.StripBoilerplate(req.Text)
	paragraphs := textutil.SplitParagraphs(cleaned)

	chunks := make([]dto.RawChunkMessage, len(paragraphs))
	for i, p := range paragraphs {
		sourceRef := req.SourceRef
		if sourceRef == "" {
			sourceRef = fmt.Sprintf("%s#%d", sessionId, i)
		}
		chunks[i] = dto.RawChunkMessage{
			SourceRef:   sourceRef,
			Speaker:     req.Speaker,
			RawText:     p,
			CleanedText: p,
			Subject:     req.Subject,
		}
	}

	if err := s.publishBatch(ctx, sessionId, sourceType, chunks); err != nil {
		return nil, err
	}

	return &dto.SubmitContentResponse{
		SessionId:  sessionId,
		ChunkCount: len(chunks),
	}, nil
}

// SubmitData accepts pre-chunked units for an existing or new session.
func (s *ingestionService) SubmitData(ctx context.Context, sessionId string, req *dto.SubmitDataRequest) (*dto.SubmitDataResponse, error) {
	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = store.SourceDocument
	}

	chunks := make([]dto.RawChunkMessage, len(req.Chunks))
	for i, c := range req.Chunks {
		if c.CleanedText == "" {
			c.CleanedText = textutil.StripBoilerplate(c.RawText)
		}
		chunks[i] = c
	}

	if err := s.publishBatch(ctx, sessionId, sourceType, chunks); err != nil {
		return nil, err
	}

	return &dto.SubmitDataResponse{
		SessionId:  sessionId,
		ChunkCount: len(chunks),
	}, nil
}

func (s *ingestionService) publishBatch(ctx context.Context, sessionId, sourceType string, chunks []dto.RawChunkMessage) error {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		session = &store.AnalysisSession{
			ID:         sessionId,
			SourceType: sourceType,
			CreatedAt:  time.Now(),
		}
	}
	session.Status = store.StatusProcessing
	session.UpdatedAt = time.Now()
	s.sessionRepo.Save(session)

	payload := dto.ClassifyBatchMessage{
		SessionId:  sessionId,
		SourceType: sourceType,
		Chunks:     chunks,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.publisherService.Publish(ctx, msgJson)
}
