package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/pkg/logger"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/internal/repository/unitofwork"
	"brd-aks-be/pkg/classify"
	"brd-aks-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ChunkClassifier is the slice of the classification pipeline the consumer
// depends on.
type ChunkClassifier interface {
	ClassifyBatch(ctx context.Context, chunks []classify.RawChunk) []classify.Result
}

type IConsumerService interface {
	Consume(ctx context.Context) error
	ProcessBatch(ctx context.Context, payload *dto.ClassifyBatchMessage) (int, error)
}

type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	classifier  ChunkClassifier
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	classifier ChunkClassifier,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		uowFactory:  uowFactory,
		classifier:  classifier,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ClassifyBatchMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payload will never succeed, drop it
		return
	}

	cs.log.Info("consumer", "processing classification batch", map[string]interface{}{
		"session_id": payload.SessionId,
		"chunks":     len(payload.Chunks),
	})

	stored, err := cs.ProcessBatch(ctx, &payload)
	if err != nil {
		cs.log.Error("consumer", "batch processing failed", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		cs.markSession(payload.SessionId, store.StatusFailed, 0)
		msg.Nack()
		return
	}

	cs.markSession(payload.SessionId, store.StatusCompleted, stored)
	cs.log.Info("consumer", "batch stored", map[string]interface{}{
		"session_id": payload.SessionId,
		"stored":     stored,
	})
	msg.Ack()
}

// ProcessBatch classifies every usable chunk of the payload and persists
// the results in one transaction. Chunks whose cleaned text is empty are
// skipped, never classified or stored, and never fail the batch. Chunks are
// stored in input order; created_at is staggered by a microsecond per chunk
// so the order survives sorting.
func (cs *consumerService) ProcessBatch(ctx context.Context, payload *dto.ClassifyBatchMessage) (int, error) {
	raw := make([]classify.RawChunk, 0, len(payload.Chunks))
	for _, c := range payload.Chunks {
		if strings.TrimSpace(c.CleanedText) == "" {
			cs.log.Warn("consumer", "skipping empty chunk", map[string]interface{}{
				"session_id": payload.SessionId,
				"source_ref": c.SourceRef,
			})
			continue
		}
		raw = append(raw, classify.RawChunk{
			SourceRef:   c.SourceRef,
			Speaker:     c.Speaker,
			RawText:     c.RawText,
			CleanedText: c.CleanedText,
			Subject:     c.Subject,
		})
	}

	results := cs.classifier.ClassifyBatch(ctx, raw)

	now := time.Now()
	entities := make([]*entity.ClassifiedChunk, len(raw))
	for i, c := range raw {
		res := results[i]
		entities[i] = &entity.ClassifiedChunk{
			Id:               uuid.New(),
			SessionId:        payload.SessionId,
			SourceRef:        c.SourceRef,
			Speaker:          c.Speaker,
			RawText:          c.RawText,
			CleanedText:      c.CleanedText,
			Subject:          c.Subject,
			SourceType:       payload.SourceType,
			Label:            res.Label,
			Confidence:       res.Confidence,
			Reasoning:        res.Reasoning,
			Suppressed:       res.Label == classify.LabelNoise,
			ManuallyRestored: false,
			FlaggedForReview: res.FlaggedForReview,
			CreatedAt:        now.Add(time.Duration(i) * time.Microsecond),
		}
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.ChunkRepository().StoreBatch(ctx, entities); err != nil {
		return 0, err
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	return len(entities), nil
}

func (cs *consumerService) markSession(sessionId, status string, stored int) {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return
	}
	session.Status = status
	session.ChunkCount += stored
	session.UpdatedAt = time.Now()
	cs.sessionRepo.Save(session)
}
