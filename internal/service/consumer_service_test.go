package service

import (
	"context"
	"testing"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/pkg/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsumer(t *testing.T) (IConsumerService, IReviewService) {
	t.Helper()
	factory := newTestFactory(t)
	consumer := NewConsumerService(nil, "classify", factory, stubClassifier{}, memory.NewSessionRepository(), stubLogger{})
	return consumer, NewReviewService(factory)
}

func TestProcessBatchStoresOneEntryPerChunk(t *testing.T) {
	consumer, review := newTestConsumer(t)

	stored, err := consumer.ProcessBatch(context.Background(), &dto.ClassifyBatchMessage{
		SessionId:  "s1",
		SourceType: "transcript",
		Chunks: []dto.RawChunkMessage{
			{SourceRef: "m#0", RawText: "The system must support single sign-on for enterprise", CleanedText: "The system must support single sign-on for enterprise"},
			{SourceRef: "m#1", RawText: "ok", CleanedText: "ok"},
			{SourceRef: "m#2", RawText: "We should define the reporting requirements for finance", CleanedText: "We should define the reporting requirements for finance"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	all, err := review.ListChunks(context.Background(), "s1", "", "")
	require.NoError(t, err)
	require.Len(t, all.Chunks, 3)

	// Input order survives the created_at ordering.
	assert.Equal(t, "m#0", all.Chunks[0].SourceRef)
	assert.Equal(t, "m#1", all.Chunks[1].SourceRef)
	assert.Equal(t, "m#2", all.Chunks[2].SourceRef)
}

func TestProcessBatchSkipsEmptyChunks(t *testing.T) {
	consumer, review := newTestConsumer(t)

	stored, err := consumer.ProcessBatch(context.Background(), &dto.ClassifyBatchMessage{
		SessionId: "s1",
		Chunks: []dto.RawChunkMessage{
			{SourceRef: "m#0", RawText: "   ", CleanedText: ""},
			{SourceRef: "m#1", RawText: "The system must support single sign-on for enterprise", CleanedText: "The system must support single sign-on for enterprise"},
			{SourceRef: "m#2", CleanedText: "   \t "},
		},
	})
	require.NoError(t, err, "unusable chunks must not fail the batch")
	assert.Equal(t, 1, stored)

	all, err := review.ListChunks(context.Background(), "s1", "", "")
	require.NoError(t, err)
	require.Len(t, all.Chunks, 1, "empty chunks are skipped, not stored")
	assert.Equal(t, "m#1", all.Chunks[0].SourceRef)
}

func TestProcessBatchDerivesSuppression(t *testing.T) {
	consumer, review := newTestConsumer(t)

	_, err := consumer.ProcessBatch(context.Background(), &dto.ClassifyBatchMessage{
		SessionId: "s1",
		Chunks: []dto.RawChunkMessage{
			{SourceRef: "m#0", RawText: "ok", CleanedText: "ok"},
			{SourceRef: "m#1", RawText: "The system must log every access attempt for audits", CleanedText: "The system must log every access attempt for audits"},
		},
	})
	require.NoError(t, err)

	noise, err := review.ListChunks(context.Background(), "s1", ChunkStatusNoise, "")
	require.NoError(t, err)
	require.Len(t, noise.Chunks, 1)
	assert.Equal(t, "m#0", noise.Chunks[0].SourceRef)
	assert.Equal(t, classify.LabelNoise.String(), noise.Chunks[0].Label)
	assert.True(t, noise.Chunks[0].Suppressed)

	signals, err := review.ListChunks(context.Background(), "s1", ChunkStatusSignal, "")
	require.NoError(t, err)
	require.Len(t, signals.Chunks, 1)
	assert.Equal(t, classify.LabelRequirement.String(), signals.Chunks[0].Label)
	assert.False(t, signals.Chunks[0].Suppressed)
}
