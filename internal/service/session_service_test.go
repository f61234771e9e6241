package service

import (
	"context"
	"testing"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/pkg/classify"
	"brd-aks-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndShow(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSessionService(factory, memory.NewSessionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSessionRequest{SourceType: store.SourceEmail})
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionId)
	assert.Equal(t, store.StatusProcessing, created.Status)

	shown, err := svc.Show(ctx, created.SessionId)
	require.NoError(t, err)
	assert.Equal(t, created.SessionId, shown.SessionId)
	assert.Equal(t, store.SourceEmail, shown.SourceType)
}

func TestSessionShowUnknown(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSessionService(factory, memory.NewSessionRepository())

	_, err := svc.Show(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionShowFallsBackToStore(t *testing.T) {
	factory := newTestFactory(t)
	// Fresh registry simulates a restart that lost the in-memory state.
	svc := NewSessionService(factory, memory.NewSessionRepository())

	seedChunk(t, factory, "persisted", classify.LabelRequirement, false, time.Now())

	shown, err := svc.Show(context.Background(), "persisted")
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, shown.Status)
	assert.Equal(t, 1, shown.ChunkCount)
}
