package service

import (
	"context"
	"testing"
	"time"

	"brd-aks-be/internal/dto"
	"brd-aks-be/pkg/classify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSnapshotFreezesActiveView(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)
	review := NewReviewService(factory)
	ctx := context.Background()

	now := time.Now()
	active := seedChunk(t, factory, "s1", classify.LabelRequirement, false, now)
	suppressed := seedChunk(t, factory, "s1", classify.LabelNoise, true, now.Add(time.Millisecond))

	snap, err := svc.CreateSnapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.ChunkCount)

	// Restoring the noise chunk afterwards does not grow the snapshot.
	_, err = review.Restore(ctx, suppressed.Id)
	require.NoError(t, err)

	signals, err := svc.SignalsForSnapshot(ctx, snap.SnapshotId, "")
	require.NoError(t, err)
	require.Len(t, signals.Chunks, 1)
	assert.Equal(t, active.Id, signals.Chunks[0].ChunkId)

	// A fresh snapshot sees the restored chunk.
	snap2, err := svc.CreateSnapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap2.ChunkCount)
}

func TestSignalsForSnapshotLabelFilterAndOrder(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)
	ctx := context.Background()

	now := time.Now()
	first := seedChunk(t, factory, "s1", classify.LabelRequirement, false, now)
	seedChunk(t, factory, "s1", classify.LabelDecision, false, now.Add(time.Millisecond))
	second := seedChunk(t, factory, "s1", classify.LabelRequirement, false, now.Add(2*time.Millisecond))

	snap, err := svc.CreateSnapshot(ctx, "s1")
	require.NoError(t, err)

	signals, err := svc.SignalsForSnapshot(ctx, snap.SnapshotId, classify.LabelRequirement.String())
	require.NoError(t, err)
	require.Len(t, signals.Chunks, 2)
	assert.Equal(t, first.Id, signals.Chunks[0].ChunkId)
	assert.Equal(t, second.Id, signals.Chunks[1].ChunkId)
}

func TestSignalsForUnknownSnapshot(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)

	_, err := svc.SignalsForSnapshot(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStoreSectionVersionsAreMonotonic(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)
	ctx := context.Background()

	seedChunk(t, factory, "s1", classify.LabelRequirement, false, time.Now())
	snap, err := svc.CreateSnapshot(ctx, "s1")
	require.NoError(t, err)

	v1, err := svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
		SnapshotId:  snap.SnapshotId,
		SectionName: "functional_requirements",
		Content:     "first draft",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.VersionNumber)

	v2, err := svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
		SnapshotId:  snap.SnapshotId,
		SectionName: "functional_requirements",
		Content:     "second draft",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.VersionNumber)

	// Versions are scoped per section name.
	other, err := svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
		SnapshotId:  snap.SnapshotId,
		SectionName: "scope",
		Content:     "scope draft",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.VersionNumber)
}

func TestStoreSectionUnknownSnapshot(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)

	_, err := svc.StoreSection(context.Background(), "s1", &dto.StoreSectionRequest{
		SnapshotId:  uuid.New(),
		SectionName: "scope",
		Content:     "draft",
	})
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestLatestSectionsPicksHighestVersion(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSnapshotService(factory)
	ctx := context.Background()

	seedChunk(t, factory, "s1", classify.LabelRequirement, false, time.Now())
	snap, err := svc.CreateSnapshot(ctx, "s1")
	require.NoError(t, err)

	for _, content := range []string{"v1", "v2", "v3"} {
		_, err := svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
			SnapshotId:  snap.SnapshotId,
			SectionName: "functional_requirements",
			Content:     content,
		})
		require.NoError(t, err)
	}
	_, err = svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
		SnapshotId:  snap.SnapshotId,
		SectionName: "scope",
		Content:     "scope v1",
	})
	require.NoError(t, err)

	latest, err := svc.LatestSections(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, latest.Sections, 2)

	// Ordered by section name.
	assert.Equal(t, "functional_requirements", latest.Sections[0].SectionName)
	assert.Equal(t, 3, latest.Sections[0].VersionNumber)
	assert.Equal(t, "v3", latest.Sections[0].Content)
	assert.Equal(t, "scope", latest.Sections[1].SectionName)

	// The cache is invalidated by a new write.
	_, err = svc.StoreSection(ctx, "s1", &dto.StoreSectionRequest{
		SnapshotId:  snap.SnapshotId,
		SectionName: "scope",
		Content:     "scope v2",
	})
	require.NoError(t, err)

	latest, err = svc.LatestSections(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Sections[1].VersionNumber)
}
