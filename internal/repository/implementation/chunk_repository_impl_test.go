package implementation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/model"
	"brd-aks-be/internal/repository/specification"
	"brd-aks-be/pkg/classify"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ClassifiedChunk{},
		&model.Snapshot{},
		&model.Section{},
	))
	return db
}

func testChunk(sessionId string, label classify.Label, suppressed bool) *entity.ClassifiedChunk {
	return &entity.ClassifiedChunk{
		Id:               uuid.New(),
		SessionId:        sessionId,
		SourceRef:        "meeting-1",
		Speaker:          "Alice",
		RawText:          "raw text",
		CleanedText:      "cleaned text",
		Label:            label,
		Confidence:       0.9,
		Reasoning:        "test",
		Suppressed:       suppressed,
		FlaggedForReview: false,
		CreatedAt:        time.Now(),
	}
}

func TestStoreBatchIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	a := testChunk("s1", classify.LabelRequirement, false)
	b := testChunk("s1", classify.LabelNoise, true)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{a, b}))

	// Redelivery of the same batch, one chunk mutated, must change nothing.
	mutated := *a
	mutated.RawText = "tampered"
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{&mutated, b}))

	count, err := repo.Count(ctx, specification.BySessionID{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := repo.FindOne(ctx, specification.ByChunkID{ID: a.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "raw text", got.RawText)
}

func TestStoreBatchEmptyIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)

	require.NoError(t, repo.StoreBatch(context.Background(), nil))
}

func TestRestoreFlipsFlagsAndSyncsProjection(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	c := testChunk("s1", classify.LabelNoise, true)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{c}))

	require.NoError(t, repo.Restore(ctx, c.Id))

	got, err := repo.FindOne(ctx, specification.ByChunkID{ID: c.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Suppressed)
	assert.True(t, got.ManuallyRestored)
	assert.Equal(t, "raw text", got.RawText, "payload fields survive restore")

	// The denormalized payload must agree with the columns.
	var m model.ClassifiedChunk
	require.NoError(t, db.Where("chunk_id = ?", c.Id).First(&m).Error)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(m.Data, &payload))
	assert.Equal(t, false, payload["suppressed"])
	assert.Equal(t, true, payload["manually_restored"])
}

func TestRestoreIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	c := testChunk("s1", classify.LabelNoise, true)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{c}))

	require.NoError(t, repo.Restore(ctx, c.Id))
	require.NoError(t, repo.Restore(ctx, c.Id))

	got, err := repo.FindOne(ctx, specification.ByChunkID{ID: c.Id})
	require.NoError(t, err)
	assert.False(t, got.Suppressed)
	assert.True(t, got.ManuallyRestored)
}

func TestActiveAndNoiseViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	signal := testChunk("s1", classify.LabelRequirement, false)
	noise := testChunk("s1", classify.LabelNoise, true)
	restored := testChunk("s1", classify.LabelDecision, true)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{signal, noise, restored}))
	require.NoError(t, repo.Restore(ctx, restored.Id))

	active, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: "s1"},
		specification.ActiveSignals{},
	)
	require.NoError(t, err)
	require.Len(t, active, 2)

	noiseItems, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: "s1"},
		specification.NoiseOnly{},
	)
	require.NoError(t, err)
	require.Len(t, noiseItems, 1)
	assert.Equal(t, noise.Id, noiseItems[0].Id)
}

func TestFindAllByLabelAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	base := time.Now()
	first := testChunk("s1", classify.LabelRequirement, false)
	first.CreatedAt = base
	second := testChunk("s1", classify.LabelRequirement, false)
	second.CreatedAt = base.Add(time.Millisecond)
	other := testChunk("s1", classify.LabelDecision, false)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{second, first, other}))

	got, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: "s1"},
		specification.ByLabel{Label: classify.LabelRequirement.String()},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.Id, got[0].Id)
	assert.Equal(t, second.Id, got[1].Id)
}

func TestDeleteBySessionId(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)
	ctx := context.Background()

	keep := testChunk("keep", classify.LabelRequirement, false)
	drop := testChunk("drop", classify.LabelRequirement, false)
	require.NoError(t, repo.StoreBatch(ctx, []*entity.ClassifiedChunk{keep, drop}))

	require.NoError(t, repo.DeleteBySessionId(ctx, "drop"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindOneMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewChunkRepository(db)

	got, err := repo.FindOne(context.Background(), specification.ByChunkID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, got)
}
