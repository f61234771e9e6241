package service

import (
	"context"
	"testing"
	"time"

	"brd-aks-be/internal/entity"
	"brd-aks-be/internal/model"
	"brd-aks-be/internal/repository/unitofwork"
	"brd-aks-be/pkg/classify"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ClassifiedChunk{},
		&model.Snapshot{},
		&model.Section{},
	))
	return unitofwork.NewRepositoryFactory(db)
}

func seedChunk(t *testing.T, factory unitofwork.RepositoryFactory, sessionId string, label classify.Label, suppressed bool, at time.Time) *entity.ClassifiedChunk {
	t.Helper()
	c := &entity.ClassifiedChunk{
		Id:          uuid.New(),
		SessionId:   sessionId,
		SourceRef:   "seed",
		Speaker:     "Alice",
		RawText:     "seed text for " + label.String(),
		CleanedText: "seed text for " + label.String(),
		Label:       label,
		Confidence:  0.9,
		Suppressed:  suppressed,
		CreatedAt:   at,
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ChunkRepository().StoreBatch(context.Background(), []*entity.ClassifiedChunk{c}))
	return c
}

type stubLogger struct{}

func (stubLogger) Debug(module, message string, details map[string]interface{}) {}
func (stubLogger) Info(module, message string, details map[string]interface{})  {}
func (stubLogger) Warn(module, message string, details map[string]interface{})  {}
func (stubLogger) Error(module, message string, details map[string]interface{}) {}
func (stubLogger) Sync() error                                                  { return nil }

// stubClassifier labels everything containing "noise" as noise and the rest
// as requirements.
type stubClassifier struct{}

func (stubClassifier) ClassifyBatch(ctx context.Context, chunks []classify.RawChunk) []classify.Result {
	results := make([]classify.Result, len(chunks))
	for i, c := range chunks {
		if label, ok := classify.ApplyHeuristics(c); ok {
			results[i] = classify.Result{Label: label, Confidence: 1.0, Reasoning: "Classified by heuristic rule."}
			continue
		}
		results[i] = classify.Result{Label: classify.LabelRequirement, Confidence: 0.9, Reasoning: "stub"}
	}
	return results
}
