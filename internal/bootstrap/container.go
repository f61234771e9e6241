package bootstrap

import (
	"log"

	"brd-aks-be/internal/config"
	"brd-aks-be/internal/controller"
	"brd-aks-be/internal/pkg/logger"
	"brd-aks-be/internal/repository/memory"
	"brd-aks-be/internal/repository/unitofwork"
	"brd-aks-be/internal/service"
	"brd-aks-be/pkg/classify"
	"brd-aks-be/pkg/llm"
	"brd-aks-be/pkg/llm/groq"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	IngestController  controller.IIngestController
	ReviewController  controller.IReviewController
	BrdController     controller.IBrdController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Classification Pipeline
	// Without an API key the pipeline still runs: heuristic rules classify
	// what they can, the rest is stored as flagged noise.
	var llmProvider llm.LLMProvider
	provider, err := groq.NewGroqProvider(cfg.Keys.GroqCloud, cfg.Classify.Model)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, running heuristics only: %v", err)
	} else {
		llmProvider = provider
		log.Printf("[INFO] Using LLM Provider: GROQ (%s)", cfg.Classify.Model)
	}
	classifier := classify.NewClassifier(llmProvider, sysLogger)

	// In-Memory Session Registry
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.ClassifyTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ClassifyTopic,
		uowFactory,
		classifier,
		sessionRepo,
		sysLogger,
	)

	sessionService := service.NewSessionService(uowFactory, sessionRepo)
	ingestionService := service.NewIngestionService(publisherService, sessionRepo)
	reviewService := service.NewReviewService(uowFactory)
	snapshotService := service.NewSnapshotService(uowFactory)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		IngestController:  controller.NewIngestController(ingestionService),
		ReviewController:  controller.NewReviewController(reviewService),
		BrdController:     controller.NewBrdController(snapshotService),
		ConsumerService:   consumerService,
	}
}
