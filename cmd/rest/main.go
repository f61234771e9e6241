package main

import (
	"context"
	"log"

	"brd-aks-be/internal/bootstrap"
	"brd-aks-be/internal/config"
	"brd-aks-be/internal/model"
	"brd-aks-be/internal/server"
	"brd-aks-be/internal/tracer"
	"brd-aks-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (Postgres when configured, SQLite fallback)
	gormDB, backend, err := database.NewGormDB(cfg.Database.Connection, cfg.Database.SQLitePath)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	log.Printf("Storage backend: %s", backend)

	// 3. Ensure Schema (idempotent)
	if err := gormDB.AutoMigrate(
		&model.ClassifiedChunk{},
		&model.Snapshot{},
		&model.Section{},
	); err != nil {
		log.Panicf("AutoMigrate failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
