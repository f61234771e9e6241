package main

import (
	"log"

	"brd-aks-be/internal/config"
	"brd-aks-be/internal/model"
	"brd-aks-be/pkg/database"
)

func main() {
	// 1. Load Configuration (same resolution as cmd/rest, defaults included)
	cfg := config.Load()

	// 2. Connect (Postgres when configured, SQLite fallback)
	db, backend, err := database.NewGormDB(cfg.Database.Connection, cfg.Database.SQLitePath)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	log.Printf("Migrating %s schema...", backend)

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.ClassifiedChunk{},
		&model.Snapshot{},
		&model.Section{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration completed successfully")
}
