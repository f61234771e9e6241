package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Backend identifiers returned by NewGormDB so callers can log the choice.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,        // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// NewGormDB opens the primary Postgres backend when a DSN is configured and
// reachable, otherwise falls back to the embedded SQLite file. The choice is
// made once here and holds for the process lifetime; both backends sit behind
// the same *gorm.DB so repositories behave identically on either.
func NewGormDB(dsn, sqlitePath string) (*gorm.DB, string, error) {
	if dsn != "" {
		db, err := openPostgres(dsn)
		if err == nil {
			return db, BackendPostgres, nil
		}
		log.Printf("Warn: Postgres backend unavailable (%v), falling back to embedded SQLite", err)
	} else {
		log.Println("Note: DB_CONNECTION_STRING not set, using embedded SQLite")
	}

	db, err := openSQLite(sqlitePath)
	if err != nil {
		return nil, "", fmt.Errorf("no storage backend available: %w", err)
	}
	return db, BackendSQLite, nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	// gorm.Open can succeed lazily; force a round-trip before committing
	// to this backend.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db); err != nil {
		return nil, err
	}

	return db, nil
}

func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
