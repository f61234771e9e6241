package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Classify ClassifyConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string // Postgres DSN; empty means embedded-only mode
	SQLitePath string // embedded fallback database file
}

type APIKeys struct {
	GroqCloud     string
	ClassifyTopic string // Classification batch topic
}

type ClassifyConfig struct {
	Model string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			SQLitePath: getEnv("SQLITE_PATH", "aks.db"),
		},
		Keys: APIKeys{
			GroqCloud:     getEnv("GROQ_CLOUD_API", ""),
			ClassifyTopic: getEnv("CLASSIFY_TOPIC_NAME", "CLASSIFY_CHUNK_BATCH"),
		},
		Classify: ClassifyConfig{
			Model: getEnv("GROQ_MODEL", "meta-llama/llama-4-maverick-17b-128e-instruct"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
