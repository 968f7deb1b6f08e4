package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	TurnTopic    string // Turn analytics topic
}

type AIConfig struct {
	UseLLM      bool   // gate for reply enrichment
	GeminiModel string // e.g. "gemini-1.5-flash"
}

type EngineConfig struct {
	QueryTimeout  time.Duration
	EnrichTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3001"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
			TurnTopic:    getEnv("TURN_PROCESSED_TOPIC_NAME", "TURN_PROCESSED"),
		},
		Ai: AIConfig{
			UseLLM:      getEnvAsBool("USE_LLM", false),
			GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Engine: EngineConfig{
			QueryTimeout:  time.Duration(getEnvAsInt("ENGINE_QUERY_TIMEOUT_SECONDS", 5)) * time.Second,
			EnrichTimeout: time.Duration(getEnvAsInt("ENGINE_ENRICH_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
