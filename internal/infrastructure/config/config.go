// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	Env        string `envconfig:"APP_ENV" default:"production"`

	// Server
	Port         string        `envconfig:"PORT" default:"3000"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`

	// PostgreSQL (accounts, sessions, audit)
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:"host=localhost user=postgres password=postgres dbname=sistema_voos port=5432 sslmode=disable"`

	// MongoDB (flights, chat transcripts)
	MongoURI      string `envconfig:"MONGODB_DSN" default:"mongodb://localhost:27017"`
	MongoDB       string `envconfig:"MONGO_DB" default:"sistema_voos"`
	MongoUser     string `envconfig:"MONGO_USER"`
	MongoPassword string `envconfig:"MONGO_PASSWORD"`

	// Redis (flight list cache); empty address disables the cache
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	FlightCacheTTL time.Duration `envconfig:"FLIGHT_CACHE_TTL" default:"30s"`

	// Auth
	JWTSecret        string        `envconfig:"JWT_SECRET" default:"segredo_super_secreto"`
	JWTTTL           time.Duration `envconfig:"JWT_TTL" default:"2h"`
	BcryptCost       int           `envconfig:"BCRYPT_COST" default:"10"`
	SessionCacheSize int           `envconfig:"SESSION_CACHE_SIZE" default:"1024"`
	SessionCacheTTL  time.Duration `envconfig:"SESSION_CACHE_TTL" default:"1m"`

	// LLM; empty provider disables the alternate responder
	LLMProvider      string        `envconfig:"LLM_PROVIDER"`
	OpenAIAPIKey     string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel      string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL    string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	LLMTimeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"20s"`
	LLMRatePerMinute int           `envconfig:"LLM_RATE_PER_MINUTE" default:"30"`
	LLMBurst         int           `envconfig:"LLM_BURST" default:"5"`
	LLMFailures      uint32        `envconfig:"LLM_BREAKER_FAILURES" default:"5"`
	LLMOpenTimeout   time.Duration `envconfig:"LLM_BREAKER_OPEN_TIMEOUT" default:"60s"`

	// Assistant
	RiskCritical int `envconfig:"RISK_CRITICAL" default:"85"`
	RiskHigh     int `envconfig:"RISK_HIGH" default:"70"`
	RiskMedium   int `envconfig:"RISK_MEDIUM" default:"45"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.LLMProvider == "google" {
		cfg.LLMProvider = "gemini"
	}

	switch cfg.LLMProvider {
	case "", "openai", "gemini":
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
	if cfg.RiskCritical < cfg.RiskHigh || cfg.RiskHigh < cfg.RiskMedium {
		return nil, fmt.Errorf("risk thresholds must be ordered: critical >= high >= medium")
	}

	return &cfg, nil
}
