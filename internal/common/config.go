package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Vision   VisionConfig
	Twilio   TwilioConfig
	FX       FXConfig
	Worker   WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	WebhookAddr string
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Bucket string
}

// VisionConfig holds cloud OCR configuration
type VisionConfig struct {
	APIKey        string
	ScratchPrefix string // bucket prefix for async PDF OCR artifacts
	PDFMaxPages   int
	PollTimeout   time.Duration
}

// TwilioConfig holds messaging gateway credentials
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
}

// FXConfig holds exchange-rate configuration
type FXConfig struct {
	RateURL      string
	FallbackRate float64
	FetchTimeout time.Duration
	TTL          time.Duration
}

// WorkerConfig holds worker-loop configuration
type WorkerConfig struct {
	TickInterval  time.Duration
	BatchLimit    int
	BatchDeadline time.Duration
	StaleRunning  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			WebhookAddr: getEnv("WEBHOOK_ADDR", ":8081"),
		},
		Storage: StorageConfig{
			Bucket: getEnv("STORAGE_BUCKET", ""),
		},
		Vision: VisionConfig{
			APIKey:        getEnv("GOOGLE_VISION_API_KEY", ""),
			ScratchPrefix: getEnv("VISION_SCRATCH_PREFIX", "vision"),
			PDFMaxPages:   getEnvAsInt("VISION_PDF_MAX_PAGES", 5),
			PollTimeout:   getEnvAsDuration("VISION_POLL_TIMEOUT", 30*time.Second),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		},
		FX: FXConfig{
			RateURL:      getEnv("FX_RATE_URL", "https://open.er-api.com/v6/latest/USD"),
			FallbackRate: getEnvAsFloat64("USD_ILS_FALLBACK_RATE", 3.7),
			FetchTimeout: getEnvAsDuration("FX_FETCH_TIMEOUT", 2500*time.Millisecond),
			TTL:          getEnvAsDuration("FX_TTL", 6*time.Hour),
		},
		Worker: WorkerConfig{
			TickInterval:  getEnvAsDuration("WORKER_TICK_INTERVAL", 15*time.Second),
			BatchLimit:    getEnvAsInt("WORKER_BATCH_LIMIT", 20),
			BatchDeadline: getEnvAsDuration("WORKER_BATCH_DEADLINE", 25*time.Second),
			StaleRunning:  getEnvAsDuration("WORKER_STALE_RUNNING", 10*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_BUCKET is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.FX.FallbackRate <= 2 || c.FX.FallbackRate >= 10 {
		return NewAppError("CONFIG_ERROR", "USD_ILS_FALLBACK_RATE outside sane band (2,10)", ErrInvalidInput)
	}
	return nil
}
