package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Chat    ChatConfig
	Gemini  GeminiConfig
	Reports ReportsConfig
}

type SessionConfig struct {
	JWTSecret   string        `env:"JWT_SECRET"`
	TTL         time.Duration `env:"SESSION_TTL,  default=24h"`
	EmailDomain string        `env:"EMAIL_DOMAIN, default=@mitmusaffarpur.edu.in"`
}

// StorageConfig selects the repository backend: "memory" or "mongo".
type StorageConfig struct {
	Backend string `env:"STORAGE, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_companion"`
}

// RedisConfig backs the session and vote stores. An empty Addr keeps them in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type ChatConfig struct {
	TypingDelay time.Duration `env:"CHAT_TYPING_DELAY, default=1500ms"`
}

// GeminiConfig enables generative chat replies when APIKey is set.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL,    default=gemini-1.5-flash"`
	BaseURL string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT,  default=15s"`
}

type ReportsConfig struct {
	Workers int `env:"REPORT_WORKERS, default=4"`
}

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Session.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.Storage.Backend {
	case StorageMemory, StorageMongo:
	default:
		return fmt.Errorf("config: STORAGE must be %q or %q, got %q", StorageMemory, StorageMongo, c.Storage.Backend)
	}
	return nil
}

// Production reports whether ENV is production.
func (c *Config) Production() bool { return c.Env == "production" }
