package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendSQLite = "sqlite"
	StoreBackendRedis  = "redis"
)

type Config struct {
	AppPort             int           `mapstructure:"APP_PORT"`
	DatabasePath        string        `mapstructure:"DATABASE_PATH"`
	StoreBackend        string        `mapstructure:"STORE_BACKEND"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	OllamaURL           string        `mapstructure:"OLLAMA_URL"`
	OllamaModel         string        `mapstructure:"OLLAMA_MODEL"`
	OllamaWaitTimeout   time.Duration `mapstructure:"OLLAMA_WAIT_TIMEOUT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	LogFile             string        `mapstructure:"LOG_FILE"`
	ContextWindow       int           `mapstructure:"CONTEXT_WINDOW"`
	StreamTimeout       time.Duration `mapstructure:"STREAM_TIMEOUT"`
	EmbeddingDimensions int           `mapstructure:"EMBEDDING_DIMENSIONS"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/ailab.db")
	viper.SetDefault("STORE_BACKEND", StoreBackendSQLite)
	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3.2")
	viper.SetDefault("OLLAMA_WAIT_TIMEOUT", "60s")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("CONTEXT_WINDOW", 5)
	viper.SetDefault("STREAM_TIMEOUT", "5m")
	viper.SetDefault("EMBEDDING_DIMENSIONS", 1024)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendSQLite, StoreBackendRedis:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	if c.ContextWindow < 0 {
		return fmt.Errorf("CONTEXT_WINDOW must not be negative, got %d", c.ContextWindow)
	}
	if c.EmbeddingDimensions < 0 {
		return fmt.Errorf("EMBEDDING_DIMENSIONS must not be negative, got %d", c.EmbeddingDimensions)
	}
	if c.StreamTimeout <= 0 {
		return fmt.Errorf("STREAM_TIMEOUT must be positive, got %s", c.StreamTimeout)
	}
	return nil
}
