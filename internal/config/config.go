package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig
	Vision    VisionConfig
	Synthesis SynthesisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"3m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

// VisionConfig points at the multimodal model used for image content extraction.
type VisionConfig struct {
	APIKey  string        `env:"INTERN_API_KEY"`
	BaseURL string        `env:"INTERN_BASE_URL" envDefault:"https://chat.intern-ai.org.cn/api/v1"`
	Model   string        `env:"INTERN_MODEL_NAME" envDefault:"intern-s1"`
	Timeout time.Duration `env:"INTERN_TIMEOUT" envDefault:"2m"`
}

// SynthesisConfig points at the text model used for code and answer generation.
type SynthesisConfig struct {
	APIKey  string        `env:"DEEPSEEK_API_KEY"`
	BaseURL string        `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com/v1"`
	Model   string        `env:"DEEPSEEK_MODEL_NAME" envDefault:"deepseek-chat"`
	Timeout time.Duration `env:"DEEPSEEK_TIMEOUT" envDefault:"1m"`
}

type RateLimitConfig struct {
	Enable   bool          `env:"RATE_LIMIT_ENABLE"`
	Limit    int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"24h"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
