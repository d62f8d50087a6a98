package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	OpenAI   OpenAI
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Port string `env:"ADVICE_SERVICE_PORT"`
	Name string `env:"ADVICE_SERVICE_NAME"`
}

type Postgres struct {
	User     string `env:"ADVICE_SERVICE_POSTGRES_USER"`
	Password string `env:"ADVICE_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"ADVICE_SERVICE_POSTGRES_DB"`
	Host     string `env:"ADVICE_SERVICE_POSTGRES_HOST"`
	Port     string `env:"ADVICE_SERVICE_POSTGRES_PORT"`
}

type OpenAI struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	Model       string  `env:"OPENAI_MODEL" env-default:"gpt-4o-2024-08-06"`
	MaxTokens   int     `env:"OPENAI_MAX_TOKENS" env-default:"2000"`
	Temperature float64 `env:"OPENAI_TEMPERATURE" env-default:"0.7"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

func MustLoad() *Config {
	cfg := &Config{}

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
