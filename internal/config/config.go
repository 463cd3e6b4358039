package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	OpenAI   OpenAIConfig
	Ollama   OllamaConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8000"`
	Host           string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"8s"`
	StaticDir      string        `envconfig:"SERVER_STATIC_DIR" default:"web/static"`
	CORSOrigins    []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:8000,http://127.0.0.1:8000"`
}

type AnalysisConfig struct {
	Provider string `envconfig:"PROVIDER" default:"simple"`
	MaxChars int    `envconfig:"MAX_CHARS" default:"10000"`
}

type OpenAIConfig struct {
	Provider    string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey      string `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1/"`
	Model       string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	APIVersion  string `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
}

type OllamaConfig struct {
	Host  string `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	Model string `envconfig:"OLLAMA_MODEL" default:"llama3.2"`
}

type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully", "provider", cfg.Analysis.Provider)
	return &cfg, nil
}
