// Package config loads settings from defaults, an optional YAML file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"verbaflow/internal/app/model"
)

// DefaultConfigFile is read when no path is given and the file exists.
const DefaultConfigFile = "verbaflow.yaml"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Intake      IntakeConfig      `yaml:"intake"`
	History     HistoryConfig     `yaml:"history"`
	Export      ExportConfig      `yaml:"export"`
	Log         LogConfig         `yaml:"log"`
}

type ServerConfig struct {
	Host         string        `yaml:"host" env:"VERBAFLOW_HOST" env-default:"127.0.0.1"`
	Port         string        `yaml:"port" env:"VERBAFLOW_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"VERBAFLOW_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"VERBAFLOW_WRITE_TIMEOUT" env-default:"2m"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"VERBAFLOW_IDLE_TIMEOUT" env-default:"2m"`
	Environment  string        `yaml:"environment" env:"VERBAFLOW_ENV" env-default:"development"`
}

type TranscriberConfig struct {
	Provider     string        `yaml:"provider" env:"VERBAFLOW_PROVIDER" env-default:"gemini"`
	Model        string        `yaml:"model" env:"VERBAFLOW_MODEL"`
	Temperature  float32       `yaml:"temperature" env:"VERBAFLOW_TEMPERATURE" env-default:"0.2"`
	BaseURL      string        `yaml:"base_url" env:"VERBAFLOW_BASE_URL"`
	Timeout      time.Duration `yaml:"timeout" env:"VERBAFLOW_TRANSCRIBE_TIMEOUT"`
	GeminiAPIKey string        `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	OpenAIAPIKey string        `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
}

type IntakeConfig struct {
	MaxUploadBytes  int64  `yaml:"max_upload_bytes" env:"VERBAFLOW_MAX_UPLOAD_BYTES" env-default:"20971520"`
	DefaultLanguage string `yaml:"default_language" env:"VERBAFLOW_LANGUAGE" env-default:"Portuguese (Brazil)"`
}

type HistoryConfig struct {
	Backend       string `yaml:"backend" env:"VERBAFLOW_HISTORY_BACKEND" env-default:"file"`
	Path          string `yaml:"path" env:"VERBAFLOW_HISTORY_PATH"`
	SlotName      string `yaml:"slot_name" env:"VERBAFLOW_HISTORY_SLOT" env-default:"transcription_history"`
	SQLitePath    string `yaml:"sqlite_path" env:"VERBAFLOW_HISTORY_SQLITE" env-default:"verbaflow.db"`
	PostgresDSN   string `yaml:"postgres_dsn" env:"DATABASE_URL"`
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
}

type ExportConfig struct {
	Sink  string      `yaml:"sink" env:"VERBAFLOW_EXPORT_SINK" env-default:"dir"`
	Dir   string      `yaml:"dir" env:"VERBAFLOW_EXPORT_DIR" env-default:"."`
	Minio MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"verbaflow-exports"`
	Prefix    string `yaml:"prefix" env:"MINIO_PREFIX"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
}

type LogConfig struct {
	Development bool   `yaml:"development" env:"VERBAFLOW_LOG_DEV"`
	Level       string `yaml:"level" env:"VERBAFLOW_LOG_LEVEL" env-default:"info"`
}

// Load reads .env, then the YAML file at path (DefaultConfigFile when empty
// and present), then the environment. Environment variables override the
// file; env-default values only fill fields still unset. The result is
// validated.
func Load(path string) (*Config, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Transcriber.Provider = strings.ToLower(strings.TrimSpace(c.Transcriber.Provider))
	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
	c.Export.Sink = strings.ToLower(strings.TrimSpace(c.Export.Sink))
	c.Transcriber.GeminiAPIKey = strings.TrimSpace(c.Transcriber.GeminiAPIKey)
	c.Transcriber.OpenAIAPIKey = strings.TrimSpace(c.Transcriber.OpenAIAPIKey)
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}
}

// DefaultHistoryPath is history.json under the user config directory, or in
// the working directory when that cannot be determined.
func DefaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "history.json"
	}
	return filepath.Join(dir, "verbaflow", "history.json")
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	switch c.Transcriber.Provider {
	case "openai":
		return c.Transcriber.OpenAIAPIKey
	default:
		return c.Transcriber.GeminiAPIKey
	}
}

// Language parses the configured default language.
func (c *Config) Language() (model.Language, error) {
	return model.ParseLanguage(c.Intake.DefaultLanguage)
}

// RequireAPIKey fails when the configured provider has no key. Commands that
// never transcribe skip this check.
func (c *Config) RequireAPIKey() error {
	if c.APIKey() != "" {
		return nil
	}
	name := "GEMINI_API_KEY"
	if c.Transcriber.Provider == "openai" {
		name = "OPENAI_API_KEY"
	}
	return errors.New(name + " is not set; add it to the environment or a .env file")
}
