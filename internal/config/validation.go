package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

var (
	providers     = []string{"gemini", "openai"}
	historyStores = []string{"file", "memory", "sqlite", "postgres", "redis"}
	exportSinks   = []string{"dir", "minio"}
)

// Validate checks the whole configuration and returns the first problem.
func (c *Config) Validate() error {
	checks := []func() error{
		func() error { return oneOf(c.Transcriber.Provider, providers, "transcriber.provider") },
		func() error { return oneOf(c.History.Backend, historyStores, "history.backend") },
		func() error { return oneOf(c.Export.Sink, exportSinks, "export.sink") },
		func() error { return ValidatePort(c.Server.Port, "server") },
		func() error { return ValidateTimeout(c.Server.ReadTimeout, "server read") },
		func() error { return ValidateTimeout(c.Server.WriteTimeout, "server write") },
		func() error { return ValidateTemperature(c.Transcriber.Temperature) },
		func() error {
			if c.Transcriber.Timeout == 0 {
				return nil
			}
			return ValidateTimeout(c.Transcriber.Timeout, "transcriber")
		},
		func() error {
			if c.Transcriber.BaseURL == "" {
				return nil
			}
			return ValidateURL(c.Transcriber.BaseURL, "transcriber base")
		},
		func() error {
			if c.Intake.MaxUploadBytes <= 0 {
				return fmt.Errorf("intake.max_upload_bytes must be positive")
			}
			return nil
		},
		func() error {
			_, err := model.ParseLanguage(c.Intake.DefaultLanguage)
			return err
		},
		func() error {
			if c.History.Backend == "postgres" && c.History.PostgresDSN == "" {
				return fmt.Errorf("history.postgres_dsn (DATABASE_URL) is required for the postgres backend")
			}
			return nil
		},
		func() error {
			if c.Transcriber.GeminiAPIKey == "" {
				return nil
			}
			return ValidateAPIKey(c.Transcriber.GeminiAPIKey, "Gemini")
		},
		func() error {
			if c.Transcriber.OpenAIAPIKey == "" {
				return nil
			}
			return ValidateAPIKey(c.Transcriber.OpenAIAPIKey, "OpenAI")
		},
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return apperrors.Describe(apperrors.ErrInvalidConfig, "invalid configuration: %v", err)
		}
	}
	return nil
}

func oneOf(value string, allowed []string, name string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, ", "), value)
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateTemperature validates the sampling temperature
func ValidateTemperature(t float32) error {
	if t < 0 || t > 2 {
		return fmt.Errorf("transcriber temperature must be between 0 and 2")
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s port invalid", name)
	}
	return nil
}
