package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFiles are the .env locations tried, in order; the first one found is loaded.
var EnvFiles = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads the first .env file found and returns its path, or "" when
// none exists. Variables already set in the environment win.
func LoadEnv() (string, error) {
	for _, envPath := range EnvFiles {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, err
		}
	}
	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, err
		}
	}
	return apiKeys, nil
}

// Available lists the providers that have a key.
func (k *APIKeys) Available() []string {
	var available []string
	if k.Gemini != "" {
		available = append(available, "gemini")
	}
	if k.OpenAI != "" {
		available = append(available, "openai")
	}
	return available
}
