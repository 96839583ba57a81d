package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Gemini GeminiConfig
	Upload UploadConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// LLMConfig describes the OpenAI-compatible chat completions endpoint.
type LLMConfig struct {
	Provider string
	APIURL   string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type UploadConfig struct {
	MaxFileSize int64
}

type CORSConfig struct {
	AllowOrigins string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
			APIURL:   getEnv("LLM_API_URL", "https://api.cerebras.ai/v1/chat/completions"),
			APIKey:   getSecret("LLM_API_KEY"),
			Model:    getEnv("LLM_MODEL", "llama-4-scout-17b-16e-instruct"),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Gemini: GeminiConfig{
			APIKey:  getSecret("GEMINI_API_KEY"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
	}
}

// Validate refuses to start without a credential for the selected provider.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for provider %q", c.LLM.Provider)
		}
		if c.LLM.APIURL == "" {
			return fmt.Errorf("LLM_API_URL is required for provider %q", c.LLM.Provider)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLM.Timeout)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Upload.MaxFileSize)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getSecret reads key from the environment, falling back to the file named by key_FILE
// (docker and kubernetes secret mounts).
func getSecret(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	path := os.Getenv(key + "_FILE")
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Failed to read secret file for %s: %v\n", key, err)
		return ""
	}
	return strings.TrimSpace(string(data))
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
