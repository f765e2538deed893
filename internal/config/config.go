// README: Config loader with env defaults for HTTP, AI provider, logging and Firebase auth.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tripbrief/internal/ai"
)

type Config struct {
	HTTP struct {
		Addr           string
		RequestTimeout time.Duration
		CORSOrigins    []string
	}
	AI struct {
		Provider      string
		Model         string
		GeminiKey     string
		OpenAIKey     string
		OpenAIBaseURL string
	}
	Log struct {
		Level  string
		Format string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read collects configuration without validating it. A .env file in the working
// directory is applied first when present; variables already set win.
func Read() Config {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPBRIEF_HTTP_ADDR", ":8080")
	cfg.HTTP.RequestTimeout = envOrDefaultDuration("TRIPBRIEF_REQUEST_TIMEOUT", 30*time.Second)
	cfg.HTTP.CORSOrigins = splitList(envOrDefault("TRIPBRIEF_CORS_ORIGINS", "*"))

	cfg.AI.Provider = strings.ToLower(envOrDefault("TRIPBRIEF_AI_PROVIDER", ai.ProviderGemini))
	cfg.AI.Model = os.Getenv("TRIPBRIEF_MODEL")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")

	cfg.Log.Level = envOrDefault("TRIPBRIEF_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("TRIPBRIEF_LOG_FORMAT", "text")

	cfg.Firebase.ProjectID = os.Getenv("TRIPBRIEF_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("TRIPBRIEF_FIREBASE_CREDENTIALS")
	return cfg
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	switch c.AI.Provider {
	case ai.ProviderGemini:
		if c.AI.GeminiKey == "" {
			return fmt.Errorf("environment variable GEMINI_API_KEY is required")
		}
	case ai.ProviderOpenAI:
		if c.AI.OpenAIKey == "" {
			return fmt.Errorf("environment variable OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown AI provider %q", c.AI.Provider)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
