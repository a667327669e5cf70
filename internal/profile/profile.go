package profile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"log/slog"

	"github.com/pkg/errors"
)

// Profile is configuration to start the main server.
type Profile struct {
	// Unified LLM configuration (OpenAI-compatible protocol).
	// All providers (groq, openai, deepseek, ollama) use the same config.
	LLMProvider string // Provider identifier: groq, openai, deepseek, ollama
	LLMAPIKey   string
	LLMBaseURL  string // Optional, has default per provider
	LLMModel    string
	LLMTimeout  int // LLM request timeout in seconds (default: 120)

	// Classifier configuration. Routing and continuity checks use a small,
	// deterministic model; falls back to the main LLM config when unset.
	ClassifierModel   string
	ClassifierTimeout int // seconds (default: 30)

	Mode    string // dev, prod
	Addr    string
	Port    int
	Data    string
	Driver  string // sqlite, postgres
	DSN     string
	Version string
}

// Provider default configurations for LLM.
// Used when AGENTHUB_LLM_BASE_URL is not explicitly set.
var llmProviderDefaults = map[string]struct {
	BaseURL string
	Model   string
}{
	"groq": {
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "llama-3.3-70b-versatile",
	},
	"openai": {
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o",
	},
	"deepseek": {
		BaseURL: "https://api.deepseek.com",
		Model:   "deepseek-chat",
	},
	"ollama": {
		BaseURL: "http://localhost:11434",
		Model:   "llama3.1",
	},
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default value.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	p.LLMProvider = getEnvOrDefault("AGENTHUB_LLM_PROVIDER", "groq")
	p.LLMAPIKey = getEnvOrDefault("AGENTHUB_LLM_API_KEY", "")
	p.LLMBaseURL = getEnvOrDefault("AGENTHUB_LLM_BASE_URL", "")
	p.LLMModel = getEnvOrDefault("AGENTHUB_LLM_MODEL", "")
	p.LLMTimeout = getEnvOrDefaultInt("AGENTHUB_LLM_TIMEOUT_SECONDS", 120)

	if _, ok := llmProviderDefaults[p.LLMProvider]; !ok {
		slog.Warn("unknown LLM provider, using default: groq", "provider", p.LLMProvider)
		p.LLMProvider = "groq"
	}
	if defaults, ok := llmProviderDefaults[p.LLMProvider]; ok {
		if p.LLMBaseURL == "" {
			p.LLMBaseURL = defaults.BaseURL
		}
		if p.LLMModel == "" {
			p.LLMModel = defaults.Model
		}
	}

	p.ClassifierModel = getEnvOrDefault("AGENTHUB_CLASSIFIER_MODEL", p.LLMModel)
	p.ClassifierTimeout = getEnvOrDefaultInt("AGENTHUB_CLASSIFIER_TIMEOUT_SECONDS", 30)
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

// Validate normalizes and validates the profile, filling in defaults for
// the data directory and DSN.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Data == "" {
		p.Data = "."
	}
	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		return err
	}
	p.Data = dataDir

	if p.Driver == "" {
		p.Driver = "sqlite"
	}
	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := "agenthub_" + p.Mode + ".db"
		p.DSN = filepath.Join(p.Data, dbFile)
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("dsn is required for postgres driver")
	}

	return nil
}
