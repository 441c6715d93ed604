package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported completion providers
const (
	ProviderAnthropic = "anthropic"
	ProviderGroq      = "groq"
	ProviderGemini    = "gemini"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Extractor ExtractorConfig
	Anthropic AnthropicConfig
	Groq      GroqConfig
	Gemini    GeminiConfig
	Notion    NotionConfig
	Slack     SlackConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// ExtractorConfig selects the completion provider and its limits
type ExtractorConfig struct {
	Provider  string        `envconfig:"EXTRACTOR_PROVIDER" default:"anthropic"`
	MaxTokens int           `envconfig:"EXTRACTOR_MAX_TOKENS" default:"2048"`
	Timeout   time.Duration `envconfig:"EXTRACTOR_TIMEOUT" default:"60s"`
}

// AnthropicConfig holds Anthropic Messages API settings
type AnthropicConfig struct {
	APIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	BaseURL string `envconfig:"ANTHROPIC_API_URL" default:"https://api.anthropic.com"`
	Model   string `envconfig:"ANTHROPIC_MODEL" default:"claude-3-haiku-20240307"`
}

// GroqConfig holds Groq API settings
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
}

// GeminiConfig holds Gemini API settings
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// NotionConfig holds the target database settings
type NotionConfig struct {
	APIKey        string `envconfig:"NOTION_API_KEY"`
	DatabaseID    string `envconfig:"NOTION_DATABASE_ID"`
	TitleProperty string `envconfig:"NOTION_TITLE_PROPERTY" default:"이름"`
	PageBaseURL   string `envconfig:"NOTION_PAGE_BASE_URL" default:"https://notion.so/"`
	WriteBody     bool   `envconfig:"NOTION_WRITE_BODY" default:"true"`
}

// SlackConfig holds the optional notification webhook
type SlackConfig struct {
	WebhookURL string `envconfig:"SLACK_WEBHOOK_URL"`
}

// ConfigError lists every required setting that is absent
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files; missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	sections := []interface{}{
		&cfg.Server,
		&cfg.Extractor,
		&cfg.Anthropic,
		&cfg.Groq,
		&cfg.Gemini,
		&cfg.Notion,
		&cfg.Slack,
	}
	for _, s := range sections {
		if err := envconfig.Process("", s); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}
	cfg.Extractor.Provider = strings.ToLower(strings.TrimSpace(cfg.Extractor.Provider))

	return cfg, nil
}

// Validate checks every setting the full pipeline needs
func (c *Config) Validate() error {
	var missing []string
	missing = append(missing, c.missingExtractor()...)
	missing = append(missing, c.missingNotion()...)
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// ValidateExtractor checks only what extraction needs (dry runs)
func (c *Config) ValidateExtractor() error {
	if missing := c.missingExtractor(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// ValidateNotion checks only the document store settings
func (c *Config) ValidateNotion() error {
	if missing := c.missingNotion(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (c *Config) missingExtractor() []string {
	switch c.Extractor.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return []string{"ANTHROPIC_API_KEY"}
		}
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return []string{"GROQ_API_KEY"}
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return []string{"GEMINI_API_KEY"}
		}
	default:
		return []string{fmt.Sprintf("EXTRACTOR_PROVIDER (unknown provider %q)", c.Extractor.Provider)}
	}
	return nil
}

func (c *Config) missingNotion() []string {
	var missing []string
	if c.Notion.APIKey == "" {
		missing = append(missing, "NOTION_API_KEY")
	}
	if c.Notion.DatabaseID == "" {
		missing = append(missing, "NOTION_DATABASE_ID")
	}
	return missing
}

// Secrets returns the credential values keyed by environment name, for
// status displays. Callers must not print the values unmasked.
func (c *Config) Secrets() map[string]string {
	return map[string]string{
		"ANTHROPIC_API_KEY":  c.Anthropic.APIKey,
		"GROQ_API_KEY":       c.Groq.APIKey,
		"GEMINI_API_KEY":     c.Gemini.APIKey,
		"NOTION_API_KEY":     c.Notion.APIKey,
		"NOTION_DATABASE_ID": c.Notion.DatabaseID,
		"SLACK_WEBHOOK_URL":  c.Slack.WebhookURL,
	}
}

// Mask keeps the first and last three characters of a secret.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= 6 {
		return "***"
	}
	return string(runes[:3]) + "..." + string(runes[len(runes)-3:])
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
