package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSecrets(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "GROQ_API_KEY", "GEMINI_API_KEY",
		"NOTION_API_KEY", "NOTION_DATABASE_ID", "SLACK_WEBHOOK_URL",
	} {
		t.Setenv(key, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearSecrets(t)
	t.Setenv("EXTRACTOR_PROVIDER", "anthropic")

	cfg, err := LoadFiles(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.Extractor.Provider)
	assert.Equal(t, 2048, cfg.Extractor.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Extractor.Timeout)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.Anthropic.Model)
	assert.Equal(t, "이름", cfg.Notion.TitleProperty)
	assert.Equal(t, "https://notion.so/", cfg.Notion.PageBaseURL)
	assert.True(t, cfg.Notion.WriteBody)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearSecrets(t)
	t.Setenv("EXTRACTOR_PROVIDER", "Groq")

	// godotenv never overrides variables that already exist, so the
	// cleared NOTION_API_KEY stays empty while the unset one is filled in.
	os.Unsetenv("NOTION_DATABASE_ID")
	t.Cleanup(func() { os.Unsetenv("NOTION_DATABASE_ID") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NOTION_DATABASE_ID=db-123\nNOTION_API_KEY=from-file\n"), 0o600))

	cfg, err := LoadFiles(envFile)
	require.NoError(t, err)

	assert.Equal(t, ProviderGroq, cfg.Extractor.Provider)
	assert.Equal(t, "db-123", cfg.Notion.DatabaseID)
	assert.Empty(t, cfg.Notion.APIKey)
}

func TestValidate_ReportsEveryMissingKey(t *testing.T) {
	clearSecrets(t)
	t.Setenv("EXTRACTOR_PROVIDER", "anthropic")

	cfg, err := LoadFiles(missingEnvFile(t))
	require.NoError(t, err)

	err = cfg.Validate()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"ANTHROPIC_API_KEY", "NOTION_API_KEY", "NOTION_DATABASE_ID"}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "NOTION_DATABASE_ID")
}

func TestValidate_PerProvider(t *testing.T) {
	cases := []struct {
		provider string
		setKey   func(*Config)
		missing  string
	}{
		{ProviderAnthropic, func(c *Config) { c.Anthropic.APIKey = "k" }, "ANTHROPIC_API_KEY"},
		{ProviderGroq, func(c *Config) { c.Groq.APIKey = "k" }, "GROQ_API_KEY"},
		{ProviderGemini, func(c *Config) { c.Gemini.APIKey = "k" }, "GEMINI_API_KEY"},
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			cfg := &Config{Extractor: ExtractorConfig{Provider: tc.provider}}

			err := cfg.ValidateExtractor()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, []string{tc.missing}, cfgErr.Missing)

			tc.setKey(cfg)
			assert.NoError(t, cfg.ValidateExtractor())
		})
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Extractor: ExtractorConfig{Provider: "openai"}}
	err := cfg.ValidateExtractor()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidateNotion(t *testing.T) {
	cfg := &Config{Notion: NotionConfig{APIKey: "secret"}}
	err := cfg.ValidateNotion()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"NOTION_DATABASE_ID"}, cfgErr.Missing)

	cfg.Notion.DatabaseID = "db"
	assert.NoError(t, cfg.ValidateNotion())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("short"))
	assert.Equal(t, "sk-...xyz", Mask("sk-ant-api03-xyz"))
	assert.Equal(t, "***", Mask("비밀키값"))
	assert.Equal(t, "회의록...웹훅용", Mask("회의록알림슬랙웹훅용"))
}
