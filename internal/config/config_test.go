package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Quiz.Questions)
	assert.Equal(t, 0.8, cfg.Audio.Volume)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
db: /tmp/lexiz.db
llm:
  provider: openai
  openai:
    api_key: sk-file
    model: gpt-4.1
  speech:
    voice: nova
  timeout: 45s
audio:
  mute: true
  volume: 0.5
quiz:
  questions: 12
server:
  addr: ":9000"
  allowed_origins: ["https://lexiz.example"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/lexiz.db", cfg.DB)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "nova", cfg.LLM.Speech.Voice)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 12, cfg.Quiz.Questions)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://lexiz.example"}, cfg.Server.AllowedOrigins)

	// Unset keys keep their defaults.
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
db: /tmp/from-file.db
llm:
  provider: openai
audio:
  volume: 0.5
`)
	t.Setenv("LEXIZ_DB", "/tmp/from-env.db")
	t.Setenv("LEXIZ_LLM_PROVIDER", "anthropic")
	t.Setenv("LEXIZ_VOLUME", "0.25")
	t.Setenv("LEXIZ_MUTE", "true")
	t.Setenv("LEXIZ_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DB)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"volume too high", "audio:\n  volume: 1.5\n"},
		{"zero questions", "quiz:\n  questions: 0\n"},
		{"malformed yaml", "quiz: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_NoConfigDirStillValidatesEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	t.Setenv("LEXIZ_QUESTIONS", "12")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Quiz.Questions)

	t.Setenv("LEXIZ_QUESTIONS", "500")
	_, err = Load("")
	assert.ErrorContains(t, err, "quiz.questions")

	t.Setenv("LEXIZ_QUESTIONS", "")
	t.Setenv("LEXIZ_VOLUME", "2")
	_, err = Load("")
	assert.ErrorContains(t, err, "audio.volume")
}

func TestDefaultPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "lexiz", "config.yaml"), p)
}
