// Package config loads lexiz settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/quizgen"
)

// Config holds all configuration for lexiz.
type Config struct {
	LLM    llm.Config   `yaml:"llm"`
	DB     string       `yaml:"db"`
	Audio  AudioConfig  `yaml:"audio"`
	Quiz   QuizConfig   `yaml:"quiz"`
	Server ServerConfig `yaml:"server"`
}

// AudioConfig holds playback configuration.
type AudioConfig struct {
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"`
}

// QuizConfig holds question generation configuration.
type QuizConfig struct {
	Questions int `yaml:"questions"`
}

// ServerConfig holds HTTP API configuration.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LLM:   llm.DefaultConfig(),
		Audio: AudioConfig{Volume: 0.8},
		Quiz:  QuizConfig{Questions: quizgen.DefaultBatchSize},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lexiz/config.yaml, falling back to
// ~/.config/lexiz/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lexiz", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lexiz", "config.yaml"), nil
}

// Load reads the file at path over the defaults and then applies
// environment overrides. An empty path loads DefaultPath, which may be
// absent. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			cfg = cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return Config{}, fmt.Errorf("config: %w", err)
			}
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg = cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays LEXIZ_* environment variables onto c.
func (c Config) ApplyEnv() Config {
	c.LLM = c.LLM.ApplyEnv()

	if v := os.Getenv("LEXIZ_DB"); v != "" {
		c.DB = v
	}
	if v := os.Getenv("LEXIZ_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEXIZ_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v, err := strconv.ParseBool(os.Getenv("LEXIZ_MUTE")); err == nil {
		c.Audio.Mute = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("LEXIZ_VOLUME"), 64); err == nil {
		c.Audio.Volume = v
	}
	if v, err := strconv.Atoi(os.Getenv("LEXIZ_QUESTIONS")); err == nil {
		c.Quiz.Questions = v
	}
	return c
}

// Validate checks ranges that the rest of the program relies on.
func (c Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %g", c.Audio.Volume)
	}
	if c.Quiz.Questions < 1 || c.Quiz.Questions > 60 {
		return fmt.Errorf("quiz.questions must be between 1 and 60, got %d", c.Quiz.Questions)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
