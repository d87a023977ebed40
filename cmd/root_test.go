package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"LEXIZ_DB", "LEXIZ_MUTE", "LEXIZ_VOLUME", "LEXIZ_QUESTIONS"} {
		t.Setenv(k, "")
	}

	c := &cobra.Command{Use: "lexiz"}
	c.Flags().String("db", "", "")
	c.Flags().String("config", "", "")
	c.Flags().Bool("mute", false, "")
	c.Flags().Float64("volume", 0, "")
	c.Flags().Int("questions", 0, "")
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newFlagCmd(t))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, 30, cfg.Quiz.Questions)
	assert.False(t, cfg.Audio.Mute)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio:\n  volume: 0.4\nquiz:\n  questions: 12\n"), 0o600))

	cfg, err := loadConfig(newFlagCmd(t, "--config", path, "--volume", "0.6", "--mute"))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, 12, cfg.Quiz.Questions)
	assert.True(t, cfg.Audio.Mute)
}

func TestLoadConfig_RejectsBadFlags(t *testing.T) {
	_, err := loadConfig(newFlagCmd(t, "--questions", "500"))
	assert.Error(t, err)

	_, err = loadConfig(newFlagCmd(t, "--volume", "1.5"))
	assert.Error(t, err)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()

	c := newFlagCmd(t, "--db", filepath.Join(dir, "flag", "a.db"))
	cfg, err := loadConfig(c)
	require.NoError(t, err)
	cfg.DB = filepath.Join(dir, "cfg", "b.db")

	p, err := resolveDBPath(c, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag", "a.db"), p)
	assert.DirExists(t, filepath.Join(dir, "flag"))

	p, err = resolveDBPath(newFlagCmd(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.DB, p)
}
