package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "Vocabulary level test for HSK, IELTS and DELE",
	Long: "Lexiz estimates your vocabulary level in Chinese (HSK), English (IELTS) or Spanish (DELE)\n" +
		"with an AI-generated multiple-choice test and spoken pronunciation.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/lexiz/config.yaml)")

	rootCmd.Flags().Bool("mute", false, "Disable sound output")
	rootCmd.Flags().Float64("volume", 0, "Initial volume between 0 and 1 (default from config, 0.8)")
	rootCmd.Flags().Int("questions", 0, "Number of questions per test (default from config, 30)")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads the config file named by --config, or the default one,
// and applies the flags the command defines.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Lookup("mute") != nil && flags.Changed("mute") {
		cfg.Audio.Mute, _ = flags.GetBool("mute")
	}
	if flags.Lookup("volume") != nil && flags.Changed("volume") {
		cfg.Audio.Volume, _ = flags.GetFloat64("volume")
	}
	if flags.Lookup("questions") != nil && flags.Changed("questions") {
		cfg.Quiz.Questions, _ = flags.GetInt("questions")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file or LEXIZ_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads configuration and opens the database it points to.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
