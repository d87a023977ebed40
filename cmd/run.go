package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/audio"
	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/pronounce"
	"github.com/abhisek/lexiz/internal/quizgen"
	"github.com/abhisek/lexiz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	// The TUI owns the terminal; diagnostics go to LEXIZ_DEBUG or nowhere.
	if path := os.Getenv("LEXIZ_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "lexiz")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, pr, notice := buildServices(cmd.Context(), cfg, st.EventRepo())

	mixer := audio.NewMixer(audio.OpenDevice(cfg.Audio.Mute), cfg.Audio.Volume)
	defer mixer.Close()

	return app.Run(app.Options{
		Generator:  gen,
		Pronouncer: pr,
		Mixer:      mixer,
		Results:    st.ResultRepo(),
		Volume:     cfg.Audio.Volume,
		Questions:  cfg.Quiz.Questions,
		Notice:     notice,
	})
}

// buildServices wires the question generator and pronunciation client.
// Missing credentials leave the generator without a provider, which then
// reports the problem when a test is started. notice describes what is
// unavailable.
func buildServices(ctx context.Context, cfg config.Config, events store.EventRepo) (*quizgen.LLMGenerator, *pronounce.Client, string) {
	genCfg := quizgen.DefaultConfig()
	genCfg.BatchSize = cfg.Quiz.Questions

	llmCfg, ok := cfg.LLM.Discover()
	if !ok {
		return quizgen.New(nil, genCfg), pronounce.New(nil), "No AI provider configured; set GEMINI_API_KEY to start a test."
	}

	var notice string
	provider, err := llm.NewProvider(ctx, llmCfg, events)
	if err != nil {
		log.Printf("llm provider: %v", err)
		notice = "AI provider failed to start: " + err.Error()
	}

	speaker, err := llm.NewSpeaker(ctx, llmCfg, events)
	if err != nil {
		log.Printf("speech provider: %v", err)
		if notice == "" {
			notice = "Pronunciation unavailable with the " + llmCfg.Provider + " provider."
		}
	}

	return quizgen.New(provider, genCfg), pronounce.New(speaker).WithVoice(llmCfg.Speech.Voice), notice
}
