package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/track"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		trackID, _ := cmd.Flags().GetString("track")

		if trackID != "" {
			t, err := track.Get(track.ID(trackID))
			if err != nil {
				return err
			}
			trackID = string(t.ID)
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		results, err := s.ResultRepo().QueryResults(ctx, trackID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No results yet. Run lexiz to take a test.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-6s  %-16s  %5s  %7s  %-12s  %s\n",
			"ID", "Timestamp", "Track", "Level", "Score", "Correct", "Vocabulary", "Time")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range results {
			fmt.Printf("%-5d  %-16s  %-6s  %-16s  %4d%%  %3d/%-3d  %-12s  %d:%02d\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Track,
				r.LevelLabel,
				r.Score,
				r.Correct, r.Total,
				r.Vocabulary,
				r.DurationSecs/60, r.DurationSecs%60,
			)
		}

		summaries, err := s.ResultRepo().SummaryByTrack(ctx)
		if err != nil {
			return fmt.Errorf("summarize results: %w", err)
		}
		fmt.Println()
		for _, sum := range summaries {
			fmt.Printf("%-6s  %d tests, best %d%%, average %.0f%%\n",
				sum.Track, sum.Attempts, sum.BestScore, sum.AvgScore)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	historyCmd.Flags().StringP("track", "t", "", "Filter by track (hsk, ielts, dele)")
}
