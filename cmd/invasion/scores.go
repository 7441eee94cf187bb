package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the scoreboard",
	Long: `Browse recorded scores per difficulty.

Without --plain an interactive scoreboard opens; use the arrow keys
or tab to switch difficulty and q to leave.

Examples:
  invasion scores
  invasion scores --plain --difficulty hard
  invasion scores --clear --difficulty easy`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text instead of opening the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded scores (only --difficulty when given)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	difficulty := ""
	if flagDifficulty != "" {
		mode, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = mode.String()
	}

	if flagClear {
		if err := store.ClearScores(difficulty); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store, difficulty)
}

func printScores(store *storage.Store, difficulty string) error {
	scores, err := store.TopScores(difficulty, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invasion' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-7s  %s\n", "Rank", "Score", "Level", "Mode", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-7s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-10s  %-5d  %-8s  %-7s  %s\n",
			i+1, humanize.Comma(int64(e.Score)), e.Level, e.Difficulty, e.Outcome,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(difficulty); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
	return nil
}
