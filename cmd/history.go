package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kestrelab/talkboard/internal/infrastructure/sqlite"
)

var (
	historyLimit  int
	historyCounts bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded utterances",
	Long: `Show the most recently spoken selections, newest first. Requires
history.enabled in the config (selections are only recorded when it is on).

With --counts, print the number of utterances per category instead.

Examples:
  talkboard history
  talkboard history --limit 5
  talkboard history --counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.NewDB(cfg.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer func() { _ = db.Close() }()
		repo := db.Utterances()

		if historyCounts {
			counts, err := repo.CountByCategory()
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(counts))
			for id := range counts {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", id, counts[id])
			}
			return nil
		}

		utterances, err := repo.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, u := range utterances {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
				u.SpokenAt().Format("2006-01-02 15:04:05"),
				u.CategoryID(), u.ImageLoc(), u.Caption())
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"maximum utterances to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyCounts, "counts", false,
		"show utterance counts per category")
	rootCmd.AddCommand(historyCmd)
}
