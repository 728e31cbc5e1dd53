package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelab/talkboard/internal/history"
	"github.com/kestrelab/talkboard/internal/infrastructure/sqlite"
	"github.com/kestrelab/talkboard/internal/log"
)

var selectCmd = &cobra.Command{
	Use:   "select <path>...",
	Short: "Walk the board's selection state machine",
	Long: `Drive the board's navigation from the top-level view through the given
selection paths. Selecting a category activates it silently; selecting an item
within the active category prints the caption to speak.

With history enabled in the config, spoken captions are recorded to the
utterance database.

Examples:
  talkboard select one apple.png -f boards/main.board
  talkboard select one apple.png two carrot.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := loadBoard()
		if err != nil {
			return err
		}

		var repo history.Repository
		if cfg.History.Enabled {
			db, err := sqlite.NewDB(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer func() { _ = db.Close() }()
			repo = db.Utterances()
		}

		for _, path := range args {
			caption, err := b.Select(path)
			if err != nil {
				return fmt.Errorf("selecting %q: %w", path, err)
			}
			if caption == "" {
				continue // Category selections produce no speech
			}
			fmt.Fprintln(cmd.OutOrStdout(), caption)

			if repo != nil {
				u, err := history.NewUtterance(b.ActiveID(), path, caption)
				if err != nil {
					log.ErrorErr(log.CatCLI, "building utterance", err, "path", path)
					continue
				}
				if err := repo.Record(u); err != nil {
					// History is best-effort: the selection already
					// happened, so log and keep going.
					log.ErrorErr(log.CatDB, "recording utterance", err, "path", path)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
