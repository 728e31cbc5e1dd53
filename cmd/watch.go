package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/boardfile"
	"github.com/kestrelab/talkboard/internal/log"
	"github.com/kestrelab/talkboard/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a board file and report reloads",
	Long: `Watch the board file for changes and reload it whenever it is saved,
printing an updated summary on every reload. Runs until interrupted.

The debounce interval comes from auto_reload_debounce in the config.

Examples:
  talkboard watch -f boards/main.board`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveBoardPath()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		loader := boardfile.NewCachedLoader(cfg.BoardOptions()...)

		b, err := loader.Get(ctx, path)
		if err != nil {
			return err
		}
		printSummary(cmd, path, b)

		w, err := watcher.New(watcher.Config{
			BoardPath:   path,
			DebounceDur: cfg.AutoReloadDebounce,
		})
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		changes, err := w.Start()
		if err != nil {
			return err
		}
		log.Info(log.CatWatch, "Watching board file", "path", path)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
				if err := loader.Invalidate(ctx, path); err != nil {
					log.ErrorErr(log.CatCache, "Invalidating cached board", err, "path", path)
				}
				b, err := loader.Get(ctx, path)
				if err != nil {
					// Keep watching; a half-written save often fails
					// once and succeeds on the next event.
					fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", err)
					continue
				}
				printSummary(cmd, path, b)
			}
		}
	},
}

func printSummary(cmd *cobra.Command, path string, b *board.Board) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories\n", path, b.Len())
	for _, cat := range b.Categories() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %q  (%d items)\n", cat.Name(), cat.Label(), cat.Len())
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
