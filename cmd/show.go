package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Show the items of a category",
	Long: `Show the image locations and captions of a category.

Examples:
  talkboard show one -f boards/main.board`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := loadBoard()
		if err != nil {
			return err
		}

		cat, ok := b.Category(args[0])
		if !ok {
			return fmt.Errorf("category %q not found", args[0])
		}

		if cat.Label() != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", cat.Label(), cat.Name())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), cat.Name())
		}
		for _, item := range cat.Items() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\n", item.ImageLoc, item.Caption)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
