package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level categories",
	Long: `List the board's top-level category identifiers with their display labels.

Examples:
  talkboard list -f boards/main.board`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := loadBoard()
		if err != nil {
			return err
		}

		for _, cat := range b.Categories() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cat.Name(), cat.Label())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
