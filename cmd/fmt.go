package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kestrelab/talkboard/internal/boardfile"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Canonicalize a board file",
	Long: `Load a board file and re-encode it in canonical form: categories in
insertion order, items in insertion order, malformed lines dropped.

By default the canonical form is printed to stdout. With --write the board
file is rewritten in place.

Examples:
  talkboard fmt -f boards/main.board
  talkboard fmt -f boards/main.board --write`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, path, err := loadBoard()
		if err != nil {
			return err
		}

		if fmtWrite {
			return boardfile.Save(path, b)
		}
		return boardfile.Encode(cmd.OutOrStdout(), b)
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"rewrite the board file in place instead of printing")
	rootCmd.AddCommand(fmtCmd)
}
