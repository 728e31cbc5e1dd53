package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/config"
)

var policyCmd = &cobra.Command{
	Use:   "config:policy <error|noop>",
	Short: "Set the reselect policy in the config file",
	Long: `Set what selecting the already-active category does and persist it to
the config file:

  error - treated as a caller error (default)
  noop  - silently ignored

Comments and other sections of the config file are preserved.

Examples:
  talkboard config:policy noop`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := board.ReselectPolicy(args[0])
		if !policy.IsValid() {
			return fmt.Errorf("invalid reselect policy %q: must be %q or %q",
				args[0], board.ReselectError, board.ReselectNoop)
		}

		path := viper.ConfigFileUsed()
		if path == "" {
			path = ".talkboard/config.yaml"
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
		}

		if err := config.SavePolicy(path, policy); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reselect_policy set to %s in %s\n", policy, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
}
