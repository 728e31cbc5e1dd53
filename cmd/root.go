// Package cmd implements the talkboard command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrelab/talkboard/internal/board"
	"github.com/kestrelab/talkboard/internal/boardfile"
	"github.com/kestrelab/talkboard/internal/config"
	"github.com/kestrelab/talkboard/internal/log"
)

var (
	version   = "dev"
	cfgFile   string
	boardPath string
	debug     bool
	cfg       config.Config

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "talkboard",
	Short: "A two-level communication board for augmentative speech",
	Long: `Talkboard manages communication boards: named categories of
image-to-caption items stored in a line-oriented board file. One category is
active at a time and drives navigation; selecting an item produces the text
to speak.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug || os.Getenv("TALKBOARD_DEBUG") != "" {
			cleanup, err := log.Init(".talkboard/debug.log")
			if err != nil {
				return fmt.Errorf("initializing debug log: %w", err)
			}
			logCleanup = cleanup
		} else {
			log.SetEnabled(false)
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
		}
	},
	RunE: runOverview,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/talkboard/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "f", "",
		"path to the board file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to .talkboard/debug.log")

	// Bind flags to viper
	_ = viper.BindPFlag("board_path", rootCmd.PersistentFlags().Lookup("board"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("reselect_policy", defaults.ReselectPolicy)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("history.enabled", defaults.History.Enabled)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .talkboard/config.yaml (current directory)
		// 2. ~/.config/talkboard/config.yaml (user config)
		if _, err := os.Stat(".talkboard/config.yaml"); err == nil {
			viper.SetConfigFile(".talkboard/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "talkboard"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .talkboard/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".talkboard/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// resolveBoardPath returns the board file path from the --board flag or the
// configured default.
func resolveBoardPath() (string, error) {
	if boardPath != "" {
		return boardPath, nil
	}
	if cfg.BoardPath != "" {
		return cfg.BoardPath, nil
	}
	return "", fmt.Errorf("no board file given: pass --board or set board_path in the config")
}

// loadBoard loads the board file strictly, applying configured options.
func loadBoard() (*board.Board, string, error) {
	path, err := resolveBoardPath()
	if err != nil {
		return nil, "", err
	}
	b, err := boardfile.Load(path, cfg.BoardOptions()...)
	if err != nil {
		return nil, path, err
	}
	return b, path, nil
}

// runOverview prints a summary of the board: each category with its label
// and item count.
func runOverview(cmd *cobra.Command, args []string) error {
	b, path, err := loadBoard()
	if err != nil {
		return err
	}

	printSummary(cmd, path, b)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
