package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debugFlag bool

// logger is the shared structured logger for the command shell. Core
// packages never log; they return errors.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Chord reference engine",
	Long:  `Parses chord names, reverse-looks-up note sets, and transposes progressions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debugFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
