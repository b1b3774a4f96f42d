package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

func main() {
	os.Exit(run())
}

func run() int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var exitCode int

	root := &cobra.Command{
		Use:           "shtym",
		Short:         "shtym distills any command's output through an LLM summarizer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			level.Set(slog.LevelDebug)
		}
	}

	root.AddCommand(newRunCmd(logger, &exitCode))

	if err := root.Execute(); err != nil {
		logger.Error("shtym failed", "error", err)
		return 1
	}
	return exitCode
}
