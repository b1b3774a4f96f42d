package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shtym/shtym/internal/app"
	"github.com/shtym/shtym/internal/profile"
)

// newRunCmd builds the run subcommand. The child's exit code is reported
// through exitCode so main can mirror it.
func newRunCmd(logger *slog.Logger, exitCode *int) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "run [--profile NAME] COMMAND [ARGS...]",
		Short: "Run a command and process its output",
		Long: "Run a command, capture its output, and pass the output through the\n" +
			"processor selected by the profile. Any failure in profile lookup or\n" +
			"processing degrades to emitting the raw output; the exit code always\n" +
			"mirrors the wrapped command's.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.Default(logger)
			*exitCode = a.Run(cmd.Context(), profileName, args)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", profile.DefaultName, "profile to process the output with")
	// Stop flag parsing at the first positional so flags meant for the
	// wrapped command (shtym run echo --help) pass through untouched.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
