/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: running tempo with no subcommand starts the interactive shell.
// PersistentPreRunE loads configuration so flag accessors can fall back to
// configured values; subcommands (config, guide, version, log) reuse the
// same config without reloading it.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/tempo/internal/log"
	"github.com/jpl-au/tempo/internal/shell"
	"github.com/jpl-au/tempo/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Terminal stopwatch with a small duration-expression language",
	Long: `An interactive terminal stopwatch.

Elapsed time can be set or offset with duration expressions in either a
clock form (1:30, 0:05:00.25) or a unit form (90s, 1.5h). Run "tempo guide
expressions" for the full syntax.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		if LogEnabled() {
			if err := log.Open(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: session log unavailable: %v\n", err)
			} else if wd, err := os.Getwd(); err == nil {
				log.SetProject(wd)
			}
		}

		sh := shell.New(shell.Options{
			Name:      Name(),
			Precision: Precision(),
			Version:   version.Short(),
			Color:     ColorEnabled(),
			Visual:    VisualEnabled(),
			TTY:       stdoutIsTerminal(),
			Out:       out,
		})
		return sh.Run()
	},
}

// Execute runs the root command and handles process lifecycle. The session
// log is closed on the way out; exit code 1 indicates error.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
