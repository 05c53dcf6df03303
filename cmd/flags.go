/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Accessors resolve the effective value from flag, config,
// and terminal detection in that order, so command code never needs to
// know where a setting came from.

package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jpl-au/tempo/internal/config"
	"github.com/jpl-au/tempo/internal/durparse"
)

var (
	noColor   bool
	noLog     bool
	precision int
	name      string
)

// cfg is the configuration loaded by the root command's PersistentPreRunE.
var cfg *config.Config

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// loadConfig reads configuration and validates flag values against it.
func loadConfig() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	if precision != -1 && (precision < 0 || precision > durparse.MaxPrecision) {
		return fmt.Errorf("invalid precision %d (valid: 0 to %d)", precision, durparse.MaxPrecision)
	}
	return nil
}

// Precision returns the display precision: the --precision flag if given,
// otherwise the configured value.
func Precision() int {
	if precision != -1 {
		return precision
	}
	if cfg != nil {
		return cfg.Precision()
	}
	return durparse.DefaultPrecision
}

// Name returns the stopwatch name: the --name flag if given, otherwise the
// configured default.
func Name() string {
	if name != "" {
		return name
	}
	if cfg != nil {
		return cfg.Name()
	}
	return ""
}

// ColorEnabled resolves whether output should be styled: --no-color wins,
// then display.color, with "auto" meaning "stderr is a terminal".
func ColorEnabled() bool {
	if noColor {
		return false
	}
	mode := config.ColorAuto
	if cfg != nil {
		mode = cfg.Color()
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// VisualEnabled reports whether parse errors get caret underlines. Visual
// cues follow the terminal, not the colour setting, so piped output stays
// line-oriented.
func VisualEnabled() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// LogEnabled resolves whether this run writes to the session log.
func LogEnabled() bool {
	if noLog {
		return false
	}
	if cfg != nil {
		return cfg.LogEnabled()
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Disable session logging")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", -1, "Display precision in fractional digits (0-9)")
	rootCmd.Flags().StringVarP(&name, "name", "n", "", "Stopwatch name shown in the prompt")
}
