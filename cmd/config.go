// config.go implements the "tempo config" command for configuration
// management.
//
// Design: Config follows a cascade model similar to git: local config
// (.tempo/config.yaml) takes precedence over global (~/.tempo/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/tempo/internal/config"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  tempo config                      # show config
  tempo config display.precision    # show display.precision value
  tempo config display.precision 4  # set display.precision

Configuration locations:
  Global: ~/.tempo/config.yaml
  Local:  .tempo/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.tempo/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var fileCfg *config.Config
	var err error
	if forceLocal {
		fileCfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		fileCfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	scopeName := "global"
	if fileCfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values
		for _, k := range config.ValidKeys() {
			v, _ := fileCfg.Get(k)
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}

	case 1:
		// Get single value
		v, err := fileCfg.Get(args[0])
		if err != nil {
			return fmt.Errorf("config get %q: %w", args[0], err)
		}
		fmt.Fprintln(out, v)

	case 2:
		// Set value - write to same place we read from
		if err := fileCfg.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("config set %q: %w", args[0], err)
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("config save: %w", err)
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
