// log.go implements the "tempo log" command for reviewing past sessions.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpl-au/tempo/internal/durparse"
	"github.com/jpl-au/tempo/internal/log"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "List recent stopwatch sessions",
		Long:  `List recent stopwatch sessions from the session log, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			limit, _ := c.Flags().GetInt("limit")

			if err := log.Open(); err != nil {
				return fmt.Errorf("open session log: %w", err)
			}

			sessions := log.RecentSessions(limit)
			if len(sessions) == 0 {
				fmt.Fprintln(out, "no recorded sessions")
				return nil
			}

			prec := Precision()
			for _, s := range sessions {
				name := s.Name
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(out, "%s  %s  %d commands  %s\n",
					time.Unix(s.Start, 0).Format("2006-01-02 15:04"),
					durparse.FormatClock(s.Elapsed, prec), s.Commands, name)
			}
			return nil
		},
	}
	c.Flags().Int("limit", 20, "Maximum sessions to list")
	return c
}

func init() {
	rootCmd.AddCommand(newLogCmd())
}
