package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCopyCommand creates and returns the copy subcommand
func NewCopyCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <dir> <dest> [pattern...]",
		Short: "Copy the matched entries to another directory",
		Long: `Copy the entries under dir matched by the patterns to dest, keeping
their paths relative to dir. If any copy fails the files written so far
are removed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			c, err := env.selectEntries(args[0], args[2:], false)
			if err != nil {
				return err
			}

			copied, err := c.CopyTo(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d entries to %s\n", copied.Count(), args[1])
			return nil
		}),
	}

	return cmd
}
