package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates and returns the delete subcommand
func NewDeleteCommand(env *environment) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "delete <dir> [pattern...]",
		Short: "Delete the matched entries",
		Long: `Delete the entries under dir matched by the patterns. Matched
directories are removed with everything in them, including entries the
patterns did not select. Use --dry-run to see what would be removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			c, err := env.selectEntries(args[0], args[1:], false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, path := range c.Paths() {
					fmt.Fprintf(out, "would delete %s\n", path)
				}
				return nil
			}

			if !c.Delete() {
				return fmt.Errorf("some of %d entries could not be deleted", c.Count())
			}
			fmt.Fprintf(out, "Deleted %d entries\n", c.Count())
			return nil
		}),
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the entries instead of deleting them")

	return cmd
}
