package cmd

import (
	"fmt"

	"github.com/GriffinCanCode/wildcard/internal/pathset"
	"github.com/spf13/cobra"
)

// NewZipCommand creates and returns the zip subcommand
func NewZipCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zip <dir> <dest> [pattern...]",
		Short: "Write the matched files to a zip archive",
		Long: `Write the files under dir matched by the patterns to a zip archive at
dest. Entries are named by their path relative to dir. Directories are not
stored, and no archive is written when nothing matches.`,
		Args: cobra.MinimumNArgs(2),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			c, err := env.selectEntries(args[0], args[2:], false)
			if err != nil {
				return err
			}

			files := c.FilesOnly().Count()
			if err := c.Zip(args[1]); err != nil {
				return err
			}
			reportArchive(cmd, args[1], files)
			return nil
		}),
	}

	return cmd
}

// NewTarCommand creates and returns the tar subcommand
func NewTarCommand(env *environment) *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "tar <dir> <dest> [pattern...]",
		Short: "Write the matched files to a tar archive",
		Long: `Write the files under dir matched by the patterns to a tar archive at
dest, optionally compressed with gzip or zstd. The default compression comes
from the configuration.`,
		Args: cobra.MinimumNArgs(2),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("compression") {
				compression = env.cfg.Archive.TarCompression
			}
			comp, err := pathset.ParseCompression(compression)
			if err != nil {
				return err
			}

			c, err := env.selectEntries(args[0], args[2:], false)
			if err != nil {
				return err
			}

			files := c.FilesOnly().Count()
			if err := c.Tar(args[1], comp); err != nil {
				return err
			}
			reportArchive(cmd, args[1], files)
			return nil
		}),
	}

	cmd.Flags().StringVar(&compression, "compression", "", "none, gzip or zstd")

	return cmd
}

func reportArchive(cmd *cobra.Command, dest string, files int) {
	out := cmd.OutOrStdout()
	if files == 0 {
		fmt.Fprintln(out, "No files matched, nothing written")
		return
	}
	fmt.Fprintf(out, "Archived %d files to %s\n", files, dest)
}
