package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for wildcard
func NewRootCommand() *cobra.Command {
	env := &environment{}

	cmd := &cobra.Command{
		Use:   "wildcard",
		Short: "Select files with Ant-style glob patterns",
		Long: `Wildcard selects files and directories under a root using glob patterns
("*", "?", "**") or regular expressions, and copies, deletes or archives
the selection.

Patterns starting with "!" exclude entries. With no patterns every entry
under the root is selected. The root may also be written as "dir|pattern|..."`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&env.opts.configPath, "config", "", "YAML or TOML config file")
	flags.StringArrayVar(&env.opts.excludes, "exclude", nil, "exclude pattern added to the defaults (repeatable)")
	flags.BoolVar(&env.opts.ignoreCase, "ignore-case", false, "match glob patterns case-insensitively")
	flags.StringVar(&env.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&env.opts.metricsOut, "metrics-out", "", "write Prometheus metrics to this file on exit")

	// Add subcommands
	cmd.AddCommand(NewListCommand(env))
	cmd.AddCommand(NewCopyCommand(env))
	cmd.AddCommand(NewDeleteCommand(env))
	cmd.AddCommand(NewZipCommand(env))
	cmd.AddCommand(NewTarCommand(env))

	return cmd
}
