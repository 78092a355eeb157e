package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GriffinCanCode/wildcard/internal/pathset"
	"github.com/fatih/color"
	"github.com/gabriel-vasile/mimetype"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type listOptions struct {
	filesOnly bool
	dirsOnly  bool
	flatten   bool
	relative  bool
	long      bool
	regex     bool
	delimiter string
}

// NewListCommand creates and returns the list subcommand
func NewListCommand(env *environment) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <dir> [pattern...]",
		Short: "Print the entries matched by the patterns",
		Long: `Print the entries under dir matched by the patterns, sorted by path.

Examples:
  wildcard list src "**/*.go" "!**/*_test.go"
  wildcard list "docs|**/*.md" --relative
  wildcard list . ".*\.ya?ml" --regex --long`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.run(func(cmd *cobra.Command, args []string) error {
			if opts.filesOnly && opts.dirsOnly {
				return fmt.Errorf("--files and --dirs are mutually exclusive")
			}

			c, err := env.selectEntries(args[0], args[1:], opts.regex)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), applyViews(c, opts), opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.filesOnly, "files", false, "only list files")
	cmd.Flags().BoolVar(&opts.dirsOnly, "dirs", false, "only list directories")
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "re-root each file at its parent directory")
	cmd.Flags().BoolVar(&opts.relative, "relative", false, "print paths relative to the scan root")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "print kind, size and MIME type")
	cmd.Flags().BoolVar(&opts.regex, "regex", false, "treat patterns as regular expressions")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "\n", "separator between entries")

	return cmd
}

func applyViews(c *pathset.Collection, opts *listOptions) *pathset.Collection {
	if opts.flatten {
		c = c.Flatten()
	}
	if opts.filesOnly {
		c = c.FilesOnly()
	}
	if opts.dirsOnly {
		c = c.DirsOnly()
	}
	return c
}

func writeList(out io.Writer, c *pathset.Collection, opts *listOptions) error {
	colorOutput := out == io.Writer(os.Stdout) && isatty.IsTerminal(os.Stdout.Fd())
	dirColor := color.New(color.FgBlue, color.Bold)
	if !colorOutput {
		dirColor.DisableColor()
	}

	lines := make([]string, 0, c.Count())
	for _, e := range c.Entries() {
		name := e.Path()
		if opts.relative {
			name = e.Name
		}

		info, err := e.Stat()
		isDir := err == nil && info.IsDir()
		if isDir {
			name = dirColor.Sprint(name)
		}

		if opts.long {
			lines = append(lines, longLine(e, info, err, name))
			continue
		}
		lines = append(lines, name)
	}

	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, opts.delimiter))
	return err
}

// longLine formats "kind size mime name".
func longLine(e pathset.Entry, info os.FileInfo, statErr error, name string) string {
	switch {
	case statErr != nil:
		return fmt.Sprintf("%-4s %10s  %-28s %s", "?", "-", "-", name)
	case info.IsDir():
		return fmt.Sprintf("%-4s %10s  %-28s %s", "dir", "-", "-", name)
	}

	mime := "-"
	if m, err := mimetype.DetectFile(e.Path()); err == nil {
		mime = m.String()
	}
	return fmt.Sprintf("%-4s %10d  %-28s %s", "file", info.Size(), mime, name)
}
