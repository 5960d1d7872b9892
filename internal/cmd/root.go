// Package cmd implements the lgrep command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apayne/lgrep/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrNoMatches is returned by the root command when the search completed
// without selecting any line or file.
var ErrNoMatches = errors.New("no matches found")

// rootOptions holds the flag values bound on the root command.
type rootOptions struct {
	lineNumbers     bool
	filenamesOnly   bool
	caseInsensitive bool
	invertMatch     bool
	matchEntireLine bool
	colorMode       string
	configPath      string
	debug           bool
}

// NewRootCommand creates and returns the root cobra command for lgrep
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lgrep [flags] <pattern> [file...]",
		Short: "Search files for lines containing a literal pattern",
		Long: `lgrep searches the named files for lines containing the given pattern
and prints every matching line. The pattern is always literal text,
never a regular expression.

Defaults are read from .lgrep.yaml (or the file given with --config) and
LGREP_* environment variables; command-line flags win over both.

Exit status is 0 when at least one line (or file, with -l) was selected,
1 when nothing matched, and 2 when an error occurred.`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		// Silence cobra's own reporting; Execute owns error output and exit codes
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix each matching line with its line number")
	flags.BoolVarP(&opts.filenamesOnly, "files-with-matches", "l", false, "print only the names of files with matching lines")
	flags.BoolVarP(&opts.caseInsensitive, "ignore-case", "i", false, "ignore case distinctions in pattern and lines")
	flags.BoolVarP(&opts.invertMatch, "invert-match", "v", false, "select lines that do not contain the pattern")
	flags.BoolVarP(&opts.matchEntireLine, "line-regexp", "x", false, "select only lines that equal the pattern exactly")
	flags.StringVar(&opts.colorMode, "color", config.ColorAuto, "colorize output: auto, always or never")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the configuration file")
	flags.BoolVar(&opts.debug, "debug", false, "write diagnostic logging to stderr")

	return cmd
}

// Execute runs the root command and returns the process exit code:
// 0 when at least one result was selected, 1 when nothing matched and
// 2 when the search failed.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrNoMatches) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}
