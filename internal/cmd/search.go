package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/apayne/lgrep/internal/config"
	"github.com/apayne/lgrep/internal/display"
	"github.com/apayne/lgrep/internal/grep"
	"github.com/apayne/lgrep/internal/logger"
)

// runSearch executes the search described by the command line and prints
// the results. It returns ErrNoMatches when nothing was selected.
func runSearch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, opts, cfg); err != nil {
		return err
	}

	pattern := args[0]
	fileNames := args[1:]
	flags := grep.Flags{
		LineNumbers:     cfg.LineNumbers,
		FilenamesOnly:   cfg.FilenamesOnly,
		CaseInsensitive: cfg.CaseInsensitive,
		InvertMatch:     cfg.InvertMatch,
		MatchEntireLine: cfg.MatchEntireLine,
	}

	log := logger.New(cfg.Debug)
	log.Debug().
		Str("pattern", pattern).
		Int("files", len(fileNames)).
		Bool("line_number", flags.LineNumbers).
		Bool("files_with_matches", flags.FilenamesOnly).
		Bool("ignore_case", flags.CaseInsensitive).
		Bool("invert_match", flags.InvertMatch).
		Bool("line_regexp", flags.MatchEntireLine).
		Msg("starting search")

	start := time.Now()
	results, err := grep.Search(pattern, flags, fileNames)
	if err != nil {
		log.Debug().Err(err).Msg("search aborted")
		return err
	}
	log.Debug().
		Int("results", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	printer := display.NewPrinter(cmd.OutOrStdout(), cfg.Color)
	printer.Print(results, pattern, flags, len(fileNames))

	if len(results) == 0 {
		return ErrNoMatches
	}
	return nil
}

// applyFlagOverrides copies explicitly-set CLI flags over the loaded
// configuration. Flags the user did not touch keep the configured defaults.
func applyFlagOverrides(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("line-number") {
		cfg.LineNumbers = opts.lineNumbers
	}
	if fl.Changed("files-with-matches") {
		cfg.FilenamesOnly = opts.filenamesOnly
	}
	if fl.Changed("ignore-case") {
		cfg.CaseInsensitive = opts.caseInsensitive
	}
	if fl.Changed("invert-match") {
		cfg.InvertMatch = opts.invertMatch
	}
	if fl.Changed("line-regexp") {
		cfg.MatchEntireLine = opts.matchEntireLine
	}
	if fl.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if fl.Changed("color") {
		switch opts.colorMode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Color = opts.colorMode
		default:
			return fmt.Errorf("invalid color mode %q (want auto, always or never)", opts.colorMode)
		}
	}
	return nil
}
