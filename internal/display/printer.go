// Package display renders search results for the terminal.
//
// Coloring is purely presentational: results arrive already formatted and
// the printer never re-decides what matched, it only decorates the output.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/apayne/lgrep/internal/config"
	"github.com/apayne/lgrep/internal/grep"
)

// colorScheme defines consistent colors for the parts of a result line.
// Magenta: file names
// Green: line numbers
// Red bold: pattern occurrences inside matched lines
type colorScheme struct {
	file  *color.Color
	num   *color.Color
	match *color.Color
}

// newColorScheme creates the standard scheme with color forced on or off.
func newColorScheme(enabled bool) *colorScheme {
	scheme := &colorScheme{
		file:  color.New(color.FgMagenta),
		num:   color.New(color.FgGreen),
		match: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{scheme.file, scheme.num, scheme.match} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return scheme
}

// Printer writes search results to an output writer, one per line,
// optionally colorizing file names, line numbers and pattern occurrences.
type Printer struct {
	out       io.Writer
	colorized bool
	scheme    *colorScheme
}

// NewPrinter creates a Printer for the given writer. The mode is one of
// config.ColorAuto, config.ColorAlways or config.ColorNever; in auto mode
// color is enabled only when the writer is a terminal.
func NewPrinter(out io.Writer, mode string) *Printer {
	colorized := false
	switch mode {
	case config.ColorAlways:
		colorized = true
	case config.ColorAuto:
		if f, ok := out.(*os.File); ok {
			colorized = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Printer{
		out:       out,
		colorized: colorized,
		scheme:    newColorScheme(colorized),
	}
}

// Print writes each result on its own line. The flags and file count must
// be the ones the search ran with so the file-name and line-number
// prefixes of each result can be located.
func (p *Printer) Print(results []string, pattern string, flags grep.Flags, totalFiles int) {
	for _, result := range results {
		fmt.Fprintln(p.out, p.render(result, pattern, flags, totalFiles))
	}
}

// render decorates a single formatted result.
func (p *Printer) render(result, pattern string, flags grep.Flags, totalFiles int) string {
	if !p.colorized {
		return result
	}
	if flags.FilenamesOnly {
		return p.scheme.file.Sprint(result)
	}

	// The result carries a file-name prefix only for multi-file searches
	// and a line-number prefix only with LineNumbers set.
	prefixes := 0
	if totalFiles > 1 {
		prefixes++
	}
	if flags.LineNumbers {
		prefixes++
	}
	parts := strings.SplitN(result, ":", prefixes+1)
	if len(parts) != prefixes+1 {
		return result
	}

	var b strings.Builder
	idx := 0
	if totalFiles > 1 {
		b.WriteString(p.scheme.file.Sprint(parts[idx]))
		b.WriteByte(':')
		idx++
	}
	if flags.LineNumbers {
		b.WriteString(p.scheme.num.Sprint(parts[idx]))
		b.WriteByte(':')
		idx++
	}

	content := parts[idx]
	if flags.InvertMatch {
		// Inverted selections have no matching text to highlight.
		b.WriteString(content)
	} else {
		b.WriteString(p.highlight(content, pattern, flags.CaseInsensitive))
	}
	return b.String()
}

// highlight wraps every occurrence of pattern inside line in the match
// color, preserving the original casing of the line.
func (p *Printer) highlight(line, pattern string, caseInsensitive bool) string {
	if pattern == "" {
		return line
	}

	hay, needle := line, pattern
	if caseInsensitive {
		hay = strings.ToLower(line)
		needle = strings.ToLower(pattern)
		// Lower-casing shifts byte offsets for a few runes; skip
		// highlighting rather than mangle the line.
		if len(hay) != len(line) {
			return line
		}
	}

	var b strings.Builder
	for i := 0; ; {
		j := strings.Index(hay[i:], needle)
		if j < 0 {
			b.WriteString(line[i:])
			break
		}
		j += i
		b.WriteString(line[i:j])
		b.WriteString(p.scheme.match.Sprint(line[j : j+len(needle)]))
		i = j + len(needle)
	}
	return b.String()
}
