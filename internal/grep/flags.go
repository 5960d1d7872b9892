// Package grep implements literal line matching over text files.
//
// The package is a pure library: it performs no logging and holds no
// global state. Matching is always literal — the pattern is compared as
// plain text, never as a regular expression.
package grep

// Flags controls how lines are matched and how results are rendered.
// A Flags value is built once per search and never mutated afterward.
type Flags struct {
	// LineNumbers prefixes each reported line with its 1-based line number
	LineNumbers bool

	// FilenamesOnly reports each file with at least one match exactly once,
	// by name, instead of reporting individual lines
	FilenamesOnly bool

	// CaseInsensitive folds both line and pattern to lower case before comparing
	CaseInsensitive bool

	// InvertMatch reports the lines that do NOT match the pattern
	InvertMatch bool

	// MatchEntireLine requires the whole line to equal the pattern
	// instead of merely containing it
	MatchEntireLine bool
}

// ParseFlags builds Flags from raw command-line style tokens.
// Recognized tokens are -n, -l, -i, -v and -x; anything else is
// silently ignored, so flag construction never fails.
func ParseFlags(tokens []string) Flags {
	var flags Flags
	for _, token := range tokens {
		switch token {
		case "-n":
			flags.LineNumbers = true
		case "-l":
			flags.FilenamesOnly = true
		case "-i":
			flags.CaseInsensitive = true
		case "-v":
			flags.InvertMatch = true
		case "-x":
			flags.MatchEntireLine = true
		}
	}
	return flags
}
