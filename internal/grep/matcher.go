package grep

import "strings"

// Matches reports whether a single line satisfies the pattern under the
// given flags. The pattern is literal text: with MatchEntireLine the line
// must equal it exactly, otherwise containing it as a substring is enough.
// CaseInsensitive folds both sides before comparing; InvertMatch negates
// the outcome last.
//
// An empty pattern matches every line in substring mode and only empty
// lines in whole-line mode.
func Matches(line, pattern string, flags Flags) bool {
	if flags.CaseInsensitive {
		line = strings.ToLower(line)
		pattern = strings.ToLower(pattern)
	}

	var matched bool
	if flags.MatchEntireLine {
		matched = line == pattern
	} else {
		matched = strings.Contains(line, pattern)
	}

	if flags.InvertMatch {
		matched = !matched
	}
	return matched
}
