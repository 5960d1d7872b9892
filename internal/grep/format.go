package grep

import "fmt"

// FormatResult renders a matched line into its final output form.
// Formatting depends only on the flags and on how many files the search
// covers; it never re-evaluates whether the line matches.
//
// FilenamesOnly takes priority and yields the bare file name. Otherwise
// the file name is prepended only when the search spans more than one
// file, and the line number only when LineNumbers is set.
func FormatResult(fileName string, lineNumber int, line string, flags Flags, totalFiles int) string {
	if flags.FilenamesOnly {
		return fileName
	}
	if flags.LineNumbers {
		if totalFiles > 1 {
			return fmt.Sprintf("%s:%d:%s", fileName, lineNumber, line)
		}
		return fmt.Sprintf("%d:%s", lineNumber, line)
	}
	if totalFiles > 1 {
		return fileName + ":" + line
	}
	return line
}
