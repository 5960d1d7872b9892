// Package fileutil provides sequential line reading over named files.
package fileutil

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineBytes bounds the size of a single line the scanner accepts.
const maxLineBytes = 1024 * 1024 // 1 MiB

// ForEachLine opens the named file and invokes fn for each line in order,
// numbering lines from 1. Scanning stops early when fn returns false.
//
// Open and read failures are returned wrapped with the file name; the
// file handle is closed on every path, including early stops and errors.
func ForEachLine(path string, fn func(lineNumber int, line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		if !fn(lineNumber, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// ReadLines reads the whole file into memory as a slice of lines.
// It is a convenience wrapper over ForEachLine for callers that do not
// need early termination.
func ReadLines(path string) ([]string, error) {
	lines := make([]string, 0, 128)
	err := ForEachLine(path, func(_ int, line string) bool {
		lines = append(lines, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
