package grep

import (
	"github.com/apayne/lgrep/internal/fileutil"
)

// Search scans the named files in order and returns the rendered output
// for every matching line. Files are processed in the order given and
// lines within a file in file order, so the result order is stable.
//
// In FilenamesOnly mode a file contributes at most one entry — its name —
// and scanning of that file stops at the first match.
//
// Any failure to open or read a file aborts the whole search: the error
// identifies the failing file and no partial results are returned.
func Search(pattern string, flags Flags, fileNames []string) ([]string, error) {
	results := make([]string, 0)

	for _, fileName := range fileNames {
		matches, err := searchFile(pattern, flags, fileName, len(fileNames))
		if err != nil {
			return nil, err
		}
		results = append(results, matches...)
	}

	return results, nil
}

// searchFile scans a single file and returns its formatted matches.
func searchFile(pattern string, flags Flags, fileName string, totalFiles int) ([]string, error) {
	var matches []string

	err := fileutil.ForEachLine(fileName, func(lineNumber int, line string) bool {
		if !Matches(line, pattern, flags) {
			return true
		}
		if flags.FilenamesOnly {
			// One entry per file; the remaining lines cannot add output.
			matches = append(matches, fileName)
			return false
		}
		matches = append(matches, FormatResult(fileName, lineNumber, line, flags, totalFiles))
		return true
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
