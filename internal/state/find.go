package state

import (
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/markdown"
	"golang.org/x/text/cases"
)

// findMatches returns the indices of lines whose text contains query,
// compared case-insensitively.
func findMatches(lines []markdown.Line, query string) []int {
	if query == "" {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(query)

	var matches []int
	for i, line := range lines {
		if strings.Contains(fold.String(line.Text()), needle) {
			matches = append(matches, i)
		}
	}
	return matches
}

// firstMatchFrom picks the first match at or below line from, wrapping to
// the first match overall.
func firstMatchFrom(matches []int, from int) int {
	for i, line := range matches {
		if line >= from {
			return i
		}
	}
	return 0
}
