package textproc

import (
	"regexp"
	"strings"
)

var reInnerSpace = regexp.MustCompile(`\s+`)

// SplitLines splits normalized text into trimmed lines with internal
// whitespace collapsed. Empty lines are dropped; order is preserved because
// continuation-line logic depends on it.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		ln = strings.TrimSpace(reInnerSpace.ReplaceAllString(ln, " "))
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
