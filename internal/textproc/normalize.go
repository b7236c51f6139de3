package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHyphenWrap = regexp.MustCompile(`-\s*\n\s*`)
	reMultiBlank = regexp.MustCompile(`\n{2,}`)
)

// Normalize cleans a raw email body for extraction. Carriage returns become
// newlines, words split across a line wrap with a hyphen are rejoined, runs
// of blank lines collapse to one. Empty input yields empty output.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = stripControl(s)
	s = reHyphenWrap.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// stripControl drops control characters except newline and tab.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
