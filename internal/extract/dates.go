package extract

import (
	"regexp"
	"strings"
	"time"
)

const monthsPat = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// Ordered date patterns. The order encodes preference: day-first numeric,
// ISO, "14 November 2025", "Nov 14, 2025".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}[/\-]\d{1,2}[/\-]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+` + monthsPat + `\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b` + monthsPat + `\s+\d{1,2},?\s+\d{4}\b`),
}

var reDateCue = regexp.MustCompile(`(?i)(?:on\s*or\s*before|due\s*(?:on|by)|required\s*by|deliver(?:ed)?\s*by|before|by)\s+(.{0,60})`)

// Strict layouts require a complete day+month+year. Numeric dates are
// day-first, matching how the labeled emails write them.
var strictLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"2006/1/2",
	"2/1/06",
	"2-1-06",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
}

// Lenient layouts omit the year; the year is filled in with a preference for
// dates in the future relative to "now".
var lenientLayouts = []string{
	"2/1",
	"2-1",
	"2 January",
	"2 Jan",
	"January 2",
	"Jan 2",
}

var (
	reOrdinal   = regexp.MustCompile(`(\d)(?:st|nd|rd|th)\b`)
	reMonthWord = regexp.MustCompile(`(?i)\b` + monthsPat + `\b\.?`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

var fullMonths = map[string]string{
	"january": "January", "february": "February", "march": "March",
	"april": "April", "may": "May", "june": "June", "july": "July",
	"august": "August", "september": "September", "october": "October",
	"november": "November", "december": "December",
}

func canonicalMonth(tok string) string {
	w := strings.ToLower(strings.TrimSuffix(tok, "."))
	if full, ok := fullMonths[w]; ok {
		return full
	}
	if len(w) >= 3 {
		// abbreviations, including "sept", normalize to Go's 3-letter form
		return strings.ToUpper(w[:1]) + w[1:3]
	}
	return tok
}

// tidyDateFragment prepares a fragment for time.Parse: ordinal suffixes
// dropped, month tokens canonicalized, whitespace collapsed.
func tidyDateFragment(frag string) string {
	frag = reOrdinal.ReplaceAllString(frag, "$1")
	frag = reMonthWord.ReplaceAllStringFunc(frag, canonicalMonth)
	frag = reSpaces.ReplaceAllString(frag, " ")
	return strings.Trim(frag, " ,.;")
}

// parseDate parses a date fragment, strict first, then lenient with a future
// preference. Returns the zero time when both fail; it never panics on
// malformed input.
func parseDate(frag string, now time.Time) (time.Time, bool) {
	frag = tidyDateFragment(frag)
	if frag == "" {
		return time.Time{}, false
	}
	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, frag); err == nil {
			return t, true
		}
	}
	for _, layout := range lenientLayouts {
		t, err := time.Parse(layout, frag)
		if err != nil {
			continue
		}
		t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if t.Before(truncateDay(now)) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// General date-phrase patterns for the last-resort scan: month-name phrases
// with optional year, and numeric day/month pairs with optional year.
var searchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+` + monthsPat + `\b\.?(?:,?\s+\d{4})?`),
	regexp.MustCompile(`(?i)\b` + monthsPat + `\b\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`),
	regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}(?:[/\-]\d{2,4})?\b`),
}

var reBareYear = regexp.MustCompile(`\b20\d{2}\b`)

// ResolveDueDate extracts a due date from text using a three-tier strategy:
// a cue phrase followed by a known pattern, a whole-text scan with the same
// patterns, and finally a general date-phrase search preferring fragments
// with a slash, dash, or month name. The result is an ISO calendar date, or
// "" when nothing resolves.
func ResolveDueDate(text string, now time.Time) string {
	if text == "" {
		return ""
	}
	// 1) look near cues
	if m := reDateCue.FindStringSubmatch(text); m != nil {
		frag := m[1]
		for _, pat := range datePatterns {
			if hit := pat.FindString(frag); hit != "" {
				if t, ok := parseDate(hit, now); ok {
					return t.Format("2006-01-02")
				}
			}
		}
	}
	// 2) scan entire text
	for _, pat := range datePatterns {
		if hit := pat.FindString(text); hit != "" {
			if t, ok := parseDate(hit, now); ok {
				return t.Format("2006-01-02")
			}
		}
	}
	// 3) general search; fragments carrying a month name or separator win
	// over bare-number hits
	for _, pat := range searchPatterns {
		for _, hit := range pat.FindAllString(text, -1) {
			if t, ok := parseDate(hit, now); ok {
				return t.Format("2006-01-02")
			}
		}
	}
	if y := reBareYear.FindString(text); y != "" {
		if t, err := time.Parse("2006", y); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
