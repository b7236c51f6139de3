package extract

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)

	// conversational cues capture the rest of the line; labeled cues capture
	// up to the next period or newline
	reAddrConversational = regexp.MustCompile(`(?i)(?:i\s*am\s*from|located\s*at|based\s*in)\s*([A-Za-z0-9,\- ]+)`)
	reAddrLabeled        = regexp.MustCompile(`(?i)(?:address|deliver\s*to|delivery\s*location|ship\s*to)\s*[:\-–—=]?\s*([^\n.]+)`)

	// self-introductions; the capture is one to three capitalized words.
	// "I am from ..." never matches here because "from" is lowercase.
	reNameIntro = regexp.MustCompile(`(?i:my\s*name\s*is|this\s*is)\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
	reNameIAm   = regexp.MustCompile(`\bI\s*am\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)

	reSignatureLine = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2}$`)
	reHasDigit      = regexp.MustCompile(`\d`)

	// conversational product mention, bounded so a trailing clause does not
	// bleed into the name
	reProductConversational = regexp.MustCompile(
		`(?i)i\s*(?:want|need|would\s*like|am\s*looking\s*for|want\s*to\s*buy)\s*(?:the\s*)?(?:product|item)?(?:\s*(?:namely|called))?\s+` +
			`([A-Za-z0-9][A-Za-z0-9\s\-&()/]+?)` +
			`(?:\s*,|\s*\.\s|\s+and\s+i\s+need|\s+i\s+need|\s+on\s+or\s+before|\s+by\b|\n|$)`)
	reProductLabeled = regexp.MustCompile(`(?i)(?:product\s*name|product|item|model)\s*[:\-–—=]\s*([^\n,.]+)`)
)

// FindEmail returns the first email address in the text, or "".
func FindEmail(text string) string {
	return reEmail.FindString(text)
}

// ResolveAddress tries conversational cues first, then labeled ones.
func ResolveAddress(text string) string {
	if m := reAddrConversational.FindStringSubmatch(text); m != nil {
		return strings.Trim(m[1], " ,.;")
	}
	if m := reAddrLabeled.FindStringSubmatch(text); m != nil {
		return strings.Trim(m[1], " ,.;")
	}
	return ""
}

// ResolveNameConversational picks a retailer name out of a self-introduction.
func ResolveNameConversational(text string) string {
	if m := reNameIntro.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reNameIAm.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ResolveNameSignature scans the last few lines for a bare capitalized name,
// skipping anything that looks like contact details.
func ResolveNameSignature(lines []string) string {
	start := 0
	if len(lines) > 6 {
		start = len(lines) - 6
	}
	for _, ln := range lines[start:] {
		if strings.Contains(ln, "@") || reHasDigit.MatchString(ln) {
			continue
		}
		if reSignatureLine.MatchString(strings.TrimSpace(ln)) {
			return strings.TrimSpace(ln)
		}
	}
	return ""
}

// ResolveProduct tries a labeled product mention, then a conversational one.
func ResolveProduct(text string) string {
	if m := reProductLabeled.FindStringSubmatch(text); m != nil {
		return strings.Trim(m[1], " ,.;")
	}
	if m := reProductConversational.FindStringSubmatch(text); m != nil {
		return strings.Trim(m[1], " ,.;")
	}
	return ""
}
