package extract

import (
	"regexp"
	"strings"
)

// wordNumbers maps spelled-out quantities onto digit strings.
var wordNumbers = map[string]string{
	"a": "1", "an": "1", "one": "1", "single": "1",
	"two": "2", "couple": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
}

var (
	// a number within a few characters of an explicit quantity label
	reQtyLabeled = regexp.MustCompile(`(?i)\b(?:qty|quantity|units?|pcs?|pieces?|nos?)\b\D{0,5}(\d{1,5})\b`)
	// "need/want/buy/order/purchase [only] <number-or-word>"
	reQtyAction = regexp.MustCompile(`(?i)\b(?:need|want|buy|order|purchase)\s*(?:only\s*)?(\d{1,5}|a|an|one|single|two|couple|three|four|five|six|seven|eight|nine|ten)\b`)
	// bare "<number> units"
	reQtyBareUnits = regexp.MustCompile(`(?i)\b(\d{1,5})\s*(?:units?|pcs?|pieces?|nos?)\b`)
	reDigits       = regexp.MustCompile(`^\d+$`)
)

// ResolveQuantity pulls a quantity out of free text. The result is the digit
// string as written (or mapped from a spelled-out number), not a parsed
// integer; the validator converts and checks it. Returns "" when no attempt
// matches.
func ResolveQuantity(text string) string {
	if text == "" {
		return ""
	}
	if m := reQtyLabeled.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := reQtyAction.FindStringSubmatch(text); m != nil {
		v := strings.ToLower(m[1])
		if reDigits.MatchString(v) {
			return v
		}
		if d, ok := wordNumbers[v]; ok {
			return d
		}
		return v
	}
	if m := reQtyBareUnits.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
