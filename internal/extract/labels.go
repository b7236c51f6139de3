package extract

import (
	"regexp"
	"strings"
)

// Field names used by the label matcher. Matching order matters: it is the
// order pass 1 tries fields on each line.
const (
	FieldProduct  = "product"
	FieldQuantity = "quantity"
	FieldDueDate  = "due_date"
	FieldAddress  = "address"
	FieldName     = "retailer_name"
	FieldEmail    = "email"
)

// labelSets holds the per-field label synonyms. Each entry is a regexp
// fragment; a line is a labeled field only when the label is followed by a
// separator (colon, dash, equals, or the word "is") and a value.
var labelSets = map[string][]string{
	FieldProduct:  {`\bproduct\s*name\b`, `\bproduct\b`, `\bitem\b`, `\bmodel\b`},
	FieldQuantity: {`\bquantity\b`, `\bqty\b`, `\bq\.?t\.?y\.?\b`, `\bunits?\b`, `\bpcs?\b`},
	FieldDueDate: {`\bdue\s*date\b`, `\bdelivery\s*date\b`, `\brequired\s*by\b`, `\bneed\s*by\b`,
		`\bdue\s*by\b`, `\bdue\s*on\b`, `\bon\s*or\s*before\b`, `\bdeliver(?:ed)?\s*by\b`, `\bbefore\b`, `\bby\b`},
	FieldAddress: {`\bdelivery\s*location\b`, `\baddress\b`, `\bship\s*to\b`, `\bdeliver\s*to\b`,
		`\blocation\b`, `\bshipping\s*address\b`, `\bbilling\s*address\b`},
	FieldName: {`\bretailer\s*name\b`, `\bcontact\s*person\b`, `\bcustomer\s*name\b`,
		`\bcompany\s*name\b`, `\bname\b`},
	FieldEmail: {`\bemail\b`, `\be-mail\b`, `@`},
}

// fieldOrder is the fixed priority order pass 1 checks fields in.
var fieldOrder = []string{FieldProduct, FieldQuantity, FieldDueDate, FieldAddress, FieldName, FieldEmail}

var kvRegexps = compileKVRegexps()

func compileKVRegexps() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(labelSets))
	for field, pats := range labelSets {
		expr := `(?i)(?:` + strings.Join(pats, "|") + `)\s*(?:[:\-–—=]|\s+is\b)\s*(.+)$`
		out[field] = regexp.MustCompile(expr)
	}
	return out
}

// labeledValue returns the value part of a `<label><sep><value>` line for the
// given field, or "" when the line is not a labeled instance of that field.
// A bare mention of a label word inside a sentence does not count.
func labeledValue(line, field string) string {
	m := kvRegexps[field].FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], " ,.;")
}

// matchesAnyLabel reports whether the line is a labeled instance of any field.
func matchesAnyLabel(line string) bool {
	for field := range kvRegexps {
		if labeledValue(line, field) != "" {
			return true
		}
	}
	return false
}

var reStopMarker = regexp.MustCompile(`(?i)\b(?:thanks|thank\s*you|best|regards|email|contact|phone|mobile|subject)\b`)

const maxContinuationLen = 80

// extendWrapped appends continuation lines to a matched value. Extension
// stops at the first line that is itself a labeled field, carries a signature
// or contact stop marker, or is longer than 80 characters without a comma.
func extendWrapped(idx int, lines []string, acc string) string {
	val := acc
	for j := idx + 1; j < len(lines); j++ {
		next := lines[j]
		if reStopMarker.MatchString(next) {
			break
		}
		if matchesAnyLabel(next) {
			break
		}
		if len(next) > maxContinuationLen && !strings.Contains(next, ",") {
			break
		}
		val += " " + strings.Trim(next, " ,.;")
	}
	return strings.TrimSpace(val)
}
