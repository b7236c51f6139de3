// Package ner defines the entity-recognition capability the extractor falls
// back on when its own heuristics come up empty, plus a prose-backed
// implementation. The recognizer is injected so the core can run with a stub
// in tests and degrade gracefully when no backend is available.
package ner

import "strings"

// Labels the extractor cares about.
const (
	LabelOrg      = "ORG"
	LabelPerson   = "PERSON"
	LabelGPE      = "GPE"
	LabelDate     = "DATE"
	LabelCardinal = "CARDINAL"
	LabelProduct  = "PRODUCT"
)

// Entity is one labeled span over the input text.
type Entity struct {
	Text  string
	Label string
}

// Recognizer extracts labeled spans from free text. Implementations must be
// safe to call with arbitrary input; a recognizer that cannot process the
// text returns (nil, err) and the caller degrades to "no result".
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// FirstName returns the first ORG or PERSON span with at least minTokens
// whitespace-separated tokens, or "" when none qualifies.
func FirstName(entities []Entity, minTokens int) string {
	if minTokens < 1 {
		minTokens = 1
	}
	for _, e := range entities {
		if e.Label != LabelOrg && e.Label != LabelPerson {
			continue
		}
		name := strings.TrimSpace(e.Text)
		if len(strings.Fields(name)) >= minTokens {
			return name
		}
	}
	return ""
}
