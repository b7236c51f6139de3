// Package extract turns a normalized email body (and optionally its subject
// line) into the structured fields of a purchase order. Resolution runs in
// three passes (labeled lines, conversational fallbacks over the whole text,
// then subject-derived hints), and a field set by an earlier pass is never
// overwritten by a later one.
package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/adewale-s/po-intake/internal/entity"
	"github.com/adewale-s/po-intake/internal/ner"
	"github.com/adewale-s/po-intake/internal/textproc"
)

// Extractor orchestrates the field-resolution passes.
type Extractor struct {
	NER           ner.Recognizer // optional; nil disables the entity fallback
	MinNameTokens int
	Now           func() time.Time
	Log           *slog.Logger
}

func New(rec ner.Recognizer, minNameTokens int, log *slog.Logger) *Extractor {
	if minNameTokens < 1 {
		minNameTokens = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{
		NER:           rec,
		MinNameTokens: minNameTokens,
		Now:           time.Now,
		Log:           log,
	}
}

var (
	reNameLabelNoise = regexp.MustCompile(`(?i)\b(?:retailer|customer|company|name)\b`)
	reProductNoise   = regexp.MustCompile(`(?i)\b(?:i\s*want|need|product|item|model|called|namely|to\s*buy)\b`)
	reAddressNoise   = regexp.MustCompile(`(?i)\b(?:address|deliver\s*to|delivery\s*location|ship\s*to|located\s*at|based\s*in|i\s*am\s*from)\b`)
	reNamePhraseNoise = regexp.MustCompile(`(?i)\b(?:my\s*name\s*is|this\s*is|i\s*am)\b`)

	reSubjectProduct = regexp.MustCompile(`(?i)(?:order\s*for|place\s*order\s*for|places?\s+new\s+order\s*for|po\s*for)\s+(.+)`)
)

// Extract resolves order fields from an email body and subject.
func (e *Extractor) Extract(body, subject string) entity.ExtractedFields {
	var f entity.ExtractedFields

	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}
	raw := textproc.Normalize(body)
	lines := textproc.SplitLines(raw)

	// PASS 1: real labeled key/value lines only
	for i, ln := range lines {
		if f.Product == nil {
			if v := labeledValue(ln, FieldProduct); v != "" {
				f.Product = str(extendWrapped(i, lines, v))
				continue
			}
		}
		if f.Quantity == nil {
			if v := labeledValue(ln, FieldQuantity); v != "" {
				q := ResolveQuantity(v)
				if q == "" {
					q = v
				}
				f.Quantity = str(q)
			}
		}
		if f.DueDate == nil {
			if v := labeledValue(ln, FieldDueDate); v != "" {
				if d := ResolveDueDate(v, now); d != "" {
					f.DueDate = str(d)
				}
			}
		}
		if f.RetailerAddress == nil {
			if v := labeledValue(ln, FieldAddress); v != "" {
				f.RetailerAddress = str(extendWrapped(i, lines, v))
			}
		}
		if f.RetailerName == nil {
			if v := labeledValue(ln, FieldName); v != "" {
				if cleaned := scrub(v, reNameLabelNoise); cleaned != "" {
					f.RetailerName = str(cleaned)
				}
			}
		}
		if f.RetailerEmail == nil {
			if em := FindEmail(ln); em != "" {
				f.RetailerEmail = str(em)
			}
		}
	}

	// PASS 2: conversational and whole-text fallbacks
	if f.Product == nil {
		if v := ResolveProduct(raw); v != "" {
			f.Product = str(v)
		}
	}
	if f.Quantity == nil {
		if v := ResolveQuantity(raw); v != "" {
			f.Quantity = str(v)
		}
	}
	if f.DueDate == nil {
		if v := ResolveDueDate(raw, now); v != "" {
			f.DueDate = str(v)
		}
	}
	if f.RetailerAddress == nil {
		if v := ResolveAddress(raw); v != "" {
			f.RetailerAddress = str(v)
		}
	}
	if f.RetailerEmail == nil {
		if v := FindEmail(raw); v != "" {
			f.RetailerEmail = str(v)
		}
	}
	if f.RetailerName == nil {
		v := ResolveNameConversational(raw)
		if v == "" {
			v = ResolveNameSignature(lines)
		}
		if v != "" {
			f.RetailerName = str(v)
		}
	}
	if f.RetailerName == nil {
		if v := e.entityFallback(raw); v != "" {
			f.RetailerName = str(v)
		}
	}

	// PASS 3: subject help
	if subject != "" && f.Product == nil {
		if m := reSubjectProduct.FindStringSubmatch(subject); m != nil {
			f.Product = str(strings.Trim(m[1], " ."))
		}
	}
	if subject != "" && f.DueDate == nil {
		if v := ResolveDueDate(subject, now); v != "" {
			f.DueDate = str(v)
		}
	}

	// Cleanups: residual label and phrase fragments that leak into values
	if f.Product != nil {
		f.Product = reset(scrub(*f.Product, reProductNoise))
	}
	if f.RetailerAddress != nil {
		f.RetailerAddress = reset(scrub(*f.RetailerAddress, reAddressNoise))
	}
	if f.RetailerName != nil {
		f.RetailerName = reset(scrub(*f.RetailerName, reNamePhraseNoise))
	}

	return f
}

// entityFallback asks the injected recognizer for an ORG or PERSON span.
// The recognizer is fallible: errors and absent results both mean "no name",
// never a failed extraction.
func (e *Extractor) entityFallback(text string) string {
	if e.NER == nil {
		return ""
	}
	entities, err := e.NER.Recognize(text)
	if err != nil {
		e.Log.Warn("entity recognizer failed, skipping fallback", "error", err)
		return ""
	}
	return ner.FirstName(entities, e.MinNameTokens)
}

// scrub removes noise-word matches and tidies the remainder.
func scrub(v string, noise *regexp.Regexp) string {
	v = noise.ReplaceAllString(v, "")
	v = reInnerWS.ReplaceAllString(v, " ")
	return strings.Trim(v, " ,.;")
}

var reInnerWS = regexp.MustCompile(`\s+`)

func str(s string) *string { return &s }

// reset maps "" back to nil so a cleanup that consumed the whole value does
// not count as a filled field.
func reset(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
