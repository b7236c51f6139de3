// Package validate checks the structural sanity of extracted order fields.
// It is a pure function over the field set: issues out, no mutation of the
// extracted values.
package validate

import (
	"strconv"
	"time"

	"github.com/adewale-s/po-intake/internal/entity"
)

// Issue tags. Stable vocabulary; downstream joins them into the remarks
// column, so don't rename casually.
const (
	IssueMissingQuantity     = "missing-quantity"
	IssueQuantityNotNumeric  = "quantity-not-numeric"
	IssueQuantityNonPositive = "quantity-non-positive"
	IssueMissingUnit         = "missing-unit"
	IssueInvalidDueDate      = "invalid-due-date-format"
)

// dueDateFormats are the explicit formats a due date must parse under.
var dueDateFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"2/1/06",
}

// Result carries the issue list plus the normalized due date when one of the
// known formats parsed.
type Result struct {
	Issues            []string
	NormalizedDueDate *time.Time
}

// Check validates extracted fields and returns the ordered issue list.
func Check(f entity.ExtractedFields) Result {
	var res Result

	if f.Quantity == nil || *f.Quantity == "" {
		res.Issues = append(res.Issues, IssueMissingQuantity)
	} else if q, err := strconv.ParseFloat(*f.Quantity, 64); err != nil {
		res.Issues = append(res.Issues, IssueQuantityNotNumeric)
	} else if q <= 0 {
		res.Issues = append(res.Issues, IssueQuantityNonPositive)
	}

	if f.Unit == nil || *f.Unit == "" {
		res.Issues = append(res.Issues, IssueMissingUnit)
	}

	if f.DueDate != nil && *f.DueDate != "" {
		parsed := false
		for _, format := range dueDateFormats {
			if t, err := time.Parse(format, *f.DueDate); err == nil {
				t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
				res.NormalizedDueDate = &t
				parsed = true
				break
			}
		}
		if !parsed {
			res.Issues = append(res.Issues, IssueInvalidDueDate)
		}
	}

	return res
}
