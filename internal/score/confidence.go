// Package score turns an extracted field set into a confidence score and the
// score into a processing decision. Both mappings are fixed policy, not
// derived from data.
package score

import (
	"math"

	"github.com/adewale-s/po-intake/internal/entity"
)

// Field weights. They sum to 100; a field earns its weight once, filled or
// not at all, with no partial credit.
const (
	weightProduct  = 25
	weightQuantity = 25
	weightDueDate  = 20
	weightName     = 15
	weightEmail    = 10
	weightAddress  = 5
)

// Confidence computes the weighted completeness score, 0-100, rounded to one
// decimal.
func Confidence(f entity.ExtractedFields) float64 {
	score := 0.0
	if filled(f.Product) {
		score += weightProduct
	}
	if filled(f.Quantity) {
		score += weightQuantity
	}
	if filled(f.DueDate) {
		score += weightDueDate
	}
	if filled(f.RetailerName) {
		score += weightName
	}
	if filled(f.RetailerEmail) {
		score += weightEmail
	}
	if filled(f.RetailerAddress) {
		score += weightAddress
	}
	return math.Round(score*10) / 10
}

func filled(p *string) bool {
	return p != nil && *p != ""
}
