package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adewale-s/po-intake/constants"
	"github.com/adewale-s/po-intake/internal/entity"
)

func str(s string) *string { return &s }

func allFields() entity.ExtractedFields {
	return entity.ExtractedFields{
		Product:         str("Dell XPS 13"),
		Quantity:        str("10"),
		DueDate:         str("2025-11-14"),
		RetailerName:    str("TechWorld"),
		RetailerEmail:   str("buy@techworld.example"),
		RetailerAddress: str("Kolkata"),
	}
}

func TestConfidenceWeights(t *testing.T) {
	assert.Equal(t, 100.0, Confidence(allFields()))
	assert.Equal(t, 0.0, Confidence(entity.ExtractedFields{}))

	f := allFields()
	f.RetailerAddress = nil
	assert.Equal(t, 95.0, Confidence(f))

	f = allFields()
	f.Product = nil
	assert.Equal(t, 75.0, Confidence(f))

	f = allFields()
	f.Quantity = nil
	f.DueDate = nil
	assert.Equal(t, 55.0, Confidence(f))
}

func TestConfidenceEmptyStringIsNotFilled(t *testing.T) {
	f := entity.ExtractedFields{Product: str("")}
	assert.Equal(t, 0.0, Confidence(f))
}

func TestStatusThresholds(t *testing.T) {
	tests := []struct {
		confidence float64
		want       constants.OrderStatus
	}{
		{100, constants.StatusApproved},
		{85.0, constants.StatusApproved},
		{84.9, constants.StatusNeedsReview},
		{70.0, constants.StatusNeedsReview},
		{69.9, constants.StatusRejected},
		{0, constants.StatusRejected},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.confidence), "confidence %.1f", tt.confidence)
	}
}
