package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled colon", "Quantity: 25", "25"},
		{"labeled qty", "qty - 7", "7"},
		{"labeled pcs", "pcs: 300", "300"},
		{"action digits", "we want to buy 3 units of the tablet", "3"},
		{"action word number", "I need three units delivered", "3"},
		{"action couple", "please order two cartons", "2"},
		{"action only", "we need only 12 of these", "12"},
		{"bare units", "ship 40 pcs as discussed", "40"},
		{"no quantity", "please confirm availability", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveQuantity(tt.text))
		})
	}
}

func TestResolveQuantityLabeledWinsOverAction(t *testing.T) {
	// the explicit label is more trustworthy than a verb phrase
	assert.Equal(t, "25", ResolveQuantity("we need stock soon, quantity: 25"))
}
