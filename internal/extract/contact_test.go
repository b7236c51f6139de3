package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindEmail(t *testing.T) {
	assert.Equal(t, "purchase@techworld.example",
		FindEmail("reach us at purchase@techworld.example today"))
	assert.Equal(t, "", FindEmail("no address here"))
}

func TestResolveAddress(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"i am from", "I am from Chennai. My name is Ravi.", "Chennai"},
		{"based in", "We are based in Pune, Maharashtra.", "Pune, Maharashtra"},
		{"located at", "Our shop is located at 14 MG Road. Thanks", "14 MG Road"},
		{"labeled ship to", "Ship to: 42 Park Avenue. Regards", "42 Park Avenue"},
		{"nothing", "please send the catalogue", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAddress(tt.text))
		})
	}
}

func TestResolveNameConversational(t *testing.T) {
	assert.Equal(t, "Ravi Kumar", ResolveNameConversational("Hello, my name is Ravi Kumar and I run a shop"))
	assert.Equal(t, "Anita", ResolveNameConversational("Hi, this is Anita from the procurement team"))
	assert.Equal(t, "John Smith", ResolveNameConversational("I am John Smith, owner of the store"))

	// "I am from <place>" is a location, not a self-introduction
	assert.Equal(t, "", ResolveNameConversational("I am from Chennai"))
	assert.Equal(t, "", ResolveNameConversational("no introduction here"))
}

func TestResolveNameSignature(t *testing.T) {
	lines := []string{
		"please ship at the earliest",
		"Regards,",
		"Anita Desai",
		"Phone: 98765 43210",
	}
	assert.Equal(t, "Anita Desai", ResolveNameSignature(lines))
}

func TestResolveNameSignatureSkipsContactLines(t *testing.T) {
	lines := []string{
		"anita@shop.example",
		"Flat 4B",
	}
	assert.Equal(t, "", ResolveNameSignature(lines))
}

func TestResolveProduct(t *testing.T) {
	assert.Equal(t, "UltraWide Monitor",
		ResolveProduct("Product: UltraWide Monitor\nQuantity: 2"))
	assert.Equal(t, "Canon PIXMA ink",
		ResolveProduct("Hi, I need Canon PIXMA ink, two boxes please"))
	assert.Equal(t, "", ResolveProduct("nothing to see"))
}
