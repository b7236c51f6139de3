package extract

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale-s/po-intake/internal/ner"
)

type stubRecognizer struct {
	ents []ner.Entity
	err  error
}

func (s stubRecognizer) Recognize(string) ([]ner.Entity, error) {
	return s.ents, s.err
}

func fixedClock() time.Time {
	return time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor(rec ner.Recognizer) *Extractor {
	e := New(rec, 2, nil)
	e.Now = fixedClock
	return e
}

func TestExtractLabeledEmail(t *testing.T) {
	body := `Product: Dell XPS 13 Laptop
Quantity: 10
Due Date: 14/11/2025
Retailer Name: TechWorld Supplies
Email: purchase@techworld.example
Address: 12 Park Street, Kolkata`

	f := newTestExtractor(nil).Extract(body, "Purchase order")

	require.NotNil(t, f.Product)
	assert.Equal(t, "Dell XPS 13 Laptop", *f.Product)
	require.NotNil(t, f.Quantity)
	assert.Equal(t, "10", *f.Quantity)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, "2025-11-14", *f.DueDate)
	require.NotNil(t, f.RetailerName)
	assert.Equal(t, "TechWorld Supplies", *f.RetailerName)
	require.NotNil(t, f.RetailerEmail)
	assert.Equal(t, "purchase@techworld.example", *f.RetailerEmail)
	require.NotNil(t, f.RetailerAddress)
	assert.Equal(t, "12 Park Street, Kolkata", *f.RetailerAddress)
}

func TestExtractConversationalEmail(t *testing.T) {
	body := "Hello, I want to buy 3 units of the Samsung Galaxy Tab A9 urgently. " +
		"Please deliver before 01/12/2025. I am from Chennai. My name is Ravi."

	f := newTestExtractor(nil).Extract(body, "New order")

	require.NotNil(t, f.Product)
	assert.Contains(t, *f.Product, "Samsung Galaxy Tab A9")
	require.NotNil(t, f.Quantity)
	assert.Equal(t, "3", *f.Quantity)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, "2025-12-01", *f.DueDate)
	require.NotNil(t, f.RetailerAddress)
	assert.Equal(t, "Chennai", *f.RetailerAddress)
	require.NotNil(t, f.RetailerName)
	assert.Equal(t, "Ravi", *f.RetailerName)
	assert.Nil(t, f.RetailerEmail)
}

func TestExtractJunkEmail(t *testing.T) {
	f := newTestExtractor(nil).Extract("hi team, please check the attached file.", "hello")

	assert.Nil(t, f.Product)
	assert.Nil(t, f.Quantity)
	assert.Nil(t, f.DueDate)
	assert.Nil(t, f.RetailerName)
	assert.Nil(t, f.RetailerEmail)
	assert.Nil(t, f.RetailerAddress)
}

func TestExtractFirstWriterWins(t *testing.T) {
	// the labeled line wins; the later conversational mention must not
	// overwrite it
	body := "Quantity: 10\nalso note we want to buy 3 chairs"
	f := newTestExtractor(nil).Extract(body, "")
	require.NotNil(t, f.Quantity)
	assert.Equal(t, "10", *f.Quantity)
}

func TestExtractWrappedProductLine(t *testing.T) {
	body := "Product: Widget Mark II\nwith mounting kit\nQuantity: 4"
	f := newTestExtractor(nil).Extract(body, "")
	require.NotNil(t, f.Product)
	assert.Equal(t, "Widget Mark II with mounting kit", *f.Product)
	require.NotNil(t, f.Quantity)
	assert.Equal(t, "4", *f.Quantity)
}

func TestExtractSubjectFallback(t *testing.T) {
	f := newTestExtractor(nil).Extract("please process as discussed", "Place order for HP LaserJet M110")
	require.NotNil(t, f.Product)
	assert.Equal(t, "HP LaserJet M110", *f.Product)
}

func TestExtractEntityFallbackName(t *testing.T) {
	rec := stubRecognizer{ents: []ner.Entity{
		{Text: "Monday", Label: ner.LabelDate},
		{Text: "Acme", Label: ner.LabelOrg},          // single token, below threshold
		{Text: "Acme Traders", Label: ner.LabelOrg},  // first qualifying hit
		{Text: "Priya Sharma", Label: ner.LabelPerson},
	}}
	f := newTestExtractor(rec).Extract("please process the shipment as agreed earlier", "")
	require.NotNil(t, f.RetailerName)
	assert.Equal(t, "Acme Traders", *f.RetailerName)
}

func TestExtractEntityFallbackErrorDegrades(t *testing.T) {
	rec := stubRecognizer{err: errors.New("model unavailable")}
	f := newTestExtractor(rec).Extract("please process the shipment as agreed earlier", "")
	assert.Nil(t, f.RetailerName)
}

func TestExtractQuantityLabeledLineWithWords(t *testing.T) {
	// a labeled quantity line whose value needs the word map
	f := newTestExtractor(nil).Extract("Quantity: need three boxes", "")
	require.NotNil(t, f.Quantity)
	assert.Equal(t, "3", *f.Quantity)
}
