package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstName(t *testing.T) {
	ents := []Entity{
		{Text: "tomorrow", Label: LabelDate},
		{Text: "42", Label: LabelCardinal},
		{Text: "Acme", Label: LabelOrg},
		{Text: "Acme Traders", Label: LabelOrg},
		{Text: "Priya Sharma", Label: LabelPerson},
	}

	assert.Equal(t, "Acme Traders", FirstName(ents, 2))
	// with a threshold of one, the single-token hit wins
	assert.Equal(t, "Acme", FirstName(ents, 1))
	// nothing has four tokens
	assert.Equal(t, "", FirstName(ents, 4))
}

func TestFirstNameIgnoresOtherLabels(t *testing.T) {
	ents := []Entity{
		{Text: "New Delhi", Label: LabelGPE},
		{Text: "Galaxy Tab", Label: LabelProduct},
	}
	assert.Equal(t, "", FirstName(ents, 1))
}

func TestFirstNameEmpty(t *testing.T) {
	assert.Equal(t, "", FirstName(nil, 2))
}

func TestFirstNameClampsThreshold(t *testing.T) {
	ents := []Entity{{Text: "Acme", Label: LabelOrg}}
	assert.Equal(t, "Acme", FirstName(ents, 0))
}
