package ner

import (
	"strings"

	"github.com/tsawler/prose/v3"
)

// ProseRecognizer backs the Recognizer interface with the prose NLP library.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (r *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	var entities []Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, Entity{
			Text:  ent.Text,
			Label: strings.ToUpper(ent.Label),
		})
	}
	return entities, nil
}
