package core

import "context"

// Entity is one span tagged by the NLP model.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Labels we consume from the tagger. Anything else is ignored.
const (
	LabelPerson   = "PER"
	LabelLocation = "LOC"
)

// EntityTagger is the black-box named-entity model behind the statistical
// extraction strategy. It is queried once per call and carries no state
// between calls.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// EmbeddingProvider turns texts into vectors for order similarity search.
type EmbeddingProvider interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
