package domain

import "context"

// Embedder converts free text into a fixed-dimension vector representation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// Searcher returns the stored documents most similar to the given vector,
// in store-defined similarity order. Ranking and tie-breaking belong to the
// store; implementations perform no local re-ranking.
type Searcher interface {
	Search(ctx context.Context, collection string, vector []float32, limit int) ([]Document, error)
}

// Generator produces the assistant's reply. Implementations convert their
// own failures into user-visible reply text; neither method returns an
// error.
type Generator interface {
	// Answer generates a context-grounded reply to a single query.
	Answer(ctx context.Context, query, contextBlock string) string
	// Converse generates a reply from the full ordered message history.
	Converse(ctx context.Context, history []Message) string
}
