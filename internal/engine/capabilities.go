package engine

import "context"

// Embedder is the injected embedding-comparison capability. It returns
// a raw cosine similarity in [-1,1] between the two texts. The engine
// never calls it with empty input.
type Embedder interface {
	CosineSimilarity(ctx context.Context, a, b string) (float64, error)
}

// Segmenter is the injected sentence-segmentation capability.
// annotated reports whether the boundaries come from a trained model
// rather than a naive punctuation split.
type Segmenter interface {
	Sentences(text string) (sents []string, annotated bool, err error)
}

// Capabilities bundles the heavyweight shared resources the engine
// depends on. Construct it once at startup and treat it as read-only;
// both capabilities must be safe for concurrent use.
type Capabilities struct {
	Embedder  Embedder
	Segmenter Segmenter
}
