package analysis

import "context"

// Classifier turns a normalized URL plus conversation context into a
// full Report. Implementations: mock, local model, generative model,
// hybrid. The variant is chosen once at construction, not per call.
type Classifier interface {
	Classify(ctx context.Context, url string, convo []Turn, lang Lang) (*Report, error)

	// Mock reports whether this classifier is the zero-dependency
	// deterministic variant, so responses can carry the isMock flag.
	Mock() bool
}

// Scorer is the local risk model: one URL in, one probability in [0,1]
// out. A failed scorer yields 0, not an error (fail-open policy, see
// the runner).
type Scorer interface {
	Score(ctx context.Context, url string) (float64, error)
}
