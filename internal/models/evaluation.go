package models

// ComponentScores holds every sub-heuristic score produced for one
// answer. Every field is in [0,1].
type ComponentScores struct {
	Semantic    float64 `json:"semantic_score"`
	Keyword     float64 `json:"keyword_score"`
	Structure   float64 `json:"structure_score"`
	Coherence   float64 `json:"coherence"`
	Clarity     float64 `json:"clarity"`
	Conciseness float64 `json:"conciseness"`
	Confidence  float64 `json:"confidence"`
	Delivery    float64 `json:"delivery_score"`
}

// EvaluationResult is the single, always-fully-populated output of one
// answer evaluation. Re-evaluating an answer produces a new result; an
// existing result is never mutated.
type EvaluationResult struct {
	Components   ComponentScores `json:"components"`
	ContentScore float64         `json:"content_score"`
	FinalScore   float64         `json:"final_score"`
	Feedback     []string        `json:"feedback"`
}

// ScoreWeights optionally overrides the composite weights. A nil field
// keeps the default for that component.
type ScoreWeights struct {
	Semantic  *float64 `json:"semantic,omitempty"`
	Keyword   *float64 `json:"keyword,omitempty"`
	Structure *float64 `json:"structure,omitempty"`
	Coherence *float64 `json:"coherence,omitempty"`
	Delivery  *float64 `json:"delivery,omitempty"`
}

// EvaluateRequest is the engine contract consumed by the session layer.
type EvaluateRequest struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
	// Benchmark is the reference answer; optional when the question is
	// looked up from the session's generated set.
	Benchmark string        `json:"benchmark,omitempty"`
	Keywords  []string      `json:"keywords,omitempty"`
	Weights   *ScoreWeights `json:"weights,omitempty"`
}
