package engine

import (
	"context"

	"github.com/interview-coach/backend/internal/models"
)

// Default composite weights, balanced for technical Q&A.
const (
	defaultSemanticWeight  = 0.45
	defaultKeywordWeight   = 0.30
	defaultStructureWeight = 0.10
	defaultCoherenceWeight = 0.10
	defaultDeliveryWeight  = 0.05
)

// rejectFeedback is the fixed guidance returned for hard-rejected
// answers. Wording is part of the engine contract.
const rejectFeedback = "Answer is too short or lacks meaningful content. " +
	"Write 2-4 complete sentences explaining the concept clearly."

// Fixed feedback messages, evaluated in a fixed order so test fixtures
// are reproducible.
const (
	fbSemanticLow     = "Your answer does not align well with the expected concept."
	fbSemanticPartial = "Your explanation is partially correct but misses core ideas."
	fbKeyword         = "Try including more domain-specific terms."
	fbStructure       = "Improve structure: define the concept, explain it, then give an example."
	fbCoherence       = "Improve logical flow between sentences."
	fbClarity         = "Simplify language and remove long or complex sentences."
	fbConfidence      = "Use more assertive phrasing (e.g., 'I built', 'I implemented')."
	fbPositive        = "Strong, clear, and well-structured answer."
)

type weights struct {
	semantic, keyword, structure, coherence, delivery float64
}

func resolveWeights(overrides *models.ScoreWeights) weights {
	w := weights{
		semantic:  defaultSemanticWeight,
		keyword:   defaultKeywordWeight,
		structure: defaultStructureWeight,
		coherence: defaultCoherenceWeight,
		delivery:  defaultDeliveryWeight,
	}
	if overrides == nil {
		return w
	}
	if overrides.Semantic != nil {
		w.semantic = *overrides.Semantic
	}
	if overrides.Keyword != nil {
		w.keyword = *overrides.Keyword
	}
	if overrides.Structure != nil {
		w.structure = *overrides.Structure
	}
	if overrides.Coherence != nil {
		w.coherence = *overrides.Coherence
	}
	if overrides.Delivery != nil {
		w.delivery = *overrides.Delivery
	}
	return w
}

// Evaluate scores a candidate answer against a benchmark and keyword
// set and returns a fully populated result. It never fails: degenerate
// input yields the defined zero-score rejection result, and capability
// errors degrade to each sub-scorer's documented neutral value.
func (e *Engine) Evaluate(ctx context.Context, answer, benchmark string, keywords []string, overrides *models.ScoreWeights) models.EvaluationResult {
	if IsMeaningless(answer) {
		return models.EvaluationResult{
			Feedback: []string{rejectFeedback},
		}
	}

	w := resolveWeights(overrides)

	semantic := e.similarityScore(ctx, answer, benchmark)
	keyword := e.keywords.Score(answer, keywords)
	structure := structureScore(answer)
	coherence := round3(e.coherenceScore(answer))
	delivery := analyzeDelivery(answer)
	deliveryScore := delivery.Combined()

	content := round3(
		w.semantic*semantic +
			w.keyword*keyword +
			w.structure*structure +
			w.coherence*coherence,
	)

	// The weighted sum can exceed 1.0 under adversarial overrides;
	// the final score is clamped so the invariant holds regardless.
	final := round3(clamp01(content*(1-w.delivery) + deliveryScore*w.delivery))

	var fb []string
	if semantic < 0.35 {
		fb = append(fb, fbSemanticLow)
	} else if semantic < 0.6 {
		fb = append(fb, fbSemanticPartial)
	}
	if keyword < 0.4 {
		fb = append(fb, fbKeyword)
	}
	if structure < 0.5 {
		fb = append(fb, fbStructure)
	}
	if coherence < 0.5 {
		fb = append(fb, fbCoherence)
	}
	if delivery.Clarity < 0.5 {
		fb = append(fb, fbClarity)
	}
	if delivery.Confidence < 0.4 {
		fb = append(fb, fbConfidence)
	}
	if len(fb) == 0 {
		fb = append(fb, fbPositive)
	}

	return models.EvaluationResult{
		Components: models.ComponentScores{
			Semantic:    semantic,
			Keyword:     keyword,
			Structure:   structure,
			Coherence:   coherence,
			Clarity:     delivery.Clarity,
			Conciseness: delivery.Conciseness,
			Confidence:  delivery.Confidence,
			Delivery:    deliveryScore,
		},
		ContentScore: content,
		FinalScore:   final,
		Feedback:     fb,
	}
}
