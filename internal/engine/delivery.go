package engine

import "strings"

// Fixed lexicons for the confidence sub-metric. Counted as raw
// substring occurrences over the lower-cased answer.
var (
	hedgePhrases = []string{
		"maybe", "perhaps", "i think", "i feel", "sort of", "kind of",
		"probably", "might", "could",
	}
	assertivePhrases = []string{
		"i led", "i implemented", "i designed", "i developed", "we built",
		"ensured", "delivered", "achieved", "confident",
	}
)

// DeliveryScores holds the three delivery sub-metrics, each in [0,1].
type DeliveryScores struct {
	Clarity     float64
	Conciseness float64
	Confidence  float64
}

// Combined folds the sub-metrics into the single delivery score.
func (d DeliveryScores) Combined() float64 {
	return round3(0.5*d.Clarity + 0.3*d.Conciseness + 0.2*d.Confidence)
}

// analyzeDelivery scores clarity, conciseness and confidence for an
// answer. A blank answer scores zero across the board; a failed
// readability estimate degrades clarity to a neutral 0.5.
func analyzeDelivery(answer string) DeliveryScores {
	if strings.TrimSpace(answer) == "" {
		return DeliveryScores{}
	}

	var d DeliveryScores

	fk, okFK := fleschKincaidGrade(answer)
	fog, okFog := gunningFog(answer)
	if okFK && okFog {
		d.Clarity = round3(clamp01(1.0 - min64((fk+fog)/30.0, 1.0)))
	} else {
		d.Clarity = 0.5
	}

	words := float64(len(strings.Fields(answer)))
	avgSent := avgSentenceLength(answer)
	lengthScore := 1.0 - min64(1.0, max64(0.0, (words-40)/200.0))
	sentenceScore := 1.0 - min64(1.0, max64(0.0, (avgSent-18)/30.0))
	d.Conciseness = round3(clamp01(0.6*lengthScore + 0.4*sentenceScore))

	lower := strings.ToLower(answer)
	hedges := 0
	for _, h := range hedgePhrases {
		hedges += strings.Count(lower, h)
	}
	asserts := 0
	for _, a := range assertivePhrases {
		asserts += strings.Count(lower, a)
	}
	// Laplace-smoothed so single occurrences don't swing to extremes.
	d.Confidence = round3(clamp01((float64(asserts) + 0.5) / (float64(hedges+asserts) + 1.0)))

	return d
}
