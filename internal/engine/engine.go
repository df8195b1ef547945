package engine

import (
	"context"
	"log"
	"math"
	"strings"
)

// minWordsForSemantic is the minimum answer length before semantic
// similarity is worth computing at all.
const minWordsForSemantic = 8

// Engine evaluates free-text answers against a benchmark plus keyword
// set. It is stateless apart from the keyword matcher cache and safe
// for concurrent use once constructed.
type Engine struct {
	caps     Capabilities
	keywords *KeywordScorer
}

func New(caps Capabilities) *Engine {
	return &Engine{
		caps:     caps,
		keywords: NewKeywordScorer(),
	}
}

// similarityScore maps embedding cosine similarity onto [0,1]. Gates in
// order: too-short answer, gibberish answer, and blank benchmark all
// score 0 before the capability is called. Capability failures score 0
// as well; scoring must never propagate an error.
func (e *Engine) similarityScore(ctx context.Context, answer, benchmark string) float64 {
	if answer == "" || len(strings.Fields(answer)) < minWordsForSemantic {
		return 0.0
	}
	if IsGibberish(answer) {
		return 0.0
	}
	if strings.TrimSpace(benchmark) == "" {
		return 0.0
	}
	if e.caps.Embedder == nil {
		return 0.0
	}

	cos, err := e.caps.Embedder.CosineSimilarity(ctx, answer, benchmark)
	if err != nil {
		log.Printf("WARN: semantic similarity failed: %v", err)
		return 0.0
	}

	return round3(clamp01((cos + 1.0) / 2.0))
}

// Definitional and exemplifying cue phrases for the structure check.
var (
	definitionCues = []string{"is defined as", "refers to", "means"}
	exampleCues    = []string{"for example", "for instance", "e.g"}
)

// structureScore is an additive shape proxy, intentionally permissive:
// a definition cue, an example cue, and reasonable length each earn a
// third of the score.
func structureScore(answer string) float64 {
	lower := strings.ToLower(answer)

	score := 0.0
	if containsAny(lower, definitionCues) {
		score += 0.33
	}
	if containsAny(lower, exampleCues) {
		score += 0.33
	}
	if len(strings.Fields(answer)) > 25 {
		score += 0.34
	}

	return min64(1.0, round3(score))
}

// coherenceScore is a low-confidence flow heuristic: two or more
// sentences with confirmed boundary annotation score full marks, an
// unconfirmed split scores 0.7, and a segmentation failure degrades to
// a neutral 0.5 rather than a hard zero.
func (e *Engine) coherenceScore(answer string) float64 {
	if e.caps.Segmenter == nil {
		return 0.5
	}

	sents, annotated, err := e.caps.Segmenter.Sentences(answer)
	if err != nil {
		log.Printf("WARN: sentence segmentation failed: %v", err)
		return 0.5
	}

	if len(sents) >= 2 {
		if annotated {
			return 1.0
		}
		return 0.7
	}
	return 0.0
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func containsAny(s string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	return max64(0.0, min64(1.0, v))
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
