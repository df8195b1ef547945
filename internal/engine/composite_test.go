package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/interview-coach/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type fakeEmbedder struct {
	cos float64
	err error
}

func (f fakeEmbedder) CosineSimilarity(_ context.Context, _, _ string) (float64, error) {
	return f.cos, f.err
}

type fakeSegmenter struct {
	sents     []string
	annotated bool
	err       error
}

func (f fakeSegmenter) Sentences(_ string) ([]string, bool, error) {
	return f.sents, f.annotated, f.err
}

func testEngine(cos float64, sents int, annotated bool) *Engine {
	s := make([]string, sents)
	for i := range s {
		s[i] = "sentence"
	}
	return New(Capabilities{
		Embedder:  fakeEmbedder{cos: cos},
		Segmenter: fakeSegmenter{sents: s, annotated: annotated},
	})
}

const strongAnswer = "Load balancing is defined as distributing incoming requests " +
	"across multiple servers. For example, a reverse proxy such as nginx can spread " +
	"traffic evenly. I implemented this pattern and delivered reliable throughput " +
	"in production."

func TestEvaluateRejectsMeaninglessAnswer(t *testing.T) {
	e := testEngine(1.0, 3, true)

	res := e.Evaluate(context.Background(), "ok", "A real benchmark answer.", []string{"nginx"}, nil)

	if res.FinalScore != 0 || res.ContentScore != 0 {
		t.Errorf("rejected answer scored final=%v content=%v, want 0", res.FinalScore, res.ContentScore)
	}
	if res.Components.Semantic != 0 || res.Components.Keyword != 0 {
		t.Errorf("rejected answer has nonzero components: %+v", res.Components)
	}
	if len(res.Feedback) != 1 || res.Feedback[0] != rejectFeedback {
		t.Errorf("feedback = %v, want the rejection message only", res.Feedback)
	}
}

func TestEvaluateStrongAnswer(t *testing.T) {
	e := testEngine(0.8, 3, true)

	res := e.Evaluate(context.Background(), strongAnswer, "Explain load balancing.",
		[]string{"load balancing", "nginx", "servers"}, nil)

	if !almostEqual(res.Components.Semantic, 0.9) {
		t.Errorf("semantic = %v, want 0.9", res.Components.Semantic)
	}
	if !almostEqual(res.Components.Keyword, 1.0) {
		t.Errorf("keyword = %v, want 1.0", res.Components.Keyword)
	}
	if !almostEqual(res.Components.Structure, 1.0) {
		t.Errorf("structure = %v, want 1.0", res.Components.Structure)
	}
	if !almostEqual(res.Components.Coherence, 1.0) {
		t.Errorf("coherence = %v, want 1.0", res.Components.Coherence)
	}
	// 0.45*0.9 + 0.30 + 0.10 + 0.10
	if !almostEqual(res.ContentScore, 0.905) {
		t.Errorf("content = %v, want 0.905", res.ContentScore)
	}
	if res.FinalScore < 0.85 || res.FinalScore > 1.0 {
		t.Errorf("final = %v, want within [0.85, 1.0]", res.FinalScore)
	}
	for _, msg := range res.Feedback {
		if msg == rejectFeedback {
			t.Errorf("strong answer got rejection feedback")
		}
	}
}

func TestEvaluateSemanticGates(t *testing.T) {
	benchmark := "Explain load balancing."
	tests := []struct {
		name      string
		engine    *Engine
		answer    string
		benchmark string
	}{
		{
			"short answer skips embedding",
			testEngine(1.0, 1, true),
			"Nginx spreads incoming traffic across backend servers",
			benchmark,
		},
		{
			"blank benchmark",
			testEngine(1.0, 3, true),
			strongAnswer,
			"   ",
		},
		{
			"embedder failure degrades to zero",
			New(Capabilities{
				Embedder:  fakeEmbedder{err: errors.New("rate limited")},
				Segmenter: fakeSegmenter{sents: []string{"a", "b"}, annotated: true},
			}),
			strongAnswer,
			benchmark,
		},
		{
			"nil embedder",
			New(Capabilities{Segmenter: fakeSegmenter{sents: []string{"a", "b"}, annotated: true}}),
			strongAnswer,
			benchmark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.engine.Evaluate(context.Background(), tt.answer, tt.benchmark, nil, nil)
			if res.Components.Semantic != 0 {
				t.Errorf("semantic = %v, want 0", res.Components.Semantic)
			}
		})
	}
}

func TestCoherenceTiers(t *testing.T) {
	tests := []struct {
		name   string
		engine *Engine
		want   float64
	}{
		{"two annotated sentences", testEngine(0, 2, true), 1.0},
		{"two unannotated sentences", testEngine(0, 2, false), 0.7},
		{"single sentence", testEngine(0, 1, true), 0.0},
		{
			"segmentation failure",
			New(Capabilities{Segmenter: fakeSegmenter{err: errors.New("bad input")}}),
			0.5,
		},
		{"nil segmenter", New(Capabilities{}), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.engine.coherenceScore("some answer text"); !almostEqual(got, tt.want) {
				t.Errorf("coherenceScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStructureScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   float64
	}{
		{"no cues", "Short plain answer here.", 0.0},
		{"definition cue only", "Caching refers to storing results.", 0.33},
		{"example cue only", "For example, Redis stores hot keys.", 0.33},
		{"both cues", "Caching refers to storing results, for example in Redis.", 0.66},
		{"all three", strongAnswer, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := structureScore(tt.answer); !almostEqual(got, tt.want) {
				t.Errorf("structureScore(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateClampsAdversarialWeights(t *testing.T) {
	e := testEngine(1.0, 3, true)
	big := 5.0
	overrides := &models.ScoreWeights{
		Semantic:  &big,
		Keyword:   &big,
		Structure: &big,
		Coherence: &big,
		Delivery:  &big,
	}

	res := e.Evaluate(context.Background(), strongAnswer, "Explain load balancing.",
		[]string{"nginx"}, overrides)

	if res.FinalScore < 0 || res.FinalScore > 1.0 {
		t.Errorf("final score %v escaped [0,1] under adversarial weights", res.FinalScore)
	}
}

func TestEvaluatePartialWeightOverride(t *testing.T) {
	e := testEngine(0.8, 3, true)
	zero := 0.0

	res := e.Evaluate(context.Background(), strongAnswer, "Explain load balancing.",
		[]string{"load balancing", "nginx", "servers"}, &models.ScoreWeights{Semantic: &zero})

	// Semantic weight zeroed, the rest stay default: 0.30 + 0.10 + 0.10.
	if !almostEqual(res.ContentScore, 0.5) {
		t.Errorf("content = %v, want 0.5", res.ContentScore)
	}
}

func TestEvaluateFeedbackOrder(t *testing.T) {
	// Low cosine plus no keywords matched plus a single flat sentence
	// should trip the semantic, keyword, structure and coherence lines in
	// that order.
	e := New(Capabilities{
		Embedder:  fakeEmbedder{cos: -0.5},
		Segmenter: fakeSegmenter{sents: []string{"one"}, annotated: true},
	})

	answer := "The process runs and then the process stops after the work finishes"
	res := e.Evaluate(context.Background(), answer, "Explain load balancing.",
		[]string{"load balancing", "nginx"}, nil)

	want := []string{fbSemanticLow, fbKeyword, fbStructure, fbCoherence}
	if len(res.Feedback) < len(want) {
		t.Fatalf("feedback = %v, want at least %v", res.Feedback, want)
	}
	for i, msg := range want {
		if res.Feedback[i] != msg {
			t.Errorf("feedback[%d] = %q, want %q", i, res.Feedback[i], msg)
		}
	}
}
