package session

import (
	"context"
	"math"
	"testing"

	"github.com/interview-coach/backend/internal/engine"
	"github.com/interview-coach/backend/internal/models"
)

type fixedEmbedder struct {
	cos float64
}

func (f fixedEmbedder) CosineSimilarity(ctx context.Context, a, b string) (float64, error) {
	return f.cos, nil
}

type fixedSegmenter struct{}

func (fixedSegmenter) Sentences(text string) ([]string, bool, error) {
	return []string{text}, true, nil
}

func testService() *Service {
	eng := engine.New(engine.Capabilities{
		Embedder:  fixedEmbedder{cos: 0.8},
		Segmenter: fixedSegmenter{},
	})
	return NewService(nil, nil, nil, eng, nil, 8)
}

func q(text string) models.Question {
	return models.Question{Question: text, Keywords: []string{"index"}}
}

func raw(question string) models.ResultEntry {
	return models.ResultEntry{Type: models.EntryRaw, Question: question, Answer: "a"}
}

func evaluated(question string) models.ResultEntry {
	return models.ResultEntry{Type: models.EntryEvaluated, Question: question, Answer: "a"}
}

func TestNextUnanswered(t *testing.T) {
	questions := []models.Question{q("one"), q("two"), q("three")}

	next, ok := nextUnanswered(questions, nil)
	if !ok || next.Question != "one" {
		t.Fatalf("expected first question, got %q ok=%v", next.Question, ok)
	}

	next, ok = nextUnanswered(questions, []models.ResultEntry{raw("one")})
	if !ok || next.Question != "two" {
		t.Fatalf("expected second question, got %q ok=%v", next.Question, ok)
	}

	// Evaluated entries count as answered too.
	next, ok = nextUnanswered(questions, []models.ResultEntry{raw("one"), evaluated("two"), raw("three")})
	if ok {
		t.Fatalf("expected no question left, got %q", next.Question)
	}
}

func TestPendingRawsSkipsEvaluated(t *testing.T) {
	results := []models.ResultEntry{
		raw("one"),
		raw("two"),
		evaluated("one"),
	}

	pending := pendingRaws(results)
	if len(pending) != 1 || pending[0].Question != "two" {
		t.Fatalf("expected only %q pending, got %+v", "two", pending)
	}
}

func TestPendingRawsTakesLatestAnswer(t *testing.T) {
	first := raw("one")
	second := raw("one")
	second.Answer = "revised"

	pending := pendingRaws([]models.ResultEntry{first, second})
	if len(pending) != 1 {
		t.Fatalf("expected one pending entry, got %d", len(pending))
	}
	if pending[0].Answer != "revised" {
		t.Fatalf("expected latest answer, got %q", pending[0].Answer)
	}
}

func TestPendingRawsIsIdempotentInput(t *testing.T) {
	// After a full evaluation pass every raw has an evaluated twin and
	// nothing is pending anymore.
	results := []models.ResultEntry{
		raw("one"), raw("two"),
		evaluated("one"), evaluated("two"),
	}
	if pending := pendingRaws(results); len(pending) != 0 {
		t.Fatalf("expected nothing pending, got %+v", pending)
	}
}

func TestEvaluateUsesExpectedAnswerBenchmark(t *testing.T) {
	svc := testService()

	question := models.Question{
		Question:       "What is an index?",
		ExpectedAnswer: "An index speeds up lookups at the cost of writes.",
		Keywords:       []string{"index", "lookup"},
	}
	answer := "An index is a data structure, for example a btree, that speeds up lookup queries. Therefore writes become slightly more expensive because the index must be maintained on every insert or update operation."

	entry := svc.evaluate(context.Background(), question, answer, nil)

	if entry.Type != models.EntryEvaluated {
		t.Fatalf("expected evaluated entry, got %q", entry.Type)
	}
	if entry.Evaluation == nil {
		t.Fatal("expected evaluation details")
	}
	if entry.RawScore != entry.Evaluation.FinalScore {
		t.Fatalf("raw score %v does not match final score %v", entry.RawScore, entry.Evaluation.FinalScore)
	}
	want := engine.Normalize(entry.Evaluation.FinalScore)
	if math.Abs(entry.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want normalized %v", entry.Score, want)
	}
	if entry.Timestamp == "" {
		t.Fatal("expected timestamp")
	}
}

func TestEvaluateRejectsMeaninglessInput(t *testing.T) {
	svc := testService()

	question := models.Question{Question: "Explain caching.", Keywords: []string{"cache"}}
	entry := svc.evaluate(context.Background(), question, "ab cd ef", nil)

	// Meaningless input gets the floor score regardless of benchmark.
	if entry.RawScore != 0 {
		t.Fatalf("expected zero raw score for meaningless input, got %v", entry.RawScore)
	}
	if entry.Score != 0 {
		t.Fatalf("expected zero normalized score, got %v", entry.Score)
	}
}
