package bank

import (
	"math/rand"
	"testing"

	"github.com/interview-coach/backend/internal/models"
)

func testBank() *Bank {
	return New([]models.Question{
		{ID: 1, Domain: "Data Science", Difficulty: "easy", Question: "ds-easy-1"},
		{ID: 2, Domain: "Data Science", Difficulty: "easy", Question: "ds-easy-2"},
		{ID: 3, Domain: "Data Science", Difficulty: "hard", Question: "ds-hard-1"},
		{ID: 4, Domain: "Web Development", Difficulty: "easy", Question: "web-easy-1"},
		{ID: 5, Domain: "Web Development", Difficulty: "medium", Question: "web-med-1"},
	})
}

func testSelector(b *Bank) *Selector {
	return NewSelector(b, rand.New(rand.NewSource(1)))
}

func TestSelectExactMatch(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("Data Science", "easy", 5, models.DefaultSelectOptions())

	if len(sel.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(sel.Questions))
	}
	for _, q := range sel.Questions {
		if q.Domain != "Data Science" || q.Difficulty != "easy" {
			t.Errorf("selected off-target question: %+v", q)
		}
	}
	m := sel.Meta
	if m.RelaxedUsed || m.FuzzyUsed || m.FallbackUsed {
		t.Errorf("exact match set relaxation flags: %+v", m)
	}
	if m.MatchedCount != 2 {
		t.Errorf("matched_count = %d, want 2", m.MatchedCount)
	}
}

func TestSelectRelaxedDropsDifficulty(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("Data Science", "impossible", 5, models.DefaultSelectOptions())

	if len(sel.Questions) != 3 {
		t.Fatalf("got %d questions, want all 3 Data Science questions", len(sel.Questions))
	}
	if !sel.Meta.RelaxedUsed {
		t.Error("relaxed_used not set")
	}
	if sel.Meta.FuzzyUsed || sel.Meta.FallbackUsed {
		t.Errorf("later stages fired unexpectedly: %+v", sel.Meta)
	}
}

func TestSelectFuzzyDomain(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("Data Scence", "easy", 5, models.DefaultSelectOptions())

	if len(sel.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(sel.Questions))
	}
	for _, q := range sel.Questions {
		if q.Domain != "Data Science" {
			t.Errorf("fuzzy selected %q, want Data Science", q.Domain)
		}
	}
	if !sel.Meta.FuzzyUsed {
		t.Error("fuzzy_used not set")
	}
	if len(sel.Meta.FuzzySuggestions) == 0 || sel.Meta.FuzzySuggestions[0] != "Data Science" {
		t.Errorf("fuzzy_suggestions = %v, want Data Science first", sel.Meta.FuzzySuggestions)
	}
}

func TestSelectFallbackPrefersDifficulty(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("Quantum Basketweaving", "easy", 2, models.DefaultSelectOptions())

	if !sel.Meta.FallbackUsed {
		t.Fatal("fallback_used not set")
	}
	if len(sel.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(sel.Questions))
	}
	for _, q := range sel.Questions {
		if q.Difficulty != "easy" {
			t.Errorf("fallback ignored difficulty preference: %+v", q)
		}
	}
}

func TestSelectStagesCanBeDisabled(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("Data Scence", "easy", 5, models.SelectOptions{})

	if len(sel.Questions) != 0 {
		t.Errorf("got %d questions with all stages disabled, want 0", len(sel.Questions))
	}
	if sel.Meta.RelaxedUsed || sel.Meta.FuzzyUsed || sel.Meta.FallbackUsed {
		t.Errorf("disabled stages fired: %+v", sel.Meta)
	}
}

func TestSelectEmptyBank(t *testing.T) {
	s := testSelector(New(nil))

	sel := s.Select("Data Science", "easy", 5, models.DefaultSelectOptions())

	if len(sel.Questions) != 0 {
		t.Errorf("empty bank returned %d questions", len(sel.Questions))
	}
	if sel.Meta.MatchedCount != 0 {
		t.Errorf("matched_count = %d, want 0", sel.Meta.MatchedCount)
	}
}

func TestSelectSamplesWithoutReplacement(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("", "", 4, models.DefaultSelectOptions())

	if len(sel.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(sel.Questions))
	}
	seen := make(map[int64]bool)
	for _, q := range sel.Questions {
		if seen[q.ID] {
			t.Errorf("question %d selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectDefaultsCount(t *testing.T) {
	s := testSelector(testBank())

	sel := s.Select("", "", 0, models.DefaultSelectOptions())
	if len(sel.Questions) != 5 {
		t.Errorf("got %d questions, want whole bank under default count", len(sel.Questions))
	}
}
