package bank

import (
	"math"
	"reflect"
	"testing"

	"github.com/interview-coach/backend/internal/models"
)

func TestDomainsAndDifficulties(t *testing.T) {
	b := New([]models.Question{
		{Domain: "Web Development", Difficulty: "easy", Question: "q1"},
		{Domain: "Data Science", Difficulty: "hard", Question: "q2"},
		{Domain: "Data Science", Difficulty: "easy", Question: "q3"},
		{Difficulty: "easy", Question: "q4"},
	})

	if got, want := b.Domains(), []string{"Data Science", "Web Development"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Domains() = %v, want %v", got, want)
	}
	if got, want := b.Difficulties(), []string{"easy", "hard"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Difficulties() = %v, want %v", got, want)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	b := New([]models.Question{
		{Domain: "Data Science", Difficulty: "Easy", Question: "q1"},
		{Domain: "Data Science", Difficulty: "hard", Question: "q2"},
	})

	got := b.filter("data science", "EASY")
	if len(got) != 1 || got[0].Question != "q1" {
		t.Errorf("filter = %+v, want only q1", got)
	}
	if got := b.filter("", ""); len(got) != 2 {
		t.Errorf("unfiltered returned %d, want 2", len(got))
	}
}

func TestKeywordOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"rest", "http"}, []string{"HTTP", "REST"}, 1.0},
		{"half over larger set", []string{"rest", "http"}, []string{"rest", "grpc", "http", "soap"}, 0.5},
		{"disjoint", []string{"rest"}, []string{"sql"}, 0.0},
		{"empty side", nil, []string{"sql"}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordOverlap(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("KeywordOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNextByKeywords(t *testing.T) {
	current := models.Question{Question: "cur", Keywords: []string{"sql", "index"}}
	remaining := []models.Question{
		{Question: "other", Keywords: []string{"css", "html"}},
		{Question: "related", Keywords: []string{"sql", "query"}},
	}

	next, ok := NextByKeywords(current, remaining)
	if !ok || next.Question != "related" {
		t.Errorf("NextByKeywords = (%+v, %v), want the sql question", next, ok)
	}

	if _, ok := NextByKeywords(current, nil); ok {
		t.Error("NextByKeywords with no remaining questions reported ok")
	}
}

func TestAppendGrowsBank(t *testing.T) {
	b := New(nil)
	b.Append(models.Question{Domain: "DevOps", Question: "q"})
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}
