package bank

import (
	"math"
	"reflect"
	"testing"
)

func TestEditSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"data science", "data science", 1.0},
		{"data scence", "data science", 1.0 - 1.0/12.0},
		{"", "", 1.0},
		{"abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		if got := editSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("editSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCloseMatches(t *testing.T) {
	pool := []string{"Data Science", "Web Development", "DevOps"}

	got := closeMatches("Data Scence", pool, 3, fuzzyCutoff)
	if want := []string{"Data Science"}; !reflect.DeepEqual(got, want) {
		t.Errorf("closeMatches = %v, want %v", got, want)
	}

	if got := closeMatches("Quantum Basketweaving", pool, 3, fuzzyCutoff); len(got) != 0 {
		t.Errorf("closeMatches for unrelated input = %v, want none", got)
	}

	if got := closeMatches("", pool, 3, fuzzyCutoff); got != nil {
		t.Errorf("closeMatches for empty input = %v, want nil", got)
	}
}

func TestCloseMatchesOrdersBestFirst(t *testing.T) {
	pool := []string{"Data Sciences", "Data Science"}

	got := closeMatches("data science", pool, 3, fuzzyCutoff)
	if len(got) != 2 || got[0] != "Data Science" {
		t.Errorf("closeMatches = %v, want exact match first", got)
	}
}
