package engine

import "testing"

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		keywords []string
		want     float64
	}{
		{
			"three of four matched",
			"I implemented a REST API using Flask and PostgreSQL",
			[]string{"REST API", "Flask", "PostgreSQL", "Docker"},
			0.75,
		},
		{
			"no keywords is vacuously satisfied",
			"Any answer at all",
			nil,
			1.0,
		},
		{
			"answer too short",
			"yes no",
			[]string{"Flask"},
			0.0,
		},
		{
			"all keywords filtered out",
			"We ship services written in Go and JS every sprint",
			[]string{"go", "js"},
			0.0,
		},
		{
			"duplicates collapse",
			"Flask handles the routing layer here",
			[]string{"Flask", "flask!"},
			1.0,
		},
		{
			"punctuated keyword",
			"We set up a CI/CD pipeline with automated tests",
			[]string{"CI/CD"},
			1.0,
		},
		{
			"whole word only",
			"We write javascript every single day",
			[]string{"Java"},
			0.0,
		},
		{
			"case insensitive",
			"POSTGRESQL stores the session data",
			[]string{"postgresql"},
			1.0,
		},
	}

	scorer := NewKeywordScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.answer, tt.keywords)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score(%q, %v) = %v, want %v", tt.answer, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestKeywordScorerCacheReuse(t *testing.T) {
	scorer := NewKeywordScorer()
	keywords := []string{"Flask", "PostgreSQL"}

	first := scorer.Score("I built the API with Flask and PostgreSQL", keywords)
	second := scorer.Score("I built the API with Flask and PostgreSQL", keywords)
	if first != second {
		t.Errorf("cached matcher diverged: first %v, second %v", first, second)
	}
	if len(scorer.cache) != 1 {
		t.Errorf("expected 1 cached matcher, got %d", len(scorer.cache))
	}
}

func TestKeywordScorerCacheReset(t *testing.T) {
	scorer := NewKeywordScorer()
	scorer.maxEntries = 2

	scorer.Score("docker runs the containers here", []string{"docker"})
	scorer.Score("kubernetes schedules the containers here", []string{"kubernetes"})
	scorer.Score("terraform provisions the infrastructure here", []string{"terraform"})

	if len(scorer.cache) > 2 {
		t.Errorf("cache grew past cap: %d entries", len(scorer.cache))
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  CI/CD, Pipelines!!  and   Docker. ")
	want := "ci cd pipelines and docker"
	if got != want {
		t.Errorf("normalizeText = %q, want %q", got, want)
	}
}
