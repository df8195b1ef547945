package bank

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/interview-coach/backend/internal/models"
)

const defaultSelectCount = 8

// Selector picks question sets from the bank, degrading through
// relaxation stages until something matches. The random source is
// injectable so tests can pin the sampling order.
type Selector struct {
	bank *Bank

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector(bank *Bank, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{bank: bank, rng: rng}
}

// Select resolves a question set for domain/difficulty, trying exact
// match, then domain-only relaxation, then fuzzy domain suggestions,
// then a difficulty-preferring fallback sample. The returned meta
// records which stages fired; an empty bank or exhausted strategy
// yields an empty selection, never an error.
func (s *Selector) Select(domain, difficulty string, count int, opts models.SelectOptions) models.Selection {
	if count <= 0 {
		count = defaultSelectCount
	}

	meta := models.SelectionMeta{
		RequestedDomain:       domain,
		RequestedDifficulty:   difficulty,
		AvailableDomains:      s.bank.Domains(),
		AvailableDifficulties: s.bank.Difficulties(),
	}

	if s.bank.Len() == 0 {
		log.Printf("WARN: question bank empty during selection")
		return models.Selection{Questions: []models.Question{}, Meta: meta}
	}

	matched := s.bank.filter(domain, difficulty)
	log.Printf("Exact match count=%d for domain=%q difficulty=%q", len(matched), domain, difficulty)

	if len(matched) == 0 && opts.AllowRelaxed && domain != "" {
		matched = s.bank.filter(domain, "")
		meta.RelaxedUsed = len(matched) > 0
	}

	if len(matched) == 0 && opts.AllowFuzzy && domain != "" {
		suggestions := closeMatches(domain, meta.AvailableDomains, 3, fuzzyCutoff)
		meta.FuzzySuggestions = suggestions

		for _, cand := range suggestions {
			if m := s.bank.filter(cand, difficulty); len(m) > 0 {
				matched = m
				meta.FuzzyUsed = true
				break
			}
		}
		// Last fuzzy resort: best suggestion with difficulty ignored.
		if len(matched) == 0 && len(suggestions) > 0 {
			matched = s.bank.filter(suggestions[0], "")
			meta.FuzzyUsed = len(matched) > 0
		}
	}

	if len(matched) == 0 && opts.AllowFallback {
		meta.FallbackUsed = true
		pool := s.bank.filter("", difficulty)
		if len(pool) == 0 {
			pool = s.bank.All()
		}
		matched = s.sample(pool, count*3)
		log.Printf("WARN: no matches for domain=%q difficulty=%q — fallback sample size=%d",
			domain, difficulty, len(matched))
	}

	meta.MatchedCount = len(matched)

	return models.Selection{
		Questions: s.sample(matched, count),
		Meta:      meta,
	}
}

// sample returns up to n questions drawn without replacement. When the
// pool fits entirely it is returned in order, copied.
func (s *Selector) sample(pool []models.Question, n int) []models.Question {
	if len(pool) == 0 {
		return []models.Question{}
	}
	if len(pool) <= n {
		out := make([]models.Question, len(pool))
		copy(out, pool)
		return out
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	out := make([]models.Question, 0, n)
	for _, i := range perm[:n] {
		out = append(out, pool[i])
	}
	return out
}
