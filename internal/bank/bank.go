package bank

import (
	"sort"
	"strings"
	"sync"

	"github.com/interview-coach/backend/internal/models"
)

// Bank is the in-memory question pool. Load replaces the pool
// wholesale; Append grows it when the generator tops it up. Reads and
// writes are guarded so the HTTP layer can share one instance.
type Bank struct {
	mu        sync.RWMutex
	questions []models.Question
}

func New(questions []models.Question) *Bank {
	return &Bank{questions: questions}
}

func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.questions)
}

// All returns a copy of the pool so callers can filter freely.
func (b *Bank) All() []models.Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

func (b *Bank) Replace(questions []models.Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions = questions
}

func (b *Bank) Append(questions ...models.Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions = append(b.questions, questions...)
}

// Domains returns the sorted unique domain names present in the bank,
// in their original casing.
func (b *Bank) Domains() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uniqueSorted(b.questions, func(q models.Question) string { return q.Domain })
}

// Difficulties returns the sorted unique difficulty levels present in
// the bank, in their original casing.
func (b *Bank) Difficulties() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uniqueSorted(b.questions, func(q models.Question) string { return q.Difficulty })
}

func uniqueSorted(qs []models.Question, field func(models.Question) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range qs {
		v := field(q)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// filter returns the questions matching domain and/or difficulty with
// case-insensitive equality. Empty arguments match everything.
func (b *Bank) filter(domain, difficulty string) []models.Question {
	dn := normalizeField(domain)
	diffn := normalizeField(difficulty)

	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []models.Question
	for _, q := range b.questions {
		if dn != "" && normalizeField(q.Domain) != dn {
			continue
		}
		if diffn != "" && normalizeField(q.Difficulty) != diffn {
			continue
		}
		out = append(out, q)
	}
	return out
}

func normalizeField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KeywordOverlap scores how much two keyword sets share, in [0,1]:
// intersection size over the larger set. Either side empty scores 0.
func KeywordOverlap(a, b []string) float64 {
	sa := keywordSet(a)
	sb := keywordSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0.0
	}

	shared := 0
	for k := range sa {
		if sb[k] {
			shared++
		}
	}

	larger := len(sa)
	if len(sb) > larger {
		larger = len(sb)
	}
	return float64(shared) / float64(larger)
}

func keywordSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		if t := strings.ToLower(strings.TrimSpace(k)); t != "" {
			set[t] = true
		}
	}
	return set
}

// NextByKeywords picks the remaining question most related to the
// current one by keyword overlap. Returns false when nothing remains.
func NextByKeywords(current models.Question, remaining []models.Question) (models.Question, bool) {
	if len(remaining) == 0 {
		return models.Question{}, false
	}

	best := 0
	bestScore := -1.0
	for i, q := range remaining {
		if score := KeywordOverlap(current.Keywords, q.Keywords); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return remaining[best], true
}
