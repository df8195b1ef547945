package engine

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

const minKeywordLen = 4

var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// keywordMatcher holds the compiled whole-word patterns for one
// normalized keyword set.
type keywordMatcher struct {
	patterns []*regexp.Regexp
}

// KeywordScorer computes full-word keyword coverage. Compiled matchers
// are cached by normalized keyword set; the cache is a pure function of
// its key and safe to share across callers.
type KeywordScorer struct {
	mu         sync.Mutex
	cache      map[string]*keywordMatcher
	maxEntries int
}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{
		cache:      make(map[string]*keywordMatcher),
		maxEntries: 1024,
	}
}

// Score returns matched/total over the surviving keywords, rounded to
// 3 decimals. No keywords at all is vacuously satisfied (1.0); an
// answer under 3 tokens scores 0.0, as does a keyword list where
// nothing survives the minimum-length filter.
func (k *KeywordScorer) Score(answer string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 1.0
	}

	clean := normalizeText(answer)
	if len(strings.Fields(clean)) < 3 {
		return 0.0
	}

	normalized := normalizeKeywords(keywords)
	if len(normalized) == 0 {
		return 0.0
	}

	matcher := k.matcherFor(normalized)
	matched := 0
	for _, p := range matcher.patterns {
		if p.MatchString(clean) {
			matched++
		}
	}

	return round3(float64(matched) / float64(len(normalized)))
}

// matcherFor returns the cached matcher for the normalized set,
// compiling and caching it on first use. When the cache reaches its
// size cap it is reset wholesale; matchers are cheap to rebuild.
func (k *KeywordScorer) matcherFor(normalized []string) *keywordMatcher {
	key := strings.Join(normalized, "\x1f")

	k.mu.Lock()
	defer k.mu.Unlock()

	if m, ok := k.cache[key]; ok {
		return m
	}

	m := &keywordMatcher{}
	for _, kw := range normalized {
		m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}

	if len(k.cache) >= k.maxEntries {
		k.cache = make(map[string]*keywordMatcher)
	}
	k.cache[key] = m

	return m
}

// normalizeKeywords lower-cases, strips punctuation, deduplicates, and
// sorts the keyword list, then drops keywords shorter than 4 characters
// to avoid spurious matches on articles and abbreviations.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, kw := range keywords {
		n := normalizeText(kw)
		if len(n) < minKeywordLen || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// normalizeText lower-cases s and replaces punctuation with spaces,
// collapsing runs of whitespace.
func normalizeText(s string) string {
	clean := nonAlnumRe.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Join(strings.Fields(clean), " ")
}
