package engine

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	alphaTokenRe = regexp.MustCompile(`[a-zA-Z]{3,}`)
	shortAlnumRe = regexp.MustCompile(`^[a-zA-Z0-9]{1,2}$`)
	shortAlphaRe = regexp.MustCompile(`^[a-zA-Z]{1,4}$`)
)

// IsGibberish reports whether text is degenerate enough to skip
// scoring entirely: empty, under 5 characters, fewer than 3 alphabetic
// tokens of length >= 3, a run of 4+ identical characters, or a
// letter-to-character ratio under 0.35.
func IsGibberish(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return true
	}

	runes := []rune(s)
	if len(runes) < 5 {
		return true
	}

	if len(alphaTokenRe.FindAllString(s, -1)) < 3 {
		return true
	}

	if hasRepeatedRun(strings.ToLower(s), 4) {
		return true
	}

	letters := 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if float64(letters)/float64(len(runes)) < 0.35 {
		return true
	}

	return false
}

// IsMeaningless is the stricter companion to IsGibberish used as the
// hard-reject gate before evaluation. It additionally rejects one-word
// answers, answers made only of 1-2 character alphanumeric tokens,
// answers with no letters at all, and answers where every token is a
// short (<=4 letter) alphabetic word.
func IsMeaningless(answer string) bool {
	s := strings.TrimSpace(answer)
	if s == "" {
		return true
	}

	words := strings.Fields(s)
	if len(words) < 2 {
		return true
	}

	allShortAlnum := true
	allShortAlpha := true
	for _, w := range words {
		if !shortAlnumRe.MatchString(w) {
			allShortAlnum = false
		}
		if !shortAlphaRe.MatchString(w) {
			allShortAlpha = false
		}
	}
	if allShortAlnum || allShortAlpha {
		return true
	}

	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return true
	}

	return IsGibberish(s)
}

// hasRepeatedRun reports whether s contains n or more consecutive
// identical runes.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
			if count >= n {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}
