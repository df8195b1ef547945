package engine

import (
	"strings"
	"unicode"
)

// Readability grade estimates used by the clarity sub-metric. These
// mirror the standard Flesch-Kincaid grade and Gunning-Fog formulas on
// naive word/sentence/syllable counts.

func fleschKincaidGrade(text string) (float64, bool) {
	words, sentences := countWordsSentences(text)
	if words == 0 || sentences == 0 {
		return 0, false
	}
	syllables := 0
	for _, w := range strings.Fields(text) {
		syllables += countSyllables(w)
	}
	grade := 0.39*(float64(words)/float64(sentences)) +
		11.8*(float64(syllables)/float64(words)) - 15.59
	return grade, true
}

func gunningFog(text string) (float64, bool) {
	words, sentences := countWordsSentences(text)
	if words == 0 || sentences == 0 {
		return 0, false
	}
	complex := 0
	for _, w := range strings.Fields(text) {
		if countSyllables(w) >= 3 {
			complex++
		}
	}
	fog := 0.4 * (float64(words)/float64(sentences) +
		100*float64(complex)/float64(words))
	return fog, true
}

// avgSentenceLength returns the mean words-per-sentence over a naive
// punctuation split.
func avgSentenceLength(text string) float64 {
	words, sentences := countWordsSentences(text)
	if sentences == 0 {
		return 0
	}
	return float64(words) / float64(sentences)
}

func countWordsSentences(text string) (words, sentences int) {
	words = len(strings.Fields(text))
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if words > 0 && sentences == 0 {
		sentences = 1
	}
	return words, sentences
}

// countSyllables estimates syllables as vowel groups, discounting a
// trailing silent e. Never returns less than 1 for a word with letters.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
