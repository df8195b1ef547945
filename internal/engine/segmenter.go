package engine

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktSegmenter implements Segmenter with a trained Punkt sentence
// tokenizer. Boundaries from it count as annotated for the coherence
// heuristic.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the English tokenizer data. Fails fast like
// the embedder: a broken segmenter should stop startup, not degrade
// every request.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

func (p *PunktSegmenter) Sentences(text string) ([]string, bool, error) {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, true, nil
}

// NaiveSegmenter splits on terminal punctuation. Its boundaries are
// not confirmed annotation, so two-sentence answers cap at the 0.7
// coherence tier.
type NaiveSegmenter struct{}

func (NaiveSegmenter) Sentences(text string) ([]string, bool, error) {
	var out []string
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out, false, nil
}
