package models

// Question is one entry of the in-memory question bank. Records are
// immutable after load; keywords are case-folded and deduplicated at
// load time.
type Question struct {
	ID         int64  `json:"id"`
	Domain     string `json:"domain"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	// ExpectedAnswer is the benchmark text the candidate's answer is
	// compared against. Optional; evaluation falls back to the question
	// text when absent.
	ExpectedAnswer string   `json:"expected_answer,omitempty"`
	Keywords       []string `json:"keywords"`
}

// SelectionMeta carries diagnostics about how a question set was
// matched. Returned alongside every selection and stored with the
// session that used it.
type SelectionMeta struct {
	RequestedDomain       string   `json:"requested_domain"`
	RequestedDifficulty   string   `json:"requested_difficulty"`
	MatchedCount          int      `json:"matched_count"`
	RelaxedUsed           bool     `json:"relaxed_used"`
	FuzzyUsed             bool     `json:"fuzzy_used"`
	FallbackUsed          bool     `json:"fallback_used"`
	FuzzySuggestions      []string `json:"fuzzy_suggestions"`
	AvailableDomains      []string `json:"available_domains"`
	AvailableDifficulties []string `json:"available_difficulties"`
}

// Selection is the full result of a selector call.
type Selection struct {
	Questions []Question    `json:"questions"`
	Meta      SelectionMeta `json:"meta"`
}

// SelectOptions controls which relaxation stages the selector may use.
type SelectOptions struct {
	AllowRelaxed  bool
	AllowFuzzy    bool
	AllowFallback bool
}

// DefaultSelectOptions enables every relaxation stage, matching what
// the session flow wants.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{AllowRelaxed: true, AllowFuzzy: true, AllowFallback: true}
}
