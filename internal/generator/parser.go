package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/interview-coach/backend/internal/models"
)

type generatedQuestion struct {
	Question       string   `json:"question"`
	ExpectedAnswer string   `json:"expected_answer"`
	Keywords       []string `json:"keywords"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseQuestions decodes and validates a generated batch, stamping each
// question with the requested domain and difficulty. Models tend to
// wrap JSON in code fences despite instructions, so fences are stripped
// first.
func ParseQuestions(responseBody, domain, difficulty string) ([]models.Question, error) {
	cleaned := stripCodeFences(responseBody)

	var raw []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateBatch(raw); err != nil {
		return nil, err
	}

	questions := make([]models.Question, len(raw))
	for i, q := range raw {
		questions[i] = models.Question{
			Domain:         domain,
			Difficulty:     difficulty,
			Question:       strings.TrimSpace(q.Question),
			ExpectedAnswer: strings.TrimSpace(q.ExpectedAnswer),
			Keywords:       normalizeKeywords(q.Keywords),
		}
	}
	return questions, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func validateBatch(raw []generatedQuestion) error {
	if len(raw) == 0 {
		return &ValidationError{Errors: []string{"no questions in batch"}}
	}

	var errs []string
	for i, q := range raw {
		qNum := i + 1

		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty question text", qNum))
		}
		if strings.TrimSpace(q.ExpectedAnswer) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty expected_answer", qNum))
		}
		if len(normalizeKeywords(q.Keywords)) == 0 {
			errs = append(errs, fmt.Sprintf("question %d: no usable keywords", qNum))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range keywords {
		t := strings.ToLower(strings.TrimSpace(k))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
