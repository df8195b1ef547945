package bank

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/interview-coach/backend/internal/models"
)

// LoadFile loads the question bank from disk. A missing or malformed
// file is not fatal: the bank starts empty with a logged warning and
// can be topped up by the generator later.
func LoadFile(path string) *Bank {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARN: question bank %s not readable: %v — starting with empty bank", path, err)
		return New(nil)
	}

	questions, err := Parse(data)
	if err != nil {
		log.Printf("WARN: question bank %s malformed: %v — starting with empty bank", path, err)
		return New(nil)
	}

	log.Printf("Loaded %d questions from %s", len(questions), path)
	return New(questions)
}

// Parse decodes a question bank document. Three shapes are accepted,
// matching the files that exist in the wild:
//
//	[ {...}, {...} ]                 bare list
//	{ "questions": [ {...} ] }       wrapped list
//	[ "{...}", "{...}" ]             list of serialized records
func Parse(data []byte) ([]models.Question, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if root.IsObject() {
		wrapped := root.Get("questions")
		if !wrapped.Exists() {
			return nil, fmt.Errorf("object document has no questions field")
		}
		root = wrapped
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("document is not a question list")
	}

	var questions []models.Question
	skipped := 0
	for _, item := range root.Array() {
		// Legacy exports store each record as a JSON string.
		if item.Type == gjson.String {
			inner := item.String()
			if !gjson.Valid(inner) {
				skipped++
				continue
			}
			item = gjson.Parse(inner)
		}

		q, ok := parseQuestion(item)
		if !ok {
			skipped++
			continue
		}
		questions = append(questions, q)
	}

	if skipped > 0 {
		log.Printf("WARN: skipped %d malformed question records", skipped)
	}
	return questions, nil
}

func parseQuestion(item gjson.Result) (models.Question, bool) {
	text := strings.TrimSpace(item.Get("question").String())
	if text == "" {
		return models.Question{}, false
	}

	return models.Question{
		ID:             item.Get("id").Int(),
		Domain:         strings.TrimSpace(item.Get("domain").String()),
		Difficulty:     strings.TrimSpace(item.Get("difficulty").String()),
		Question:       text,
		ExpectedAnswer: strings.TrimSpace(item.Get("expected_answer").String()),
		Keywords:       parseKeywords(item),
	}, true
}

// parseKeywords reads keywords from whichever legacy field is present:
// "keywords" (list or comma string), "keywords_list", or
// "keywords_str". Values are case-folded and deduplicated.
func parseKeywords(item gjson.Result) []string {
	for _, field := range []string{"keywords", "keywords_list", "keywords_str"} {
		v := item.Get(field)
		if !v.Exists() {
			continue
		}

		var raw []string
		switch {
		case v.IsArray():
			for _, k := range v.Array() {
				raw = append(raw, k.String())
			}
		case v.Type == gjson.String:
			raw = strings.Split(v.String(), ",")
		default:
			continue
		}

		seen := make(map[string]bool)
		var out []string
		for _, k := range raw {
			t := strings.ToLower(strings.TrimSpace(k))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
