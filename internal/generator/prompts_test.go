package generator

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt(t *testing.T) {
	p := BuildUserPrompt("Data Science", "hard", 6)

	if !strings.Contains(p, `"Data Science"`) {
		t.Errorf("prompt missing domain: %q", p)
	}
	if !strings.Contains(p, "6 interview questions") {
		t.Errorf("prompt missing count: %q", p)
	}
	if !strings.Contains(p, "senior candidates") {
		t.Errorf("prompt missing hard difficulty framing: %q", p)
	}
}

func TestBuildUserPromptDefaultsToMedium(t *testing.T) {
	p := BuildUserPrompt("DevOps", "unknown-level", 3)
	if !strings.Contains(p, "mid-level candidate") {
		t.Errorf("prompt did not default to medium: %q", p)
	}
}

func TestSystemPromptDemandsJSON(t *testing.T) {
	p := SystemPrompt()
	for _, field := range []string{`"question"`, `"expected_answer"`, `"keywords"`} {
		if !strings.Contains(p, field) {
			t.Errorf("system prompt missing field contract %s", field)
		}
	}
}
