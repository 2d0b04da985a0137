package gemini

import (
	"strings"
	"testing"
)

func TestTemplates(t *testing.T) {
	cases := []struct {
		tpl   Template
		count int
		limit int
	}{
		{TemplateGuestFile, 5, 30000},
		{TemplateGuestURL, 5, 20000},
		{TemplateAuthenticated, 7, 30000},
	}
	for _, tc := range cases {
		t.Run(tc.tpl.String(), func(t *testing.T) {
			if got := tc.tpl.QuestionCount(); got != tc.count {
				t.Errorf("QuestionCount() = %d, want %d", got, tc.count)
			}
			if got := tc.tpl.CharLimit(); got != tc.limit {
				t.Errorf("CharLimit() = %d, want %d", got, tc.limit)
			}
			if tc.tpl.Instruction() == "" {
				t.Error("Instruction() must not be empty")
			}
		})
	}

	// Only the guest URL template hints at a per-question id.
	if !strings.Contains(TemplateGuestURL.Instruction(), `"id"`) {
		t.Error("guest URL instruction should include the id hint")
	}
	if strings.Contains(TemplateAuthenticated.Instruction(), `"id"`) {
		t.Error("authenticated instruction should not include an id hint")
	}
}

func TestBuildPromptTruncation(t *testing.T) {
	t.Run("LongBodyIsPrefixCut", func(t *testing.T) {
		body := strings.Repeat("a", 25000)
		prompt := BuildPrompt(body, TemplateGuestURL)
		if !strings.HasSuffix(prompt, strings.Repeat("a", 20000)) {
			t.Error("prompt should end with exactly the first 20000 characters of the body")
		}
		if strings.Contains(prompt, strings.Repeat("a", 20001)) {
			t.Error("prompt contains more than the configured ceiling")
		}
	})

	t.Run("ShortBodyIsUntouched", func(t *testing.T) {
		body := "um texto curto"
		prompt := BuildPrompt(body, TemplateGuestFile)
		if !strings.HasSuffix(prompt, body) {
			t.Errorf("short body should pass through unchanged, got %q", prompt)
		}
	})

	t.Run("CountMatchesTemplate", func(t *testing.T) {
		if !strings.Contains(BuildPrompt("texto", TemplateAuthenticated), "gere 7 perguntas") {
			t.Error("authenticated prompt should ask for 7 questions")
		}
		if !strings.Contains(BuildPrompt("texto", TemplateGuestFile), "gere 5 perguntas") {
			t.Error("guest prompt should ask for 5 questions")
		}
	})
}

func TestTruncateRuneSafe(t *testing.T) {
	// Multi-byte text must not be split mid-rune.
	body := strings.Repeat("ç", 10)
	got := truncate(body, 5)
	if got != strings.Repeat("ç", 5) {
		t.Errorf("truncate(%q, 5) = %q", body, got)
	}
	if truncate("abc", 10) != "abc" {
		t.Error("truncate must not touch text under the limit")
	}
}
