package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct{ in, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	s := geminiSchema(feedbackLikeDefinition())

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %v", s.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
	spots := s.Properties["weakSpots"]
	if spots == nil || spots.Type != genai.TypeArray || spots.Items.Type != genai.TypeString {
		t.Errorf("weakSpots = %+v", spots)
	}
	if lvl := s.Properties["level"]; lvl == nil || len(lvl.Enum) != 3 {
		t.Errorf("level enum lost: %+v", lvl)
	}
}

func TestStringListAcceptsBothForms(t *testing.T) {
	if got := stringList([]string{"a", "b"}); len(got) != 2 {
		t.Errorf("[]string: %v", got)
	}
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("[]any: %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("nil: %v", got)
	}
}

func feedbackLikeDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weakSpots": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"level":     map[string]any{"type": "string", "enum": []string{"low", "mid", "high"}},
			"note":      map[string]any{"type": "string", "description": "free text"},
		},
		"required": []string{"weakSpots", "level"},
	}
}
