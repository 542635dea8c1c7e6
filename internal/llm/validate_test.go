package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-student",
		Description: "A student record",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"phase": map[string]any{"type": "string", "enum": []any{"I", "II", "III"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Sarah","age":22,"phase":"II"}`, false},
		{"optional omitted", `{"name":"Sarah","age":22}`, false},
		{"missing required", `{"name":"Sarah"}`, true},
		{"wrong type", `{"name":"Sarah","age":"old"}`, true},
		{"bad enum", `{"name":"Sarah","age":22,"phase":"IV"}`, true},
		{"below minimum", `{"name":"Sarah","age":-1}`, true},
		{"not json", `Sure! Here is your JSON`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("content not preserved: %s", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_BrokenSchema(t *testing.T) {
	s := &Schema{Name: "broken-schema", Definition: map[string]any{"type": 12}}
	var inv *ErrInvalidResponse
	if err := validateResponse(s, json.RawMessage(`{}`)); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}
