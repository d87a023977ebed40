package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func wordSchema() *Schema {
	return &Schema{
		Name:        "test-word",
		Description: "One vocabulary item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":    map[string]any{"type": "string", "minLength": 1},
				"level":   map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1"}},
				"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 4, "maxItems": 4},
				"rank":    map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"word", "level", "options"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"word":"casa","level":"A1","options":["house","dog","car","tree"],"rank":12}`, false},
		{"optional field omitted", `{"word":"perro","level":"A1","options":["dog","cat","bird","fish"]}`, false},
		{"missing options", `{"word":"casa","level":"A1"}`, true},
		{"level outside enum", `{"word":"casa","level":"C2","options":["a","b","c","d"]}`, true},
		{"three options", `{"word":"casa","level":"A1","options":["a","b","c"]}`, true},
		{"rank not integer", `{"word":"casa","level":"A1","options":["a","b","c","d"],"rank":"high"}`, true},
		{"empty word", `{"word":"","level":"A1","options":["a","b","c","d"]}`, true},
		{"malformed", `{word: casa}`, true},
		{"empty body", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(wordSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected *ErrInvalidResponse, got %T", err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("Content = %q, want %q", inv.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := wordSchema()
	s.Name = "test-word-cache"
	raw := json.RawMessage(`{"word":"casa","level":"A1","options":["a","b","c","d"]}`)

	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := compiled.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("cached validation: %v", err)
	}
}
