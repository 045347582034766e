package llm

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Type names follow the OpenAPI subset accepted by responseSchema.
type Type string

const (
	TypeObject  Type = "OBJECT"
	TypeArray   Type = "ARRAY"
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeInteger Type = "INTEGER"
	TypeBoolean Type = "BOOLEAN"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// ValidationError reports the first place a document diverges from its schema.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Reason)
}

// ValidateJSON decodes data and checks it against the schema.
func (s *Schema) ValidateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return s.Validate(doc)
}

// Validate checks a decoded JSON value (as produced by encoding/json into any).
// Properties not declared in the schema are ignored.
func (s *Schema) Validate(value any) error {
	return s.validate("$", value)
}

func (s *Schema) validate(path string, value any) error {
	if s == nil {
		return nil
	}
	if value == nil {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("expected %s, got null", s.Type)}
	}

	switch s.Type {
	case TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return typeMismatch(path, s.Type, value)
		}
		for _, name := range s.Required {
			if _, present := obj[name]; !present {
				return &ValidationError{Path: path + "." + name, Reason: "required property missing"}
			}
		}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child, present := obj[name]
			if !present {
				continue
			}
			if err := s.Properties[name].validate(path+"."+name, child); err != nil {
				return err
			}
		}
	case TypeArray:
		items, ok := value.([]any)
		if !ok {
			return typeMismatch(path, s.Type, value)
		}
		for i, item := range items {
			if err := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case TypeString:
		if _, ok := value.(string); !ok {
			return typeMismatch(path, s.Type, value)
		}
	case TypeNumber:
		if _, ok := value.(float64); !ok {
			return typeMismatch(path, s.Type, value)
		}
	case TypeInteger:
		f, ok := value.(float64)
		if !ok || f != float64(int64(f)) {
			return typeMismatch(path, s.Type, value)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return typeMismatch(path, s.Type, value)
		}
	default:
		return &ValidationError{Path: path, Reason: fmt.Sprintf("unsupported schema type %q", s.Type)}
	}
	return nil
}

func typeMismatch(path string, want Type, got any) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf("expected %s, got %T", want, got)}
}
