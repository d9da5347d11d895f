package handlers

import "fmt"

type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// Field declares one body field: its JSON name, expected kind, and
// whether it must be present.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

// Schema is the declared shape of a request body, validated once at the
// handler boundary before any store call. Fields outside the schema pass
// through untouched, so documents can carry free-form extras.
type Schema []Field

func (s Schema) Validate(doc map[string]any) error {
	for _, f := range s {
		v, ok := doc[f.Name]
		if !ok || v == nil {
			if f.Required {
				return fmt.Errorf("%s is required", f.Name)
			}
			continue
		}
		switch f.Kind {
		case KindString:
			str, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s must be a string", f.Name)
			}
			if f.Required && str == "" {
				return fmt.Errorf("%s is required", f.Name)
			}
		case KindNumber:
			if _, ok := v.(float64); !ok {
				return fmt.Errorf("%s must be a number", f.Name)
			}
		}
	}
	return nil
}
