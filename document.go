package keysheet

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument reports a template that is missing required fields or
// carries values the renderer cannot lay out.
var ErrInvalidDocument = errors.New("invalid document")

// Document is a decoded cheat sheet template.
type Document struct {
	Title       string
	ColumnCount int
	Categories  []Category
}

// Category is a named group of bindings placed as one unit.
type Category struct {
	Name     string
	Bindings []Binding
}

// Binding pairs one keyboard shortcut with its description.
type Binding struct {
	Keys        Keys
	Description string
}

// Keys is the ordered list of keys pressed for a binding. Templates may
// spell a single key as a bare string; it decodes to a one-element list.
type Keys []string

// UnmarshalTOML implements toml.Unmarshaler.
func (k *Keys) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*k = Keys{val}
		return nil
	case []any:
		keys := make(Keys, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("keys[%d]: expected string, got %T", i, item)
			}
			keys = append(keys, s)
		}
		*k = keys
		return nil
	default:
		return fmt.Errorf("keys: expected string or list of strings, got %T", v)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Keys) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*k = Keys{s}
		return nil
	case yaml.SequenceNode:
		var keys []string
		if err := node.Decode(&keys); err != nil {
			return err
		}
		*k = keys
		return nil
	default:
		return fmt.Errorf("line %d: keys: expected string or list of strings", node.Line)
	}
}

// String joins the keys the way they are printed in previews.
func (k Keys) String() string {
	return strings.Join(k, "+")
}

// Validate reports the first problem that would prevent layout.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if d.ColumnCount < 1 {
		return fmt.Errorf("%w: main.column_count must be at least 1 (got %d)", ErrInvalidDocument, d.ColumnCount)
	}
	for ci, cat := range d.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("%w: categories[%d]: name is empty", ErrInvalidDocument, ci)
		}
		for bi, b := range cat.Bindings {
			if len(b.Keys) == 0 {
				return fmt.Errorf("%w: %s: bindings[%d]: keys are empty", ErrInvalidDocument, cat.Name, bi)
			}
			for ki, key := range b.Keys {
				if key == "" {
					return fmt.Errorf("%w: %s: bindings[%d]: keys[%d] is empty", ErrInvalidDocument, cat.Name, bi, ki)
				}
			}
		}
	}
	return nil
}

// BindingCount returns the number of bindings across all categories.
func (d *Document) BindingCount() int {
	n := 0
	for _, cat := range d.Categories {
		n += len(cat.Bindings)
	}
	return n
}
