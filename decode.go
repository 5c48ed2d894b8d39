package keysheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the template syntax.
type Format int

const (
	// FormatTOML is the default template syntax.
	FormatTOML Format = iota
	// FormatYAML accepts the same schema written as YAML.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// FormatForPath picks a format from a file extension. Unknown extensions are
// treated as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

type templateFile struct {
	Main       *templateMain      `toml:"main" yaml:"main"`
	Categories []templateCategory `toml:"categories" yaml:"categories"`
}

type templateMain struct {
	Title       *string `toml:"title" yaml:"title"`
	ColumnCount *int    `toml:"column_count" yaml:"column_count"`
}

type templateCategory struct {
	Name     string            `toml:"name" yaml:"name"`
	Bindings []templateBinding `toml:"bindings" yaml:"bindings"`
}

type templateBinding struct {
	Keys Keys   `toml:"keys" yaml:"keys"`
	Desc string `toml:"desc" yaml:"desc"`
}

// DecodeFile reads and validates a template from disk.
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keysheet: open template: %w", err)
	}
	defer func() { _ = f.Close() }()
	doc, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a template and returns a validated Document.
func Decode(r io.Reader, format Format) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("keysheet: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("keysheet: read template: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("keysheet: %w", err)
	}
	var tf templateFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(src))
		if err := dec.Decode(&tf); err != nil && err != io.EOF {
			return nil, fmt.Errorf("keysheet: parse yaml: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(bytes.NewReader(src)).Decode(&tf); err != nil {
			return nil, fmt.Errorf("keysheet: parse toml: %w", err)
		}
	}
	doc, err := tf.document()
	if err != nil {
		return nil, fmt.Errorf("keysheet: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("keysheet: %w", err)
	}
	return doc, nil
}

func (tf templateFile) document() (*Document, error) {
	if tf.Main == nil {
		return nil, fmt.Errorf("%w: missing [main] table", ErrInvalidDocument)
	}
	if tf.Main.Title == nil {
		return nil, fmt.Errorf("%w: missing main.title", ErrInvalidDocument)
	}
	if tf.Main.ColumnCount == nil {
		return nil, fmt.Errorf("%w: missing main.column_count", ErrInvalidDocument)
	}
	doc := &Document{
		Title:       *tf.Main.Title,
		ColumnCount: *tf.Main.ColumnCount,
		Categories:  make([]Category, 0, len(tf.Categories)),
	}
	for _, tc := range tf.Categories {
		cat := Category{
			Name:     tc.Name,
			Bindings: make([]Binding, 0, len(tc.Bindings)),
		}
		for _, tb := range tc.Bindings {
			cat.Bindings = append(cat.Bindings, Binding{
				Keys:        tb.Keys,
				Description: tb.Desc,
			})
		}
		doc.Categories = append(doc.Categories, cat)
	}
	return doc, nil
}
