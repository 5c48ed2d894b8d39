package keysheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors used to draw a cheat sheet.
type Palette struct {
	KeyFill colorful.Color
	KeyText colorful.Color
	Text    colorful.Color
	Heading colorful.Color
	Title   colorful.Color
	Link    colorful.Color
}

// HexPalette is a Palette spelled as "#rrggbb" strings.
type HexPalette struct {
	KeyFill string
	KeyText string
	Text    string
	Heading string
	Title   string
	Link    string
}

// Theme provides a named palette.
type Theme interface {
	Name() string
	Palette() Palette
}

type theme struct {
	name    string
	palette Palette
}

func (t theme) Name() string     { return t.name }
func (t theme) Palette() Palette { return t.palette }

// NewTheme returns a Theme from a Palette.
func NewTheme(name string, p Palette) Theme {
	return theme{name: name, palette: p}
}

// ParseHexPalette converts hex strings into a Palette. Empty entries fall
// back to the default palette.
func ParseHexPalette(h HexPalette) (Palette, error) {
	p := DefaultTheme().Palette()
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"key_fill", h.KeyFill, &p.KeyFill},
		{"key_text", h.KeyText, &p.KeyText},
		{"text", h.Text, &p.Text},
		{"heading", h.Heading, &p.Heading},
		{"title", h.Title, &p.Title},
		{"link", h.Link, &p.Link},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := parseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(s)
}

func mustPalette(h HexPalette) Palette {
	var p Palette
	for _, f := range []struct {
		hex string
		dst *colorful.Color
	}{
		{h.KeyFill, &p.KeyFill},
		{h.KeyText, &p.KeyText},
		{h.Text, &p.Text},
		{h.Heading, &p.Heading},
		{h.Title, &p.Title},
		{h.Link, &p.Link},
	} {
		c, err := parseHex(f.hex)
		if err != nil {
			panic(fmt.Sprintf("keysheet: builtin palette: %v", err))
		}
		*f.dst = c
	}
	return p
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", palette: mustPalette(HexPalette{
		KeyFill: "#e6e6e6", KeyText: "#000000", Text: "#000000",
		Heading: "#000000", Title: "#000000", Link: "#000000",
	})},
	"paper": theme{name: "paper", palette: mustPalette(HexPalette{
		KeyFill: "#f1ede4", KeyText: "#2b2b2b", Text: "#2b2b2b",
		Heading: "#111111", Title: "#111111", Link: "#6b6b6b",
	})},
	"solarized-light": theme{name: "solarized-light", palette: mustPalette(HexPalette{
		KeyFill: "#eee8d5", KeyText: "#073642", Text: "#586e75",
		Heading: "#268bd2", Title: "#cb4b16", Link: "#2aa198",
	})},
	"gruvbox-light": theme{name: "gruvbox-light", palette: mustPalette(HexPalette{
		KeyFill: "#ebdbb2", KeyText: "#282828", Text: "#3c3836",
		Heading: "#af3a03", Title: "#9d0006", Link: "#076678",
	})},
	"nord-light": theme{name: "nord-light", palette: mustPalette(HexPalette{
		KeyFill: "#d8dee9", KeyText: "#2e3440", Text: "#3b4252",
		Heading: "#5e81ac", Title: "#2e3440", Link: "#81a1c1",
	})},
	"boring": theme{name: "boring", palette: mustPalette(HexPalette{
		KeyFill: "#ffffff", KeyText: "#000000", Text: "#000000",
		Heading: "#000000", Title: "#000000", Link: "#000000",
	})},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
