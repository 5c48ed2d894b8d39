package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
	"pkt.systems/keysheet/pdf"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, &Settings{}, s)

	cfg := pdf.DefaultConfig()
	s.Apply(&cfg)
	require.Equal(t, pdf.DefaultConfig(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "render.toml")
	writeFile(t, path, `
theme = "nord-light"
footer = ""

[page]
size = "Letter"
orientation = "P"
margin = 24
badge_layer = true

[layout]
column_margin = 12
font_size = 9
char_width = 5.5

[fonts]
regular = "/fonts/r.ttf"
bold = "/fonts/b.ttf"
mono = "/fonts/m.ttf"
`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "nord-light", s.Theme)
	require.NotNil(t, s.Footer)
	require.Equal(t, "", *s.Footer)

	cfg := pdf.DefaultConfig()
	s.Apply(&cfg)
	require.Equal(t, "Letter", cfg.PageSize)
	require.Equal(t, "P", cfg.Orientation)
	require.Equal(t, 24.0, cfg.Margin)
	require.True(t, cfg.BadgeLayer)
	require.Equal(t, 12.0, cfg.ColumnMargin)
	require.Equal(t, 9.0, cfg.FontSize)
	require.Equal(t, 5.5, cfg.CharWidth)
	require.Equal(t, 12.0, cfg.TitleFontSize)
	require.Equal(t, "/fonts/r.ttf", cfg.RegularFont)
	require.Equal(t, "", cfg.BlackFont)
}

func TestLoadUserFileThenExplicit(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "keysheet", "config.toml"), `
theme = "paper"
[page]
margin = 30
`)
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "paper", s.Theme)
	require.Equal(t, 30.0, s.Page.Margin)
	require.Nil(t, s.Footer)

	explicit := filepath.Join(dir, "override.toml")
	writeFile(t, explicit, `theme = "boring"`)
	s, err = Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "boring", s.Theme)
	require.Equal(t, 30.0, s.Page.Margin)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "theme = [")
	_, err = Load(bad)
	require.Error(t, err)

	orient := filepath.Join(dir, "orient.toml")
	writeFile(t, orient, "[page]\norientation = \"sideways\"\n")
	_, err = Load(orient)
	require.ErrorContains(t, err, "page.orientation")

	negative := filepath.Join(dir, "negative.toml")
	writeFile(t, negative, "[layout]\nfont_size = -1\n")
	_, err = Load(negative)
	require.ErrorContains(t, err, "negative")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expands to home", input: "~/fonts/r.ttf", expected: filepath.Join(home, "fonts", "r.ttf")},
		{name: "absolute path unchanged", input: "/usr/share/fonts/r.ttf", expected: "/usr/share/fonts/r.ttf"},
		{name: "relative path unchanged", input: "fonts/r.ttf", expected: "fonts/r.ttf"},
		{name: "empty string unchanged", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}
