package keysheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeScalarAndListKeysMatch(t *testing.T) {
	scalar := `
[main]
title = "T"
column_count = 1

[[categories]]
name = "C"

[[categories.bindings]]
keys = "a"
desc = "d"
`
	list := strings.Replace(scalar, `keys = "a"`, `keys = ["a"]`, 1)

	a, err := Decode(strings.NewReader(scalar), FormatTOML)
	require.NoError(t, err)
	b, err := Decode(strings.NewReader(list), FormatTOML)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, Keys{"a"}, a.Categories[0].Bindings[0].Keys)
}

func TestDecodeYAMLScalarAndListKeysMatch(t *testing.T) {
	src := strings.Join([]string{
		"main:",
		"  title: T",
		"  column_count: 2",
		"categories:",
		"  - name: C",
		"    bindings:",
		"      - keys: a",
		"        desc: d",
		"      - keys: [a]",
		"        desc: d",
	}, "\n")
	doc, err := Decode(strings.NewReader(src), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Categories[0].Bindings, 2)
	require.Equal(t, doc.Categories[0].Bindings[0], doc.Categories[0].Bindings[1])
}

func TestDecodeKeepsDocumentOrder(t *testing.T) {
	doc, err := DecodeFile(filepath.Join("testdata", "sway.toml"))
	require.NoError(t, err)
	require.Equal(t, "Sway", doc.Title)
	require.Equal(t, 3, doc.ColumnCount)

	names := make([]string, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		names = append(names, cat.Name)
	}
	require.Equal(t, []string{"Windows", "Workspaces", "Launchers", "Session"}, names)
	require.Equal(t, Keys{"Super", "Shift", "Q"}, doc.Categories[0].Bindings[1].Keys)
	require.Equal(t, Keys{"F11"}, doc.Categories[0].Bindings[2].Keys)
	require.Equal(t, 9, doc.BindingCount())
}

func TestDecodeFileYAML(t *testing.T) {
	doc, err := DecodeFile(filepath.Join("testdata", "tmux.yaml"))
	require.NoError(t, err)
	require.Equal(t, "tmux", doc.Title)
	require.Equal(t, Keys{"Ctrl-b", "%"}, doc.Categories[1].Bindings[0].Keys)
	require.Equal(t, Keys{"Ctrl-b ["}, doc.Categories[2].Bindings[0].Keys)
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"missing main": `
[[categories]]
name = "C"
`,
		"missing title": `
[main]
column_count = 2
`,
		"missing column count": `
[main]
title = "T"
`,
		"zero columns": `
[main]
title = "T"
column_count = 0
`,
		"empty category name": `
[main]
title = "T"
column_count = 1
[[categories]]
name = ""
`,
		"empty keys": `
[main]
title = "T"
column_count = 1
[[categories]]
name = "C"
[[categories.bindings]]
keys = []
desc = "d"
`,
		"empty key": `
[main]
title = "T"
column_count = 1
[[categories]]
name = "C"
[[categories.bindings]]
keys = ["Ctrl", ""]
desc = "d"
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src), FormatTOML)
			require.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestDecodeRejectsNonStringKeys(t *testing.T) {
	src := `
[main]
title = "T"
column_count = 1
[[categories]]
name = "C"
[[categories.bindings]]
keys = [1, 2]
desc = "d"
`
	_, err := Decode(strings.NewReader(src), FormatTOML)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected string")
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"a.toml":   FormatTOML,
		"a.yaml":   FormatYAML,
		"a.YML":    FormatYAML,
		"template": FormatTOML,
	}
	for path, want := range cases {
		require.Equalf(t, want, FormatForPath(path), "FormatForPath(%q)", path)
	}
}

func TestKeysString(t *testing.T) {
	require.Equal(t, "Ctrl+Shift+T", Keys{"Ctrl", "Shift", "T"}.String())
}
