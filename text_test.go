package keysheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/require"
)

func previewDocument() *Document {
	return &Document{
		Title:       "Sway",
		ColumnCount: 2,
		Categories: []Category{
			{
				Name: "Windows",
				Bindings: []Binding{
					{Keys: Keys{"Super", "H"}, Description: "Split left"},
					{Keys: Keys{"F11"}, Description: "Toggle fullscreen for the focused container and all of its children"},
				},
			},
		},
	}
}

func TestRenderTextPlain(t *testing.T) {
	var out bytes.Buffer
	err := RenderText(TextRequest{Document: previewDocument(), Writer: &out, Width: 40})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, "Sway", lines[0])
	require.Equal(t, "====", lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, "Windows", lines[3])
	require.Equal(t, "  [Super] [H] - Split left", lines[4])
	require.True(t, strings.HasPrefix(lines[5], "  [F11] - Toggle"))

	hang := strings.Repeat(" ", len("  [F11] - "))
	require.Greater(t, len(lines), 6)
	for _, line := range lines[6:] {
		require.True(t, strings.HasPrefix(line, hang), "continuation %q not indented", line)
		require.LessOrEqual(t, len(line), 40)
	}
}

func TestRenderTextColor(t *testing.T) {
	var out bytes.Buffer
	err := RenderText(TextRequest{
		Document: previewDocument(),
		Writer:   &out,
		Width:    80,
		Options:  []TextOption{WithColor(true)},
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "\x1b[48;2;230;230;230m")
	for _, line := range strings.Split(out.String(), "\n") {
		require.LessOrEqual(t, ansi.PrintableRuneWidth(line), 80)
	}
}

func TestRenderTextFooter(t *testing.T) {
	var out bytes.Buffer
	err := RenderText(TextRequest{Document: previewDocument(), Writer: &out, Footer: "pkt.systems/keysheet"})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "\n\npkt.systems/keysheet\n"))

	out.Reset()
	err = RenderText(TextRequest{
		Document: previewDocument(),
		Writer:   &out,
		Footer:   "pkt.systems/keysheet",
		Options:  []TextOption{WithOSC8(true)},
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), osc8Start+"https://pkt.systems/keysheet\x1b\\pkt.systems/keysheet"+osc8End)
}

func TestLinkURL(t *testing.T) {
	cases := map[string]string{
		"github.com/user/repo": "https://github.com/user/repo",
		"http://example.com/x": "http://example.com/x",
		" example.com ":        "https://example.com",
		"made with love":       "",
		"localhost":            "",
		"":                     "",
	}
	for in, want := range cases {
		require.Equalf(t, want, LinkURL(in), "LinkURL(%q)", in)
	}
}

func TestRenderTextRejectsInvalidDocument(t *testing.T) {
	var out bytes.Buffer
	err := RenderText(TextRequest{Document: &Document{Title: "T"}, Writer: &out})
	require.ErrorIs(t, err, ErrInvalidDocument)
	require.Zero(t, out.Len())
}

func TestTruncateWithEllipsis(t *testing.T) {
	require.Equal(t, "short", truncateWithEllipsis("short", 10))
	require.Equal(t, "long…", truncateWithEllipsis("long title", 5))
	require.Equal(t, "…", truncateWithEllipsis("abc", 1))
	require.Equal(t, "", truncateWithEllipsis("abc", 0))
}
