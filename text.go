package keysheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/ansi"
)

const (
	defaultTextWidth = 80
	textSeparator    = " - "
	textIndent       = "  "
)

// TextRequest contains inputs for the terminal preview.
type TextRequest struct {
	Document *Document
	Writer   io.Writer
	// Width in terminal cells. Zero uses 80.
	Width int
	Theme Theme
	// Footer is printed after the last category. Empty skips it.
	Footer  string
	Options []TextOption
}

// RenderText writes a plain or ANSI preview of a document: the title, then
// each category with one line per binding, descriptions wrapped to Width.
func RenderText(req TextRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("keysheet text: writer is nil")
	}
	if err := req.Document.Validate(); err != nil {
		return fmt.Errorf("keysheet text: %w", err)
	}
	width := req.Width
	if width <= 0 {
		width = defaultTextWidth
	}
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	p := th.Palette()
	var cfg textConfig
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}

	w := bufio.NewWriter(req.Writer)
	title := truncateWithEllipsis(req.Document.Title, width)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", ansi.PrintableRuneWidth(title)))
	for _, cat := range req.Document.Categories {
		fmt.Fprintln(w)
		fmt.Fprintln(w, truncateWithEllipsis(cat.Name, width))
		for _, b := range cat.Bindings {
			prefix := textIndent + badges(b.Keys, cfg.color, p) + textSeparator
			desc := hangingWrap(b.Description, ansi.PrintableRuneWidth(prefix), width)
			fmt.Fprintln(w, prefix+desc)
		}
	}
	if req.Footer != "" {
		footer := truncateWithEllipsis(req.Footer, width)
		if url := LinkURL(req.Footer); cfg.osc8 && url != "" {
			footer = hyperlink(footer, url)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, footer)
	}
	return w.Flush()
}

func badges(keys Keys, color bool, p Palette) string {
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		if color {
			b.WriteString(ansiBackground(p.KeyFill))
			b.WriteString(ansiForeground(p.KeyText))
			b.WriteString(" " + key + " ")
			b.WriteString("\x1b[0m")
			continue
		}
		b.WriteString("[" + key + "]")
	}
	return b.String()
}

func ansiBackground(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func ansiForeground(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
