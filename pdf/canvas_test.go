package pdf

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

type drawOp struct {
	kind  string
	x     float64
	y     float64
	w     float64
	h     float64
	r     float64
	text  string
	style TextStyle
	fill  colorful.Color
}

// recordingCanvas records draw calls and measures text with a fixed
// half-em glyph width so heights are predictable.
type recordingCanvas struct {
	width  float64
	height float64
	ops    []drawOp
}

func newRecordingCanvas(width, height float64) *recordingCanvas {
	return &recordingCanvas{width: width, height: height}
}

func (c *recordingCanvas) Bounds() (float64, float64) { return c.width, c.height }

func (c *recordingCanvas) FillRoundedRect(x, y, w, h, r float64, fill colorful.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, r: r, fill: fill})
}

func (c *recordingCanvas) TextBox(x, y, width float64, text string, style TextStyle) float64 {
	c.ops = append(c.ops, drawOp{kind: "text", x: x, y: y, w: width, text: text, style: style})
	return textHeight(fakeLineCount(text, width, style.Size), style.Size*1.17, style.Leading)
}

func (c *recordingCanvas) Link(x, y, w, h float64, url string) {
	c.ops = append(c.ops, drawOp{kind: "link", x: x, y: y, w: w, h: h, text: url})
}

func (c *recordingCanvas) Output(w io.Writer) error {
	_, err := io.WriteString(w, "%PDF-recorded\n")
	return err
}

func (c *recordingCanvas) texts() []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

func (c *recordingCanvas) rects() []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == "rect" {
			out = append(out, op)
		}
	}
	return out
}

func fakeLineCount(text string, width, size float64) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	if width <= 0 {
		return n
	}
	return int(math.Ceil(float64(n) * size * 0.5 / width))
}
