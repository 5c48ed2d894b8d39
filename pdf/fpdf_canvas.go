package pdf

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"
)

// fpdfCanvas draws on the single page of an fpdf document.
type fpdfCanvas struct {
	pdf         *fpdf.Fpdf
	fonts       fontSet
	margin      float64
	width       float64
	height      float64
	lineSpacing float64
	badgeLayer  int

	// cp1252 translates UTF-8 to the single-byte encoding of the core fonts.
	cp1252 func(string) string
}

func newFPDFCanvas(cfg Config) (*fpdfCanvas, error) {
	pdf := fpdf.New(cfg.Orientation, "pt", cfg.PageSize, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("page setup: %w", err)
	}
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCellMargin(0)
	fonts, err := setupFonts(pdf, cfg)
	if err != nil {
		return nil, err
	}
	badgeLayer := -1
	if cfg.BadgeLayer {
		badgeLayer = pdf.AddLayer("key badges", true)
		if cfg.OpenLayerPane {
			pdf.OpenLayerPane()
		}
	}
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("page setup: %w", err)
	}
	pageW, pageH := pdf.GetPageSize()
	c := &fpdfCanvas{
		pdf:         pdf,
		fonts:       fonts,
		margin:      cfg.Margin,
		width:       pageW - 2*cfg.Margin,
		height:      pageH - 2*cfg.Margin,
		lineSpacing: cfg.LineSpacing,
		badgeLayer:  badgeLayer,
	}
	if fonts.core {
		c.cp1252 = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("page too small for margin %v", cfg.Margin)
	}
	return c, nil
}

func (c *fpdfCanvas) Bounds() (float64, float64) {
	return c.width, c.height
}

// pagePoint converts bounds coordinates to fpdf's top-down page coordinates.
func (c *fpdfCanvas) pagePoint(x, y float64) (float64, float64) {
	return c.margin + x, c.margin + (c.height - y)
}

func (c *fpdfCanvas) FillRoundedRect(x, y, w, h, r float64, fill colorful.Color) {
	px, py := c.pagePoint(x, y)
	cr, cg, cb := fill.RGB255()
	c.pdf.SetFillColor(int(cr), int(cg), int(cb))
	if c.badgeLayer >= 0 {
		c.pdf.BeginLayer(c.badgeLayer)
		defer c.pdf.EndLayer()
	}
	c.pdf.RoundedRect(px, py, w, h, r, "1234", "F")
}

func (c *fpdfCanvas) TextBox(x, y, width float64, text string, style TextStyle) float64 {
	ref := c.fonts.faces[style.Face]
	c.pdf.SetFont(ref.family, ref.style, style.Size)
	r, g, b := style.Color.RGB255()
	c.pdf.SetTextColor(int(r), int(g), int(b))

	lines := c.pdf.SplitText(c.encode(text), width)
	lineHeight := style.Size * c.lineSpacing
	px, py := c.pagePoint(x, y)
	for i, line := range lines {
		c.pdf.SetXY(px, py+float64(i)*(lineHeight+style.Leading))
		c.pdf.CellFormat(math.Max(width, 0), lineHeight, c.raw(line), "", 0, "L", false, 0, "")
	}
	return textHeight(len(lines), lineHeight, style.Leading)
}

func (c *fpdfCanvas) Link(x, y, w, h float64, url string) {
	px, py := c.pagePoint(x, y)
	c.pdf.LinkString(px, py, w, h, url)
}

func (c *fpdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

func (c *fpdfCanvas) setMetadata(title string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetCreator("keysheet", true)
}

// encode maps text onto runes the current fonts have a width entry for.
// With core fonts every rune becomes its cp1252 byte value, so SplitText
// measures exactly what is drawn; runes cp1252 lacks become '?'. UTF-8
// fonts only lose runes outside the basic multilingual plane.
func (c *fpdfCanvas) encode(text string) string {
	if !c.fonts.core {
		return strings.Map(func(r rune) rune {
			if r > 0xFFFF {
				return '?'
			}
			return r
		}, text)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		enc := c.cp1252(string(r))
		if len(enc) != 1 || enc[0] < 0x80 {
			// the translator writes '.' for runes it cannot map
			b.WriteRune('?')
			continue
		}
		b.WriteRune(rune(enc[0]))
	}
	return b.String()
}

// raw turns an encoded line back into the bytes the current font expects.
func (c *fpdfCanvas) raw(line string) string {
	if !c.fonts.core {
		return line
	}
	buf := make([]byte, 0, len(line))
	for _, r := range line {
		buf = append(buf, byte(r))
	}
	return string(buf)
}

// textHeight is the extent of n wrapped lines: leading goes between lines,
// not after the last one.
func textHeight(n int, lineHeight, leading float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*lineHeight + float64(n-1)*leading
}
