package pdf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"pkt.systems/keysheet"
)

// ErrColumnCount reports a layout requested with fewer than one column.
var ErrColumnCount = errors.New("column count must be at least 1")

// Layout places categories into columns on a single page.
//
// Each column keeps a vertical cursor that starts just below the title and
// only moves down. A category is drawn entirely in the active column;
// SelectNextColumn then picks the emptiest column for the next one. The
// page bottom is not enforced: content that does not fit overflows and is
// reported through the logger.
type Layout struct {
	canvas  Canvas
	cfg     Config
	palette keysheet.Palette
	log     *slog.Logger

	width       float64
	height      float64
	columnWidth float64
	cursors     []float64
	active      int
}

// NewLayout prepares columnCount empty columns on canvas.
func NewLayout(canvas Canvas, columnCount int, cfg Config, palette keysheet.Palette, logger *slog.Logger) (*Layout, error) {
	if columnCount < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrColumnCount, columnCount)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	width, height := canvas.Bounds()
	l := &Layout{
		canvas:      canvas,
		cfg:         cfg,
		palette:     palette,
		log:         logger,
		width:       width,
		height:      height,
		columnWidth: width/float64(columnCount) - cfg.ColumnMargin*float64(columnCount-1),
		cursors:     make([]float64, columnCount),
	}
	for i := range l.cursors {
		l.cursors[i] = height - cfg.TitleReservation
	}
	if l.columnWidth <= 0 {
		l.log.Warn("columns have no usable width", "columns", columnCount, "column_width", l.columnWidth)
	}
	return l, nil
}

// ColumnCount returns the number of columns.
func (l *Layout) ColumnCount() int { return len(l.cursors) }

// ColumnWidth returns the width shared by all columns.
func (l *Layout) ColumnWidth() float64 { return l.columnWidth }

// ColumnX returns the left edge of column c.
func (l *Layout) ColumnX(c int) float64 {
	return float64(c) * (l.columnWidth + l.cfg.ColumnMargin)
}

// Cursor returns the current vertical position of column c.
func (l *Layout) Cursor(c int) float64 { return l.cursors[c] }

// ActiveColumn returns the column the current category is drawn into.
func (l *Layout) ActiveColumn() int { return l.active }

// RenderTitle draws the page title at the top-left. Call it once, before
// any category.
func (l *Layout) RenderTitle(text string) {
	l.canvas.TextBox(0, l.height, l.width, text, TextStyle{
		Face:  FaceBlack,
		Size:  l.cfg.TitleFontSize,
		Color: l.palette.Title,
	})
}

// SelectNextColumn makes the column with the most room left active. Ties go
// to the lowest index. Call it after each category.
func (l *Layout) SelectNextColumn() {
	best := 0
	for c := 1; c < len(l.cursors); c++ {
		if l.cursors[c] > l.cursors[best] {
			best = c
		}
	}
	l.active = best
}

// RenderCategoryHeader draws a category name in the active column.
func (l *Layout) RenderCategoryHeader(text string) {
	l.advance(l.cfg.ColumnMargin)
	h := l.canvas.TextBox(l.ColumnX(l.active), l.cursors[l.active], l.columnWidth, text, TextStyle{
		Face:  FaceBold,
		Size:  l.cfg.FontSize,
		Color: l.palette.Heading,
	})
	l.advance(h + l.cfg.HeaderPadding)
}

// RenderBinding draws one binding row in the active column.
func (l *Layout) RenderBinding(keys []string, description string) {
	l.advance(l.renderRow(l.active, l.cursors[l.active], keys, description))
}

// RenderFooterLink draws text in the bottom-right corner and makes it a
// link. The column cursors are not involved.
func (l *Layout) RenderFooterLink(text string) {
	x := l.width - l.cfg.LinkWidth
	y := l.cfg.LinkBaseline
	h := l.canvas.TextBox(x, y, l.cfg.LinkWidth, text, TextStyle{
		Face:  FaceRegular,
		Size:  l.cfg.FontSize,
		Color: l.palette.Link,
	})
	if url := keysheet.LinkURL(text); url != "" && h > 0 {
		l.canvas.Link(x, y, l.cfg.LinkWidth, h, url)
	}
}

// Output writes the page to w.
func (l *Layout) Output(w io.Writer) error {
	return l.canvas.Output(w)
}

func (l *Layout) advance(dy float64) {
	before := l.cursors[l.active]
	l.cursors[l.active] -= dy
	if before >= 0 && l.cursors[l.active] < 0 {
		l.log.Warn("column overflows the page", "column", l.active, "cursor", l.cursors[l.active])
	}
}
