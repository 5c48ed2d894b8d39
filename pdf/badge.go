package pdf

import "unicode/utf8"

// keyAdvance is the horizontal space a badge for key takes up, including
// the margin before the next element. Widths come from the rune count, not
// from glyph metrics.
func (l *Layout) keyAdvance(key string) float64 {
	return l.keyWidth(key) + 2*l.cfg.KeyPadding + l.cfg.KeyMargin
}

func (l *Layout) keyWidth(key string) float64 {
	return float64(utf8.RuneCountInString(key)) * l.cfg.CharWidth
}

// drawKey draws one key badge with its top-left corner at (x, y) and
// returns how far x must move for the next element.
func (l *Layout) drawKey(x, y float64, key string) float64 {
	w := l.keyWidth(key)
	l.canvas.FillRoundedRect(x, y, w+2*l.cfg.KeyPadding, l.cfg.LineHeight, l.cfg.KeyRadius, l.palette.KeyFill)
	l.canvas.TextBox(x+l.cfg.KeyPadding, y, w, key, TextStyle{
		Face:  FaceMono,
		Size:  l.cfg.FontSize,
		Color: l.palette.KeyText,
	})
	return l.keyAdvance(key)
}
