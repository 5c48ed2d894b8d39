package pdf

const (
	// separatorDrop lowers the separator and description so their text
	// lines up with the text inside the badges.
	separatorDrop = 1.5
	// separatorWidth is the box the separator is drawn in; the row
	// reserves separatorSpan of them.
	separatorWidth = 3.0
	separatorSpan  = 3
	separatorGlyph = "-"
)

// renderRow draws the badges, separator and description of one binding in
// column starting at cursor y, and returns how far the column cursor must
// move down. It does not touch the column cursors itself.
func (l *Layout) renderRow(column int, y float64, keys []string, description string) float64 {
	origin := l.ColumnX(column)
	x := origin
	for _, key := range keys {
		x += l.drawKey(x, y, key)
	}

	y -= separatorDrop
	l.canvas.TextBox(x+separatorWidth, y, separatorWidth, separatorGlyph, TextStyle{
		Face:    FaceRegular,
		Size:    l.cfg.FontSize,
		Color:   l.palette.Text,
		Leading: l.cfg.Leading,
	})
	x += separatorWidth * separatorSpan

	available := l.columnWidth - (x - origin)
	if available <= 0 {
		l.log.Warn("no room left for description", "column", column, "keys", keys, "available_width", available)
	}
	h := l.canvas.TextBox(x, y, available, description, TextStyle{
		Face:    FaceRegular,
		Size:    l.cfg.FontSize,
		Color:   l.palette.Text,
		Leading: l.cfg.Leading,
	})
	return separatorDrop + h
}
