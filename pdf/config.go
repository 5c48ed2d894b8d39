package pdf

// Config holds PDF rendering settings. Lengths are in points.
type Config struct {
	PageSize    string
	Orientation string
	Margin      float64

	// Font files. When all four are empty the core Helvetica and Courier
	// fonts are used.
	RegularFont      string
	BoldFont         string
	BlackFont        string
	MonoFont         string
	RegularFontBytes []byte
	BoldFontBytes    []byte
	BlackFontBytes   []byte
	MonoFontBytes    []byte

	FontSize      float64
	TitleFontSize float64
	// LineSpacing multiplies the font size to get the height of one text line.
	LineSpacing float64
	// LineHeight is the height of a key badge.
	LineHeight float64
	// Leading is the extra space between wrapped lines of a description.
	Leading float64
	// CharWidth approximates the width of one key character.
	CharWidth float64

	ColumnMargin     float64
	TitleReservation float64
	HeaderPadding    float64

	KeyPadding float64
	KeyMargin  float64
	KeyRadius  float64

	LinkWidth    float64
	LinkBaseline float64

	// BadgeLayer draws key badge backgrounds in an optional content group
	// so viewers can hide them, e.g. before printing.
	BadgeLayer    bool
	OpenLayerPane bool
}

// DefaultConfig returns the baseline configuration: A4 landscape with a
// 20pt margin and the badge metrics of the classic cheat sheet look.
func DefaultConfig() Config {
	return Config{
		PageSize:         "A4",
		Orientation:      "L",
		Margin:           20,
		FontSize:         8,
		TitleFontSize:    12,
		LineSpacing:      1.17,
		LineHeight:       10,
		Leading:          4,
		CharWidth:        5,
		ColumnMargin:     16,
		TitleReservation: 12,
		HeaderPadding:    4,
		KeyPadding:       2,
		KeyMargin:        2,
		KeyRadius:        2,
		LinkWidth:        160,
		LinkBaseline:     15,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Orientation != "" {
		dst.Orientation = src.Orientation
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.RegularFont != "" {
		dst.RegularFont = src.RegularFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if src.BlackFont != "" {
		dst.BlackFont = src.BlackFont
	}
	if src.MonoFont != "" {
		dst.MonoFont = src.MonoFont
	}
	if len(src.RegularFontBytes) > 0 {
		dst.RegularFontBytes = src.RegularFontBytes
	}
	if len(src.BoldFontBytes) > 0 {
		dst.BoldFontBytes = src.BoldFontBytes
	}
	if len(src.BlackFontBytes) > 0 {
		dst.BlackFontBytes = src.BlackFontBytes
	}
	if len(src.MonoFontBytes) > 0 {
		dst.MonoFontBytes = src.MonoFontBytes
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.TitleFontSize > 0 {
		dst.TitleFontSize = src.TitleFontSize
	}
	if src.LineSpacing > 0 {
		dst.LineSpacing = src.LineSpacing
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.Leading > 0 {
		dst.Leading = src.Leading
	}
	if src.CharWidth > 0 {
		dst.CharWidth = src.CharWidth
	}
	if src.ColumnMargin > 0 {
		dst.ColumnMargin = src.ColumnMargin
	}
	if src.TitleReservation > 0 {
		dst.TitleReservation = src.TitleReservation
	}
	if src.HeaderPadding > 0 {
		dst.HeaderPadding = src.HeaderPadding
	}
	if src.KeyPadding > 0 {
		dst.KeyPadding = src.KeyPadding
	}
	if src.KeyMargin > 0 {
		dst.KeyMargin = src.KeyMargin
	}
	if src.KeyRadius > 0 {
		dst.KeyRadius = src.KeyRadius
	}
	if src.LinkWidth > 0 {
		dst.LinkWidth = src.LinkWidth
	}
	if src.LinkBaseline > 0 {
		dst.LinkBaseline = src.LinkBaseline
	}
	if src.BadgeLayer {
		dst.BadgeLayer = src.BadgeLayer
	}
	if src.OpenLayerPane {
		dst.OpenLayerPane = src.OpenLayerPane
	}
}
