package keysheet

// TextOption configures the terminal preview.
type TextOption func(*textConfig)

type textConfig struct {
	color bool
	osc8  bool
}

// WithColor draws key badges with 24-bit ANSI colors from the theme.
func WithColor(enabled bool) TextOption {
	return func(cfg *textConfig) {
		cfg.color = enabled
	}
}

// WithOSC8 enables or disables an OSC 8 hyperlink for the footer.
func WithOSC8(enabled bool) TextOption {
	return func(cfg *textConfig) {
		cfg.osc8 = enabled
	}
}
