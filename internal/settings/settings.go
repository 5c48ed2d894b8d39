// Package settings loads optional render settings for the keysheet CLI.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"pkt.systems/keysheet/pdf"
)

const (
	appName        = "keysheet"
	configFileName = "config.toml"
	localFileName  = "keysheet.toml"
)

// Settings mirrors the settings file. Zero values leave defaults alone.
type Settings struct {
	Theme  string  `koanf:"theme"`
	Footer *string `koanf:"footer"` // empty string disables the footer

	Page   PageSettings   `koanf:"page"`
	Layout LayoutSettings `koanf:"layout"`
	Fonts  FontSettings   `koanf:"fonts"`
}

// PageSettings selects the paper.
type PageSettings struct {
	Size        string  `koanf:"size"`        // "A4", "Letter", ...
	Orientation string  `koanf:"orientation"` // "L" or "P"
	Margin      float64 `koanf:"margin"`
	// BadgeLayer puts badge backgrounds in a layer viewers can hide.
	BadgeLayer bool `koanf:"badge_layer"`
}

// LayoutSettings tunes text and badge metrics.
type LayoutSettings struct {
	ColumnMargin  float64 `koanf:"column_margin"`
	FontSize      float64 `koanf:"font_size"`
	TitleFontSize float64 `koanf:"title_font_size"`
	LineHeight    float64 `koanf:"line_height"`
	CharWidth     float64 `koanf:"char_width"`
}

// FontSettings holds TTF paths.
type FontSettings struct {
	Regular string `koanf:"regular"`
	Bold    string `koanf:"bold"`
	Black   string `koanf:"black"`
	Mono    string `koanf:"mono"`
}

// Load merges the user settings file, ./keysheet.toml and explicit, in
// that order; later files win. Missing implicit files are skipped, a missing
// explicit file is an error.
func Load(explicit string) (*Settings, error) {
	k := koanf.New(".")
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("settings: %s: %w", path, err)
		}
	}
	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("settings: %s: %w", path, err)
		}
	}
	s := &Settings{}
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	s.Fonts.Regular = expandPath(s.Fonts.Regular)
	s.Fonts.Bold = expandPath(s.Fonts.Bold)
	s.Fonts.Black = expandPath(s.Fonts.Black)
	s.Fonts.Mono = expandPath(s.Fonts.Mono)
	return s, nil
}

func searchPaths() []string {
	var paths []string
	if path, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName)); err == nil {
		paths = append(paths, path)
	}
	return append(paths, localFileName)
}

func (s *Settings) validate() error {
	switch s.Page.Orientation {
	case "", "L", "l", "P", "p", "landscape", "portrait":
	default:
		return fmt.Errorf("page.orientation %q: expected L or P", s.Page.Orientation)
	}
	if s.Page.Margin < 0 || s.Layout.ColumnMargin < 0 || s.Layout.FontSize < 0 ||
		s.Layout.TitleFontSize < 0 || s.Layout.LineHeight < 0 || s.Layout.CharWidth < 0 {
		return errors.New("page and layout lengths must not be negative")
	}
	return nil
}

// Apply overlays the settings onto cfg.
func (s *Settings) Apply(cfg *pdf.Config) {
	if s.Page.Size != "" {
		cfg.PageSize = s.Page.Size
	}
	if s.Page.Orientation != "" {
		cfg.Orientation = s.Page.Orientation
	}
	if s.Page.Margin > 0 {
		cfg.Margin = s.Page.Margin
	}
	if s.Page.BadgeLayer {
		cfg.BadgeLayer = true
	}
	if s.Layout.ColumnMargin > 0 {
		cfg.ColumnMargin = s.Layout.ColumnMargin
	}
	if s.Layout.FontSize > 0 {
		cfg.FontSize = s.Layout.FontSize
	}
	if s.Layout.TitleFontSize > 0 {
		cfg.TitleFontSize = s.Layout.TitleFontSize
	}
	if s.Layout.LineHeight > 0 {
		cfg.LineHeight = s.Layout.LineHeight
	}
	if s.Layout.CharWidth > 0 {
		cfg.CharWidth = s.Layout.CharWidth
	}
	if s.Fonts.Regular != "" {
		cfg.RegularFont = s.Fonts.Regular
	}
	if s.Fonts.Bold != "" {
		cfg.BoldFont = s.Fonts.Bold
	}
	if s.Fonts.Black != "" {
		cfg.BlackFont = s.Fonts.Black
	}
	if s.Fonts.Mono != "" {
		cfg.MonoFont = s.Fonts.Mono
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
