package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily      = "keysheet"
	blackFontFamily = "keysheet-black"
	monoFontFamily  = "keysheet-mono"
)

type fontRef struct {
	family string
	style  string
}

type fontSet struct {
	faces map[Face]fontRef
	// core is set when the built-in Helvetica/Courier fonts are in use and
	// text must be translated to cp1252 before drawing.
	core bool
}

func coreFontSet() fontSet {
	return fontSet{
		faces: map[Face]fontRef{
			FaceRegular: {family: "Helvetica"},
			FaceBold:    {family: "Helvetica", style: "B"},
			FaceBlack:   {family: "Helvetica", style: "B"},
			FaceMono:    {family: "Courier"},
		},
		core: true,
	}
}

func utf8FontSet(black bool) fontSet {
	set := fontSet{
		faces: map[Face]fontRef{
			FaceRegular: {family: fontFamily},
			FaceBold:    {family: fontFamily, style: "B"},
			FaceBlack:   {family: fontFamily, style: "B"},
			FaceMono:    {family: monoFontFamily},
		},
	}
	if black {
		set.faces[FaceBlack] = fontRef{family: blackFontFamily}
	}
	return set
}

// setupFonts registers the configured fonts with pdf. Font files and font
// bytes cannot be mixed; the black face is optional and falls back to bold.
func setupFonts(pdf *fpdf.Fpdf, cfg Config) (fontSet, error) {
	hasPath := cfg.RegularFont != "" || cfg.BoldFont != "" || cfg.BlackFont != "" || cfg.MonoFont != ""
	hasBytes := len(cfg.RegularFontBytes) > 0 || len(cfg.BoldFontBytes) > 0 || len(cfg.BlackFontBytes) > 0 || len(cfg.MonoFontBytes) > 0
	if hasPath && hasBytes {
		return fontSet{}, fmt.Errorf("cannot mix font paths with embedded font bytes")
	}
	if !hasPath && !hasBytes {
		return coreFontSet(), nil
	}
	regular, bold, black, mono := cfg.RegularFontBytes, cfg.BoldFontBytes, cfg.BlackFontBytes, cfg.MonoFontBytes
	if hasPath {
		if cfg.RegularFont == "" || cfg.BoldFont == "" || cfg.MonoFont == "" {
			return fontSet{}, fmt.Errorf("missing font paths: regular, bold, and mono fonts must all be provided")
		}
		var err error
		if regular, err = readFont(cfg.RegularFont); err != nil {
			return fontSet{}, fmt.Errorf("regular font: %w", err)
		}
		if bold, err = readFont(cfg.BoldFont); err != nil {
			return fontSet{}, fmt.Errorf("bold font: %w", err)
		}
		if mono, err = readFont(cfg.MonoFont); err != nil {
			return fontSet{}, fmt.Errorf("mono font: %w", err)
		}
		if cfg.BlackFont != "" {
			if black, err = readFont(cfg.BlackFont); err != nil {
				return fontSet{}, fmt.Errorf("black font: %w", err)
			}
		}
	} else if len(regular) == 0 || len(bold) == 0 || len(mono) == 0 {
		return fontSet{}, fmt.Errorf("missing embedded font bytes")
	}
	pdf.AddUTF8FontFromBytes(fontFamily, "", regular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", bold)
	pdf.AddUTF8FontFromBytes(monoFontFamily, "", mono)
	if len(black) > 0 {
		pdf.AddUTF8FontFromBytes(blackFontFamily, "", black)
	}
	if err := pdf.Error(); err != nil {
		return fontSet{}, fmt.Errorf("font setup failed: %w", err)
	}
	return utf8FontSet(len(black) > 0), nil
}

func readFont(path string) ([]byte, error) {
	if err := EnsureFont(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// EnsureFont reports whether path names a readable .ttf file rather than a
// directory or another font format.
func EnsureFont(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".ttf" {
		return fmt.Errorf("%s: expected .ttf font file", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: path is a directory", path)
	}
	return nil
}
