package pdf

import (
	"io"

	"github.com/lucasb-eyer/go-colorful"
)

// Face selects one of the four fonts a cheat sheet uses.
type Face uint8

const (
	FaceRegular Face = iota
	FaceBold
	// FaceBlack is the heaviest weight, used for the title.
	FaceBlack
	FaceMono
)

func (f Face) String() string {
	switch f {
	case FaceBold:
		return "bold"
	case FaceBlack:
		return "black"
	case FaceMono:
		return "mono"
	default:
		return "regular"
	}
}

// TextStyle is passed with every text draw. Canvases keep no current font
// or color between calls.
type TextStyle struct {
	Face    Face
	Size    float64
	Color   colorful.Color
	Leading float64
}

// Canvas is the set of drawing primitives the layout engine needs.
//
// Coordinates are relative to the printable bounds with the origin at the
// bottom-left and y growing upwards, so y == height is the top margin. A
// box drawn at (x, y) hangs down from y.
type Canvas interface {
	Bounds() (width, height float64)
	FillRoundedRect(x, y, w, h, r float64, fill colorful.Color)
	// TextBox draws text word-wrapped to width and returns the height the
	// wrapped lines occupy.
	TextBox(x, y, width float64, text string, style TextStyle) float64
	Link(x, y, w, h float64, url string)
	Output(w io.Writer) error
}
