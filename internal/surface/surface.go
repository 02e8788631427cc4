// Package surface is the drawing target of every renderer. The window draws
// through an ebiten adapter; headless runs draw into an Image.
package surface

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Surface is a 2D canvas with its origin at the top left.
type Surface interface {
	Size() (w, h int)
	Fill(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)

	// Text draws s with its baseline starting at (x, y).
	Text(s string, x, y float64, c color.Color)
}

// Face is the label font on every surface.
var Face font.Face = basicfont.Face7x13

// TextWidth is the advance of s in Face, in pixels.
func TextWidth(s string) float64 {
	return float64(font.MeasureString(Face, s).Round())
}
