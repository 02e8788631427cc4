package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// screen adapts an ebiten image to surface.Surface.
type screen struct {
	img *ebiten.Image
}

var _ surface.Surface = screen{}

func (s screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s screen) Fill(c color.Color) { s.img.Fill(c) }

func (s screen) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s screen) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s screen) Text(str string, x, y float64, c color.Color) {
	text.Draw(s.img, str, surface.Face, int(x), int(y), c)
}

// drawText draws str scaled up from the label face, baseline at (x, y).
func drawText(dst *ebiten.Image, str string, x, y, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(dst, str, surface.Face, op)
}

// Panel is a fixed-size visual drawn offscreen and scaled into place.
type Panel struct {
	Visual        Visual
	Width, Height int

	img *ebiten.Image
}

func NewPanel(v Visual, w, h int) *Panel {
	return &Panel{Visual: v, Width: w, Height: h}
}

func (p *Panel) draw(dst *ebiten.Image, pl placement, border color.Color) {
	if p.img == nil {
		p.img = ebiten.NewImage(p.Width, p.Height)
	}
	p.img.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 8})
	p.Visual.Draw(screen{p.img})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pl.Scale, pl.Scale)
	op.GeoM.Translate(pl.X, pl.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.img, op)
	vector.StrokeRect(dst, float32(pl.X), float32(pl.Y),
		float32(float64(p.Width)*pl.Scale), float32(float64(p.Height)*pl.Scale), 1, border, true)
}
