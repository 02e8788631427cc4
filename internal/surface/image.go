package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Image is a Surface backed by an RGBA buffer, for headless rendering.
type Image struct {
	RGBA *image.RGBA
	z    *vector.Rasterizer
}

func NewImage(w, h int) *Image {
	return &Image{
		RGBA: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:    vector.NewRasterizer(w, h),
	}
}

func (m *Image) Size() (int, int) {
	b := m.RGBA.Bounds()
	return b.Dx(), b.Dy()
}

func (m *Image) Fill(c color.Color) {
	draw.Draw(m.RGBA, m.RGBA.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (m *Image) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	m.begin()
	m.circle(cx, cy, r, false)
	m.paint(c)
}

// StrokeCircle fills the ring between r-width/2 and r+width/2. The inner
// contour runs the other way, so its coverage cancels the outer disc.
func (m *Image) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	outer, inner := r+width/2, r-width/2
	if outer <= 0 {
		return
	}
	m.begin()
	m.circle(cx, cy, outer, false)
	if inner > 0 {
		m.circle(cx, cy, inner, true)
	}
	m.paint(c)
}

func (m *Image) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	// half-width normal
	nx, ny := -dy/l*width/2, dx/l*width/2
	m.begin()
	m.z.MoveTo(float32(x0+nx), float32(y0+ny))
	m.z.LineTo(float32(x1+nx), float32(y1+ny))
	m.z.LineTo(float32(x1-nx), float32(y1-ny))
	m.z.LineTo(float32(x0-nx), float32(y0-ny))
	m.z.ClosePath()
	m.paint(c)
}

func (m *Image) Text(s string, x, y float64, c color.Color) {
	d := font.Drawer{
		Dst:  m.RGBA,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

func (m *Image) begin() {
	w, h := m.Size()
	m.z.Reset(w, h)
	m.z.DrawOp = draw.Over
}

func (m *Image) paint(c color.Color) {
	m.z.Draw(m.RGBA, m.RGBA.Bounds(), image.NewUniform(c), image.Point{})
}

func (m *Image) circle(cx, cy, r float64, reverse bool) {
	segs := int(math.Min(64, math.Max(12, r*2)))
	for i := 0; i <= segs; i++ {
		a := 2 * math.Pi * float64(i) / float64(segs)
		if reverse {
			a = -a
		}
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			m.z.MoveTo(x, y)
			continue
		}
		m.z.LineTo(x, y)
	}
	m.z.ClosePath()
}
