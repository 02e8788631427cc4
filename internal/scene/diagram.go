package scene

import (
	"image/color"

	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

const bezierSteps = 24

// bezier strokes a cubic curve as a polyline.
func bezier(s surface.Surface, p0, p1, p2, p3 spikenet.Point, width float64, c color.Color) {
	prev := p0
	for i := 1; i <= bezierSteps; i++ {
		t := float64(i) / bezierSteps
		u := 1 - t
		pt := spikenet.Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		}
		s.StrokeLine(prev.X, prev.Y, pt.X, pt.Y, width, c)
		prev = pt
	}
}

// DrawNeuronDiagram draws the labelled dendrite, soma, axon and synapse
// sketch of the 400x300 biology panel.
func DrawNeuronDiagram(s surface.Surface, pal Palette) {
	cx, cy := 200.0, 150.0
	soma := spikenet.Point{X: cx - 30, Y: cy}

	for _, d := range []spikenet.Point{{X: 50, Y: 40}, {X: 30, Y: 120}, {X: 60, Y: 200}, {X: 40, Y: 260}} {
		bezier(s, d, spikenet.Point{X: d.X + 40, Y: d.Y + 10}, spikenet.Point{X: cx - 60, Y: cy - 20}, soma, 2, Alpha(pal.Teal, 0.5))
		s.FillCircle(d.X, d.Y, 4, Alpha(pal.Teal, 0.8))
	}

	// stacked discs darken toward the centre like a radial gradient
	for r := 35.0; r > 0; r -= 5 {
		s.FillCircle(cx, cy, r, Alpha(pal.Blue, 0.1))
	}
	s.StrokeCircle(cx, cy, 35, 1.5, Alpha(pal.Blue, 0.5))
	s.FillCircle(cx, cy, 10, Alpha(pal.Cream, 0.3))

	bezier(s, spikenet.Point{X: cx + 35, Y: cy}, spikenet.Point{X: cx + 80, Y: cy - 10},
		spikenet.Point{X: cx + 120, Y: cy + 20}, spikenet.Point{X: cx + 160, Y: cy}, 3, Alpha(pal.Purple, 0.6))

	for _, t := range []spikenet.Point{{X: cx + 160, Y: cy - 20}, {X: cx + 170, Y: cy}, {X: cx + 160, Y: cy + 20}} {
		s.StrokeLine(cx+145, cy, t.X, t.Y, 1.5, Alpha(pal.Purple, 0.4))
		s.FillCircle(t.X, t.Y, 5, Alpha(pal.Purple, 0.7))
	}

	label := Alpha(pal.Cream, 0.7)
	s.Text("Dendrites", 10, 30, label)
	s.Text("Soma", cx-15, cy+55, label)
	s.Text("Axon", cx+80, cy-20, label)
	s.Text("Synapses", cx+140, cy-30, label)
	s.Text("input signals ->", 10, 280, Alpha(pal.Teal, 0.8))
	s.Text("-> output spikes", cx+90, cy+45, Alpha(pal.Purple, 0.8))
}
