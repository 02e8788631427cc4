package scene

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/spiking-deck/internal/pathfind"
	"github.com/iburimskiy/spiking-deck/internal/raster"
	"github.com/iburimskiy/spiking-deck/internal/stdp"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// DrawRaster renders one row per train, 20px apart, with a tick per spike.
func DrawRaster(s surface.Surface, r *raster.Raster, pal Palette) {
	w, _ := s.Size()
	rows := []color.RGBA{pal.Blue, pal.Teal, pal.Purple, pal.Cream}
	scale := float64(w) / float64(r.Params.Steps)

	for i := range r.Trains {
		y := 20 + float64(i)*20
		s.StrokeLine(0, y, float64(w), y, 0.5, Alpha(pal.Cream, 0.03))
	}
	for i, train := range r.Trains {
		y := 20 + float64(i)*20
		c := rows[i%len(rows)]
		for _, t := range train {
			x := r.X(t) * scale
			s.StrokeLine(x, y-7, x, y+7, 1.5, Alpha(c, 1))
		}
	}
	label := Alpha(pal.Cream, 0.5)
	for i := range r.Trains {
		s.Text(fmt.Sprintf("N%d", i), 2, 24+float64(i)*20, label)
	}
	_, h := s.Size()
	s.Text("Time ->", float64(w)-surface.TextWidth("Time ->")-4, float64(h)-10, label)
}

// DrawSTDP plots both sides of the window around a centred axis cross.
func DrawSTDP(s surface.Surface, win stdp.Window, pal Palette) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	half := float64(w)/2 - 50

	axis := Alpha(pal.Cream, 0.3)
	s.StrokeLine(40, cy, float64(w)-40, cy, 1, axis)
	s.StrokeLine(cx, 20, cx, float64(h)-20, 1, axis)

	plot := func(samples []stdp.Sample, c color.RGBA) {
		for i := 1; i < len(samples); i++ {
			a, b := samples[i-1], samples[i]
			s.StrokeLine(cx+a.T*half, cy-a.Delta, cx+b.T*half, cy-b.Delta, 2, Alpha(c, 1))
		}
	}
	plot(win.Curve(150, false), pal.Teal)
	plot(win.Curve(150, true), pal.Red)

	label := Alpha(pal.Cream, 0.7)
	s.Text("dt (post - pre)", float64(w)-surface.TextWidth("dt (post - pre)")-4, cy-8, label)
	s.Text("dw", cx+8, 30, label)
	s.Text("LTP (strengthen)", cx+40, 60, label)
	s.Text("LTD (weaken)", cx-150, cy+90, label)
	s.Text("pre -> post", cx+20, cy+30, Alpha(pal.Teal, 0.8))
	s.Text("post -> pre", cx-100, cy+30, Alpha(pal.Red, 0.8))
}

// DrawPath renders the weighted graph, highlights path and draws the
// tracer's spike while it travels.
func DrawPath(s surface.Surface, g pathfind.Graph, path []int, tr *pathfind.Tracer, pal Palette) {
	for _, e := range g.Edges {
		a, b := g.Nodes[e.A], g.Nodes[e.B]
		if e.OnPath(path) {
			s.StrokeLine(a.X, a.Y, b.X, b.Y, 2, Alpha(pal.Teal, 0.5))
		} else {
			s.StrokeLine(a.X, a.Y, b.X, b.Y, 1, Alpha(pal.Blue, 0.15))
		}
		s.Text(fmt.Sprintf("%g", e.Weight), (a.X+b.X)/2+3, (a.Y+b.Y)/2-3, Alpha(pal.Cream, 0.25))
	}

	if tr != nil && tr.Active() {
		x, y := tr.Pos(g)
		Glow(s, x, y, 10, pal.Teal, 0.9)
	}

	for i, n := range g.Nodes {
		on := pathfind.Contains(path, i)
		fill, ring, text, width := Alpha(pal.Blue, 0.15), Alpha(pal.Blue, 0.3), Alpha(pal.Cream, 0.6), 1.0
		if on {
			fill, ring, text, width = Alpha(pal.Teal, 0.3), Alpha(pal.Teal, 0.7), Alpha(pal.Teal, 1), 2
		}
		s.FillCircle(n.X, n.Y, 18, fill)
		s.StrokeCircle(n.X, n.Y, 18, width, ring)
		s.Text(n.Label, n.X-surface.TextWidth(n.Label)/2, n.Y+4, text)
	}

	_, h := s.Size()
	s.Text("Shortest path: "+routeLabel(g, path), 20, float64(h)-6, Alpha(pal.Teal, 0.6))
}

func routeLabel(g pathfind.Graph, path []int) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += " -> "
		}
		out += g.Nodes[p].Label
	}
	return out
}
