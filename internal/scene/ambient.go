package scene

import (
	"github.com/iburimskiy/spiking-deck/internal/background"
	"github.com/iburimskiy/spiking-deck/internal/particles"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// DrawParticles renders each particle as a glow three times its size.
func DrawParticles(s surface.Surface, f *particles.Field, pal Palette) {
	for _, p := range f.Particles {
		Glow(s, p.X, p.Y, p.Size*3, pal.Teal, p.Opacity(f.Params.PeakAlpha))
	}
}

// DrawBackground renders the drifting backdrop with every alpha scaled by
// opacity.
func DrawBackground(s surface.Surface, f *background.Field, pal Palette, opacity float64) {
	if opacity <= 0 {
		return
	}
	for _, l := range f.Links {
		a, b := f.Nodes[l.A], f.Nodes[l.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, 0.5, Alpha(pal.Node, l.Alpha*opacity))
	}
	for _, sp := range f.Spikes {
		x, y := f.SpikePos(sp)
		Glow(s, x, y, 6, pal.Spark, 0.8*opacity)
	}
	for _, n := range f.Nodes {
		pulse := n.Pulse()
		r := n.Radius + pulse*1.5
		Glow(s, n.X, n.Y, r*2, pal.Node, (0.6+pulse*0.4)*opacity)
		s.FillCircle(n.X, n.Y, r*0.6, Alpha(pal.Cream, (0.4+pulse*0.4)*opacity))
	}
}
