package scene

import (
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

const (
	neuronRadius = 12
	firingRadius = 25
	spikeRadius  = 5
)

// DrawNetwork renders edges, travelling spikes and neurons. Neuron fill
// follows potential; firing neurons get a fading halo.
func DrawNetwork(s surface.Surface, n *spikenet.Network, pal Palette) {
	for i := range n.Neurons {
		a := n.Neurons[i].Pos
		for _, j := range n.Neurons[i].Conns {
			if j < i && n.Connected(j, i) {
				continue // drawn from the other end
			}
			b := n.Neurons[j].Pos
			s.StrokeLine(a.X, a.Y, b.X, b.Y, 0.5, Alpha(pal.Blue, 0.15))
		}
	}

	for _, sp := range n.Spikes {
		p := n.SpikePos(sp)
		Glow(s, p.X, p.Y, spikeRadius, pal.Teal, 0.9)
	}

	for i, nr := range n.Neurons {
		x, y := nr.Pos.X, nr.Pos.Y
		firing := n.IsFiring(i)
		if firing {
			Glow(s, x, y, firingRadius, pal.Teal, 0.5*n.FireGlow(i))
		}
		s.FillCircle(x, y, neuronRadius, Alpha(pal.Blue, 0.2+nr.Potential*0.6))
		if firing {
			s.StrokeCircle(x, y, neuronRadius, 2, Alpha(Brighten(pal.Teal, 0.1), 0.8))
		} else {
			s.StrokeCircle(x, y, neuronRadius, 1, Alpha(pal.Blue, 0.4))
		}
	}
}
