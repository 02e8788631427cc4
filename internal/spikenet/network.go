// Package spikenet is a small spiking network used for illustration:
// neurons at fixed positions, connected by proximity, accumulate potential
// from travelling spikes and fire when they cross a threshold.
//
// The network owns no scheduling. The caller advances it one tick per
// rendered frame and draws it from the exported state.
package spikenet

import (
	"fmt"

	"github.com/iburimskiy/spiking-deck/internal/rng"
)

// Network holds the full simulation state.
type Network struct {
	Params  Params
	Neurons []Neuron
	Spikes  []Spike

	// number of ticks advanced so far
	Time int

	src rng.Source

	// neurons that received a spike during the current tick
	delivered []bool
}

// DefaultLayout is the 11-neuron arrangement of the 400x280 demo panel.
func DefaultLayout() []Point {
	return []Point{
		{60, 60}, {160, 40}, {260, 70},
		{50, 150}, {150, 130}, {250, 150},
		{340, 120},
		{80, 230}, {180, 220}, {280, 240},
		{340, 210},
	}
}

// New builds a network over the given positions. Connections are computed
// once here: j is an outgoing connection of i when their distance is
// strictly below Params.ConnectRadius. Coincident neurons are at distance
// zero and therefore connected. A nil src uses a clock-seeded source.
func New(positions []Point, p Params, src rng.Source) (*Network, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.New(0)
	}
	n := &Network{
		Params:    p,
		Neurons:   make([]Neuron, len(positions)),
		src:       src,
		delivered: make([]bool, len(positions)),
	}
	for i, pos := range positions {
		var conns []int
		for j, other := range positions {
			if i == j {
				continue
			}
			if pos.Dist(other) < p.ConnectRadius {
				conns = append(conns, j)
			}
		}
		n.Neurons[i] = Neuron{
			Pos:       pos,
			Threshold: p.Threshold,
			LastFire:  NeverFired,
			Conns:     conns,
		}
	}
	return n, nil
}

// NewRandom places count neurons uniformly inside a width x height area.
func NewRandom(count int, width, height float64, p Params, src rng.Source) (*Network, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: neuron count %d is negative", ErrInvalidParams, count)
	}
	if src == nil {
		src = rng.New(0)
	}
	positions := make([]Point, count)
	for i := range positions {
		positions[i] = Point{X: src.Float64() * width, Y: src.Float64() * height}
	}
	return New(positions, p, src)
}

// Tick advances the network by one step and returns the neurons that fired
// during it, in firing order.
//
// Spikes move first; each arriving spike adds SpikeGain to its destination,
// which fires if it reaches its threshold outside its cool-down window.
// Spikes emitted by a fire start moving on the next tick. Neurons that
// received nothing this tick then leak.
func (n *Network) Tick() []int {
	n.Time++
	for i := range n.delivered {
		n.delivered[i] = false
	}

	var fired []int
	var born []Spike
	kept := n.Spikes[:0]
	for _, s := range n.Spikes {
		s.Progress += s.Speed
		if s.Progress < 1 {
			kept = append(kept, s)
			continue
		}
		n.delivered[s.To] = true
		nr := &n.Neurons[s.To]
		nr.Potential += n.Params.SpikeGain
		if nr.Potential >= nr.Threshold && !n.IsFiring(s.To) {
			n.fire(s.To)
			born = n.emit(born, s.To)
			fired = append(fired, s.To)
		}
	}
	n.Spikes = append(kept, born...)

	for i := range n.Neurons {
		if !n.delivered[i] {
			n.Neurons[i].Potential *= n.Params.Leak
		}
	}
	return fired
}

// Advance runs ticks steps and returns every fire in order.
func (n *Network) Advance(ticks int) []int {
	var fired []int
	for t := 0; t < ticks; t++ {
		fired = append(fired, n.Tick()...)
	}
	return fired
}

// Fire forces neuron i to fire now, whatever its potential. It reports
// false when i is out of range.
func (n *Network) Fire(i int) bool {
	if i < 0 || i >= len(n.Neurons) {
		return false
	}
	n.fire(i)
	n.Spikes = n.emit(n.Spikes, i)
	return true
}

// Trigger fires the first neuron whose centre is strictly closer than
// HitRadius to (x, y). Coordinates are in the network's space. A miss is
// not an error; it returns -1, false and changes nothing.
func (n *Network) Trigger(x, y float64) (int, bool) {
	at := Point{X: x, Y: y}
	for i := range n.Neurons {
		if n.Neurons[i].Pos.Dist(at) < n.Params.HitRadius {
			n.Fire(i)
			return i, true
		}
	}
	return -1, false
}

func (n *Network) fire(i int) {
	nr := &n.Neurons[i]
	nr.LastFire = n.Time
	nr.Potential = 0
}

func (n *Network) emit(dst []Spike, i int) []Spike {
	for _, c := range n.Neurons[i].Conns {
		dst = append(dst, Spike{
			From:  i,
			To:    c,
			Speed: rng.Range(n.src, n.Params.SpeedMin, n.Params.SpeedMax),
		})
	}
	return dst
}

// IsFiring reports whether neuron i is inside its post-fire window.
func (n *Network) IsFiring(i int) bool {
	return n.Time-n.Neurons[i].LastFire < n.Params.Refractory
}

// FireGlow fades from 1 right after a fire to 0 at the end of the window.
func (n *Network) FireGlow(i int) float64 {
	if !n.IsFiring(i) {
		return 0
	}
	return 1 - float64(n.Time-n.Neurons[i].LastFire)/float64(n.Params.Refractory)
}

// Connected reports whether i sends spikes to j.
func (n *Network) Connected(i, j int) bool {
	for _, c := range n.Neurons[i].Conns {
		if c == j {
			return true
		}
	}
	return false
}

// EdgeCount is the number of directed connections.
func (n *Network) EdgeCount() int {
	total := 0
	for i := range n.Neurons {
		total += len(n.Neurons[i].Conns)
	}
	return total
}

func (n *Network) MeanPotential() float64 {
	if len(n.Neurons) == 0 {
		return 0
	}
	sum := 0.0
	for i := range n.Neurons {
		sum += n.Neurons[i].Potential
	}
	return sum / float64(len(n.Neurons))
}

// SpikePos is the current position of s along its edge.
func (n *Network) SpikePos(s Spike) Point {
	return n.Neurons[s.From].Pos.Lerp(n.Neurons[s.To].Pos, s.Progress)
}
