package spikenet

import "math"

// NeverFired is the LastFire value of a neuron that has not fired yet.
// It is far enough in the past that no cool-down window reaches it.
const NeverFired = -1 << 30

// Point is a position in the network's own coordinate space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Neuron is one node of the network. Its position and connections are fixed
// at construction; only Potential and LastFire change while ticking.
type Neuron struct {
	Pos Point

	// accumulated input, never negative
	Potential float64

	Threshold float64

	// tick of the most recent fire, or NeverFired
	LastFire int

	// indices of the neurons this one sends spikes to
	Conns []int
}

// Spike is a signal travelling from neuron From to neuron To.
type Spike struct {
	From, To int

	// fraction of the edge covered so far, in [0, 1)
	Progress float64

	// added to Progress every tick
	Speed float64
}
