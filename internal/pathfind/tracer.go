package pathfind

// Tracer moves a spike along a path one edge at a time, rests at the end
// and starts over.
type Tracer struct {
	Path []int

	// fraction of an edge covered per tick
	Speed float64

	// ticks to wait at the end before restarting
	Rest int

	Edge     int
	Progress float64

	resting int
}

func NewTracer(path []int, speed float64, rest int) *Tracer {
	return &Tracer{Path: path, Speed: speed, Rest: rest}
}

// Active reports whether the spike is travelling, as opposed to resting.
func (t *Tracer) Active() bool {
	return t.Edge < len(t.Path)-1
}

func (t *Tracer) Tick() {
	if len(t.Path) < 2 {
		return
	}
	if !t.Active() {
		t.resting--
		if t.resting <= 0 {
			t.Edge, t.Progress = 0, 0
		}
		return
	}
	t.Progress += t.Speed
	if t.Progress >= 1 {
		t.Progress = 0
		t.Edge++
		if !t.Active() {
			t.resting = t.Rest
		}
	}
}

// Pos is the spike position on g, valid while Active.
func (t *Tracer) Pos(g Graph) (x, y float64) {
	a, b := g.Nodes[t.Path[t.Edge]], g.Nodes[t.Path[t.Edge+1]]
	return a.X + (b.X-a.X)*t.Progress, a.Y + (b.Y-a.Y)*t.Progress
}
