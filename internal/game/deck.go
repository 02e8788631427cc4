package game

import "github.com/iburimskiy/spiking-deck/internal/surface"

// Visual is one animated element of a slide. It is mounted when its slide
// becomes current and unmounted when the deck leaves it; between the two
// the deck calls Update once per tick and Draw once per frame.
type Visual interface {
	Mount(w, h int)
	Unmount()
	Update()
	Draw(s surface.Surface)
}

// Clicker is a Visual that accepts pointer input in its own coordinates.
type Clicker interface {
	Click(x, y float64)
}

// Resizer is a full-window Visual that follows the window size.
type Resizer interface {
	Resize(w, h int)
}

// Slide is one page of the talk.
type Slide struct {
	Title  string
	Points []string

	// full-window visuals drawn under the text
	Layers []Visual

	// fixed-size visuals laid out on the right
	Panels []*Panel

	mounted bool
}

func (s *Slide) visuals() []Visual {
	out := append([]Visual(nil), s.Layers...)
	for _, p := range s.Panels {
		out = append(out, p.Visual)
	}
	return out
}

// mount starts every visual. An empty window has nothing to draw on, so
// it leaves the slide unmounted.
func (s *Slide) mount(w, h int) {
	if s.mounted || w <= 0 || h <= 0 {
		return
	}
	for _, l := range s.Layers {
		l.Mount(w, h)
	}
	for _, p := range s.Panels {
		p.Visual.Mount(p.Width, p.Height)
	}
	s.mounted = true
}

func (s *Slide) unmount() {
	if !s.mounted {
		return
	}
	for _, v := range s.visuals() {
		v.Unmount()
	}
	s.mounted = false
}

// Deck tracks the current slide and the overview grid, and drives the
// mount lifecycle of slide visuals.
type Deck struct {
	Slides   []*Slide
	Current  int // 1-based
	Overview bool

	width, height int
}

func NewDeck(slides []*Slide, start int) *Deck {
	d := &Deck{Slides: slides, Current: 1}
	if start >= 1 && start <= len(slides) {
		d.Current = start
	}
	return d
}

func (d *Deck) Slide() *Slide {
	return d.Slides[d.Current-1]
}

// GoTo jumps to slide n and closes the overview. Out-of-range n is ignored.
func (d *Deck) GoTo(n int) bool {
	if n < 1 || n > len(d.Slides) {
		return false
	}
	d.Overview = false
	if n == d.Current {
		return true
	}
	d.Slide().unmount()
	d.Current = n
	d.Slide().mount(d.width, d.height)
	return true
}

func (d *Deck) Next() bool { return d.GoTo(d.Current + 1) }
func (d *Deck) Prev() bool { return d.GoTo(d.Current - 1) }

func (d *Deck) ToggleOverview() { d.Overview = !d.Overview }

// Resize records the window size, mounting the current slide the first
// time a usable size arrives.
func (d *Deck) Resize(w, h int) {
	if w == d.width && h == d.height {
		return
	}
	d.width, d.height = w, h
	s := d.Slide()
	if !s.mounted {
		s.mount(w, h)
		return
	}
	for _, l := range s.Layers {
		if r, ok := l.(Resizer); ok {
			r.Resize(w, h)
		}
	}
}

func (d *Deck) Size() (int, int) { return d.width, d.height }

// Update advances the current slide's visuals one tick.
func (d *Deck) Update() {
	s := d.Slide()
	if !s.mounted {
		return
	}
	for _, v := range s.visuals() {
		v.Update()
	}
}

// Click routes a pointer press in window coordinates: to the overview
// grid while it is open, otherwise to the panel under the pointer.
func (d *Deck) Click(x, y float64) {
	if d.Overview {
		switch i := overviewTileAt(d.width, d.height, len(d.Slides), x, y); {
		case i >= 0:
			d.GoTo(i + 1)
		case !pt(x, y).In(overviewBox(d.width, d.height, len(d.Slides))):
			d.Overview = false
		}
		return
	}
	s := d.Slide()
	if !s.mounted {
		return
	}
	for i, pl := range placePanels(d.width, d.height, s.Panels) {
		lx, ly, ok := pl.toLocal(x, y)
		if !ok {
			continue
		}
		if c, ok := s.Panels[i].Visual.(Clicker); ok {
			c.Click(lx, ly)
		}
		return
	}
}
