// Package record drives a spiking network without a window: it steps the
// simulation, collects a trace and hands rendered frames to a sink.
package record

import (
	"errors"
	"fmt"
	"image"

	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

var ErrBadOptions = errors.New("invalid record options")

// Options controls a headless run.
type Options struct {
	Ticks int

	// Fire is forced to fire before the first tick; -1 disables it.
	Fire int

	// Refire forces Fire again every Refire ticks; 0 means only once.
	Refire int

	// frame size in pixels; both must be positive
	Width, Height int

	// hand every Every-th tick to the sink
	Every int
}

func DefaultOptions() Options {
	return Options{Ticks: 600, Fire: 0, Width: 400, Height: 280, Every: 1}
}

func (o Options) Validate() error {
	switch {
	case o.Ticks <= 0:
		return fmt.Errorf("%w: ticks %d must be positive", ErrBadOptions, o.Ticks)
	case o.Refire < 0:
		return fmt.Errorf("%w: refire %d is negative", ErrBadOptions, o.Refire)
	case o.Every < 1:
		return fmt.Errorf("%w: every %d must be at least 1", ErrBadOptions, o.Every)
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: frame %dx%d", ErrBadOptions, o.Width, o.Height)
	}
	return nil
}

// FrameSink receives rendered frames in tick order. The image is reused
// between calls.
type FrameSink interface {
	Frame(img image.Image) error
}

// Trace is what a run observed.
type Trace struct {
	// fires per tick, forced ones included
	Fires []int

	// mean membrane potential after each tick
	Potential []float64

	// fires per neuron
	Counts []int

	Forced int
}

// Total is the number of fires over the whole run.
func (t *Trace) Total() int {
	sum := 0
	for _, f := range t.Fires {
		sum += f
	}
	return sum
}

// Peak returns the busiest tick and its fire count.
func (t *Trace) Peak() (tick, fires int) {
	for i, f := range t.Fires {
		if f > fires {
			tick, fires = i, f
		}
	}
	return tick, fires
}

// Run advances n for opts.Ticks ticks. sink may be nil.
func Run(n *spikenet.Network, opts Options, pal scene.Palette, sink FrameSink) (*Trace, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Fire >= len(n.Neurons) {
		return nil, fmt.Errorf("%w: fire %d outside %d neurons", ErrBadOptions, opts.Fire, len(n.Neurons))
	}

	tr := &Trace{
		Fires:     make([]int, 0, opts.Ticks),
		Potential: make([]float64, 0, opts.Ticks),
		Counts:    make([]int, len(n.Neurons)),
	}

	var frame *surface.Image
	if sink != nil {
		frame = surface.NewImage(opts.Width, opts.Height)
	}

	for t := 0; t < opts.Ticks; t++ {
		fires := 0
		if opts.Fire >= 0 && (t == 0 || opts.Refire > 0 && t%opts.Refire == 0) {
			n.Fire(opts.Fire)
			tr.Counts[opts.Fire]++
			tr.Forced++
			fires++
		}
		for _, i := range n.Tick() {
			tr.Counts[i]++
			fires++
		}
		tr.Fires = append(tr.Fires, fires)
		tr.Potential = append(tr.Potential, n.MeanPotential())

		if frame == nil || t%opts.Every != 0 {
			continue
		}
		frame.Fill(pal.Navy)
		scene.DrawNetwork(frame, n, pal)
		if err := sink.Frame(frame.RGBA); err != nil {
			return tr, fmt.Errorf("frame %d: %w", t, err)
		}
	}
	return tr, nil
}
