package game

import (
	"github.com/iburimskiy/spiking-deck/internal/config"
	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
)

// SlideNames label the overview tiles, in talk order.
var SlideNames = [...]string{
	"Title",
	"Classical Computing Crisis",
	"Scaling != Intelligence",
	"Alternatives",
	"Brain Computation",
	"Neuromorphic Computing",
	"Paper Deep Dive",
	"Learning Paradigms",
	"Non-ML Applications",
	"Research Gaps",
	"Future Pathways",
	"Quantum Synergy",
	"Co-Design",
	"Paradigm Shift",
	"Closing",
}

var slideText = [len(SlideNames)]struct {
	title  string
	points []string
}{
	{"Beyond Von Neumann", []string{
		"Neuromorphic computing and the next paradigm",
		"Parv Agarwal, with Dr. Asif Ekbal",
		"27 February 2026",
	}},
	{"The Limits of the Classical Paradigm", []string{
		"Memory wall: data movement dominates energy",
		"Dennard scaling has ended, clocks have stalled",
		"Training budgets grow faster than hardware",
	}},
	{"Scaling != Intelligence", []string{
		"Exponential training costs",
		"Environmental impact",
		"Edge limitations",
		"Latency constraints",
		"Diminishing returns",
	}},
	{"What Are the Alternatives?", []string{
		"Analog and in-memory computing",
		"Optical and quantum processors",
		"Brain-inspired, event-driven hardware",
	}},
	{"Biological Computation Principles", []string{
		"Massively parallel: ~86 billion neurons",
		"Event-driven: sparse activation",
		"Memory and compute collocated in synapses",
		"~20 W for all of cognition",
	}},
	{"What Is Neuromorphic Computing?", []string{
		"Event-driven: compute only when spikes arrive",
		"Asynchronous: no global clock",
		"Spike-based: information in timing and rate",
		"Hardware and algorithms designed together",
	}},
	{"Core Contribution of the Paper", []string{
		"A roadmap from devices to applications",
		"Where neuromorphic systems win today",
		"What still blocks wide deployment",
	}},
	{"Algorithms in Neuromorphic Systems", []string{
		"Spike trains carry information in time",
		"STDP: pre before post strengthens, post before pre weakens",
		"Local learning without global backprop",
	}},
	{"Non-ML Applications: A Paradigm Shift", []string{
		"Graph search as spike propagation",
		"The first spike to arrive marks the shortest path",
		"Optimization and constraint satisfaction",
	}},
	{"Closing the Gap Between Expectation and Reality", []string{
		"Benchmarks that reward sparsity",
		"Software stacks and tooling",
		"Training methods for spiking networks",
	}},
	{"The Three Deployment Pathways", []string{
		"Edge sensing at microwatt budgets",
		"Accelerators next to conventional cores",
		"Large-scale brain simulation",
	}},
	{"Quantum and Neuromorphic: Complementary Futures", []string{
		"Different problems, different physics",
		"Hybrid systems share the control loop",
	}},
	{"From Bottom-Up to Omnidirectional Co-Design", []string{
		"Materials, devices, circuits, algorithms",
		"Each layer constrains and informs the others",
	}},
	{"The Next Computing Revolution", []string{
		"From clocked instructions to events",
		"From separated memory to synapses",
		"From programming to learning",
	}},
	{"Thank You", []string{
		"Questions and discussion",
	}},
}

// BuildSlides assembles the talk. onFire hears every fire of the
// interactive network.
func BuildSlides(cfg config.Config, pal scene.Palette, src rng.Source, onFire func(int)) []*Slide {
	slides := make([]*Slide, len(SlideNames))
	for i, t := range slideText {
		slides[i] = &Slide{Title: t.title, Points: t.points}
	}

	slides[2].Panels = []*Panel{NewPanel(&energyVisual{pal: pal}, 400, 280)}
	slides[4].Panels = []*Panel{NewPanel(&diagramVisual{pal: pal}, 400, 300)}
	slides[5].Panels = []*Panel{NewPanel(&networkVisual{params: cfg.Network, pal: pal, src: src, onFire: onFire}, 400, 280)}
	slides[7].Panels = []*Panel{
		NewPanel(&rasterVisual{params: cfg.Raster, pal: pal, src: src}, 400, 280),
		NewPanel(&stdpVisual{win: cfg.STDP, pal: pal}, 400, 280),
	}
	slides[8].Panels = []*Panel{NewPanel(&pathVisual{pal: pal}, 400, 320)}
	slides[14].Layers = []Visual{&particleVisual{params: cfg.Particles, pal: pal, src: src}}
	return slides
}
