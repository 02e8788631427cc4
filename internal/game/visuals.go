package game

import (
	"log"

	"github.com/iburimskiy/spiking-deck/internal/particles"
	"github.com/iburimskiy/spiking-deck/internal/pathfind"
	"github.com/iburimskiy/spiking-deck/internal/raster"
	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/stdp"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// networkVisual is the clickable spiking network. Every fire, forced or
// organic, is reported to onFire.
type networkVisual struct {
	params spikenet.Params
	pal    scene.Palette
	src    rng.Source
	onFire func(neuron int)

	net *spikenet.Network
}

func (v *networkVisual) Mount(w, h int) {
	net, err := spikenet.New(spikenet.DefaultLayout(), v.params, v.src)
	if err != nil {
		log.Printf("network: %v", err)
		return
	}
	v.net = net
}

func (v *networkVisual) Unmount() { v.net = nil }

func (v *networkVisual) Update() {
	if v.net == nil {
		return
	}
	for _, i := range v.net.Tick() {
		v.fired(i)
	}
}

func (v *networkVisual) Click(x, y float64) {
	if v.net == nil {
		return
	}
	if i, ok := v.net.Trigger(x, y); ok {
		v.fired(i)
	}
}

func (v *networkVisual) fired(i int) {
	if v.onFire != nil {
		v.onFire(i)
	}
}

func (v *networkVisual) Draw(s surface.Surface) {
	if v.net == nil {
		return
	}
	scene.DrawNetwork(s, v.net, v.pal)
	s.Text("Click neurons to trigger spikes", 8, 16, scene.Alpha(v.pal.Cream, 0.4))
}

// particleVisual is the full-window dust of the closing slide.
type particleVisual struct {
	params particles.Params
	pal    scene.Palette
	src    rng.Source

	field *particles.Field
}

func (v *particleVisual) Mount(w, h int) {
	f, err := particles.New(float64(w), float64(h), v.params, v.src)
	if err != nil {
		log.Printf("particles: %v", err)
		return
	}
	v.field = f
}

func (v *particleVisual) Unmount() { v.field = nil }

func (v *particleVisual) Resize(w, h int) {
	if v.field != nil {
		v.field.Resize(float64(w), float64(h))
	}
}

func (v *particleVisual) Update() {
	if v.field != nil {
		v.field.Tick()
	}
}

func (v *particleVisual) Draw(s surface.Surface) {
	if v.field != nil {
		scene.DrawParticles(s, v.field, v.pal)
	}
}

type rasterVisual struct {
	params raster.Params
	pal    scene.Palette
	src    rng.Source

	r *raster.Raster
}

func (v *rasterVisual) Mount(w, h int) {
	r, err := raster.New(v.params, v.src)
	if err != nil {
		log.Printf("raster: %v", err)
		return
	}
	v.r = r
}

func (v *rasterVisual) Unmount() { v.r = nil }

func (v *rasterVisual) Update() {
	if v.r != nil {
		v.r.Tick()
	}
}

func (v *rasterVisual) Draw(s surface.Surface) {
	if v.r != nil {
		scene.DrawRaster(s, v.r, v.pal)
	}
}

// stdpVisual is static; it only needs a palette and a window.
type stdpVisual struct {
	win stdp.Window
	pal scene.Palette
}

func (v *stdpVisual) Mount(w, h int) {}
func (v *stdpVisual) Unmount()       {}
func (v *stdpVisual) Update()        {}

func (v *stdpVisual) Draw(s surface.Surface) { scene.DrawSTDP(s, v.win, v.pal) }

const (
	pathSpeed = 0.015
	pathRest  = 90
)

// pathVisual sends a spike along the shortest A to I route, forever.
type pathVisual struct {
	pal scene.Palette

	graph pathfind.Graph
	path  []int
	tr    *pathfind.Tracer
}

func (v *pathVisual) Mount(w, h int) {
	v.graph = pathfind.DemoGraph()
	path, _, err := v.graph.ShortestPath(0, len(v.graph.Nodes)-1)
	if err != nil {
		log.Printf("path: %v", err)
		return
	}
	v.path = path
	v.tr = pathfind.NewTracer(path, pathSpeed, pathRest)
}

func (v *pathVisual) Unmount() { v.tr = nil }

func (v *pathVisual) Update() {
	if v.tr != nil {
		v.tr.Tick()
	}
}

func (v *pathVisual) Draw(s surface.Surface) {
	if v.tr != nil {
		scene.DrawPath(s, v.graph, v.path, v.tr, v.pal)
	}
}

type diagramVisual struct {
	pal scene.Palette
}

func (v *diagramVisual) Mount(w, h int) {}
func (v *diagramVisual) Unmount()       {}
func (v *diagramVisual) Update()        {}

func (v *diagramVisual) Draw(s surface.Surface) { scene.DrawNeuronDiagram(s, v.pal) }

type energyVisual struct {
	pal  scene.Palette
	bars []scene.EnergyBar
}

func (v *energyVisual) Mount(w, h int) { v.bars = scene.EnergyBars(v.pal) }
func (v *energyVisual) Unmount()       { v.bars = nil }
func (v *energyVisual) Update()        {}

func (v *energyVisual) Draw(s surface.Surface) { scene.DrawEnergyChart(s, v.bars, v.pal) }
