package game

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/spiking-deck/internal/config"
	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/surface"
)

const difTol = 1.0e-9

type fakeVisual struct {
	mounts, unmounts, updates int
	w, h                      int
	clicks                    [][2]float64
}

func (v *fakeVisual) Mount(w, h int) { v.mounts++; v.w, v.h = w, h }
func (v *fakeVisual) Unmount() { v.unmounts++ }
func (v *fakeVisual) Update() { v.updates++ }
func (v *fakeVisual) Draw(surface.Surface) {}
func (v *fakeVisual) Click(x, y float64) { v.clicks = append(v.clicks, [2]float64{x, y}) }
func (v *fakeVisual) Resize(w, h int) { v.w, v.h = w, h }

func plainSlides(n int) []*Slide {
	out := make([]*Slide, n)
	for i := range out {
		out[i] = &Slide{Title: SlideNames[i%len(SlideNames)]}
	}
	return out
}

func TestDeckNavigation(t *testing.T) {
	d := NewDeck(plainSlides(3), 0)
	if d.Current != 1 {
		t.Fatalf("start = %d, want 1", d.Current)
	}
	if d.Prev() || d.Current != 1 {
		t.Errorf("Prev on first slide moved to %d", d.Current)
	}
	if !d.Next() || d.Current != 2 {
		t.Errorf("Next -> %d, want 2", d.Current)
	}
	if d.GoTo(4) || d.GoTo(0) || d.Current != 2 {
		t.Errorf("out of range GoTo moved to %d", d.Current)
	}
	d.GoTo(3)
	if d.Next() || d.Current != 3 {
		t.Errorf("Next on last slide moved to %d", d.Current)
	}
	if NewDeck(plainSlides(3), 2).Current != 2 {
		t.Error("start slide ignored")
	}
}

func TestGoToClosesOverview(t *testing.T) {
	d := NewDeck(plainSlides(3), 1)
	d.ToggleOverview()
	d.GoTo(1)
	if d.Overview {
		t.Error("overview still open after jumping to the current slide")
	}
	d.ToggleOverview()
	d.GoTo(9)
	if !d.Overview {
		t.Error("invalid jump closed the overview")
	}
}

func TestDeckLifecycle(t *testing.T) {
	layer, panel, other := &fakeVisual{}, &fakeVisual{}, &fakeVisual{}
	slides := plainSlides(2)
	slides[0].Layers = []Visual{layer}
	slides[0].Panels = []*Panel{NewPanel(panel, 400, 280)}
	slides[1].Layers = []Visual{other}

	d := NewDeck(slides, 1)
	d.Resize(0, 0)
	d.Update()
	if layer.mounts != 0 || layer.updates != 0 {
		t.Fatalf("mounted on an empty window: %+v", layer)
	}

	d.Resize(800, 600)
	if layer.mounts != 1 || layer.w != 800 || layer.h != 600 {
		t.Errorf("layer mount = %+v", layer)
	}
	if panel.mounts != 1 || panel.w != 400 || panel.h != 280 {
		t.Errorf("panel mounted with window size: %+v", panel)
	}

	d.Resize(1024, 768)
	if layer.mounts != 1 || layer.w != 1024 {
		t.Errorf("resize remounted or was lost: %+v", layer)
	}

	d.Update()
	d.Next()
	d.Update()
	if layer.unmounts != 1 || panel.unmounts != 1 {
		t.Errorf("leaving slide did not unmount: %+v %+v", layer, panel)
	}
	if layer.updates != 1 || other.updates != 1 || other.mounts != 1 {
		t.Errorf("updates went to the wrong slide: %+v %+v", layer, other)
	}

	d.Prev()
	if layer.mounts != 2 || other.unmounts != 1 {
		t.Errorf("coming back did not remount: %+v %+v", layer, other)
	}
}

func TestOverviewClicks(t *testing.T) {
	d := NewDeck(plainSlides(len(SlideNames)), 1)
	d.Resize(1280, 720)
	tiles := overviewTiles(1280, 720, len(SlideNames))

	d.ToggleOverview()
	c := tiles[6].Min.Add(tiles[6].Size().Div(2))
	d.Click(float64(c.X), float64(c.Y))
	if d.Current != 7 || d.Overview {
		t.Errorf("tile click: slide %d overview %v", d.Current, d.Overview)
	}

	d.ToggleOverview()
	box := overviewBox(1280, 720, len(SlideNames))
	d.Click(float64(box.Min.X+5), float64(box.Min.Y+5))
	if !d.Overview || d.Current != 7 {
		t.Error("click on the heading closed the overview")
	}

	d.Click(1, 1)
	if d.Overview || d.Current != 7 {
		t.Errorf("outside click: slide %d overview %v", d.Current, d.Overview)
	}
}

func TestOverviewGrid(t *testing.T) {
	tiles := overviewTiles(1280, 720, 15)
	if len(tiles) != 15 {
		t.Fatalf("tiles = %d", len(tiles))
	}
	if tiles[0].Min.Y != tiles[4].Min.Y || tiles[5].Min.Y <= tiles[0].Min.Y {
		t.Errorf("not five per row: %v %v %v", tiles[0], tiles[4], tiles[5])
	}
	for i := 1; i < len(tiles); i++ {
		if tiles[i].Overlaps(tiles[i-1]) {
			t.Errorf("tiles %d and %d overlap", i-1, i)
		}
	}
	box := overviewBox(1280, 720, 15)
	if box.Dx() != overviewMaxW {
		t.Errorf("box width = %d", box.Dx())
	}
	if overviewTileAt(1280, 720, 15, 0, 0) != -1 {
		t.Error("corner hit a tile")
	}
}

func TestPanelClick(t *testing.T) {
	v := &fakeVisual{}
	slides := plainSlides(1)
	slides[0].Panels = []*Panel{NewPanel(v, 400, 280)}
	d := NewDeck(slides, 1)
	d.Resize(1280, 720)

	pl := placePanels(1280, 720, slides[0].Panels)[0]
	d.Click(pl.X+200*pl.Scale, pl.Y+140*pl.Scale)
	if len(v.clicks) != 1 {
		t.Fatalf("clicks = %v", v.clicks)
	}
	if math.Abs(v.clicks[0][0]-200) > difTol || math.Abs(v.clicks[0][1]-140) > difTol {
		t.Errorf("local click = %v, want (200, 140)", v.clicks[0])
	}

	d.Click(1, 1)
	if len(v.clicks) != 1 {
		t.Error("click outside the panel reached it")
	}
}

func TestPlacePanels(t *testing.T) {
	panels := []*Panel{NewPanel(&fakeVisual{}, 400, 280), NewPanel(&fakeVisual{}, 400, 280)}
	pls := placePanels(1280, 720, panels)
	if len(pls) != 2 {
		t.Fatalf("placements = %d", len(pls))
	}
	want := (720.0 - contentTop - contentBot - panelGap) / 560
	if math.Abs(pls[0].Scale-want) > difTol {
		t.Errorf("scale = %v, want %v", pls[0].Scale, want)
	}
	if bottom := pls[0].Y + 280*pls[0].Scale; bottom > pls[1].Y {
		t.Errorf("panels overlap: first ends %v, second starts %v", bottom, pls[1].Y)
	}
	if end := pls[1].Y + 280*pls[1].Scale; end > 720-contentBot+difTol {
		t.Errorf("second panel ends at %v", end)
	}
	if pls[0].X < 1280*0.52 || pls[0].X+400*pls[0].Scale > 1280-textLeft+difTol {
		t.Errorf("panel x = %v", pls[0].X)
	}

	if _, _, ok := pls[0].toLocal(pls[0].X+400*pls[0].Scale, pls[0].Y); ok {
		t.Error("right edge is outside the panel")
	}
	if placePanels(1280, 720, nil) != nil {
		t.Error("placements without panels")
	}
}

func TestNavButtons(t *testing.T) {
	b := navButtons(1280, 720)
	if b[0].Max.X > b[1].Min.X || b[1].Max.X > b[2].Min.X {
		t.Errorf("buttons out of order: %v", b)
	}
	if mid := (b[0].Min.X + b[2].Max.X) / 2; mid != 640 {
		t.Errorf("buttons centred at %d", mid)
	}
	if b[2].Max.Y != 720-config.ButtonMargin {
		t.Errorf("bottom = %d", b[2].Max.Y)
	}
	c := b[1].Min.Add(b[1].Size().Div(2))
	if navButtonAt(1280, 720, float64(c.X), float64(c.Y)) != navOverview {
		t.Error("overview button not hit")
	}
	if navButtonAt(1280, 720, 10, 10) != -1 {
		t.Error("corner hit a button")
	}
}

func TestHintAlpha(t *testing.T) {
	cases := []struct {
		ticks int
		want  float64
	}{
		{0, 1}, {240, 1}, {270, 0.5}, {300, 0}, {600, 0},
	}
	for _, c := range cases {
		if got := hintAlpha(c.ticks, 60); math.Abs(got-c.want) > difTol {
			t.Errorf("hintAlpha(%d) = %v, want %v", c.ticks, got, c.want)
		}
	}
	if hintAlpha(10, 0) != 0 {
		t.Error("zero tps should hide the hint")
	}
}

func TestBackgroundOpacity(t *testing.T) {
	for slide, want := range map[int]float64{1: 0.15, 15: 0.15, 2: 0.06, 8: 0.06} {
		if got := backgroundOpacity(slide, 15); got != want {
			t.Errorf("slide %d opacity = %v, want %v", slide, got, want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatDuration(elapsed(60*125, 60)); got != "02:05" {
		t.Errorf("formatDuration = %q", got)
	}
	if elapsed(100, 0) != 0 || elapsed(30, 60) != 500*time.Millisecond {
		t.Error("elapsed")
	}
}

func TestBuildSlides(t *testing.T) {
	var fired []int
	slides := BuildSlides(config.Default(), scene.DefaultPalette(), rng.Fixed(0.5), func(i int) { fired = append(fired, i) })
	if len(slides) != len(SlideNames) {
		t.Fatalf("slides = %d", len(slides))
	}
	for i, s := range slides {
		if s.Title == "" || len(s.Points) == 0 {
			t.Errorf("slide %d has no content", i+1)
		}
	}

	energy := slides[2].Panels
	if len(energy) != 1 || energy[0].Width != 400 || energy[0].Height != 280 {
		t.Errorf("scaling slide panels = %v", energy)
	}
	slides[2].mount(1280, 720)
	if ev := energy[0].Visual.(*energyVisual); len(ev.bars) != 5 {
		t.Errorf("energy bars = %d, want 5", len(ev.bars))
	}
	slides[2].unmount()

	net := slides[5].Panels[0]
	if net.Width != 400 || net.Height != 280 {
		t.Errorf("network panel %dx%d", net.Width, net.Height)
	}
	c := net.Visual.(Clicker)
	c.Click(70, 60)
	if len(fired) != 0 {
		t.Error("unmounted network reacted to a click")
	}

	slides[5].mount(1280, 720)
	p := spikenet.DefaultLayout()[3]
	c.Click(p.X+5, p.Y)
	if len(fired) != 1 || fired[0] != 3 {
		t.Errorf("fired = %v, want [3]", fired)
	}
	for i := 0; i < 200; i++ {
		net.Visual.Update()
	}

	for _, s := range slides {
		s.mount(1280, 720)
		for _, v := range s.visuals() {
			v.Update()
		}
		s.unmount()
	}
}

func TestMeterColor(t *testing.T) {
	lo, hi := meterColor(0, 32, 0), meterColor(0, 32, 1)
	if lo.A != 255 || hi.A != 255 {
		t.Error("meter colours not opaque")
	}
	if int(hi.R)+int(hi.G)+int(hi.B) <= int(lo.R)+int(lo.G)+int(lo.B) {
		t.Errorf("louder band not brighter: %v vs %v", hi, lo)
	}
}
