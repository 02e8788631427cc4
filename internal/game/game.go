// Package game is the ebiten deck: it schedules every simulation one tick
// per frame, routes input and draws the slides.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spiking-deck/internal/audio"
	"github.com/iburimskiy/spiking-deck/internal/background"
	"github.com/iburimskiy/spiking-deck/internal/config"
	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
)

type Game struct {
	cfg  config.Config
	pal  scene.Palette
	src  rng.Source
	deck *Deck
	bg   *background.Field

	// audio
	sound     *audio.Sonifier
	tap       *audio.Tap
	meter     []float64
	speakerOn bool

	// input
	buttonHovered int
	buttonPressed int

	ticks    int
	shotPath string
	lastErr  error
}

// New builds the deck from cfg starting at slide start. Audio starts
// muted when cfg disables it and is opened lazily on first unmute.
func New(cfg config.Config, start int) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{buttonHovered: -1, buttonPressed: -1}
	g.sound = audio.NewSonifier(beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.Gain)
	g.tap = audio.NewTap(g.sound, config.VisualRingSize)
	g.meter = make([]float64, config.MeterBands)
	if err := g.apply(cfg, start); err != nil {
		return nil, err
	}
	g.setAudio(cfg.Audio.Enabled)
	return g, nil
}

// apply rebuilds every simulation from cfg, staying on slide.
func (g *Game) apply(cfg config.Config, slide int) error {
	pal, err := cfg.Palette.Palette()
	if err != nil {
		return err
	}
	src := rng.New(cfg.Seed)
	w, h := cfg.Window.Width, cfg.Window.Height
	if g.deck != nil {
		g.deck.Slide().unmount()
		w, h = g.deck.Size()
	}
	bg, err := background.New(float64(w), float64(h), cfg.Background, src)
	if err != nil {
		return err
	}

	g.cfg, g.pal, g.src, g.bg = cfg, pal, src, bg
	g.setSampleRate(beep.SampleRate(cfg.Audio.SampleRate))
	g.sound.SetGain(cfg.Audio.Gain)
	g.loadSample(cfg.Audio.Sample)
	g.deck = NewDeck(BuildSlides(cfg, pal, src, g.blip), slide)
	if g.deck.Current != slide {
		log.Printf("start slide %d out of range, showing %d", slide, g.deck.Current)
	}
	g.deck.Resize(w, h)
	ebiten.SetTPS(cfg.Window.TPS)
	return nil
}

// loadSample switches the fire sound to the file at path, or back to the
// sine blip when path is empty. A bad file keeps the sine.
func (g *Game) loadSample(path string) {
	if path == "" {
		g.sound.SetSample(nil)
		return
	}
	sample, err := audio.LoadSample(path, g.sound.Rate())
	if err != nil {
		g.lastErr = err
		log.Printf("fire sample: %v", err)
		g.sound.SetSample(nil)
		return
	}
	g.sound.SetSample(sample)
	log.Printf("loaded fire sample %s (%d frames)", path, len(sample))
}

// setSampleRate reopens the speaker when a new config changes its rate.
func (g *Game) setSampleRate(sr beep.SampleRate) {
	if sr == g.sound.Rate() {
		return
	}
	g.sound.SetSampleRate(sr)
	if !g.speakerOn {
		return
	}
	if err := audio.Restart(sr, g.tap); err != nil {
		g.lastErr = fmt.Errorf("audio: %w", err)
		g.speakerOn = false
	}
}

func (g *Game) blip(neuron int) {
	g.sound.Blip(audio.PitchFor(neuron))
}

// setAudio unmutes, opening the output device on first use.
func (g *Game) setAudio(on bool) {
	if on && !g.speakerOn {
		if err := audio.Start(g.sound.Rate(), g.tap); err != nil {
			g.lastErr = fmt.Errorf("audio: %w", err)
			on = false
		} else {
			g.speakerOn = true
		}
	}
	g.sound.SetMuted(!on)
}

func (g *Game) Update() error {
	g.ticks++

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.deck.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.deck.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.deck.ToggleOverview()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.setAudio(g.sound.Muted())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		path, err := g.screenshotDialog()
		if err != nil {
			g.lastErr = err
		}
		g.shotPath = path
	}

	g.updatePointer()

	g.bg.Tick()
	g.deck.Update()
	if g.speakerOn {
		audio.Bands(g.tap.Snapshot(2048), g.meter, config.SmoothingFactor)
	}
	return nil
}

// updatePointer clicks nav buttons on release, like a native button, and
// passes other presses to the deck.
func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	w, h := g.deck.Size()
	g.buttonHovered = navButtonAt(w, h, float64(mx), float64(my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.buttonHovered >= 0 {
			g.buttonPressed = g.buttonHovered
		} else {
			g.deck.Click(float64(mx), float64(my))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed >= 0 && g.buttonPressed == g.buttonHovered {
			switch g.buttonPressed {
			case navPrev:
				g.deck.Prev()
			case navOverview:
				g.deck.ToggleOverview()
			case navNext:
				g.deck.Next()
			}
		}
		g.buttonPressed = -1
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(g.pal.Navy)
	total := len(g.deck.Slides)
	scene.DrawBackground(screen{dst}, g.bg, g.pal, backgroundOpacity(g.deck.Current, total))

	g.drawSlide(dst)
	if g.deck.Overview {
		g.drawOverview(dst)
	}
	g.drawNav(dst)
	g.drawMeter(dst)
	g.drawStatus(dst)

	if g.shotPath != "" {
		if err := saveScreenshot(dst, g.shotPath); err != nil {
			g.lastErr = err
		} else {
			log.Printf("saved screenshot %s", g.shotPath)
		}
		g.shotPath = ""
	}
}

func (g *Game) drawSlide(dst *ebiten.Image) {
	s := g.deck.Slide()
	for _, l := range s.Layers {
		l.Draw(screen{dst})
	}

	drawText(dst, fmt.Sprintf("%02d / %02d", g.deck.Current, len(g.deck.Slides)), textLeft, 50, 1, scene.Alpha(g.pal.Gold, 0.7))
	drawText(dst, s.Title, textLeft, 100, 3, g.pal.Cream)
	vector.DrawFilledRect(dst, textLeft, 116, 60, 2, g.pal.Teal, false)
	for i, p := range s.Points {
		y := float64(contentTop+20) + float64(i)*36
		vector.DrawFilledCircle(dst, textLeft+4, float32(y-5), 3, g.pal.Teal, true)
		drawText(dst, p, textLeft+16, y, 1.5, scene.Alpha(g.pal.Cream, 0.85))
	}

	w, h := g.deck.Size()
	for i, pl := range placePanels(w, h, s.Panels) {
		s.Panels[i].draw(dst, pl, scene.Alpha(g.pal.Blue, 0.2))
	}
}

func (g *Game) drawOverview(dst *ebiten.Image) {
	w, h := g.deck.Size()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.NRGBA{R: 12, G: 12, B: 50, A: 247}, false)

	n := len(g.deck.Slides)
	box := overviewBox(w, h, n)
	heading := "Slide Overview"
	drawText(dst, heading, float64(box.Min.X+box.Dx()/2)-float64(len(heading))*7, float64(box.Min.Y+20), 2, g.pal.Gold)

	for i, r := range overviewTiles(w, h, n) {
		fill, border := scene.Alpha(g.pal.Cream, 0.03), scene.Alpha(g.pal.Cream, 0.08)
		if i+1 == g.deck.Current {
			fill, border = scene.Alpha(g.pal.Gold, 0.15), scene.Alpha(g.pal.Gold, 0.5)
		}
		drawRect(dst, r, fill, border)
		drawText(dst, fmt.Sprintf("%02d", i+1), float64(r.Min.X+8), float64(r.Min.Y+20), 1, scene.Alpha(g.pal.Gold, 0.7))
		drawText(dst, clip(SlideNames[i], r.Dx()-16), float64(r.Min.X+8), float64(r.Min.Y+44), 1, scene.Alpha(g.pal.Cream, 0.8))
	}
}

func (g *Game) drawNav(dst *ebiten.Image) {
	w, h := g.deck.Size()
	labels := [3]string{"<", "#", ">"}
	disabled := [3]bool{g.deck.Current == 1, false, g.deck.Current == len(g.deck.Slides)}
	for i, r := range navButtons(w, h) {
		a := 0.1
		switch {
		case disabled[i]:
			a = 0.02
		case g.buttonPressed == i:
			a = 0.3
		case g.buttonHovered == i, i == navOverview && g.deck.Overview:
			a = 0.2
		}
		drawRect(dst, r, scene.Alpha(g.pal.Gold, a), scene.Alpha(g.pal.Gold, 0.2))
		tc := scene.Alpha(g.pal.Gold, 1)
		if disabled[i] {
			tc = scene.Alpha(g.pal.Gold, 0.2)
		}
		drawText(dst, labels[i], float64(r.Min.X+r.Dx()/2-3), float64(r.Min.Y+r.Dy()/2+4), 1, tc)
	}
}

// drawMeter shows the sonifier output level, bottom right.
func (g *Game) drawMeter(dst *ebiten.Image) {
	if !g.speakerOn || g.sound.Muted() {
		return
	}
	w, h := g.deck.Size()
	barW, barH := 3.0, 24.0
	x0 := float64(w) - 24 - float64(len(g.meter))*(barW+1)
	y0 := float64(h) - 16
	for i, level := range g.meter {
		bh := max(1, clamp01(level)*barH)
		vector.DrawFilledRect(dst, float32(x0+float64(i)*(barW+1)), float32(y0-bh), float32(barW), float32(bh), meterColor(i, len(g.meter), level), false)
	}
}

func (g *Game) drawStatus(dst *ebiten.Image) {
	w, h := g.deck.Size()
	if a := hintAlpha(g.ticks, g.cfg.Window.TPS); a > 0 {
		hint := "<- -> navigate . ESC overview . M sound . O config . P screenshot"
		drawText(dst, hint, float64(w)-float64(len(hint))*7-16, 24, 1, scene.Alpha(g.pal.Cream, 0.5*a))
	}

	status := fmt.Sprintf("%s  %s", formatDuration(elapsed(g.ticks, g.cfg.Window.TPS)), SlideNames[g.deck.Current-1])
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(dst, status, 12, h-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.deck.Size(); w != outsideWidth || h != outsideHeight {
		g.deck.Resize(outsideWidth, outsideHeight)
		g.bg.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func drawRect(dst *ebiten.Image, r image.Rectangle, fill, border color.Color) {
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 1, border, false)
}

// clip shortens s to fit width pixels of the label face.
func clip(s string, width int) string {
	n := width / 7
	if len(s) <= n || n < 3 {
		return s
	}
	return s[:n-2] + ".."
}
