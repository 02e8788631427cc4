package game

import (
	"image"
	"math"

	"github.com/iburimskiy/spiking-deck/internal/config"
)

const (
	textLeft   = 60
	contentTop = 150
	contentBot = 90
	panelGap   = 16
	maxScale   = 1.5

	overviewCols  = 5
	overviewTileH = 64
	overviewGap   = 12
	overviewTitle = 40
	overviewMaxW  = 896
	overviewPad   = 32

	hintHold = 4.0 // seconds fully visible
	hintFade = 1.0
)

// placement maps a fixed-size panel onto the window.
type placement struct {
	X, Y, Scale float64
	W, H        int
}

// toLocal translates a window point into the panel's own space.
func (p placement) toLocal(x, y float64) (lx, ly float64, ok bool) {
	if p.Scale <= 0 {
		return 0, 0, false
	}
	lx, ly = (x-p.X)/p.Scale, (y-p.Y)/p.Scale
	ok = lx >= 0 && ly >= 0 && lx < float64(p.W) && ly < float64(p.H)
	return lx, ly, ok
}

// placePanels stacks panels in the right half of the window, scaled
// uniformly to fit and centred.
func placePanels(sw, sh int, panels []*Panel) []placement {
	if len(panels) == 0 {
		return nil
	}
	x0 := float64(sw) * 0.52
	areaW := float64(sw) - textLeft - x0
	areaH := float64(sh) - contentTop - contentBot

	maxW, sumH := 0, 0
	for _, p := range panels {
		maxW = max(maxW, p.Width)
		sumH += p.Height
	}
	gaps := panelGap * float64(len(panels)-1)
	scale := math.Min(maxScale, math.Min(areaW/float64(maxW), (areaH-gaps)/float64(sumH)))
	scale = math.Max(scale, 0)

	total := float64(sumH)*scale + gaps
	y := contentTop + math.Max(0, (areaH-total)/2)
	out := make([]placement, len(panels))
	for i, p := range panels {
		out[i] = placement{
			X:     x0 + (areaW-float64(p.Width)*scale)/2,
			Y:     y,
			Scale: scale,
			W:     p.Width,
			H:     p.Height,
		}
		y += float64(p.Height)*scale + panelGap
	}
	return out
}

func pt(x, y float64) image.Point {
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// overviewBox is the heading plus tile grid of the overview, centred.
func overviewBox(sw, sh, n int) image.Rectangle {
	w := min(overviewMaxW, sw-2*overviewPad)
	rows := (n + overviewCols - 1) / overviewCols
	h := overviewTitle + rows*overviewTileH + max(rows-1, 0)*overviewGap
	x, y := (sw-w)/2, (sh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func overviewTiles(sw, sh, n int) []image.Rectangle {
	box := overviewBox(sw, sh, n)
	tw := (box.Dx() - (overviewCols-1)*overviewGap) / overviewCols
	out := make([]image.Rectangle, n)
	for i := range out {
		col, row := i%overviewCols, i/overviewCols
		x := box.Min.X + col*(tw+overviewGap)
		y := box.Min.Y + overviewTitle + row*(overviewTileH+overviewGap)
		out[i] = image.Rect(x, y, x+tw, y+overviewTileH)
	}
	return out
}

// overviewTileAt returns the index of the tile under (x, y), or -1.
func overviewTileAt(sw, sh, n int, x, y float64) int {
	p := pt(x, y)
	for i, r := range overviewTiles(sw, sh, n) {
		if p.In(r) {
			return i
		}
	}
	return -1
}

const (
	navPrev = iota
	navOverview
	navNext
)

// navButtons are the prev, overview and next buttons, bottom centre.
func navButtons(sw, sh int) [3]image.Rectangle {
	size, gap := config.ButtonSize, config.ButtonGap
	x := (sw - 3*size - 2*gap) / 2
	y := sh - config.ButtonMargin - size
	var out [3]image.Rectangle
	for i := range out {
		out[i] = image.Rect(x, y, x+size, y+size)
		x += size + gap
	}
	return out
}

func navButtonAt(sw, sh int, x, y float64) int {
	p := pt(x, y)
	for i, r := range navButtons(sw, sh) {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// hintAlpha is the keyboard hint's opacity after the given ticks: fully
// visible for four seconds, then fading out over one.
func hintAlpha(ticks, tps int) float64 {
	if tps <= 0 {
		return 0
	}
	t := float64(ticks) / float64(tps)
	return clamp01(1 - (t-hintHold)/hintFade)
}

// backgroundOpacity is stronger on the opening and closing slides.
func backgroundOpacity(slide, total int) float64 {
	if slide == 1 || slide == total {
		return 0.15
	}
	return 0.06
}
