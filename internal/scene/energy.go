package scene

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// EnergyBar is one system on the power comparison chart. Label lines are
// separated by newlines.
type EnergyBar struct {
	Label string
	Watts float64
	Color color.RGBA
}

// EnergyBars compares the brain with inference and training hardware.
func EnergyBars(pal Palette) []EnergyBar {
	return []EnergyBar{
		{"Human\nBrain", 20, pal.Teal},
		{"Smartphone\nInference", 5, pal.Blue},
		{"Edge TPU\nInference", 15, pal.Blue},
		{"GPU\nInference", 300, pal.Blue},
		{"GPT-3\nTraining", 1287000, pal.Red},
	}
}

// chart frame inside the panel
const (
	energyLeft   = 44
	energyRight  = 16
	energyTop    = 36
	energyBottom = 44
)

// logTop is the first whole decade at or above every bar.
func logTop(bars []EnergyBar) float64 {
	top := 1.0
	for _, b := range bars {
		if b.Watts > 0 {
			top = math.Max(top, math.Ceil(math.Log10(b.Watts)))
		}
	}
	return top
}

// barFraction is the share of the axis a bar fills on a log10 scale,
// clamped to [0, 1].
func barFraction(watts, top float64) float64 {
	if watts <= 1 || top <= 0 {
		return 0
	}
	return clamp01(math.Log10(watts) / top)
}

func wattLabel(w float64) string {
	if w >= 1000 {
		return fmt.Sprintf("%.0f kW", w/1000)
	}
	return fmt.Sprintf("%g W", w)
}

// DrawEnergyChart plots bars on a log10 watt axis with one grid line per
// decade.
func DrawEnergyChart(s surface.Surface, bars []EnergyBar, pal Palette) {
	w, h := s.Size()
	x0, x1 := float64(energyLeft), float64(w-energyRight)
	y0, y1 := float64(energyTop), float64(h-energyBottom)
	top := logTop(bars)

	s.Text("Power per inference (log10 W)", x0, 18, Alpha(pal.Cream, 0.7))

	label := Alpha(pal.Cream, 0.5)
	for k := 0.0; k <= top; k++ {
		y := y1 - (y1-y0)*k/top
		s.StrokeLine(x0, y, x1, y, 0.5, Alpha(pal.Cream, 0.08))
		s.Text(fmt.Sprintf("%g", k), x0-12, y+4, label)
	}
	s.StrokeLine(x0, y0, x0, y1, 1, Alpha(pal.Cream, 0.25))

	if len(bars) == 0 {
		return
	}
	slot := (x1 - x0) / float64(len(bars))
	for i, b := range bars {
		cx := x0 + slot*(float64(i)+0.5)
		bh := (y1 - y0) * barFraction(b.Watts, top)
		if bh > 0 {
			s.StrokeLine(cx, y1, cx, y1-bh, slot*0.6, Alpha(b.Color, 0.85))
		}
		v := wattLabel(b.Watts)
		s.Text(v, cx-surface.TextWidth(v)/2, y1-bh-4, Alpha(b.Color, 1))
		for j, line := range strings.Split(b.Label, "\n") {
			s.Text(line, cx-surface.TextWidth(line)/2, y1+16+float64(j)*13, label)
		}
	}
}
