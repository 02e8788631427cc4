package scene

import (
	"image/color"

	"github.com/iburimskiy/spiking-deck/internal/surface"
)

// glowRings approximates a radial gradient with stacked discs.
const glowRings = 6

// Glow draws a soft disc of radius r fading from alpha at the centre to
// nothing at the rim.
func Glow(s surface.Surface, cx, cy, r float64, c color.RGBA, alpha float64) {
	if alpha <= 0 || r <= 0 {
		return
	}
	step := alpha / glowRings
	for k := glowRings; k >= 1; k-- {
		s.FillCircle(cx, cy, r*float64(k)/glowRings, Alpha(c, step))
	}
}
