package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/crazy3lf/colorconv"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// elapsed converts simulation ticks into wall time at tps.
func elapsed(ticks, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}

// meterColor shades meter band i of n from teal toward purple.
func meterColor(i, n int, level float64) color.RGBA {
	hue := 160 + 100*float64(i)/math.Max(1, float64(n))
	r, g, b, err := colorconv.HSVToRGB(math.Mod(hue, 360), 0.5, 0.4+0.5*clamp01(level))
	if err != nil {
		return color.RGBA{R: 107, G: 162, B: 146, A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
