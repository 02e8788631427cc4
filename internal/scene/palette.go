// Package scene draws simulation state onto a surface. Renderers only read
// the state they are given.
package scene

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// PaletteHex is the configurable form of a Palette.
type PaletteHex struct {
	Navy   string `toml:"navy"`
	Blue   string `toml:"blue"`
	Teal   string `toml:"teal"`
	Purple string `toml:"purple"`
	Cream  string `toml:"cream"`
	Gold   string `toml:"gold"`
	Red    string `toml:"red"`
	Node   string `toml:"node"`
	Spark  string `toml:"spark"`
}

func (h *PaletteHex) Defaults() {
	h.Navy = "#191970"
	h.Blue = "#3A6EA5"
	h.Teal = "#6BA292"
	h.Purple = "#5B4B8A"
	h.Cream = "#E8E4D9"
	h.Gold = "#C9A84C"
	h.Red = "#D4183D"
	h.Node = "#5AA0D2"
	h.Spark = "#8CC3A5"
}

// Palette holds the opaque base colours; renderers apply alpha per element.
type Palette struct {
	Navy, Blue, Teal, Purple, Cream, Gold, Red color.RGBA

	// background node and spike colours
	Node, Spark color.RGBA
}

// Palette parses every entry, naming the first bad one.
func (h PaletteHex) Palette() (Palette, error) {
	var p Palette
	entries := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"navy", h.Navy, &p.Navy},
		{"blue", h.Blue, &p.Blue},
		{"teal", h.Teal, &p.Teal},
		{"purple", h.Purple, &p.Purple},
		{"cream", h.Cream, &p.Cream},
		{"gold", h.Gold, &p.Gold},
		{"red", h.Red, &p.Red},
		{"node", h.Node, &p.Node},
		{"spark", h.Spark, &p.Spark},
	}
	for _, e := range entries {
		r, g, b, err := colorconv.HexToRGB(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s %q: %w", e.name, e.hex, err)
		}
		*e.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}

// DefaultPalette is the talk's colour scheme.
func DefaultPalette() Palette {
	var h PaletteHex
	h.Defaults()
	p, err := h.Palette()
	if err != nil {
		panic(err)
	}
	return p
}

// Alpha returns c at opacity a, clamped to [0, 1].
func Alpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a)*255 + 0.5)}
}

// Brighten raises the HSV value of c by dv, saturating at 1.
func Brighten(c color.RGBA, dv float64) color.RGBA {
	h, s, v := colorconv.RGBToHSV(c.R, c.G, c.B)
	if h >= 360 {
		h = 0
	}
	r, g, b, err := colorconv.HSVToRGB(h, clamp01(s), clamp01(v+dv))
	if err != nil {
		return c
	}
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
