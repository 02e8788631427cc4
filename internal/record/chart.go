package record

import (
	"errors"
	"image/color"
	"io"

	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptyTrace = errors.New("trace has no ticks")

// WriteChart renders fires per tick and mean potential of tr as a PNG.
func WriteChart(w io.Writer, tr *Trace, pal scene.Palette) error {
	n := len(tr.Fires)
	if n == 0 {
		return ErrEmptyTrace
	}
	xs := make([]float64, n)
	fires := make([]float64, n)
	maxY := 1.0
	for i, f := range tr.Fires {
		xs[i] = float64(i)
		fires[i] = float64(f)
		maxY = max(maxY, fires[i])
	}
	potential := make([]float64, n)
	for i, p := range tr.Potential {
		potential[i] = p * maxY
	}
	// go-chart needs two points to draw a line
	if n == 1 {
		xs = append(xs, 1)
		fires = append(fires, fires[0])
		potential = append(potential, potential[0])
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "fires",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "fires / tick",
				XValues: xs,
				YValues: fires,
				Style:   chart.Style{StrokeColor: chartColor(pal.Gold), StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "mean potential (scaled)",
				XValues: xs,
				YValues: potential,
				Style:   chart.Style{StrokeColor: chartColor(pal.Teal), StrokeWidth: 1.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func chartColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
