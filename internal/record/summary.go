package record

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// Summary renders a terminal report of tr: totals, per-neuron counts and a
// sparkline of fires per tick.
func Summary(tr *Trace) string {
	peakTick, peak := tr.Peak()
	rows := []string{
		headerStyle.Render("spike run"),
		stat("ticks", fmt.Sprint(len(tr.Fires))),
		stat("fires", fmt.Sprint(tr.Total())),
		stat("forced", fmt.Sprint(tr.Forced)),
		stat("peak", fmt.Sprintf("%d at tick %d", peak, peakTick)),
	}
	if n := len(tr.Potential); n > 0 {
		rows = append(rows, stat("final mean V", fmt.Sprintf("%.3f", tr.Potential[n-1])))
	}

	counts := make([]string, len(tr.Counts))
	for i, c := range tr.Counts {
		counts[i] = fmt.Sprintf("%2d: %d", i, c)
	}
	stats := lipgloss.JoinVertical(lipgloss.Left, rows...)
	neurons := statsStyle.Render(strings.Join(counts, "\n"))
	out := lipgloss.JoinHorizontal(lipgloss.Top, stats, neurons)

	if len(tr.Fires) > 1 {
		data := make([]float64, len(tr.Fires))
		for i, f := range tr.Fires {
			data[i] = float64(f)
		}
		plot := asciigraph.Plot(data, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("fires / tick"))
		out = lipgloss.JoinVertical(lipgloss.Left, out, graphStyle.Render(plot))
	}
	return out
}

func stat(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
