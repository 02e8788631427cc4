// Package stdp describes the spike-timing-dependent plasticity window shown
// on the learning slide.
package stdp

import "math"

// Window gives the weight change as a function of normalized timing
// difference t = post - pre in [-1, 1]. Pre-before-post (t >= 0)
// potentiates, post-before-pre depresses.
type Window struct {
	LTP   float64 `toml:"ltp"`
	LTD   float64 `toml:"ltd"`
	Decay float64 `toml:"decay"`
}

func (w *Window) Defaults() {
	w.LTP = 100
	w.LTD = 60
	w.Decay = 3
}

func DefaultWindow() Window {
	var w Window
	w.Defaults()
	return w
}

// Delta is the weight change at timing difference t.
func (w Window) Delta(t float64) float64 {
	if t >= 0 {
		return w.potentiation(t)
	}
	return w.depression(t)
}

func (w Window) potentiation(t float64) float64 {
	return w.LTP * math.Exp(-w.Decay*t)
}

func (w Window) depression(t float64) float64 {
	return -w.LTD * math.Exp(w.Decay*t)
}

// Sample is one point of a curve.
type Sample struct {
	T, Delta float64
}

// Curve samples one side of the window from t = 0 outwards with n+1
// evenly spaced points. The negative side runs 0, -1/n, ..., -1 and starts
// at -LTD rather than at the potentiation peak.
func (w Window) Curve(n int, negative bool) []Sample {
	if n <= 0 {
		return nil
	}
	out := make([]Sample, n+1)
	for i := range out {
		t := float64(i) / float64(n)
		if negative {
			out[i] = Sample{T: -t, Delta: w.depression(-t)}
			continue
		}
		out[i] = Sample{T: t, Delta: w.potentiation(t)}
	}
	return out
}
