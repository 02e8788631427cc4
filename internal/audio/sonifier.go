// Package audio turns neuron fires into short tones.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	// MaxVoices caps simultaneous tones; the oldest is dropped first.
	MaxVoices = 16

	blipLength = 80 * time.Millisecond
	blipDecay  = 5.0
)

// sampleBase is the pitch at which a loaded sample plays unchanged.
const sampleBase = 220.0

type voice struct {
	freq   float64
	pos    int
	length int

	// nil for a sine blip
	sample [][2]float64
}

// Sonifier is an endless beep.Streamer that mixes decaying sine blips, or
// a loaded sample played back at the blip's pitch. Blip may be called from
// the render loop while the speaker goroutine streams.
type Sonifier struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	gain   float64
	voices []voice
	muted  bool
	sample [][2]float64
}

func NewSonifier(sr beep.SampleRate, gain float64) *Sonifier {
	return &Sonifier{sr: sr, gain: gain}
}

// Blip queues one tone at freq Hz. Ignored while muted.
func (s *Sonifier) Blip(freq float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || freq <= 0 {
		return
	}
	if len(s.voices) >= MaxVoices {
		s.voices = append(s.voices[:0], s.voices[1:]...)
	}
	v := voice{freq: freq, length: s.sr.N(blipLength)}
	if len(s.sample) > 0 {
		v.sample = s.sample
		v.length = int(float64(len(s.sample)) * sampleBase / freq)
	}
	s.voices = append(s.voices, v)
}

// SetSample replaces the sine blip with samples, which must be at the
// sonifier's rate. nil restores the sine.
func (s *Sonifier) SetSample(samples [][2]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sample = samples
}

// SetMuted silences the stream and drops queued tones when muting.
func (s *Sonifier) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
	if muted {
		s.voices = s.voices[:0]
	}
}

func (s *Sonifier) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetSampleRate changes the output rate. Queued tones are dropped.
func (s *Sonifier) SetSampleRate(sr beep.SampleRate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sr = sr
	s.voices = s.voices[:0]
}

func (s *Sonifier) SetGain(gain float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gain = gain
}

func (s *Sonifier) Rate() beep.SampleRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sr
}

// Voices is the number of tones still sounding.
func (s *Sonifier) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

func (s *Sonifier) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr := float64(s.sr)
	for i := range samples {
		var l, r float64
		for k := range s.voices {
			v := &s.voices[k]
			if v.pos >= v.length {
				continue
			}
			if v.sample != nil {
				at := min(int(float64(v.pos)*v.freq/sampleBase), len(v.sample)-1)
				l += v.sample[at][0]
				r += v.sample[at][1]
			} else {
				env := math.Exp(-blipDecay * float64(v.pos) / float64(v.length))
				x := math.Sin(2*math.Pi*v.freq*float64(v.pos)/sr) * env
				l += x
				r += x
			}
			v.pos++
		}
		samples[i] = [2]float64{clip(l * s.gain), clip(r * s.gain)}
	}

	live := s.voices[:0]
	for _, v := range s.voices {
		if v.pos < v.length {
			live = append(live, v)
		}
	}
	s.voices = live
	return len(samples), true
}

func (s *Sonifier) Err() error { return nil }

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// pentatonic steps in semitones
var scale = [...]int{0, 2, 4, 7, 9}

// PitchFor maps neuron i onto a major pentatonic scale rising from A3.
func PitchFor(i int) float64 {
	if i < 0 {
		i = -i
	}
	octave := i / len(scale) % 3
	semis := scale[i%len(scale)] + 12*octave
	return 220 * math.Pow(2, float64(semis)/12)
}

// device is the output Start and Restart drive. Every call takes the
// speaker's own lock, so none of them may run while it is held.
var device = struct {
	init  func(sr beep.SampleRate, bufferSize int) error
	play  func(s ...beep.Streamer)
	clear func()
}{speaker.Init, speaker.Play, speaker.Clear}

// Start opens the default output device at sr and plays s on it.
func Start(sr beep.SampleRate, s beep.Streamer) error {
	if err := device.init(sr, sr.N(time.Second/20)); err != nil {
		return err
	}
	device.play(s)
	return nil
}

// Restart stops whatever the speaker plays and reopens it at sr with s.
func Restart(sr beep.SampleRate, s beep.Streamer) error {
	device.clear()
	return Start(sr, s)
}
