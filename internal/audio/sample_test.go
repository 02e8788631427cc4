package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

type constant float64

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{float64(c), -float64(c)}
	}
	return len(samples), true
}

func (c constant) Err() error { return nil }

func writeWav(t *testing.T, sr beep.SampleRate, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fire.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(n, constant(0.5)), format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSample(t *testing.T) {
	path := writeWav(t, 8000, 1000)

	got, err := LoadSample(path, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1000 {
		t.Fatalf("len = %d, want 1000", len(got))
	}
	if math.Abs(got[500][0]-0.5) > 1e-3 || math.Abs(got[500][1]+0.5) > 1e-3 {
		t.Errorf("sample = %v, want [0.5 -0.5]", got[500])
	}

	up, err := LoadSample(path, 16000)
	if err != nil {
		t.Fatal(err)
	}
	if len(up) < 1980 || len(up) > 2020 {
		t.Errorf("resampled len = %d, want about 2000", len(up))
	}
}

func TestLoadSampleCapped(t *testing.T) {
	sr := beep.SampleRate(4000)
	path := writeWav(t, sr, sr.N(MaxSample)+500)
	got, err := LoadSample(path, sr)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != sr.N(MaxSample) {
		t.Errorf("len = %d, want cap %d", len(got), sr.N(MaxSample))
	}
}

func TestLoadSampleErrors(t *testing.T) {
	dir := t.TempDir()
	ogg := filepath.Join(dir, "fire.ogg")
	if err := os.WriteFile(ogg, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSample(ogg, 8000); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ogg err = %v", err)
	}
	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("not a riff"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSample(bad, 8000); err == nil {
		t.Error("garbage wav decoded")
	}
	if _, err := LoadSample(filepath.Join(dir, "missing.wav"), 8000); err == nil {
		t.Error("missing file decoded")
	}
}

func TestSamplePlaybackPitch(t *testing.T) {
	s := NewSonifier(beep.SampleRate(8000), 1)
	sample := make([][2]float64, 100)
	for i := range sample {
		sample[i] = [2]float64{0.25, -0.25}
	}
	s.SetSample(sample)

	s.Blip(440)
	buf := make([][2]float64, 60)
	s.Stream(buf)
	if buf[0] != [2]float64{0.25, -0.25} {
		t.Errorf("first frame = %v", buf[0])
	}
	if buf[49] == ([2]float64{}) || buf[50] != ([2]float64{}) {
		t.Errorf("octave-up sample should last 50 frames: %v %v", buf[49], buf[50])
	}
	if s.Voices() != 0 {
		t.Errorf("voices = %d after the sample ended", s.Voices())
	}

	s.SetSample(nil)
	s.Blip(440)
	s.Stream(buf)
	if buf[0][0] != 0 || buf[1][0] == 0 || buf[1][0] != buf[1][1] {
		t.Errorf("sine blip not restored: %v %v", buf[0], buf[1])
	}
}
