package record

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
)

// chain builds a three-neuron line where every spike takes four ticks and
// a single delivery fires its target.
func chain(t *testing.T) *spikenet.Network {
	t.Helper()
	p := spikenet.DefaultParams()
	p.ConnectRadius = 150
	p.SpeedMin, p.SpeedMax = 0.25, 0.25
	p.SpikeGain = 1
	n, err := spikenet.New([]spikenet.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 0}}, p, rng.Fixed(0))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func opts(ticks int) Options {
	o := DefaultOptions()
	o.Ticks = ticks
	return o
}

type frameCounter struct {
	frames int
	bounds image.Rectangle
	err    error
}

func (c *frameCounter) Frame(img image.Image) error {
	c.frames++
	c.bounds = img.Bounds()
	return c.err
}

func TestRunTrace(t *testing.T) {
	tr, err := Run(chain(t), opts(12), scene.DefaultPalette(), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]int, 12)
	want[0], want[3], want[7] = 1, 1, 1
	if !reflect.DeepEqual(tr.Fires, want) {
		t.Errorf("fires = %v, want %v", tr.Fires, want)
	}
	if !reflect.DeepEqual(tr.Counts, []int{1, 1, 1}) {
		t.Errorf("counts = %v, want [1 1 1]", tr.Counts)
	}
	if tr.Total() != 3 || tr.Forced != 1 || len(tr.Potential) != 12 {
		t.Errorf("total %d forced %d potentials %d", tr.Total(), tr.Forced, len(tr.Potential))
	}
	if tick, fires := tr.Peak(); tick != 0 || fires != 1 {
		t.Errorf("peak = %d at %d, want 1 at 0", fires, tick)
	}
}

func TestRunRefire(t *testing.T) {
	o := opts(12)
	o.Refire = 5
	tr, err := Run(chain(t), o, scene.DefaultPalette(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Forced != 3 {
		t.Errorf("forced = %d, want 3 (ticks 0, 5, 10)", tr.Forced)
	}
	if tr.Counts[0] < 3 {
		t.Errorf("neuron 0 fired %d times, want at least 3", tr.Counts[0])
	}
}

func TestRunNoForcedFire(t *testing.T) {
	o := opts(50)
	o.Fire = -1
	tr, err := Run(chain(t), o, scene.DefaultPalette(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Total() != 0 {
		t.Errorf("idle network fired %d times", tr.Total())
	}
}

func TestRunFrames(t *testing.T) {
	o := opts(12)
	o.Every = 4
	sink := &frameCounter{}
	if _, err := Run(chain(t), o, scene.DefaultPalette(), sink); err != nil {
		t.Fatal(err)
	}
	if sink.frames != 3 {
		t.Errorf("frames = %d, want 3", sink.frames)
	}
	if sink.bounds != image.Rect(0, 0, 400, 280) {
		t.Errorf("frame bounds = %v", sink.bounds)
	}
}

func TestRunSinkError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := Run(chain(t), opts(5), scene.DefaultPalette(), &frameCounter{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestRunBadOptions(t *testing.T) {
	cases := map[string]func(*Options){
		"ticks":  func(o *Options) { o.Ticks = 0 },
		"refire": func(o *Options) { o.Refire = -1 },
		"every":  func(o *Options) { o.Every = 0 },
		"frame":  func(o *Options) { o.Width = 0 },
		"height": func(o *Options) { o.Height = 0 },
		"fire":   func(o *Options) { o.Fire = 3 },
	}
	for name, mut := range cases {
		o := opts(10)
		mut(&o)
		if _, err := Run(chain(t), o, scene.DefaultPalette(), nil); !errors.Is(err, ErrBadOptions) {
			t.Errorf("%s: err = %v, want ErrBadOptions", name, err)
		}
	}
}

func TestVideoSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	v, err := NewVideoSink(path, 400, 280, 30, 80)
	if err != nil {
		t.Fatal(err)
	}
	o := opts(6)
	if _, err := Run(chain(t), o, scene.DefaultPalette(), v); err != nil {
		t.Fatal(err)
	}
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if v.Written != 6 {
		t.Errorf("written = %d, want 6", v.Written)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Errorf("not an AVI file: % x", data[:min(8, len(data))])
	}
}

func TestWriteChart(t *testing.T) {
	tr, err := Run(chain(t), opts(40), scene.DefaultPalette(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, tr, scene.DefaultPalette()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("chart is not a PNG")
	}

	if err := WriteChart(&buf, &Trace{}, scene.DefaultPalette()); !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("empty trace err = %v", err)
	}
}

func TestSummary(t *testing.T) {
	tr, err := Run(chain(t), opts(12), scene.DefaultPalette(), nil)
	if err != nil {
		t.Fatal(err)
	}
	out := Summary(tr)
	for _, want := range []string{"spike run", "fires", "3", "fires / tick", " 2: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
