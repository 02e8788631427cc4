package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/iburimskiy/spiking-deck/internal/spikenet"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Network.Threshold != 0.8 || c.Network.SpikeGain != 0.35 || c.Network.Leak != 0.995 {
		t.Errorf("network defaults = %+v", c.Network)
	}
	if c.Particles.SpawnProb != 0.1 || c.Background.Nodes != 60 {
		t.Errorf("ambient defaults = %+v %+v", c.Particles, c.Background)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := writeFile(t, `
seed = 42

[network]
threshold = 1.2
refractory = 30

[palette]
gold = "#FFD700"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Seed != 42 || c.Network.Threshold != 1.2 || c.Network.Refractory != 30 {
		t.Errorf("overlay not applied: seed %d network %+v", c.Seed, c.Network)
	}
	if c.Network.ConnectRadius != 160 || c.Window.Width != 1280 {
		t.Errorf("unset keys lost their defaults: %+v %+v", c.Network, c.Window)
	}
	if c.Palette.Gold != "#FFD700" || c.Palette.Navy != "#191970" {
		t.Errorf("palette = %+v", c.Palette)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name, body string
		want       error
	}{
		{"unknown key", "[network]\nthreshhold = 1\n", ErrUnknownKey},
		{"bad leak", "[network]\nleak = 1.5\n", spikenet.ErrInvalidParams},
		{"bad window", "[window]\ntps = 0\n", ErrInvalid},
	}
	for _, c := range cases {
		_, err := Load(writeFile(t, c.body))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}

	if _, err := Load(writeFile(t, "[palette]\nred = \"nope\"\n")); err == nil {
		t.Error("bad palette colour accepted")
	}
	if _, err := Load(writeFile(t, "seed = \n")); err == nil {
		t.Error("malformed toml accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := Default()
	c.Seed = 7
	c.Audio.Enabled = false
	c.Raster.Rows = 8

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, c)
	}
}
