package game

import (
	"errors"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spiking-deck/internal/config"
)

// openConfigDialog asks for a TOML file and rebuilds the deck from it.
// A bad file is reported in a dialog and leaves the running deck as is.
func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Deck Config"),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Config not loaded"))
		return err
	}
	if err := g.apply(cfg, g.deck.Current); err != nil {
		return err
	}
	g.setAudio(cfg.Audio.Enabled)
	log.Printf("loaded config %s", filename)
	return nil
}

// screenshotDialog asks where to save the next frame. Canceling returns
// an empty path.
func (g *Game) screenshotDialog() (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("slide.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func saveScreenshot(src *ebiten.Image, path string) error {
	img := image.NewRGBA(src.Bounds())
	src.ReadPixels(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
