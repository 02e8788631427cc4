package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spiking-deck/internal/config"
	"github.com/iburimskiy/spiking-deck/internal/game"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file overriding the defaults")
		seed       = flag.Int64("seed", 0, "random seed, 0 for clock based (overrides config)")
		slide      = flag.Int("slide", 1, "slide to start on")
		mute       = flag.Bool("mute", false, "start with sound off")
		dump       = flag.String("dump-config", "", "write the effective config to this file and exit")
	)
	flag.Parse()
	log.SetPrefix("deck: ")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if *dump != "" {
		if err := cfg.Save(*dump); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := game.New(cfg, *slide)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
