// Command spikerec runs the interactive network without a window and
// reports what it did, optionally as a video and a chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iburimskiy/spiking-deck/internal/config"
	"github.com/iburimskiy/spiking-deck/internal/record"
	"github.com/iburimskiy/spiking-deck/internal/rng"
	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
)

func main() {
	opts := record.DefaultOptions()
	var (
		configPath = flag.String("config", "", "TOML config file overriding the defaults")
		seed       = flag.Int64("seed", 0, "random seed, 0 for clock based (overrides config)")
		random     = flag.Int("random", 0, "place this many neurons at random instead of the demo layout")
		video      = flag.String("video", "", "write an MJPEG AVI of the run")
		fps        = flag.Int("fps", 30, "video frame rate")
		quality    = flag.Int("quality", 85, "JPEG quality of video frames")
		chartPath  = flag.String("chart", "", "write a PNG chart of fires and potential")
	)
	flag.IntVar(&opts.Ticks, "ticks", opts.Ticks, "ticks to simulate")
	flag.IntVar(&opts.Fire, "fire", opts.Fire, "neuron forced to fire at the start, -1 for none")
	flag.IntVar(&opts.Refire, "refire", opts.Refire, "force the neuron again every N ticks, 0 for never")
	flag.IntVar(&opts.Every, "every", opts.Every, "record every Nth tick into the video")
	flag.Parse()
	log.SetPrefix("spikerec: ")
	log.SetFlags(0)

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
	pal, err := cfg.Palette.Palette()
	if err != nil {
		log.Fatal(err)
	}

	src := rng.New(cfg.Seed)
	var net *spikenet.Network
	if *random > 0 {
		net, err = spikenet.NewRandom(*random, float64(opts.Width), float64(opts.Height), cfg.Network, src)
	} else {
		net, err = spikenet.New(spikenet.DefaultLayout(), cfg.Network, src)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d neurons, %d connections", len(net.Neurons), net.EdgeCount())

	var sink record.FrameSink
	var vs *record.VideoSink
	if *video != "" {
		vs, err = record.NewVideoSink(*video, opts.Width, opts.Height, *fps, *quality)
		if err != nil {
			log.Fatal(err)
		}
		sink = vs
	}

	tr, err := record.Run(net, opts, pal, sink)
	if vs != nil {
		if cerr := vs.Close(); cerr != nil && err == nil {
			err = cerr
		}
		log.Printf("wrote %d frames to %s", vs.Written, *video)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *chartPath != "" {
		if err := writeChart(*chartPath, tr, pal); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote chart %s", *chartPath)
	}

	fmt.Println(record.Summary(tr))
}

func writeChart(path string, tr *record.Trace, pal scene.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := record.WriteChart(f, tr, pal); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
