package main

import (
	"flag"
	"log"
	"time"

	"spatialmix/sfx"
	"spatialmix/snd"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg := snd.DefaultConfig()

	var sink snd.Sink
	if !*muteFlag {
		oto, err := snd.NewOtoSink(cfg.SampleRate)
		if err != nil {
			log.Printf("opening audio device: %v, running silenced", err)
		} else {
			sink = oto
		}
	}

	beaconSamples, err := loadBeaconSamples(cfg.SampleRate, *soundFlag)
	if err != nil {
		log.Fatalf("loading beacon sound: %v", err)
	}
	pingSamples := sfx.Sine(cfg.SampleRate, pingFreq, time.Duration(pingSecs*float64(time.Second)), pingVolume)

	engine := snd.NewEngine(cfg, sink)
	engine.Start()
	defer engine.Stop()

	g, err := newGame(engine, beaconSamples, pingSamples)
	if err != nil {
		log.Fatalf("setting up scene: %v", err)
	}

	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("Spatial Mix Demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
