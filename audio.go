package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spatialmix/sfx"
)

// loadBeaconSamples decodes the file at path into mono PCM at rate. An empty
// path falls back to a synthesized tone so the demo runs without assets.
func loadBeaconSamples(rate int, path string) ([]int16, error) {
	if path == "" {
		return sfx.Sine(rate, beaconFreq, beaconSecs*time.Second, beaconVolume), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return sfx.LoadWAV(f, rate)
	case ".mp3":
		return sfx.LoadMP3(f, rate)
	case ".ogg":
		return sfx.LoadVorbis(f, rate)
	default:
		return nil, fmt.Errorf("unsupported sound file %q", path)
	}
}
