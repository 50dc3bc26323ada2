package main

// Demo configuration constants. These values define the world size, listener
// movement, and the built-in sounds used when no file is supplied.
const (
	w, h        = 256, 256
	windowScale = 3
	moveSpeed   = 2.0
	defaultTPS  = 60.0
	listenerRad = 3
	sourceRad   = 2

	// the looping beacon orbits the map center
	orbitRadius  = 90.0
	orbitRate    = 0.6 // radians per second
	beaconFreq   = 220.0
	beaconSecs   = 2.0
	beaconVolume = 0.4

	// one-shot pings fly across the field
	pingFreq   = 880.0
	pingSecs   = 1.5
	pingVolume = 0.3
	pingSpeed  = 180.0 // world units per second
)
