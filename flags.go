package main

import "flag"

// Command-line flags that control optional audio and runtime behavior.
var (
	// soundFlag points the orbiting beacon at a wav/mp3/ogg file instead of
	// the generated tone.
	soundFlag = flag.String("sound", "", "audio file (wav/mp3/ogg) for the orbiting source")

	// autoWalkFlag replays scripted listener movement instead of WASD input.
	autoWalkFlag = flag.Bool("auto-walk", false, "move the listener automatically")

	// muteFlag skips opening an output device; mixing still runs.
	muteFlag = flag.Bool("mute", false, "run without an audio output device")

	// debugFlag enables the FPS and source-count overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and active source overlay")
)
