package snd

// Mixing constants shared by the engine and its tests. These values define the
// output format, the propagation model, and the cadence of the mix loop.
const (
	defaultSampleRate      = 48000
	defaultFrameBufferSize = 256
	defaultSpeedOfSound    = 343.0
	defaultDopplerFactor   = 1.0
	defaultSoundDecay      = 1.0
	defaultListenerHeight  = 0.4

	audioChannels       = 2
	audioBytesPerSample = 2
	audioFrameBytes     = audioChannels * audioBytesPerSample
	pcm16MaxValue       = 32767
	pcm16MinValue       = -32768

	// A source approaching at near the propagation speed is clamped so the
	// Doppler denominator stays positive.
	maxSourceRadialFraction = 0.95
)

// Config carries the process-wide mixing settings, read once at engine
// construction. There is no live reconfiguration.
type Config struct {
	// SampleRate of the output device in Hz.
	SampleRate int
	// FrameBufferSize is the number of stereo frames produced per mix pass.
	FrameBufferSize int
	// SpeedOfSound in world units per second.
	SpeedOfSound float32
	// DopplerFactor scales how strongly relative motion affects pitch.
	DopplerFactor float32
	// SoundDecay is reserved for distance attenuation.
	SoundDecay float32
	// ListenerHeight offsets the panning geometry so the bearing angle stays
	// defined directly above or below the listener.
	ListenerHeight float32
}

// DefaultConfig returns the standard 48kHz/256-frame configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:      defaultSampleRate,
		FrameBufferSize: defaultFrameBufferSize,
		SpeedOfSound:    defaultSpeedOfSound,
		DopplerFactor:   defaultDopplerFactor,
		SoundDecay:      defaultSoundDecay,
		ListenerHeight:  defaultListenerHeight,
	}
}
