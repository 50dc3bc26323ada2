package sfx

import (
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
)

// LoadMP3 decodes an MPEG layer-3 stream into mono 16-bit PCM at rate.
// go-mp3 always emits 16-bit little-endian stereo.
func LoadMP3(r io.Reader, rate int) ([]int16, error) {
	d, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrap(err, "sfx: decoding mp3")
	}

	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, errors.Wrap(err, "sfx: reading mp3 stream")
	}
	frames := len(raw) / 4
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	samples := make([]float32, frames*2)
	for i := range samples {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = float32(v) / 32768
	}

	mono := monoMix(samples, 2)
	return toPCM16(resample(mono, d.SampleRate(), rate)), nil
}
