package sfx

import (
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/pkg/errors"
)

// LoadVorbis decodes an Ogg Vorbis stream into mono 16-bit PCM at rate.
func LoadVorbis(r io.Reader, rate int) ([]int16, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "sfx: decoding ogg vorbis")
	}
	if len(data) == 0 {
		return nil, ErrNoAudioData
	}

	mono := monoMix(data, format.Channels)
	return toPCM16(resample(mono, format.SampleRate, rate)), nil
}
