package sfx

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// LoadWAV decodes a RIFF wave file into mono 16-bit PCM at rate. 8, 16, 24
// and 32-bit PCM input is accepted with any channel count.
func LoadWAV(r io.ReadSeeker, rate int) ([]int16, error) {
	d := wav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "sfx: decoding wav")
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	bitDepth := int(d.BitDepth)
	var scale float32
	switch bitDepth {
	case 8:
		scale = 1 << 7
	case 16:
		scale = 1 << 15
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		return nil, errors.Errorf("sfx: unsupported wav bit depth %d", bitDepth)
	}

	samples := make([]float32, len(buf.Data))
	if bitDepth == 8 {
		// 8-bit wave data is unsigned.
		for i, v := range buf.Data {
			samples[i] = (float32(v) - 128) / scale
		}
	} else {
		for i, v := range buf.Data {
			samples[i] = float32(v) / scale
		}
	}

	mono := monoMix(samples, buf.Format.NumChannels)
	return toPCM16(resample(mono, buf.Format.SampleRate, rate)), nil
}
