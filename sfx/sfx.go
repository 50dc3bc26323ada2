// Package sfx decodes audio files into the format the mixing engine consumes:
// mono signed 16-bit PCM at the engine sample rate. Multi-channel input is
// averaged down to mono and resampled with linear interpolation.
package sfx

import (
	"errors"
	"time"

	"github.com/chewxy/math32"
)

var ErrNoAudioData = errors.New("sfx: no audio data")

// monoMix averages interleaved float32 frames down to a single channel.
func monoMix(in []float32, channels int) []float32 {
	if channels <= 1 {
		return in
	}
	frames := len(in) / channels
	out := make([]float32, frames)
	inv := 1 / float32(channels)
	for f := 0; f < frames; f++ {
		var sum float32
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += in[base+c]
		}
		out[f] = sum * inv
	}
	return out
}

// resample converts mono samples from srcRate to dstRate with linear
// interpolation.
func resample(in []float32, srcRate, dstRate int) []float32 {
	if srcRate == dstRate || len(in) == 0 {
		return in
	}
	outLen := int(int64(len(in)) * int64(dstRate) / int64(srcRate))
	if outLen == 0 {
		outLen = 1
	}
	out := make([]float32, outLen)
	step := float64(srcRate) / float64(dstRate)
	for i := range out {
		pos := float64(i) * step
		i0 := int(pos)
		if i0 >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := float32(pos - float64(i0))
		a := in[i0]
		out[i] = a + (in[i0+1]-a)*frac
	}
	return out
}

// toPCM16 clamps normalized samples to [-1,1] and widens them to int16.
func toPCM16(in []float32) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = int16(v * 32767)
	}
	return out
}

// Sine generates a mono sine tone: rate in Hz, amp in [0,1].
func Sine(rate int, freq float64, d time.Duration, amp float64) []int16 {
	n := int(float64(rate) * d.Seconds())
	if n < 1 {
		n = 1
	}
	out := make([]int16, n)
	step := float32(2 * math32.Pi * float32(freq) / float32(rate))
	a := float32(amp) * 32767
	for i := range out {
		out[i] = int16(a * math32.Sin(step*float32(i)))
	}
	return out
}
