package snd

import (
	"math"

	"spatialmix/math/vec"

	"github.com/chewxy/math32"
)

const sqrt2Half = math.Sqrt2 / 2

// mixPass renders one frame buffer: it zeroes the stereo accumulators, folds
// in every source of every registered group, and converts the result to the
// wire format.
func (e *Engine) mixPass() {
	for i := range e.left {
		e.left[i] = 0
		e.right[i] = 0
	}
	for _, g := range e.groupSnapshot() {
		l := g.Listener()
		lisPos := l.Position()
		lisVel := l.Velocity()
		for _, src := range g.snapshot() {
			e.mixSource(g, src, lisPos, lisVel)
		}
	}
	e.convert()
}

// mixSource resamples one source into the accumulators. A non-looping source
// that runs out mid-pass is removed from the group; the partial frames
// already written stand.
func (e *Engine) mixSource(g *Group, src *Source, lisPos, lisVel vec.Vec3) {
	srcToListener := vec.Sub(lisPos, src.Position())
	ratio := e.dopplerRatio(srcToListener, src.Velocity(), lisVel)
	step := ratio / float64(src.Len())
	panLeft, panRight := e.panFactors(srcToListener)

	samples := src.samples
	n := len(samples)
	cursor := src.cursor
	for f := 0; f < e.cfg.FrameBufferSize; f++ {
		cursor += step
		if cursor >= 1 {
			if !src.loop {
				src.cursor = cursor
				g.remove(src)
				return
			}
			cursor -= math.Trunc(cursor)
		}
		idx := cursor * float64(n)
		i0 := int(idx)
		i1 := i0 + 1
		if i1 >= n {
			i1 = 0
		}
		frac := idx - float64(i0)
		a := float64(samples[i0])
		amp := a + (float64(samples[i1])-a)*frac
		e.left[f] += int32(amp * panLeft)
		e.right[f] += int32(amp * panRight)
	}
	src.cursor = cursor
}

// dopplerRatio returns the pitch-rate multiplier for a source at
// srcToListener moving at srcVel relative to a listener moving at lisVel.
// Values above 1 raise the perceived pitch, below 1 lower it. At zero
// distance the radial speeds are undefined and fall back to 0, playing the
// source at its natural rate.
func (e *Engine) dopplerRatio(srcToListener, srcVel, lisVel vec.Vec3) float64 {
	c := e.cfg.SpeedOfSound
	k := e.cfg.DopplerFactor
	dist := srcToListener.Length()
	var srcRadial, lisRadial float32
	if dist > 0 {
		srcRadial = vec.Dot(srcToListener, srcVel) / dist
		lisRadial = vec.Dot(srcToListener, lisVel) / dist
		if lisRadial > c {
			lisRadial = c
		}
		// Keep the denominator positive; a source approaching near or
		// above the propagation speed saturates instead of flipping
		// the ratio's sign.
		if limit := c * maxSourceRadialFraction / k; srcRadial > limit {
			srcRadial = limit
		}
	}
	return float64(c-k*lisRadial) / float64(c-k*srcRadial)
}

// panFactors derives the per-channel gains from the horizontal bearing of
// srcToListener. The listener-height offset keeps the angle defined for
// sources directly above or below. The law preserves power:
// left² + right² == 1 for every bearing.
func (e *Engine) panFactors(srcToListener vec.Vec3) (left, right float64) {
	dx := srcToListener.X
	dy := srcToListener.Y
	h := e.cfg.ListenerHeight
	den := math32.Sqrt(dx*dx + dy*dy + h*h)
	var angle float64
	if den > 0 {
		angle = math.Asin(float64(-dx/den)) / 2
	}
	sin, cos := math.Sincos(angle)
	return sqrt2Half * (cos - sin), sqrt2Half * (cos + sin)
}

// convert narrows the wide accumulators to interleaved 16-bit little-endian
// stereo frames.
func (e *Engine) convert() {
	for f := range e.left {
		l := clampPCM16(e.left[f])
		r := clampPCM16(e.right[f])
		base := f * audioFrameBytes
		e.out[base] = byte(l)
		e.out[base+1] = byte(l >> 8)
		e.out[base+2] = byte(r)
		e.out[base+3] = byte(r >> 8)
	}
}

func clampPCM16(v int32) int16 {
	if v > pcm16MaxValue {
		return pcm16MaxValue
	}
	if v < pcm16MinValue {
		return pcm16MinValue
	}
	return int16(v)
}
