// Package snd renders moving mono sound sources into a single stereo output
// stream, applying Doppler shift and stereo panning derived from
// listener/source geometry at a fixed sample rate and buffer cadence.
package snd

import (
	"log"
	"sync"
	"time"
)

// Engine owns the registered listener groups and the mixing thread. Construct
// exactly one per process and inject it wherever sound registration is
// needed.
type Engine struct {
	cfg  Config
	sink Sink

	mu     sync.Mutex
	groups []*Group

	// mixing thread scratch, touched only by run()
	left  []int32
	right []int32
	out   []byte

	stop chan struct{}
	done chan struct{}
}

// NewEngine creates an engine writing to sink. A nil sink is allowed: mixing
// runs silenced, which is the degraded mode when no output device could be
// opened.
func NewEngine(cfg Config, sink Sink) *Engine {
	if cfg.SampleRate <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:   cfg,
		sink:  sink,
		left:  make([]int32, cfg.FrameBufferSize),
		right: make([]int32, cfg.FrameBufferSize),
		out:   make([]byte, cfg.FrameBufferSize*audioFrameBytes),
	}
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// AddSource routes src through group. The group is registered on first use,
// never duplicated. The source becomes audible starting from the next mix
// pass.
func (e *Engine) AddSource(src *Source, group *Group) {
	e.mu.Lock()
	found := false
	for _, g := range e.groups {
		if g == group {
			found = true
			break
		}
	}
	if !found {
		next := make([]*Group, len(e.groups)+1)
		copy(next, e.groups)
		next[len(e.groups)] = group
		e.groups = next
	}
	e.mu.Unlock()
	group.add(src)
}

// RemoveSource removes src from every registered group. Used when the owning
// event ends, regardless of which groups still reference the source.
func (e *Engine) RemoveSource(src *Source) {
	for _, g := range e.groupSnapshot() {
		g.remove(src)
	}
}

// RemoveSourceFrom removes src from one specific group only.
func (e *Engine) RemoveSourceFrom(src *Source, group *Group) {
	group.remove(src)
}

func (e *Engine) groupSnapshot() []*Group {
	e.mu.Lock()
	g := e.groups
	e.mu.Unlock()
	return g
}

// Start launches the mixing thread. If the engine has no sink it logs once
// and mixes into the void.
func (e *Engine) Start() {
	if e.stop != nil {
		return
	}
	if e.sink == nil {
		log.Printf("snd: no output device, mixing silenced")
	} else {
		e.sink.Start()
	}
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	go e.run()
}

// Stop requests shutdown and waits for the mixing thread to exit. The request
// is observed at a pass boundary; no in-flight pass is aborted mid-buffer.
// The sink is stopped and closed before Stop returns.
func (e *Engine) Stop() {
	if e.stop == nil {
		return
	}
	close(e.stop)
	<-e.done
	e.stop = nil
}

// run is the mix/output loop. It tracks nanosecond timestamps and accumulates
// elapsed time into delta; a pass happens exactly when delta reaches the
// frame period, and period is subtracted rather than delta being reset, so
// the long-run cadence survives scheduling jitter. Leftover slack is slept
// off at 75% to avoid busy-polling without sleeping through a deadline.
func (e *Engine) run() {
	defer close(e.done)
	period := int64(time.Second) * int64(e.cfg.FrameBufferSize) / int64(e.cfg.SampleRate)
	last := time.Now().UnixNano()
	var delta int64
	for {
		select {
		case <-e.stop:
			if e.sink != nil {
				e.sink.Stop()
				if err := e.sink.Close(); err != nil {
					log.Printf("snd: closing output device: %v", err)
				}
			}
			return
		default:
		}
		now := time.Now().UnixNano()
		delta += now - last
		last = now
		if delta >= period {
			delta -= period
			e.mixPass()
			e.writeOut()
		} else {
			slack := period - delta
			time.Sleep(time.Duration(slack * 3 / 4))
		}
	}
}

// writeOut sends the converted frame buffer to the sink and restarts the line
// if it went inactive (underrun recovery without tearing down the device).
func (e *Engine) writeOut() {
	if e.sink == nil {
		return
	}
	if _, err := e.sink.Write(e.out); err != nil {
		log.Printf("snd: writing to output device: %v", err)
	}
	if !e.sink.Active() {
		e.sink.Start()
	}
}
