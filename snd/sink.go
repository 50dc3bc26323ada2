package snd

import (
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Sink is an opened audio output line accepting interleaved 16-bit
// little-endian stereo frames. Only the mixing thread writes to it.
type Sink interface {
	// Start begins (or resumes) playback.
	Start()
	// Write queues one mix pass worth of frames.
	Write(p []byte) (int, error)
	// Active reports whether the line is currently playing. The mix loop
	// restarts an inactive line to recover from underruns.
	Active() bool
	// Stop pauses playback without releasing the device.
	Stop()
	// Close releases the device.
	Close() error
}

const (
	// sinkLatencyCap bounds how much queued audio the stream holds before
	// the oldest frames are dropped.
	sinkLatencyCap = 200 * time.Millisecond
)

// pcmStream adapts the engine's pushed buffers to the pull-side Read the
// device runs. When the queue is empty it pads silence so the device stays
// fed; after Close it reports EOF.
type pcmStream struct {
	mu       sync.Mutex
	buf      []byte
	maxBytes int
	closed   bool
}

func newPCMStream(sampleRate int) *pcmStream {
	maxBytes := int(float64(sampleRate)*sinkLatencyCap.Seconds()) * audioFrameBytes
	return &pcmStream{maxBytes: maxBytes}
}

func (s *pcmStream) push(p []byte) {
	if len(p) == 0 {
		return
	}
	s.mu.Lock()
	if !s.closed {
		s.buf = append(s.buf, p...)
		if len(s.buf) > s.maxBytes {
			s.buf = s.buf[len(s.buf)-s.maxBytes:] // keep most recent window
		}
	}
	s.mu.Unlock()
}

func (s *pcmStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed && len(s.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.buf)
	if n > 0 {
		s.buf = s.buf[n:]
	}
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (s *pcmStream) close() {
	s.mu.Lock()
	s.closed = true
	s.buf = nil
	s.mu.Unlock()
}

// OtoSink drives the hardware output device through oto.
type OtoSink struct {
	mu     sync.Mutex
	player *oto.Player
	stream *pcmStream
}

// NewOtoSink opens the default output device at the given sample rate.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audioChannels,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	stream := newPCMStream(sampleRate)
	return &OtoSink{
		player: ctx.NewPlayer(stream),
		stream: stream,
	}, nil
}

func (o *OtoSink) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil && !o.player.IsPlaying() {
		o.player.Play()
	}
}

func (o *OtoSink) Write(p []byte) (int, error) {
	o.stream.push(p)
	return len(p), nil
}

func (o *OtoSink) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.player != nil && o.player.IsPlaying()
}

func (o *OtoSink) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil && o.player.IsPlaying() {
		o.player.Pause()
	}
}

func (o *OtoSink) Close() error {
	o.stream.close()
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}
