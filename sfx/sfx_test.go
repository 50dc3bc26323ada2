package sfx

import (
	"bytes"
	"io"
	"math"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// memWriteSeeker backs the wav encoder so test fixtures stay in memory.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if m.pos+len(p) > len(m.buf) {
		grown := make([]byte, m.pos+len(p))
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:], p)
	m.pos += len(p)
	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.pos = int(offset)
	case io.SeekCurrent:
		m.pos += int(offset)
	case io.SeekEnd:
		m.pos = len(m.buf) + int(offset)
	}
	return int64(m.pos), nil
}

// buildWAV encodes a 16-bit PCM wave file in memory.
func buildWAV(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()
	var ws memWriteSeeker
	enc := wav.NewEncoder(&ws, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return ws.buf
}

func TestLoadWAVMonoPassthrough(t *testing.T) {
	want := []int16{0, 1000, -1000, 32000, -32000, 0}
	data := buildWAV(t, 48000, 1, want)

	got, err := LoadWAV(bytes.NewReader(data), 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d want %d", len(got), len(want))
	}
	for i := range want {
		if d := int(got[i]) - int(want[i]); d < -2 || d > 2 {
			t.Errorf("sample %d = %d want %d", i, got[i], want[i])
		}
	}
}

func TestLoadWAVAveragesChannels(t *testing.T) {
	// L=2000, R=4000 in every frame: mono result near 3000.
	data := buildWAV(t, 48000, 2, []int16{2000, 4000, 2000, 4000, 2000, 4000})

	got, err := LoadWAV(bytes.NewReader(data), 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d want 3", len(got))
	}
	for i, v := range got {
		if d := int(v) - 3000; d < -2 || d > 2 {
			t.Errorf("frame %d = %d want ~3000", i, v)
		}
	}
}

func TestLoadWAVResamples(t *testing.T) {
	src := make([]int16, 240)
	data := buildWAV(t, 24000, 1, src)

	got, err := LoadWAV(bytes.NewReader(data), 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 480 {
		t.Errorf("len after 24k->48k resample = %d want 480", len(got))
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	if _, err := LoadWAV(bytes.NewReader([]byte("not a riff file at all")), 48000); err == nil {
		t.Errorf("garbage input decoded without error")
	}
}

func TestLoadMP3RejectsGarbage(t *testing.T) {
	if _, err := LoadMP3(bytes.NewReader(make([]byte, 64)), 48000); err == nil {
		t.Errorf("garbage input decoded without error")
	}
}

func TestLoadVorbisRejectsGarbage(t *testing.T) {
	if _, err := LoadVorbis(bytes.NewReader([]byte("OggS but not really")), 48000); err == nil {
		t.Errorf("garbage input decoded without error")
	}
}

func TestSine(t *testing.T) {
	const rate = 48000
	tone := Sine(rate, 440, 100*time.Millisecond, 0.5)
	if len(tone) != rate/10 {
		t.Fatalf("len = %d want %d", len(tone), rate/10)
	}
	var peak int16
	for _, v := range tone {
		if v > peak {
			peak = v
		}
	}
	if peak > 16384 || peak < 16000 {
		t.Errorf("peak = %d want about 16383", peak)
	}
	// One full period at 440Hz spans ~109 samples; the quarter-period sample
	// sits near the peak.
	quarter := int(math.Round(float64(rate) / 440 / 4))
	if tone[quarter] < 16000 {
		t.Errorf("sample at quarter period = %d want near peak", tone[quarter])
	}
}

func TestResampleEdgeCases(t *testing.T) {
	if got := resample(nil, 24000, 48000); len(got) != 0 {
		t.Errorf("resampling nothing produced %d samples", len(got))
	}
	in := []float32{0, 1}
	got := resample(in, 48000, 48000)
	if &got[0] != &in[0] {
		t.Errorf("same-rate resample should pass through")
	}
}
