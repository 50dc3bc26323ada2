package snd

import (
	"io"
	"testing"
)

func TestPCMStreamReadsPushedBytes(t *testing.T) {
	s := newPCMStream(defaultSampleRate)
	s.push([]byte{1, 2, 3, 4})

	p := make([]byte, 4)
	n, err := s.Read(p)
	if err != nil || n != 4 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if p[0] != 1 || p[3] != 4 {
		t.Errorf("read bytes % x", p)
	}
}

func TestPCMStreamPadsSilence(t *testing.T) {
	s := newPCMStream(defaultSampleRate)
	s.push([]byte{7, 7})

	p := make([]byte, 8)
	n, err := s.Read(p)
	if err != nil || n != 8 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if p[0] != 7 || p[1] != 7 {
		t.Errorf("queued bytes lost: % x", p[:2])
	}
	for i := 2; i < 8; i++ {
		if p[i] != 0 {
			t.Errorf("byte %d not silence: %d", i, p[i])
		}
	}
}

func TestPCMStreamDropsOldestBeyondLatencyCap(t *testing.T) {
	s := newPCMStream(defaultSampleRate)
	chunk := make([]byte, s.maxBytes)
	for i := range chunk {
		chunk[i] = 1
	}
	s.push(chunk)
	s.push([]byte{9, 9, 9, 9})

	if len(s.buf) != s.maxBytes {
		t.Fatalf("buffered %d bytes, cap %d", len(s.buf), s.maxBytes)
	}
	if tail := s.buf[len(s.buf)-4:]; tail[0] != 9 {
		t.Errorf("newest bytes dropped instead of oldest: % x", tail)
	}
}

func TestPCMStreamCloseReportsEOF(t *testing.T) {
	s := newPCMStream(defaultSampleRate)
	s.push([]byte{1, 2})
	s.close()

	p := make([]byte, 4)
	if _, err := s.Read(p); err != io.EOF {
		t.Errorf("Read after close err = %v want io.EOF", err)
	}
	s.push([]byte{3}) // ignored after close
	if _, err := s.Read(p); err != io.EOF {
		t.Errorf("push after close revived the stream")
	}
}
