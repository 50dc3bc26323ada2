package snd

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"spatialmix/math/vec"

	"github.com/google/uuid"
)

var ErrNoSamples = errors.New("snd: source needs a non-empty sample buffer")

// Mover is the contract of an external moving object a source can be bound
// to. Implementations are owned by the simulation, not by the sound system.
type Mover interface {
	Position() vec.Vec3
	Velocity() vec.Vec3
}

// MoverRegistry resolves mover handles. It is owned by the caller; sources
// hold only the id, never the mover itself.
type MoverRegistry struct {
	mu     sync.RWMutex
	movers map[uuid.UUID]Mover
}

func NewMoverRegistry() *MoverRegistry {
	return &MoverRegistry{movers: make(map[uuid.UUID]Mover)}
}

// Add registers a mover and returns its handle.
func (r *MoverRegistry) Add(m Mover) uuid.UUID {
	id := uuid.Must(uuid.NewV7())
	r.mu.Lock()
	r.movers[id] = m
	r.mu.Unlock()
	return id
}

// Remove drops a mover. Sources bound to the handle fall back to their
// last-known kinematics.
func (r *MoverRegistry) Remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.movers, id)
	r.mu.Unlock()
}

func (r *MoverRegistry) lookup(id uuid.UUID) (Mover, bool) {
	r.mu.RLock()
	m, ok := r.movers[id]
	r.mu.RUnlock()
	return m, ok
}

// motion is an immutable position/velocity pair. Source kinematics are
// swapped atomically so the simulation thread can write while the mixing
// thread reads without tearing.
type motion struct {
	pos vec.Vec3
	vel vec.Vec3
}

// Source is a mono sound positioned in the world. The sample buffer is fixed
// at construction and shared read-only across threads. The playback cursor is
// owned by the mixing thread during a mix pass.
type Source struct {
	samples []int16
	loop    bool

	kin atomic.Pointer[motion]

	// set for tracked sources only
	reg     *MoverRegistry
	moverID uuid.UUID

	cursor float64
}

// NewSource creates a stationary source at the origin.
func NewSource(samples []int16, loop bool) (*Source, error) {
	return NewMovingSource(samples, vec.Vec3{}, vec.Vec3{}, loop)
}

// NewMovingSource creates a source with independent kinematics, advanced by
// Step.
func NewMovingSource(samples []int16, pos, vel vec.Vec3, loop bool) (*Source, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	s := &Source{
		samples: append([]int16(nil), samples...),
		loop:    loop,
	}
	s.kin.Store(&motion{pos: pos, vel: vel})
	return s, nil
}

// NewTrackedSource creates a source slaved to an external mover. Position and
// velocity are resolved through the registry on every read; if the mover has
// been removed, the last resolved values remain in effect.
func NewTrackedSource(samples []int16, reg *MoverRegistry, id uuid.UUID, loop bool) (*Source, error) {
	s, err := NewSource(samples, loop)
	if err != nil {
		return nil, err
	}
	s.reg = reg
	s.moverID = id
	s.resolve()
	return s, nil
}

// resolve refreshes the kinematic snapshot from the bound mover, if any.
// Returns the snapshot in effect afterwards.
func (s *Source) resolve() *motion {
	if s.reg != nil {
		if m, ok := s.reg.lookup(s.moverID); ok {
			k := &motion{pos: m.Position(), vel: m.Velocity()}
			s.kin.Store(k)
			return k
		}
	}
	return s.kin.Load()
}

// Position returns the source position, following the bound mover when set.
func (s *Source) Position() vec.Vec3 {
	return s.resolve().pos
}

// Velocity returns the source velocity, following the bound mover when set.
func (s *Source) Velocity() vec.Vec3 {
	return s.resolve().vel
}

// Step advances an independently moving source by velocity*dt. It is a no-op
// for tracked sources, whose mover's own simulation step is authoritative.
// Step may be called from a thread other than the mixing thread; the mixing
// thread observes either the old or the new snapshot, never a torn one.
func (s *Source) Step(dt float32) {
	if s.reg != nil {
		return
	}
	k := s.kin.Load()
	s.kin.Store(&motion{
		pos: vec.Add(k.pos, k.vel.Scale(dt)),
		vel: k.vel,
	})
}

// SetVelocity replaces the velocity of an independently moving source. It is
// a no-op for tracked sources.
func (s *Source) SetVelocity(vel vec.Vec3) {
	if s.reg != nil {
		return
	}
	k := s.kin.Load()
	s.kin.Store(&motion{pos: k.pos, vel: vel})
}

// SetCursor sets the normalized playback cursor. Looping sources wrap by
// stripping the integer part; non-looping sources keep values >= 1 so callers
// can detect exhaustion.
func (s *Source) SetCursor(p float64) {
	if s.loop && p >= 1 {
		p -= math.Trunc(p)
	}
	s.cursor = p
}

// Cursor returns the normalized playback cursor.
func (s *Source) Cursor() float64 {
	return s.cursor
}

// Len returns the sample count.
func (s *Source) Len() int {
	return len(s.samples)
}

// Looping reports whether the source wraps at the buffer end.
func (s *Source) Looping() bool {
	return s.loop
}
