package snd

import (
	"sync"
	"sync/atomic"

	"spatialmix/math/vec"
)

// Listener is the camera of a group: a position and velocity read once per
// mix pass. Implementations are owned by the graphics/camera subsystem.
type Listener interface {
	Position() vec.Vec3
	Velocity() vec.Vec3
}

// Group associates one listener with the set of sources it can hear.
// Membership uses copy-on-write snapshots: a mix pass iterates the membership
// as it was when the pass started, and add/remove during the pass only affect
// subsequent passes.
type Group struct {
	listener Listener

	mu      sync.Mutex
	sources atomic.Pointer[[]*Source]
}

func NewGroup(l Listener) *Group {
	g := &Group{listener: l}
	empty := []*Source{}
	g.sources.Store(&empty)
	return g
}

// Listener returns the group's camera.
func (g *Group) Listener() Listener {
	return g.listener
}

// snapshot returns the current membership. The returned slice is never
// mutated afterwards.
func (g *Group) snapshot() []*Source {
	return *g.sources.Load()
}

func (g *Group) add(s *Source) {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := *g.sources.Load()
	for _, cur := range old {
		if cur == s {
			return
		}
	}
	next := make([]*Source, len(old)+1)
	copy(next, old)
	next[len(old)] = s
	g.sources.Store(&next)
}

func (g *Group) remove(s *Source) {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := *g.sources.Load()
	next := make([]*Source, 0, len(old))
	for _, cur := range old {
		if cur != s {
			next = append(next, cur)
		}
	}
	if len(next) == len(old) {
		return
	}
	g.sources.Store(&next)
}

// Len returns the current number of sources in the group.
func (g *Group) Len() int {
	return len(g.snapshot())
}
