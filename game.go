package main

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"spatialmix/math/vec"
	"spatialmix/snd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// camera is the demo's listener: the player position and velocity, written by
// the game tick and read by the mixing thread.
type camera struct {
	mu  sync.Mutex
	pos vec.Vec3
	vel vec.Vec3
}

func (c *camera) Position() vec.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

func (c *camera) Velocity() vec.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vel
}

func (c *camera) set(pos, vel vec.Vec3) {
	c.mu.Lock()
	c.pos = pos
	c.vel = vel
	c.mu.Unlock()
}

// orbiter circles the map center; it is registered as a mover so the beacon
// source tracks it.
type orbiter struct {
	mu    sync.Mutex
	angle float64
}

func orbitState(angle float64) (vec.Vec3, vec.Vec3) {
	sin, cos := math.Sincos(angle)
	pos := vec.Vec3{
		X: float32(w/2 + orbitRadius*cos),
		Y: float32(h/2 + orbitRadius*sin),
	}
	vel := vec.Vec3{
		X: float32(-orbitRadius * orbitRate * sin),
		Y: float32(orbitRadius * orbitRate * cos),
	}
	return pos, vel
}

func (o *orbiter) Position() vec.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	pos, _ := orbitState(o.angle)
	return pos
}

func (o *orbiter) Velocity() vec.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, vel := orbitState(o.angle)
	return vel
}

func (o *orbiter) advance(dt float64) {
	o.mu.Lock()
	o.angle += orbitRate * dt
	o.mu.Unlock()
}

// Game runs the simulation tick: listener movement, source kinematics, and
// spawning. The mixing engine runs on its own thread.
type Game struct {
	engine *snd.Engine
	group  *snd.Group
	cam    *camera
	beacon *orbiter

	ex, ey float64

	pingSamples []int16
	pings       []*snd.Source

	listenerForwardX float64
	listenerForwardY float64

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkDirX       float64
	autoWalkDirY       float64
	autoWalkFrameCount int
}

// newGame wires the scene: a camera-backed listener group, an orbiting
// looping beacon tracked through the mover registry, and the ping samples.
func newGame(engine *snd.Engine, beaconSamples, pingSamples []int16) (*Game, error) {
	g := &Game{
		engine:           engine,
		cam:              &camera{},
		beacon:           &orbiter{},
		ex:               float64(w / 2),
		ey:               float64(h / 2),
		pingSamples:      pingSamples,
		listenerForwardX: 0,
		listenerForwardY: -1,
	}
	g.cam.set(vec.Vec3{X: float32(g.ex), Y: float32(g.ey)}, vec.Vec3{})
	g.group = snd.NewGroup(g.cam)

	reg := snd.NewMoverRegistry()
	id := reg.Add(g.beacon)
	beacon, err := snd.NewTrackedSource(beaconSamples, reg, id, true)
	if err != nil {
		return nil, err
	}
	engine.AddSource(beacon, g.group)

	if *autoWalkFlag {
		g.enableAutoWalk(time.Hour)
	}
	return g, nil
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	const dt = 1.0 / defaultTPS

	dx, dy := g.movementVector()
	g.ex = math.Max(listenerRad, math.Min(float64(w-listenerRad-1), g.ex+dx))
	g.ey = math.Max(listenerRad, math.Min(float64(h-listenerRad-1), g.ey+dy))
	if dx != 0 || dy != 0 {
		length := math.Hypot(dx, dy)
		g.listenerForwardX = dx / length
		g.listenerForwardY = dy / length
	}
	g.cam.set(
		vec.Vec3{X: float32(g.ex), Y: float32(g.ey)},
		vec.Vec3{X: float32(dx * defaultTPS), Y: float32(dy * defaultTPS)},
	)

	g.beacon.advance(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnPing()
	}
	g.stepPings(dt)

	return nil
}

// spawnPing launches a one-shot source from the left edge flying past the
// listener, exercising independent kinematics and Doppler shift.
func (g *Game) spawnPing() {
	src, err := snd.NewMovingSource(
		g.pingSamples,
		vec.Vec3{X: 0, Y: float32(g.ey)},
		vec.Vec3{X: pingSpeed},
		false,
	)
	if err != nil {
		return
	}
	g.engine.AddSource(src, g.group)
	g.pings = append(g.pings, src)
}

// stepPings advances independent sources and forgets exhausted ones. The
// engine removes them from the group on its own.
func (g *Game) stepPings(dt float32) {
	alive := g.pings[:0]
	for _, src := range g.pings {
		if src.Cursor() >= 1 {
			continue
		}
		src.Step(dt)
		alive = append(alive, src)
	}
	g.pings = alive
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return w, h }
