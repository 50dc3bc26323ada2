package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the listener, the orbiting beacon, in-flight pings, and the
// optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	drawFootprint(screen, int(g.ex), int(g.ey), listenerFootprint, color.RGBA{255, 0, 0, 255})
	g.drawHeading(screen, int(g.ex), int(g.ey))

	bp := g.beacon.Position()
	drawFootprint(screen, int(bp.X), int(bp.Y), sourceFootprint, color.RGBA{255, 220, 0, 255})

	for _, src := range g.pings {
		pp := src.Position()
		drawFootprint(screen, int(pp.X), int(pp.Y), sourceFootprint, color.RGBA{0, 200, 255, 255})
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSources: %d\nPings: %d",
			fps, tps, g.group.Len(), len(g.pings))
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

func drawFootprint(screen *ebiten.Image, cx, cy int, footprint []gridOffset, clr color.Color) {
	for _, off := range footprint {
		x := cx + off.dx
		y := cy + off.dy
		if x >= 0 && x < w && y >= 0 && y < h {
			screen.Set(x, y, clr)
		}
	}
}

// drawHeading renders the listener's facing direction.
func (g *Game) drawHeading(screen *ebiten.Image, cx, cy int) {
	tipX := cx + int(math.Round(g.listenerForwardX*float64(listenerRad*3)))
	tipY := cy + int(math.Round(g.listenerForwardY*float64(listenerRad*3)))
	drawLine(screen, cx, cy, tipX, tipY, color.RGBA{0, 255, 200, 200})
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
