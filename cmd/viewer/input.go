package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/config"
	"solar-system/internal/debug"
	"solar-system/internal/planets"
	"solar-system/internal/scene"
)

// focusKeys maps 1..8 to the planets in orbital order; 0 clears the focus.
var focusKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix, rl.KeySeven, rl.KeyEight}

// controls applies keyboard toggles to the scene and debug overlay:
// 0-8 focus, G grid, L labels, F fps, M memory, +/- time scale, space pause.
type controls struct {
	scn    *scene.Scene
	dbg    *debug.Debug
	paused float32
}

func (c *controls) update() {
	for i, key := range focusKeys {
		if rl.IsKeyPressed(key) && i < len(planets.All) {
			_ = c.scn.Focus(planets.All[i])
		}
	}
	if rl.IsKeyPressed(rl.KeyZero) {
		c.scn.ClearFocus()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		c.scn.GridVisible = !c.scn.GridVisible
	}
	if rl.IsKeyPressed(rl.KeyL) {
		c.scn.ShowLabels = !c.scn.ShowLabels
	}
	if rl.IsKeyPressed(rl.KeyF) {
		c.dbg.ShowFPS = !c.dbg.ShowFPS
	}
	if rl.IsKeyPressed(rl.KeyM) {
		c.dbg.ShowMemAlloc = !c.dbg.ShowMemAlloc
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		c.scn.TimeScale = config.StepTimeScale(c.scn.TimeScale, 2)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		c.scn.TimeScale = config.StepTimeScale(c.scn.TimeScale, 0.5)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		c.scn.TimeScale, c.paused = c.paused, c.scn.TimeScale
		if c.scn.TimeScale == 0 && c.paused == 0 {
			c.scn.TimeScale = 1
		}
	}
	c.scn.Update()
}
