package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/render"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap in use) in the top-right corner. All overlays are
// off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         *render.Font
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns a Debug overlay drawn with font; a nil font means raylib's default.
func New(font *render.Font) *Debug {
	if font == nil {
		font = render.NewFont("")
	}
	return &Debug{font: font}
}

// Draw renders any enabled overlays. Call after the 3D scene, outside BeginMode3D.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") {
		update = true
	}

	y := float32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.drawRight(d.memText, y)
	}
}

func (d *Debug) drawRight(text string, y float32) {
	if text == "" {
		return
	}
	font := d.font.Get()
	w := rl.MeasureTextEx(font, text, fontSize, 1).X
	pos := rl.NewVector2(float32(rl.GetScreenWidth())-w-padding, y)
	rl.DrawTextEx(font, text, pos, fontSize, 1, rl.Green)
}
