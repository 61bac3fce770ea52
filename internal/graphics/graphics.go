package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window opened by Run.
type Options struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// Run opens the window and runs the main loop. Each frame it calls update, then clears the
// screen and calls draw. Fullscreen uses the monitor size and ignores Width/Height.
// onClose runs before the window is closed, while the GL context still exists; it may be nil.
func Run(opts Options, update, draw, onClose func()) {
	width, height := opts.Width, opts.Height
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		// Monitor size is only known once raylib is initialized; 0x0 lets it pick the monitor size.
		width, height = 0, 0
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	}
	rl.InitWindow(width, height, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(opts.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if onClose != nil {
		onClose()
	}
}
