package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"solar-system/internal/planets"
	"solar-system/internal/render"
	"solar-system/internal/textures"
)

const (
	gridExtent     = 40
	gridMinorStep  = 2
	gridMajorStep  = 10
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	sunRadius      = 2.5
	labelSize      = 18
	labelLift      = 0.6
)

var (
	defaultCameraPos    = rl.NewVector3(0, 30, 45)
	defaultCameraTarget = rl.NewVector3(0, 0, 0)
)

// Scene owns the camera, the planets with their moons, and the texture registry that dresses
// the planets. Update advances the orbits; Draw renders the 3D world and its labels.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	ShowLabels  bool
	// TimeScale multiplies orbital speed; 0 freezes the planets.
	TimeScale float32
	Planets   []*render.Planet
	Moons     []*render.Moon

	focus    *render.Planet
	loader   *render.TextureLoader
	renderer *render.Renderer
	font     *render.Font
	log      *zap.Logger
}

// New lays out every known planet and its moons and applies the registry's textures to each
// planet. Planets without a registered texture keep a nil material and draw in their fallback
// colour. font may be nil.
func New(reg *textures.Registry, loader *render.TextureLoader, font *render.Font, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	if font == nil {
		font = render.NewFont("")
	}
	s := &Scene{
		GridVisible: true,
		ShowLabels:  true,
		TimeScale:   1,
		loader:      loader,
		renderer:    render.NewRenderer(),
		font:        font,
		log:         log,
	}
	s.resetCamera()

	for _, name := range planets.All {
		b, ok := planets.BodyOf(name)
		if !ok {
			continue
		}
		p := render.NewPlanet(b)
		reg.ApplyTextureToPlanet(p, name)
		s.log.Debug("planet placed",
			zap.String("planet", string(name)),
			zap.Bool("textured", p.Material() != nil))
		s.Planets = append(s.Planets, p)
		for _, m := range planets.MoonsOf(name) {
			s.Moons = append(s.Moons, render.NewMoon(m, p))
		}
	}
	return s
}

func (s *Scene) resetCamera() {
	s.Camera.Position = defaultCameraPos
	s.Camera.Target = defaultCameraTarget
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
}

// Planet returns the scene's planet called name, or nil.
func (s *Scene) Planet(name planets.Name) *render.Planet {
	for _, p := range s.Planets {
		if p.Body.Name == name {
			return p
		}
	}
	return nil
}

// Focus points the camera at name and keeps following it as it orbits.
func (s *Scene) Focus(name planets.Name) error {
	p := s.Planet(name)
	if p == nil {
		return fmt.Errorf("focus %q: %w", name, planets.ErrUnknown)
	}
	s.focus = p
	r := p.Body.Radius
	s.Camera.Target = p.Position
	s.Camera.Position = rl.NewVector3(p.Position.X, p.Position.Y+3*r+2, p.Position.Z+6*r+4)
	s.log.Info("camera focus", zap.String("planet", string(name)))
	return nil
}

// ClearFocus returns the camera to its default view of the whole system.
func (s *Scene) ClearFocus() {
	s.focus = nil
	s.resetCamera()
}

// Focused returns the planet the camera follows, or "" for none.
func (s *Scene) Focused() planets.Name {
	if s.focus == nil {
		return ""
	}
	return s.focus.Body.Name
}

// Update runs once per frame: orbit camera controls, then orbital motion.
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
	s.Advance(rl.GetFrameTime())
}

// Advance moves every planet, then every moon, by dt seconds of scene time. A focused camera is
// carried along with its planet.
func (s *Scene) Advance(dt float32) {
	dt *= s.TimeScale
	for _, p := range s.Planets {
		p.SetAngle(p.Body.Orbit.Advance(p.Angle, dt))
	}
	for _, m := range s.Moons {
		m.SetAngle(m.Moon.Orbit.Advance(m.Angle, dt))
	}
	if s.focus != nil {
		delta := rl.Vector3Subtract(s.focus.Position, s.Camera.Target)
		s.Camera.Target = s.focus.Position
		s.Camera.Position = rl.Vector3Add(s.Camera.Position, delta)
	}
}

// Draw renders the scene. Pending textures are uploaded first, since this is the earliest
// point the OpenGL context is guaranteed to exist.
func (s *Scene) Draw() {
	s.loader.Flush()
	s.renderer.SetView([3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z})
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	origin := rl.NewVector3(0, 0, 0)
	for _, p := range s.Planets {
		drawOrbit(origin, p.Body.Orbit.Radius, 60)
	}
	for _, m := range s.Moons {
		drawOrbit(m.Parent.Position, m.Moon.Orbit.Radius, 30)
	}
	rl.DrawSphere(origin, sunRadius, rl.Gold)
	for _, p := range s.Planets {
		s.renderer.Draw(p)
	}
	for _, m := range s.Moons {
		s.renderer.DrawMoon(m)
	}
	rl.EndMode3D()

	if s.ShowLabels {
		s.drawLabels()
	}
}

// drawLabels writes each planet's name just above it on screen. Planets behind the camera are
// skipped.
func (s *Scene) drawLabels() {
	font := s.font.Get()
	forward := rl.Vector3Subtract(s.Camera.Target, s.Camera.Position)
	for _, p := range s.Planets {
		anchor := rl.NewVector3(p.Position.X, p.Position.Y+p.Body.Radius+labelLift, p.Position.Z)
		if rl.Vector3DotProduct(rl.Vector3Subtract(anchor, s.Camera.Position), forward) <= 0 {
			continue
		}
		text := p.Body.Name.Label()
		pos := rl.GetWorldToScreen(anchor, s.Camera)
		w := rl.MeasureTextEx(font, text, labelSize, 1).X
		pos.X -= w / 2
		pos.Y -= labelSize
		rl.DrawTextEx(font, text, pos, labelSize, 1, rl.RayWhite)
	}
}

// Close releases GPU resources. Call before the window closes.
func (s *Scene) Close() {
	s.renderer.Close()
	s.loader.Close()
	s.font.Close()
}

func drawOrbit(center rl.Vector3, radius float32, alpha uint8) {
	rl.DrawCircle3D(center, radius, rl.NewVector3(1, 0, 0), 90, rl.NewColor(200, 200, 200, alpha))
}

// drawGrid draws the reference grid on the XZ plane with minor and major lines.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}
