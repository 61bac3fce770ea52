package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/planets"
	"solar-system/internal/textures"
)

// Planet is a sphere in the scene with a material slot the texture registry writes to.
type Planet struct {
	Body     planets.Body
	Position rl.Vector3
	// Angle is the current orbital angle in radians.
	Angle    float32
	material *textures.PhongMaterial
}

var _ textures.Mesh = (*Planet)(nil)

// NewPlanet returns an untextured planet for b at its orbit's zero angle.
func NewPlanet(b planets.Body) *Planet {
	p := &Planet{Body: b}
	p.SetAngle(0)
	return p
}

// SetAngle places the planet at angle on its orbit around the origin.
func (p *Planet) SetAngle(angle float32) {
	o := p.Body.Orbit.Offset(angle)
	p.Angle = angle
	p.Position = rl.NewVector3(o[0], o[1], o[2])
}

// SetMaterial replaces the planet's material.
func (p *Planet) SetMaterial(m *textures.PhongMaterial) {
	p.material = m
}

// Material returns the current material, or nil when none was applied.
func (p *Planet) Material() *textures.PhongMaterial {
	return p.material
}

// Moon is a satellite drawn around its parent planet. Moons never carry a material.
type Moon struct {
	Moon     planets.Moon
	Parent   *Planet
	Angle    float32
	Position rl.Vector3
}

// NewMoon returns m positioned at its orbit's zero angle around parent.
func NewMoon(m planets.Moon, parent *Planet) *Moon {
	mo := &Moon{Moon: m, Parent: parent}
	mo.SetAngle(0)
	return mo
}

// SetAngle places the moon at angle on its orbit around the parent's current position.
func (m *Moon) SetAngle(angle float32) {
	o := m.Moon.Orbit.Offset(angle)
	m.Angle = angle
	m.Position = rl.NewVector3(m.Parent.Position.X+o[0], m.Parent.Position.Y+o[1], m.Parent.Position.Z+o[2])
}

func toColor(c [4]uint8) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], c[3])
}
