package planets

import "github.com/chewxy/math32"

// Orbit is a circular orbit in the XZ plane around some centre.
type Orbit struct {
	Radius float32
	// Period is seconds per revolution at 1x time scale. Zero means stationary.
	Period float32
}

// Advance returns angle moved forward by dt seconds, wrapped to [0, 2π).
func (o Orbit) Advance(angle, dt float32) float32 {
	if o.Period <= 0 {
		return angle
	}
	a := math32.Mod(angle+dt*2*math32.Pi/o.Period, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// Offset returns the position at angle relative to the orbit's centre.
func (o Orbit) Offset(angle float32) [3]float32 {
	return [3]float32{o.Radius * math32.Cos(angle), 0, o.Radius * math32.Sin(angle)}
}

// Body holds the layout parameters the viewer uses for one planet. Distances are scene units,
// not astronomical ones; they are compressed so all eight planets fit the default camera.
// Periods keep the real ratios, scaled so an Earth year takes 100 seconds.
type Body struct {
	Name   Name
	Radius float32
	Orbit  Orbit
	// Color is the RGBA albedo used while no texture is applied.
	Color [4]uint8
}

var bodies = map[Name]Body{
	Mercury: {Name: Mercury, Radius: 0.38, Orbit: Orbit{Radius: 4, Period: 24}, Color: [4]uint8{168, 98, 53, 255}},
	Venus:   {Name: Venus, Radius: 0.95, Orbit: Orbit{Radius: 6, Period: 61}, Color: [4]uint8{220, 190, 140, 255}},
	Earth:   {Name: Earth, Radius: 1, Orbit: Orbit{Radius: 8.5, Period: 100}, Color: [4]uint8{70, 110, 200, 255}},
	Mars:    {Name: Mars, Radius: 0.53, Orbit: Orbit{Radius: 11, Period: 188}, Color: [4]uint8{190, 90, 60, 255}},
	Jupiter: {Name: Jupiter, Radius: 2.8, Orbit: Orbit{Radius: 16, Period: 1187}, Color: [4]uint8{233, 166, 104, 255}},
	Saturn:  {Name: Saturn, Radius: 2.3, Orbit: Orbit{Radius: 22, Period: 2948}, Color: [4]uint8{233, 214, 141, 255}},
	Uranus:  {Name: Uranus, Radius: 1.6, Orbit: Orbit{Radius: 27, Period: 8407}, Color: [4]uint8{150, 214, 204, 255}},
	Neptune: {Name: Neptune, Radius: 1.55, Orbit: Orbit{Radius: 32, Period: 16490}, Color: [4]uint8{62, 84, 232, 255}},
}

// BodyOf returns the layout for n. ok is false for unknown names.
func BodyOf(n Name) (b Body, ok bool) {
	b, ok = bodies[n]
	return b, ok
}

// Moon is a satellite orbiting a planet. Moons have no textures; they always draw in Color.
type Moon struct {
	Name   string
	Parent Name
	Radius float32
	// Orbit is relative to the parent's centre.
	Orbit Orbit
	Color [4]uint8
}

// Moons lists the satellites the viewer shows. Their periods run faster than the planets' so
// the motion is visible: one day is 10/3 seconds.
var Moons = []Moon{
	{Name: "Moon", Parent: Earth, Radius: 0.27, Orbit: Orbit{Radius: 1.8, Period: 90}, Color: [4]uint8{200, 200, 200, 255}},
	{Name: "Io", Parent: Jupiter, Radius: 0.29, Orbit: Orbit{Radius: 3.5, Period: 6}, Color: [4]uint8{230, 210, 90, 255}},
	{Name: "Europa", Parent: Jupiter, Radius: 0.25, Orbit: Orbit{Radius: 4.2, Period: 12}, Color: [4]uint8{240, 240, 240, 255}},
	{Name: "Titan", Parent: Saturn, Radius: 0.4, Orbit: Orbit{Radius: 3.4, Period: 53}, Color: [4]uint8{215, 170, 80, 255}},
}

// MoonsOf returns the moons orbiting parent, in table order.
func MoonsOf(parent Name) []Moon {
	var out []Moon
	for _, m := range Moons {
		if m.Parent == parent {
			out = append(out, m)
		}
	}
	return out
}
