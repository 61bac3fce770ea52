package textures

// DefaultBumpScale is the bump strength every planet material is built with.
const DefaultBumpScale float32 = 0.05

// PhongMaterial describes a lit surface with optional bump and specular maps.
// Nil maps mean "no effect" for that channel.
type PhongMaterial struct {
	Map         Texture
	BumpMap     Texture
	BumpScale   float32
	SpecularMap Texture
}

// Mesh is anything with a material slot the registry can overwrite.
type Mesh interface {
	SetMaterial(m *PhongMaterial)
}

func newPhongMaterial(e Entry) *PhongMaterial {
	return &PhongMaterial{
		Map:         e.Map,
		BumpMap:     e.BumpMap,
		BumpScale:   DefaultBumpScale,
		SpecularMap: e.SpecularMap,
	}
}
