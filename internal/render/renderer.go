package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/textures"
)

const (
	sphereRings  = 32
	sphereSlices = 32
)

// Renderer draws planets as lit spheres. GPU resources are created on first Draw so they are
// allocated after the window/OpenGL context exists.
type Renderer struct {
	ready    bool
	mesh     rl.Mesh
	plainMtl rl.Material
	phongMtl rl.Material
	blank    rl.Texture2D
	viewPos  [3]float32
	lightPos [3]float32
}

// NewRenderer returns a renderer lit by a point light at the origin (the sun).
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetView sets the camera position for this frame. Call once per frame before drawing.
func (r *Renderer) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// ensure creates the shared unit sphere and both materials. The sphere has radius 1 and is
// scaled per planet.
func (r *Renderer) ensure() {
	if r.ready {
		return
	}
	r.mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)

	r.plainMtl = rl.LoadMaterialDefault()
	if s := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(s) {
		r.plainMtl.Shader = s
	}

	r.phongMtl = rl.LoadMaterialDefault()
	if albedo := r.phongMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if s := rl.LoadShaderFromMemory(litVS, phongFS); rl.IsShaderValid(s) {
		r.phongMtl.Shader = s
	}
	// 1x1 white texture bound to unused bump/specular slots so samplers always have a source.
	img := rl.GenImageColor(1, 1, rl.White)
	r.blank = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.ready = true
}

// Draw renders p. Must be called between BeginMode3D and EndMode3D. A planet whose material is
// nil, or whose colour map is not ready yet, is drawn in its fallback colour.
func (r *Renderer) Draw(p *Planet) {
	r.ensure()
	transform := sphereTransform(p.Position, p.Body.Radius)
	if m := p.Material(); m != nil {
		if albedo, ok := readyTexture(m.Map); ok {
			r.drawPhong(albedo, m.BumpMap, m.SpecularMap, m.BumpScale, transform)
			return
		}
	}
	r.drawPlain(toColor(p.Body.Color), transform)
}

// DrawMoon renders m in its colour. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) DrawMoon(m *Moon) {
	r.ensure()
	r.drawPlain(toColor(m.Moon.Color), sphereTransform(m.Position, m.Moon.Radius))
}

func (r *Renderer) drawPlain(c rl.Color, transform rl.Matrix) {
	if albedo := r.plainMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	r.setLightUniforms(r.plainMtl.Shader)
	rl.DrawMesh(r.mesh, r.plainMtl, transform)
}

func (r *Renderer) drawPhong(albedo rl.Texture2D, bumpMap, specularMap textures.Texture, bumpScale float32, transform rl.Matrix) {
	shader := r.phongMtl.Shader
	rl.SetMaterialTexture(&r.phongMtl, rl.MapAlbedo, albedo)

	useBump := float32(0)
	bump := r.blank
	if t, ok := readyTexture(bumpMap); ok {
		bump, useBump = t, 1
	}
	rl.SetMaterialTexture(&r.phongMtl, rl.MapNormal, bump)

	useSpecular := float32(0)
	spec := r.blank
	if t, ok := readyTexture(specularMap); ok {
		spec, useSpecular = t, 1
	}
	rl.SetMaterialTexture(&r.phongMtl, rl.MapMetalness, spec)

	r.setLightUniforms(shader)
	setFloat(shader, "bumpScale", bumpScale)
	setFloat(shader, "useBump", useBump)
	setFloat(shader, "useSpecular", useSpecular)
	rl.DrawMesh(r.mesh, r.phongMtl, transform)
}

// Close releases GPU resources created by Draw.
func (r *Renderer) Close() {
	if !r.ready {
		return
	}
	// UnloadMaterial also unloads every bound texture. The Phong slots point at textures the
	// loader owns (or at blank), so detach them first; texture id 0 is ignored by the GPU.
	for _, slot := range []int32{rl.MapAlbedo, rl.MapNormal, rl.MapMetalness} {
		rl.SetMaterialTexture(&r.phongMtl, slot, rl.Texture2D{})
	}
	rl.UnloadMaterial(r.phongMtl)
	rl.UnloadMaterial(r.plainMtl)
	rl.UnloadTexture(r.blank)
	rl.UnloadMesh(&r.mesh)
	r.ready = false
}

func sphereTransform(pos rl.Vector3, radius float32) rl.Matrix {
	s := radius
	if s <= 0 {
		s = 1
	}
	scale := rl.MatrixScale(s, s, s)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	return rl.MatrixMultiply(scale, trans)
}

var (
	ambient    = [4]float32{0.08, 0.08, 0.1, 1.0}
	lightColor = [3]float32{1.0, 0.97, 0.9}
)

const (
	lightIntensity   = float32(1.1)
	specularPower    = float32(32.0)
	specularStrength = float32(0.5)
)

// setLightUniforms sets view/light position, ambient and light parameters (cgo-safe: local arrays).
func (r *Renderer) setLightUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightPos := [3]float32{r.lightPos[0], r.lightPos[1], r.lightPos[2]}
	amb := [4]float32{ambient[0], ambient[1], ambient[2], ambient[3]}
	lc := [3]float32{lightColor[0], lightColor[1], lightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lc[:], rl.ShaderUniformVec3, 1)
	}
	setFloat(shader, "lightIntensity", lightIntensity)
	setFloat(shader, "specularPower", specularPower)
	setFloat(shader, "specularStrength", specularStrength)
}

func setFloat(shader rl.Shader, name string, v float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}
