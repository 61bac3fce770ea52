package textures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"solar-system/internal/planets"
)

type handle struct{ path string }

// recordingLoader hands out a fresh *handle per call and remembers the paths it was asked for.
type recordingLoader struct {
	calls   []string
	handles map[string]*handle
}

func newRecordingLoader() *recordingLoader {
	return &recordingLoader{handles: make(map[string]*handle)}
}

func (l *recordingLoader) Load(path string) Texture {
	l.calls = append(l.calls, path)
	h := &handle{path: path}
	l.handles[path] = h
	return h
}

type fakeMesh struct {
	material *PhongMaterial
	sets     int
}

func (m *fakeMesh) SetMaterial(mat *PhongMaterial) {
	m.material = mat
	m.sets++
}

func TestInitializeLoadsEarthOnce(t *testing.T) {
	loader := newRecordingLoader()
	reg := Initialize(loader)

	require.Equal(t, []string{EarthTexturePath}, loader.calls)

	earth, ok := reg.Entry(planets.Earth)
	require.True(t, ok)
	assert.Same(t, loader.handles[EarthTexturePath], earth.Map)
	assert.Nil(t, earth.BumpMap)
	assert.Nil(t, earth.SpecularMap)

	_, ok = reg.Entry(planets.Mercury)
	assert.False(t, ok)
	assert.Len(t, reg.Textures(), 1)
}

func TestDefaultCatalog(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	urls := reg.TextureURLs()

	require.Len(t, urls, 7)
	seen := make(map[string]planets.Name)
	for _, n := range []planets.Name{planets.Mercury, planets.Venus, planets.Mars, planets.Jupiter, planets.Saturn, planets.Uranus, planets.Neptune} {
		url, ok := urls.Lookup(n)
		require.True(t, ok, n)
		assert.NotEmpty(t, url)
		if prev, dup := seen[url]; dup {
			t.Fatalf("%s and %s share url %s", prev, n, url)
		}
		seen[url] = n
	}
	_, ok := urls.Lookup(planets.Earth)
	assert.False(t, ok)
	assert.Equal(t, "https://space-assets.ams3.cdn.digitaloceanspaces.com/mars.jpg", urls[planets.Mars])
}

func TestTextureURLsIsACopy(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	urls := reg.TextureURLs()
	urls[planets.Mars] = "changed"
	delete(urls, planets.Venus)

	again := reg.TextureURLs()
	assert.NotEqual(t, "changed", again[planets.Mars])
	assert.Contains(t, again, planets.Venus)
}

func TestApplyTextureToPlanet(t *testing.T) {
	loader := newRecordingLoader()
	reg := Initialize(loader)
	mesh := &fakeMesh{}

	reg.ApplyTextureToPlanet(mesh, planets.Earth)

	require.NotNil(t, mesh.material)
	assert.Same(t, loader.handles[EarthTexturePath], mesh.material.Map)
	assert.Equal(t, float32(0.05), mesh.material.BumpScale)
	assert.Nil(t, mesh.material.BumpMap)
	assert.Nil(t, mesh.material.SpecularMap)
}

func TestApplyBuildsNewMaterialEachCall(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	mesh := &fakeMesh{}

	reg.ApplyTextureToPlanet(mesh, planets.Earth)
	first := mesh.material
	reg.ApplyTextureToPlanet(mesh, planets.Earth)

	assert.Equal(t, 2, mesh.sets)
	assert.NotSame(t, first, mesh.material)
	assert.Equal(t, *first, *mesh.material)
}

func TestApplyUnloadedPlanetIsNoop(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	prior := &PhongMaterial{BumpScale: 1}
	mesh := &fakeMesh{material: prior}

	for _, n := range append(planets.Catalogued, "pluto") {
		reg.ApplyTextureToPlanet(mesh, n)
	}

	assert.Same(t, prior, mesh.material)
	assert.Zero(t, mesh.sets)
}

func TestApplyEntryWithoutMapIsNoop(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	require.NoError(t, reg.register(planets.Mars, Entry{BumpMap: &handle{path: "bump"}}))
	prior := &PhongMaterial{}
	mesh := &fakeMesh{material: prior}

	reg.ApplyTextureToPlanet(mesh, planets.Mars)

	assert.Same(t, prior, mesh.material)
}

func TestApplyPassesThroughAuxiliaryMaps(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	entry := Entry{Map: &handle{"m"}, BumpMap: &handle{"b"}, SpecularMap: &handle{"s"}}
	require.NoError(t, reg.register(planets.Venus, entry))
	mesh := &fakeMesh{}

	reg.ApplyTextureToPlanet(mesh, planets.Venus)

	assert.Same(t, entry.Map, mesh.material.Map)
	assert.Same(t, entry.BumpMap, mesh.material.BumpMap)
	assert.Same(t, entry.SpecularMap, mesh.material.SpecularMap)
	assert.Equal(t, DefaultBumpScale, mesh.material.BumpScale)
}

func TestApplyTypedNilMapIsNoop(t *testing.T) {
	reg := Initialize(LoaderFunc(func(string) Texture {
		var h *handle
		return h
	}))
	e, ok := reg.Entry(planets.Earth)
	require.True(t, ok)
	assert.False(t, e.Loaded())

	prior := &PhongMaterial{}
	mesh := &fakeMesh{material: prior}
	reg.ApplyTextureToPlanet(mesh, planets.Earth)

	assert.Same(t, prior, mesh.material)
	assert.Zero(t, mesh.sets)
}

func TestEntryLoaded(t *testing.T) {
	assert.False(t, Entry{}.Loaded())
	assert.False(t, Entry{Map: (*handle)(nil)}.Loaded())
	assert.False(t, Entry{Map: map[string]int(nil)}.Loaded())
	assert.True(t, Entry{Map: &handle{}}.Loaded())
	assert.True(t, Entry{Map: "path"}.Loaded())
	assert.True(t, Entry{Map: 0}.Loaded())
}

func TestTexturesIsACopy(t *testing.T) {
	loader := newRecordingLoader()
	reg := Initialize(loader)
	got := reg.Textures()
	got[planets.Mars] = Entry{Map: &handle{"mars"}}
	got[planets.Earth] = Entry{}

	_, ok := reg.Entry(planets.Mars)
	assert.False(t, ok)
	earth, _ := reg.Entry(planets.Earth)
	assert.Same(t, loader.handles[EarthTexturePath], earth.Map)
	assert.Len(t, reg.Textures(), 1)
}

func TestRegisterRejectsUnknownPlanet(t *testing.T) {
	reg := Initialize(newRecordingLoader())
	err := reg.register("pluto", Entry{Map: &handle{}})
	assert.ErrorIs(t, err, planets.ErrUnknown)
	_, ok := reg.Entry("pluto")
	assert.False(t, ok)
}

func TestEagerCatalogLoadsEveryEntry(t *testing.T) {
	loader := newRecordingLoader()
	reg := Initialize(loader, WithEagerCatalog(true))

	require.Len(t, loader.calls, 8)
	assert.Equal(t, EarthTexturePath, loader.calls[0])
	urls := reg.TextureURLs()
	for i, n := range planets.Catalogued {
		assert.Equal(t, urls[n], loader.calls[i+1])
		e, ok := reg.Entry(n)
		require.True(t, ok, n)
		assert.Same(t, loader.handles[urls[n]], e.Map)
		assert.Nil(t, e.BumpMap)
	}

	mesh := &fakeMesh{}
	reg.ApplyTextureToPlanet(mesh, planets.Mars)
	assert.Same(t, loader.handles[urls[planets.Mars]], mesh.material.Map)
}

func TestEagerCatalogOffLoadsOnlyEarth(t *testing.T) {
	loader := newRecordingLoader()
	Initialize(loader, WithEagerCatalog(false))
	assert.Equal(t, []string{EarthTexturePath}, loader.calls)
}

func TestWithCatalogDropsUnknownPlanets(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	loader := newRecordingLoader()
	reg := Initialize(loader,
		WithCatalog(Catalog{planets.Mars: "file:///mars.jpg", "pluto": "file:///pluto.jpg"}),
		WithEagerCatalog(true),
		WithLogger(zap.New(core)))

	urls := reg.TextureURLs()
	assert.Equal(t, Catalog{planets.Mars: "file:///mars.jpg"}, urls)
	assert.Equal(t, []string{EarthTexturePath, "file:///mars.jpg"}, loader.calls)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "pluto", logs.All()[0].ContextMap()["planet"])
}

func TestLoaderFunc(t *testing.T) {
	var got string
	reg := Initialize(LoaderFunc(func(path string) Texture {
		got = path
		return path
	}))
	assert.Equal(t, EarthTexturePath, got)
	e, _ := reg.Entry(planets.Earth)
	assert.Equal(t, EarthTexturePath, e.Map)
}
