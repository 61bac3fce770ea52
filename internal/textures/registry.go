package textures

import (
	"fmt"

	"go.uber.org/zap"

	"solar-system/internal/planets"
)

// EarthTexturePath is the bundled colour map loaded for Earth on every Initialize.
const EarthTexturePath = "./textures/earth.jpg"

// Registry holds the textures loaded for each planet and applies them to meshes.
// It is filled once by Initialize and only read afterwards; it is not safe for concurrent
// writers, but there are none.
type Registry struct {
	entries map[planets.Name]Entry
	urls    Catalog
	log     *zap.Logger
}

type options struct {
	eagerCatalog bool
	catalog      Catalog
	log          *zap.Logger
}

// Option configures Initialize.
type Option func(*options)

// WithEagerCatalog makes Initialize also load every catalog entry through the loader.
// Off by default, in which case catalog URLs are declared but never loaded.
func WithEagerCatalog(on bool) Option {
	return func(o *options) { o.eagerCatalog = on }
}

// WithCatalog replaces DefaultCatalog. Entries for unknown planets are dropped.
func WithCatalog(c Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithLogger sets the logger used for registration messages.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Initialize loads the bundled Earth texture with loader and declares the remote catalog.
// With the default options loader is called exactly once.
func Initialize(loader Loader, opts ...Option) *Registry {
	o := options{catalog: DefaultCatalog(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		entries: make(map[planets.Name]Entry, len(planets.All)),
		urls:    make(Catalog, len(o.catalog)),
		log:     o.log,
	}
	for name, url := range o.catalog {
		if !name.Valid() {
			r.log.Warn("dropping catalog entry for unknown planet", zap.String("planet", string(name)))
			continue
		}
		r.urls[name] = url
	}

	// The bundled asset is assumed present; failures surface only through the handle.
	_ = r.register(planets.Earth, Entry{Map: loader.Load(EarthTexturePath)})

	if o.eagerCatalog {
		for _, name := range planets.Catalogued {
			url, ok := r.urls.Lookup(name)
			if !ok {
				continue
			}
			_ = r.register(name, Entry{Map: loader.Load(url)})
		}
	}
	r.log.Debug("texture registry initialized",
		zap.Int("entries", len(r.entries)),
		zap.Int("catalog", len(r.urls)),
		zap.Bool("eager", o.eagerCatalog))
	return r
}

func (r *Registry) register(name planets.Name, e Entry) error {
	if !name.Valid() {
		return fmt.Errorf("register texture: %w", planets.ErrUnknown)
	}
	r.entries[name] = e
	r.log.Debug("texture registered", zap.String("planet", string(name)), zap.Bool("map", e.Loaded()))
	return nil
}

// Entry returns the textures registered for name.
func (r *Registry) Entry(name planets.Name) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Textures returns a copy of all registered entries.
func (r *Registry) Textures() map[planets.Name]Entry {
	out := make(map[planets.Name]Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// TextureURLs returns a copy of the remote catalog. A catalog entry does not mean the planet
// has a registered texture.
func (r *Registry) TextureURLs() Catalog {
	return r.urls.clone()
}

// ApplyTextureToPlanet replaces mesh's material with a new PhongMaterial built from name's
// entry. If name has no entry, or its entry has no colour map, mesh is left untouched.
func (r *Registry) ApplyTextureToPlanet(mesh Mesh, name planets.Name) {
	e, ok := r.entries[name]
	if !ok || !e.Loaded() {
		return
	}
	mesh.SetMaterial(newPhongMaterial(e))
}
