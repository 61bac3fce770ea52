package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"solar-system/internal/assets"
	"solar-system/internal/textures"
)

// Texture is the handle TextureLoader gives out. It starts pending and becomes ready once
// Flush has uploaded it to the GPU. A texture whose file cannot be found never becomes ready.
type Texture struct {
	Locator string
	tex     rl.Texture2D
	ready   bool
}

// Ready reports whether the texture has been uploaded and can be sampled.
func (t *Texture) Ready() bool {
	return t != nil && t.ready
}

// TextureLoader implements textures.Loader on top of raylib. Load only records the request;
// GPU uploads happen in Flush, which must run after the window/OpenGL context exists.
type TextureLoader struct {
	dir     string
	log     *zap.Logger
	pending []*Texture
	loaded  []*Texture
}

var _ textures.Loader = (*TextureLoader)(nil)

// NewTextureLoader returns a loader that resolves locators against dir (see assets.Resolve).
func NewTextureLoader(dir string, log *zap.Logger) *TextureLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureLoader{dir: dir, log: log}
}

// Load returns a pending handle for locator.
func (l *TextureLoader) Load(locator string) textures.Texture {
	t := &Texture{Locator: locator}
	l.pending = append(l.pending, t)
	return t
}

// Flush uploads every pending texture. Call once per frame from the draw loop; it is a no-op
// when nothing is pending.
func (l *TextureLoader) Flush() {
	if len(l.pending) == 0 {
		return
	}
	batch := l.pending
	l.pending = nil
	for _, t := range batch {
		path, ok := assets.Resolve(l.dir, t.Locator)
		if !ok {
			l.log.Debug("texture not found locally", zap.String("locator", t.Locator))
			continue
		}
		tex := rl.LoadTexture(path)
		if !rl.IsTextureValid(tex) {
			l.log.Debug("texture failed to load", zap.String("path", path))
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		t.tex = tex
		t.ready = true
		l.loaded = append(l.loaded, t)
		l.log.Info("texture loaded", zap.String("locator", t.Locator), zap.String("path", path))
	}
}

// Close unloads every uploaded texture. Handles stop being ready.
func (l *TextureLoader) Close() {
	for _, t := range l.loaded {
		rl.UnloadTexture(t.tex)
		t.ready = false
	}
	l.loaded = nil
}

// readyTexture unwraps a registry handle. ok is false for nil, foreign or not-yet-ready handles.
func readyTexture(h textures.Texture) (rl.Texture2D, bool) {
	t, ok := h.(*Texture)
	if !ok || !t.Ready() {
		return rl.Texture2D{}, false
	}
	return t.tex, true
}
