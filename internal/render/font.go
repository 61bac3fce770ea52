package render

import rl "github.com/gen2brain/raylib-go/raylib"

const fontLoadSize = 32

// Font loads a TTF/OTF file the first time it is used, once the GL context exists. With an
// empty path, or when loading fails, callers get raylib's built-in font.
type Font struct {
	path   string
	font   rl.Font
	tried  bool
	loaded bool
}

// NewFont returns a lazily loaded font for path. path may be empty.
func NewFont(path string) *Font {
	return &Font{path: path}
}

// Get returns the loaded font, or rl.GetFontDefault().
func (f *Font) Get() rl.Font {
	if !f.tried {
		f.tried = true
		if f.path != "" {
			if font := rl.LoadFontEx(f.path, fontLoadSize, nil); font.Texture.ID != 0 {
				rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
				f.font, f.loaded = font, true
			}
		}
	}
	if f.loaded {
		return f.font
	}
	return rl.GetFontDefault()
}

// Close unloads the font if one was loaded.
func (f *Font) Close() {
	if f.loaded {
		rl.UnloadFont(f.font)
		f.loaded = false
	}
}
