package textures

import "reflect"

// Texture is an opaque handle produced by a Loader. A nil Texture means "absent".
// The registry never inspects a handle; it only stores it and copies it into materials.
type Texture any

// Loader turns a path or URL into a texture handle. Load returns immediately; the handle may
// still be decoding (or may never become valid) when it is returned.
type Loader interface {
	Load(path string) Texture
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(path string) Texture

func (f LoaderFunc) Load(path string) Texture {
	return f(path)
}

// Entry is the set of maps registered for one planet.
type Entry struct {
	Map         Texture
	BumpMap     Texture
	SpecularMap Texture
}

// Loaded reports whether the entry carries a base colour map.
func (e Entry) Loaded() bool {
	return !absent(e.Map)
}

// absent reports whether t is nil, including a nil pointer (or other nilable value) stored in
// the interface, which is how a loader typically signals "nothing loaded".
func absent(t Texture) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
