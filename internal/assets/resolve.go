package assets

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolve maps a texture locator to a readable local file. Plain paths are tried as given,
// then under dir, then two levels up (so the viewer works from the repo root or cmd/viewer).
// URL locators are never fetched: only a file of the same base name under dir can satisfy them.
func Resolve(dir, locator string) (string, bool) {
	for _, p := range Candidates(dir, locator) {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Candidates lists the paths Resolve tries, in order.
func Candidates(dir, locator string) []string {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return nil
	}
	if name, ok := remoteBaseName(locator); ok {
		if name == "" || dir == "" {
			return nil
		}
		return []string{filepath.Join(dir, name)}
	}
	cleaned := filepath.Clean(filepath.FromSlash(locator))
	out := []string{cleaned}
	if dir != "" {
		out = append(out, filepath.Join(dir, filepath.Base(cleaned)))
	}
	if !filepath.IsAbs(cleaned) {
		out = append(out, filepath.Join("..", "..", cleaned))
	}
	return out
}

// remoteBaseName reports whether locator is a URL with a scheme and host, and returns the last
// element of its path.
func remoteBaseName(locator string) (string, bool) {
	u, err := url.Parse(locator)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		base = ""
	}
	return base, true
}
