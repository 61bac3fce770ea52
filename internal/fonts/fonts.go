package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the process cwd, so fonts are found
// whether the viewer runs from the repo root or cmd/viewer.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// sorted. Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// Find returns the first font under dirs, preferring files whose path contains "Regular"
// (case-insensitive). ok is false when no dir holds a font.
func Find(dirs ...string) (path string, ok bool) {
	for _, dir := range dirs {
		rels, err := ScanDir(dir)
		if err != nil || len(rels) == 0 {
			continue
		}
		pick := rels[0]
		for _, rel := range rels {
			if strings.Contains(strings.ToLower(rel), "regular") {
				pick = rel
				break
			}
		}
		return filepath.Join(dir, filepath.FromSlash(pick)), true
	}
	return "", false
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}
