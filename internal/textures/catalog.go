package textures

import "solar-system/internal/planets"

const catalogBaseURL = "https://space-assets.ams3.cdn.digitaloceanspaces.com/"

// Catalog maps a planet to the remote locator of its colour map. It is data only: nothing in
// this package fetches these URLs.
type Catalog map[planets.Name]string

// DefaultCatalog returns the locators for every planet in planets.Catalogued.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(planets.Catalogued))
	for _, n := range planets.Catalogued {
		c[n] = catalogBaseURL + string(n) + ".jpg"
	}
	return c
}

// Lookup returns the locator for n and whether one is declared.
func (c Catalog) Lookup(n planets.Name) (string, bool) {
	url, ok := c[n]
	return url, ok
}

func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
