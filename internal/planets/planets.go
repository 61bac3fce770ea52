package planets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for names outside the known planet set.
var ErrUnknown = errors.New("unknown planet")

// Name identifies a planet. Only the constants below are valid.
type Name string

const (
	Mercury Name = "mercury"
	Venus   Name = "venus"
	Earth   Name = "earth"
	Mars    Name = "mars"
	Jupiter Name = "jupiter"
	Saturn  Name = "saturn"
	Uranus  Name = "uranus"
	Neptune Name = "neptune"
)

// All lists every planet in orbital order.
var All = []Name{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// Catalogued lists the planets whose textures are hosted remotely (everything except Earth,
// which ships with the binary).
var Catalogued = []Name{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

// Valid reports whether n is one of the known planets.
func (n Name) Valid() bool {
	for _, p := range All {
		if p == n {
			return true
		}
	}
	return false
}

func (n Name) String() string {
	return string(n)
}

// Label returns the display form of n ("mars" -> "Mars").
func (n Name) Label() string {
	if n == "" {
		return ""
	}
	return strings.ToUpper(string(n[:1])) + string(n[1:])
}

// Parse converts s (case-insensitive, surrounding space ignored) to a Name.
func Parse(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("parse %q: %w", s, ErrUnknown)
	}
	return n, nil
}
