// Package astro, stuff generally useful in astronomy.
package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

const (
	K = .01720209895 // Gaussian gravitational constant, radians/day

	// SiderealYear in days.
	SiderealYear = 365.256363004
	// SecPerDay, no leap seconds.
	SecPerDay = 86400
	// AU in km.
	AU = base.AU
)

var twoPi = 2 * math.Pi

// GaussianMeanMotion returns the mean daily motion of a massless body with
// semi-major axis a (in AU) about the sun, per Kepler's third law.
//
// Result is an angle per day.  Zero is returned for a <= 0.
func GaussianMeanMotion(a float64) unit.Angle {
	if a <= 0 {
		return 0
	}
	return unit.Angle(K / (a * math.Sqrt(a)))
}

// KeplerPeriod returns the orbital period in days of a body with
// semi-major axis a (in AU).
//
// Zero is returned for a <= 0.
func KeplerPeriod(a float64) float64 {
	n := GaussianMeanMotion(a)
	if n == 0 {
		return 0
	}
	return twoPi / n.Rad()
}

// KmToAU converts a distance in km to AU.
func KmToAU(km float64) float64 {
	return km / AU
}
