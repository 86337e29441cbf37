// Public domain.

// Package orbit holds the orbital element records shared by the diagnostic
// packages.
package orbit

import "github.com/soniakeys/epochdiag/jdate"

// Body is a body with the orbital elements relevant to epoch and unit
// checks.
//
// TabulatedMeanMotion is the mean motion as supplied by an element catalog.
// Its units are not trusted; package motion checks them.  Zero means no value
// was tabulated.  A PeriodDays of zero means the period is not known and a
// caller default applies.
type Body struct {
	Name                string
	SemiMajorAxisAU     float64
	PeriodDays          float64
	TabulatedMeanMotion float64
	Epoch               jdate.Epoch
}

// ApproachEvent is a close approach of Body to the reference body.
//
// ExpectedDistanceKm is the reference value, ComputedDistanceKm is whatever
// an external propagator produced for the same date.
type ApproachEvent struct {
	Body               Body
	Date               jdate.Date
	ExpectedDistanceKm float64
	ComputedDistanceKm float64
}
