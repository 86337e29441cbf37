// Public domain.

// Package discrepancy compares computed close approach distances against
// expected ones across a set of bodies.
//
// Each approach gets an error factor, computed / expected.  When the factors
// of all bodies cluster, say all near 10, the error is systemic and the
// place to look is units or scale in the shared computation.  When they
// scatter, the errors are body specific: stale epochs, perturbations, bad
// elements for individual bodies.
package discrepancy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/soniakeys/epochdiag/jdate"
	"github.com/soniakeys/epochdiag/orbit"
)

// ErrInvalidDistance is returned for an expected distance that is not
// positive or a computed distance that is negative, or either non-finite.
var ErrInvalidDistance = errors.New("invalid distance")

// DefaultBand, factors within 2x of each other share an order of magnitude.
const DefaultBand = 2.

// Report is the discrepancy for a single approach event.
type Report struct {
	Body         string
	ApproachDate jdate.Date
	EpochAgeDays float64 // approach date - epoch, signed
	ExpectedKm   float64
	ComputedKm   float64
	ErrorFactor  float64 // ComputedKm / ExpectedKm
}

func checkDistance(what string, km float64, allowZero bool) error {
	switch {
	case math.IsNaN(km) || math.IsInf(km, 0):
	case km > 0:
		return nil
	case km == 0 && allowZero:
		return nil
	}
	return fmt.Errorf("%w: %s %v km", ErrInvalidDistance, what, km)
}

// Analyze computes a Report for each event, in order.
func Analyze(events []orbit.ApproachEvent) ([]Report, error) {
	reports := make([]Report, len(events))
	for i, ev := range events {
		name := ev.Body.Name
		if err := checkDistance("expected", ev.ExpectedDistanceKm, false); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := checkDistance("computed", ev.ComputedDistanceKm, true); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		age, err := ev.Body.Epoch.AgeAt(jdate.EpochFromDate(ev.Date))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		reports[i] = Report{
			Body:         name,
			ApproachDate: ev.Date,
			EpochAgeDays: age,
			ExpectedKm:   ev.ExpectedDistanceKm,
			ComputedKm:   ev.ComputedDistanceKm,
			ErrorFactor:  ev.ComputedDistanceKm / ev.ExpectedDistanceKm,
		}
	}
	return reports, nil
}

// Summary is the aggregate judgment over a set of reports.
type Summary struct {
	Count int
	Band  float64

	// CommonOrderOfMagnitude is true when all factors lie within Band of
	// each other.
	CommonOrderOfMagnitude bool
	MedianErrorFactor      float64
	MinErrorFactor         float64
	MaxErrorFactor         float64
	Spread                 float64 // max / min, 0 if min is 0 and max is not
	PowerOfTen             int     // median rounded to a power of ten

	Verdict Verdict
}

// Summarize judges whether the error factors of reports share a common
// order of magnitude.  A band < 1 selects DefaultBand.
func Summarize(reports []Report, band float64) Summary {
	if !(band >= 1) || math.IsInf(band, 1) {
		band = DefaultBand
	}
	s := Summary{Count: len(reports), Band: band}
	if len(reports) == 0 {
		s.Verdict = Insufficient
		return s
	}
	f := make([]float64, len(reports))
	for i, r := range reports {
		f[i] = r.ErrorFactor
	}
	sort.Float64s(f)
	s.MinErrorFactor = f[0]
	s.MaxErrorFactor = f[len(f)-1]
	if m := len(f) / 2; len(f)%2 == 1 {
		s.MedianErrorFactor = f[m]
	} else {
		s.MedianErrorFactor = (f[m-1] + f[m]) / 2
	}
	if s.MedianErrorFactor > 0 {
		s.PowerOfTen = int(math.Round(math.Log10(s.MedianErrorFactor)))
	}
	switch {
	case s.MinErrorFactor > 0:
		s.Spread = s.MaxErrorFactor / s.MinErrorFactor
		s.CommonOrderOfMagnitude = s.MaxErrorFactor <= band*s.MinErrorFactor
	case s.MaxErrorFactor == 0:
		// all computed distances zero.  they agree with each other.
		s.Spread = 1
		s.CommonOrderOfMagnitude = true
	}
	s.Verdict = s.judge()
	return s
}

func (s Summary) judge() Verdict {
	switch {
	case s.Count < 2:
		return Insufficient
	case s.MinErrorFactor*s.Band >= 1 && s.MaxErrorFactor <= s.Band:
		return NoBias
	case s.CommonOrderOfMagnitude:
		return Systemic
	}
	return BodySpecific
}
