// Public domain.

// Package motion derives mean motion from orbital period and checks
// tabulated mean motion values for unit errors.
//
// A common failure is a catalog value given in degrees/day but consumed as
// radians/day, or the reverse.  ValidateTabulated compares a tabulated value
// against both readings and reports which, if either, it matches.
package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/epochdiag/astro"
)

// ErrInvalidPeriod is returned for a period that is not a positive finite
// number of days.
var ErrInvalidPeriod = errors.New("invalid period")

// ErrInvalidAxis is returned for a semi-major axis that is not a positive
// finite number of AU.
var ErrInvalidAxis = errors.New("invalid semi-major axis")

// ErrInvalidMeanMotion is returned for a tabulated mean motion that is not
// a finite number.
var ErrInvalidMeanMotion = errors.New("invalid mean motion")

// DefaultTolerance for ValidateTabulated, in degrees/day.
const DefaultTolerance = .01

// DefaultKeplerTolerance for KeplerCheck, as a fraction of the period.
const DefaultKeplerTolerance = .01

// MeanMotion is an average angular rate.
type MeanMotion struct {
	DegPerDay float64
	RadPerDay float64
}

// PerDay returns the daily motion as an angle.
func (n MeanMotion) PerDay() unit.Angle {
	return unit.Angle(n.RadPerDay)
}

// RadPerSec returns the motion in radians/second.
func (n MeanMotion) RadPerSec() float64 {
	return n.RadPerDay / astro.SecPerDay
}

func checkPeriod(periodDays float64) error {
	if !(periodDays > 0) || math.IsInf(periodDays, 1) {
		return fmt.Errorf("%w: %v days", ErrInvalidPeriod, periodDays)
	}
	return nil
}

// Correct returns the mean motion for an orbital period in days.
func Correct(periodDays float64) (MeanMotion, error) {
	if err := checkPeriod(periodDays); err != nil {
		return MeanMotion{}, err
	}
	return MeanMotion{
		DegPerDay: 360 / periodDays,
		RadPerDay: 2 * math.Pi / periodDays,
	}, nil
}

// ToRadiansPerSecond converts a mean motion in degrees/day to radians/second.
func ToRadiansPerSecond(degPerDay float64) float64 {
	return unit.AngleFromDeg(degPerDay).Rad() / astro.SecPerDay
}

// PeriodFromMeanMotion returns the period in days for a mean motion in
// degrees/day.
func PeriodFromMeanMotion(degPerDay float64) (float64, error) {
	if !(degPerDay > 0) || math.IsInf(degPerDay, 1) {
		return 0, fmt.Errorf("%w: mean motion %v deg/day", ErrInvalidPeriod, degPerDay)
	}
	return 360 / degPerDay, nil
}

// Finding is the outcome of checking a tabulated mean motion.  Findings are
// diagnostic data, not errors.
type Finding int

const (
	// UnitsConsistent, the value matches degrees/day.
	UnitsConsistent Finding = iota
	// UnitMismatchDetected, the value matches radians/day, not degrees/day.
	UnitMismatchDetected
	// Inconsistent, the value matches neither reading.
	Inconsistent
	// Ambiguous, the value matches both readings.  Only possible for
	// very slow motion and a loose tolerance.
	Ambiguous
)

var findingText = [...]string{
	UnitsConsistent:      "consistent",
	UnitMismatchDetected: "unit mismatch",
	Inconsistent:         "inconsistent",
	Ambiguous:            "ambiguous",
}

func (f Finding) String() string {
	if f < 0 || int(f) >= len(findingText) {
		return fmt.Sprintf("Finding(%d)", int(f))
	}
	return findingText[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f Finding) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Validation is the result of ValidateTabulated.
type Validation struct {
	Tabulated float64
	Expected  MeanMotion
	Tolerance float64 // degrees/day

	// Delta is |Tabulated - Expected.DegPerDay|.
	Delta                   float64
	ConsistentWithDegPerDay bool

	// RadDelta is |Tabulated - Expected.RadPerDay|.
	RadDelta                float64
	ConsistentWithRadPerDay bool

	Finding Finding
}

// ValidateTabulated checks a tabulated mean motion against the mean motion
// implied by periodDays.
//
// The value is consistent with degrees/day when it is within tolerance
// (degrees/day) of 360/periodDays.  The radians/day reading is tested with
// the same tolerance converted to radians.  A tolerance <= 0 selects
// DefaultTolerance.
func ValidateTabulated(tabulated, periodDays, tolerance float64) (Validation, error) {
	if math.IsNaN(tabulated) || math.IsInf(tabulated, 0) {
		return Validation{}, fmt.Errorf("%w: %v", ErrInvalidMeanMotion, tabulated)
	}
	n, err := Correct(periodDays)
	if err != nil {
		return Validation{}, err
	}
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	v := Validation{
		Tabulated: tabulated,
		Expected:  n,
		Tolerance: tolerance,
		Delta:     math.Abs(tabulated - n.DegPerDay),
		RadDelta:  math.Abs(tabulated - n.RadPerDay),
	}
	v.ConsistentWithDegPerDay = v.Delta < tolerance
	v.ConsistentWithRadPerDay = v.RadDelta < unit.AngleFromDeg(tolerance).Rad()
	switch {
	case v.ConsistentWithDegPerDay && v.ConsistentWithRadPerDay:
		v.Finding = Ambiguous
	case v.ConsistentWithDegPerDay:
		v.Finding = UnitsConsistent
	case v.ConsistentWithRadPerDay:
		v.Finding = UnitMismatchDetected
	default:
		v.Finding = Inconsistent
	}
	return v, nil
}
