// Public domain.

// Package drift estimates the error accumulated by using a body's orbital
// elements away from their epoch.
//
// This is a diagnostic guard, not a propagator.  Mean anomaly is advanced
// linearly and the position error is a linear heuristic,
//
//	error km = |epoch age days| * perturbation rate km/day
//
// The default rate of 1 km/day is an order of magnitude figure for a body
// dominated by unmodeled planetary perturbations over a span of years.  It
// is not derived from any perturbation theory; treat it as a placeholder.
// Elements decades old accumulate errors of tens of thousands of km, enough
// to invalidate close approach distances computed from them.
package drift

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/epochdiag/astro"
	"github.com/soniakeys/epochdiag/jdate"
	"github.com/soniakeys/epochdiag/motion"
	"github.com/soniakeys/epochdiag/orbit"
)

// ErrInvalidRate is returned for a negative or non-finite perturbation rate.
var ErrInvalidRate = errors.New("invalid perturbation rate")

// Config holds the estimator parameters.
type Config struct {
	// PerturbationRateKmPerDay, the heuristic error growth rate.
	PerturbationRateKmPerDay float64
	// RateByBody overrides the rate for named bodies.
	RateByBody map[string]float64
	// DefaultPeriodDays is used for bodies without a period.
	DefaultPeriodDays float64
	// StaleThresholdKm, position errors above this mark the epoch stale.
	StaleThresholdKm float64
}

// DefaultConfig, 1 km/day, sidereal year, 10000 km.
var DefaultConfig = Config{
	PerturbationRateKmPerDay: 1,
	DefaultPeriodDays:        astro.SiderealYear,
	StaleThresholdKm:         1e4,
}

// Estimator computes drift estimates.  It is immutable after New.
type Estimator struct {
	cfg Config
}

func checkRate(r float64) error {
	if !(r >= 0) || math.IsInf(r, 1) {
		return fmt.Errorf("%w: %v km/day", ErrInvalidRate, r)
	}
	return nil
}

// New validates cfg and returns an Estimator.
//
// A zero rate is a rate, giving zero position error.  A zero stale
// threshold marks any nonzero error stale.  A zero DefaultPeriodDays takes
// the value of DefaultConfig.  Start from DefaultConfig to change only some
// parameters.
func New(cfg Config) (*Estimator, error) {
	if cfg.DefaultPeriodDays == 0 {
		cfg.DefaultPeriodDays = DefaultConfig.DefaultPeriodDays
	}
	if !(cfg.StaleThresholdKm >= 0) {
		return nil, fmt.Errorf("invalid stale threshold %v km", cfg.StaleThresholdKm)
	}
	if err := checkRate(cfg.PerturbationRateKmPerDay); err != nil {
		return nil, err
	}
	rates := make(map[string]float64, len(cfg.RateByBody))
	for name, r := range cfg.RateByBody {
		if err := checkRate(r); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		rates[name] = r
	}
	cfg.RateByBody = rates
	if _, err := motion.Correct(cfg.DefaultPeriodDays); err != nil {
		return nil, fmt.Errorf("default period: %w", err)
	}
	return &Estimator{cfg}, nil
}

// Rate returns the perturbation rate used for the named body.
func (e *Estimator) Rate(name string) float64 {
	if r, ok := e.cfg.RateByBody[name]; ok {
		return r
	}
	return e.cfg.PerturbationRateKmPerDay
}

// Estimate is the result of Estimator.Estimate.
type Estimate struct {
	Body                  string
	EpochAgeDays          float64 // signed, positive for a target after epoch
	EpochAgeYears         float64 // Julian years
	PeriodDays            float64 // period used for mean motion
	MeanMotion            motion.MeanMotion
	AccumulatedAnomalyDeg float64
	OrbitalCycles         float64
	PositionErrorKm       float64
	PositionErrorAU       float64
	Stale                 bool
}

// Anomaly returns the accumulated mean anomaly as an angle.
func (es Estimate) Anomaly() unit.Angle {
	return unit.AngleFromDeg(es.AccumulatedAnomalyDeg)
}

// Estimate computes the drift of body's elements from their epoch to
// target.
func (e *Estimator) Estimate(body orbit.Body, target jdate.Epoch) (Estimate, error) {
	age, err := body.Epoch.AgeAt(target)
	if err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", body.Name, err)
	}
	return e.EstimateAge(body, age)
}

// EstimateAge is Estimate for an epoch age already in days.
func (e *Estimator) EstimateAge(body orbit.Body, ageDays float64) (Estimate, error) {
	if math.IsNaN(ageDays) || math.IsInf(ageDays, 0) {
		return Estimate{}, fmt.Errorf("%s: %w: age %v days",
			body.Name, jdate.ErrInvalidEpoch, ageDays)
	}
	period := body.PeriodDays
	if period == 0 {
		period = e.cfg.DefaultPeriodDays
	}
	n, err := motion.Correct(period)
	if err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", body.Name, err)
	}
	anomaly := ageDays * n.DegPerDay
	km := math.Abs(ageDays) * e.Rate(body.Name)
	return Estimate{
		Body:                  body.Name,
		EpochAgeDays:          ageDays,
		EpochAgeYears:         ageDays / base.JulianYear,
		PeriodDays:            period,
		MeanMotion:            n,
		AccumulatedAnomalyDeg: anomaly,
		OrbitalCycles:         anomaly / 360,
		PositionErrorKm:       km,
		PositionErrorAU:       astro.KmToAU(km),
		Stale:                 km > e.cfg.StaleThresholdKm,
	}, nil
}
