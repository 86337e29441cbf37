// Public domain.

// Package report runs the diagnostics over a scenario and renders the
// results.
package report

import (
	"fmt"

	"github.com/soniakeys/epochdiag/discrepancy"
	"github.com/soniakeys/epochdiag/drift"
	"github.com/soniakeys/epochdiag/internal/scenario"
	"github.com/soniakeys/epochdiag/jdate"
	"github.com/soniakeys/epochdiag/motion"
	"github.com/soniakeys/epochdiag/orbit"
)

// Options are the tunable parameters of a run, normally from a config file.
type Options struct {
	Tolerances      motion.Tolerances
	KeplerTolerance float64 // fraction of period
	Drift           drift.Config
	Band            float64
}

// DefaultOptions returns the package defaults of every component.
func DefaultOptions() Options {
	return Options{
		Tolerances:      motion.Tolerances{Default: motion.DefaultTolerance},
		KeplerTolerance: motion.DefaultKeplerTolerance,
		Drift:           drift.DefaultConfig,
		Band:            discrepancy.DefaultBand,
	}
}

// Body is the per-body section of a report.
type Body struct {
	Name      string
	EpochJD   float64
	EpochDate jdate.Date

	// MeanMotion is nil when the body has no tabulated mean motion or no
	// period could be established.
	MeanMotion *motion.Validation `json:",omitempty"`
	// Kepler is nil when the body has no semi-major axis.  Without a
	// stated period only KeplerPeriod is filled in.
	Kepler *motion.KeplerResult `json:",omitempty"`
	Drift  drift.Estimate
}

// Report is the structured result of a run.
type Report struct {
	Name          string
	TargetJD      float64
	TargetDate    jdate.Date
	Bodies        []Body
	Discrepancies []discrepancy.Report
	Summary       discrepancy.Summary

	// Notes are diagnostic findings worth calling out: unit mismatches,
	// stale epochs, periods at odds with the semi-major axis.
	Notes []string
}

// Build runs all diagnostics over s.
//
// Hard input errors abort the run and are returned.  Diagnostic findings
// are recorded in the report.
func Build(s *scenario.Scenario, o Options) (*Report, error) {
	est, err := drift.New(o.Drift)
	if err != nil {
		return nil, err
	}
	r := &Report{Name: s.Name}
	if r.TargetJD, err = s.Target.JD(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if r.TargetDate, err = jdate.JDToDate(r.TargetJD); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	for _, b := range s.Bodies {
		br, err := r.body(b, s.Target, est, o)
		if err != nil {
			return nil, err
		}
		r.Bodies = append(r.Bodies, br)
	}
	if r.Discrepancies, err = discrepancy.Analyze(s.Approaches); err != nil {
		return nil, err
	}
	r.Summary = discrepancy.Summarize(r.Discrepancies, o.Band)
	if len(r.Discrepancies) > 0 && r.Summary.Verdict != discrepancy.NoBias {
		r.note("approach distances: %s, %s",
			r.Summary.Verdict.Heading(), r.Summary.Verdict.Advice())
	}
	return r, nil
}

func (r *Report) note(f string, a ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(f, a...))
}

// period to validate mean motion against.  the stated period, else the
// period implied by the semi-major axis.
func validationPeriod(b orbit.Body, k *motion.KeplerResult) float64 {
	if b.PeriodDays != 0 {
		return b.PeriodDays
	}
	if k != nil {
		return k.KeplerPeriod
	}
	return 0
}

func (r *Report) body(b orbit.Body, target jdate.Epoch, est *drift.Estimator, o Options) (br Body, err error) {
	br.Name = b.Name
	if br.EpochJD, err = b.Epoch.JD(); err != nil {
		return br, fmt.Errorf("%s: %w", b.Name, err)
	}
	if br.EpochDate, err = jdate.JDToDate(br.EpochJD); err != nil {
		return br, fmt.Errorf("%s: %w", b.Name, err)
	}

	if b.SemiMajorAxisAU != 0 {
		kp, err := motion.KeplerPeriod(b.SemiMajorAxisAU)
		if err != nil {
			return br, fmt.Errorf("%s: %w", b.Name, err)
		}
		k := motion.KeplerResult{SemiMajorAxisAU: b.SemiMajorAxisAU, KeplerPeriod: kp}
		if b.PeriodDays != 0 {
			if k, err = motion.KeplerCheck(b.SemiMajorAxisAU, b.PeriodDays,
				o.KeplerTolerance); err != nil {
				return br, fmt.Errorf("%s: %w", b.Name, err)
			}
			if !k.Consistent {
				r.note("%s: period %.3f days, Kepler period from a = %g AU is %.3f days",
					b.Name, b.PeriodDays, b.SemiMajorAxisAU, k.KeplerPeriod)
			}
		}
		br.Kepler = &k
	}

	if b.TabulatedMeanMotion != 0 {
		if p := validationPeriod(b, br.Kepler); p != 0 {
			v, err := motion.ValidateTabulated(b.TabulatedMeanMotion, p,
				o.Tolerances.For(b.Name))
			if err != nil {
				return br, fmt.Errorf("%s: %w", b.Name, err)
			}
			br.MeanMotion = &v
			switch v.Finding {
			case motion.UnitMismatchDetected:
				r.note("%s: tabulated mean motion %g matches rad/day, not deg/day",
					b.Name, v.Tabulated)
			case motion.Inconsistent:
				r.note("%s: tabulated mean motion %g, expected %.6f deg/day",
					b.Name, v.Tabulated, v.Expected.DegPerDay)
			case motion.Ambiguous:
				r.note("%s: tabulated mean motion %g too small to tell deg/day from rad/day",
					b.Name, v.Tabulated)
			}
		} else {
			r.note("%s: mean motion not checked, no period or semi-major axis", b.Name)
		}
	}

	// without a stated period, drift uses the Kepler period if there is one
	db := b
	if db.PeriodDays == 0 && br.Kepler != nil {
		db.PeriodDays = br.Kepler.KeplerPeriod
	}
	if br.Drift, err = est.Estimate(db, target); err != nil {
		return br, err
	}
	if br.Drift.Stale {
		r.note("%s: epoch %s is %.0f days from target, estimated position error %.0f km",
			b.Name, br.EpochDate, br.Drift.EpochAgeDays, br.Drift.PositionErrorKm)
	}
	return br, nil
}
