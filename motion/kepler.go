// Public domain.

package motion

import (
	"fmt"
	"math"

	"github.com/soniakeys/epochdiag/astro"
)

// KeplerResult compares a stated period with the period implied by the
// semi-major axis.
type KeplerResult struct {
	SemiMajorAxisAU float64
	PeriodDays      float64
	KeplerPeriod    float64 // days, from a^1.5 and the Gaussian constant
	RelDiff         float64 // (PeriodDays - KeplerPeriod) / KeplerPeriod
	Consistent      bool
}

// KeplerPeriod returns the period in days implied by semi-major axis aAU.
func KeplerPeriod(aAU float64) (float64, error) {
	if !(aAU > 0) || math.IsInf(aAU, 1) {
		return 0, fmt.Errorf("%w: %v AU", ErrInvalidAxis, aAU)
	}
	return astro.KeplerPeriod(aAU), nil
}

// KeplerCheck checks periodDays against Kepler's third law for a body of
// negligible mass with semi-major axis aAU.
//
// relTol is a fraction of the period.  A relTol <= 0 selects
// DefaultKeplerTolerance.
func KeplerCheck(aAU, periodDays, relTol float64) (KeplerResult, error) {
	kp, err := KeplerPeriod(aAU)
	if err != nil {
		return KeplerResult{}, err
	}
	if err := checkPeriod(periodDays); err != nil {
		return KeplerResult{}, err
	}
	if !(relTol > 0) {
		relTol = DefaultKeplerTolerance
	}
	r := KeplerResult{
		SemiMajorAxisAU: aAU,
		PeriodDays:      periodDays,
		KeplerPeriod:    kp,
		RelDiff:         (periodDays - kp) / kp,
	}
	r.Consistent = math.Abs(r.RelDiff) < relTol
	return r, nil
}
