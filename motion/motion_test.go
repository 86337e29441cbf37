// Public domain.

package motion_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/epochdiag/motion"
)

func ExampleValidateTabulated() {
	// Icarus, period 409 days, catalog mean motion .8805
	v, err := motion.ValidateTabulated(.8805, 409, motion.DefaultTolerance)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("expected %.6f deg/day\n", v.Expected.DegPerDay)
	fmt.Printf("delta    %.5f\n", v.Delta)
	fmt.Println("deg/day:", v.ConsistentWithDegPerDay)
	fmt.Println(v.Finding)
	// Output:
	// expected 0.880196 deg/day
	// delta    0.00030
	// deg/day: true
	// consistent
}

func TestIdentity(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 5000; i++ {
		p := math.Pow(10, rnd.Float64()*8-2) // .01 to 1e6 days
		n, err := motion.Correct(p)
		if err != nil {
			t.Fatal(err)
		}
		if d := n.DegPerDay*p - 360; math.Abs(d) > 1e-9 {
			t.Fatalf("period %v: deg/day * period - 360 = %v", p, d)
		}
		if d := n.RadPerDay*p - 2*math.Pi; math.Abs(d) > 1e-12 {
			t.Fatalf("period %v: rad/day * period - 2π = %v", p, d)
		}
	}
}

func TestInvalidPeriod(t *testing.T) {
	for _, p := range []float64{0, -409, math.NaN(), math.Inf(1)} {
		if _, err := motion.Correct(p); !errors.Is(err, motion.ErrInvalidPeriod) {
			t.Errorf("Correct(%v) err = %v", p, err)
		}
		if _, err := motion.ValidateTabulated(.88, p, 0); !errors.Is(err, motion.ErrInvalidPeriod) {
			t.Errorf("ValidateTabulated period %v err = %v", p, err)
		}
	}
	if _, err := motion.PeriodFromMeanMotion(0); !errors.Is(err, motion.ErrInvalidPeriod) {
		t.Errorf("PeriodFromMeanMotion(0) err = %v", err)
	}
}

func TestInvalidMeanMotion(t *testing.T) {
	for _, n := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := motion.ValidateTabulated(n, 409, 0); !errors.Is(err, motion.ErrInvalidMeanMotion) {
			t.Errorf("ValidateTabulated(%v) err = %v", n, err)
		}
	}
}

func TestFindings(t *testing.T) {
	radPerDay := 2 * math.Pi / 409
	for _, tc := range []struct {
		tab  float64
		want motion.Finding
	}{
		{.8805, motion.UnitsConsistent},
		{radPerDay, motion.UnitMismatchDetected},
		{5, motion.Inconsistent},
		{math.NaN(), motion.Inconsistent},
	} {
		v, err := motion.ValidateTabulated(tc.tab, 409, 0)
		if err != nil {
			t.Fatal(err)
		}
		if v.Finding != tc.want {
			t.Errorf("tabulated %v: finding %s, want %s", tc.tab, v.Finding, tc.want)
		}
		if v.Tolerance != motion.DefaultTolerance {
			t.Errorf("tolerance %v, want default", v.Tolerance)
		}
	}
	// very slow motion with a loose tolerance matches either reading
	v, err := motion.ValidateTabulated(0, 1e6, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v.Finding != motion.Ambiguous {
		t.Errorf("finding %s, want ambiguous", v.Finding)
	}
}

func TestConversions(t *testing.T) {
	want := .8805 * math.Pi / 180 / 86400
	if got := motion.ToRadiansPerSecond(.8805); math.Abs(got-want) > 1e-20 {
		t.Errorf("ToRadiansPerSecond = %g, want %g", got, want)
	}
	n, _ := motion.Correct(409)
	if math.Abs(n.RadPerSec()-motion.ToRadiansPerSecond(n.DegPerDay)) > 1e-20 {
		t.Errorf("RadPerSec = %g", n.RadPerSec())
	}
	if math.Abs(n.PerDay().Deg()-n.DegPerDay) > 1e-12 {
		t.Errorf("PerDay = %v deg", n.PerDay().Deg())
	}
	p, err := motion.PeriodFromMeanMotion(n.DegPerDay)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p-409) > 1e-9 {
		t.Errorf("PeriodFromMeanMotion = %v", p)
	}
}

func TestKeplerCheck(t *testing.T) {
	r, err := motion.KeplerCheck(1.078, 409, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Consistent {
		t.Errorf("Icarus: Kepler period %.3f, rel diff %.4f", r.KeplerPeriod, r.RelDiff)
	}
	r, err = motion.KeplerCheck(1, 365.256363004, 1e-4)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Consistent {
		t.Errorf("Earth: Kepler period %.6f", r.KeplerPeriod)
	}
	r, _ = motion.KeplerCheck(1.078, 40.9, 0)
	if r.Consistent {
		t.Error("period off by 10x reported consistent")
	}
	if _, err := motion.KeplerCheck(0, 409, 0); !errors.Is(err, motion.ErrInvalidAxis) {
		t.Errorf("zero axis err = %v", err)
	}
}

func TestTolerances(t *testing.T) {
	var zero motion.Tolerances
	if zero.For("Icarus") != motion.DefaultTolerance {
		t.Error("zero Tolerances should give package default")
	}
	tol := motion.Tolerances{
		Default: .02,
		ByBody:  map[string]float64{"Icarus": .005},
	}
	if got := tol.For("Icarus"); got != .005 {
		t.Errorf("Icarus tolerance %v", got)
	}
	if got := tol.For("Orpheus"); got != .02 {
		t.Errorf("Orpheus tolerance %v", got)
	}
}
