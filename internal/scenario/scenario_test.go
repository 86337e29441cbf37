// Public domain.

package scenario_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/soniakeys/epochdiag/internal/scenario"
	"github.com/soniakeys/epochdiag/jdate"
	"github.com/soniakeys/epochdiag/motion"
)

func TestReadFile(t *testing.T) {
	s, err := scenario.ReadFile("../../testdata/oct2025.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bodies) != 4 || len(s.Approaches) != 2 {
		t.Fatalf("%d bodies, %d approaches", len(s.Bodies), len(s.Approaches))
	}
	tj, err := s.Target.JD()
	if err != nil {
		t.Fatal(err)
	}
	if tj != 2460952.5 {
		t.Errorf("target JD %v", tj)
	}
	icarus, ok := s.Body("Icarus")
	if !ok {
		t.Fatal("no Icarus")
	}
	if icarus.PeriodDays != 409 || icarus.TabulatedMeanMotion != .8805 {
		t.Errorf("Icarus %+v", icarus)
	}
	if d, _ := icarus.Epoch.Date(); d != jdate.NewDate(2025, 11, 21) {
		t.Errorf("Icarus epoch date %s", d)
	}
	a := s.Approaches[1]
	if a.Body.Name != "Orpheus" || a.Date != jdate.NewDate(2025, 11, 19) ||
		a.ExpectedDistanceKm != 5.673e6 || a.ComputedDistanceKm != 70.4e6 {
		t.Errorf("approach %+v", a)
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want jdate.Date
	}{
		{"2025-10-04", jdate.NewDate(2025, 10, 4)},
		{" 2000-01-01 12:00:00 ", jdate.Date{Year: 2000, Month: 1, Day: 1, Hour: 12}},
		{"2000-01-01 06:30", jdate.Date{Year: 2000, Month: 1, Day: 1, Hour: 6, Minute: 30}},
		{"2025-11-21T03:00:00+02:00", jdate.Date{Year: 2025, Month: 11, Day: 21, Hour: 1}},
	} {
		got, err := scenario.ParseDate(tc.s)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.s, got, tc.want)
		}
	}
	if _, err := scenario.ParseDate("4 Oct 2025"); !errors.Is(err, jdate.ErrInvalidEpoch) {
		t.Errorf("err = %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct{ name, yaml, want string }{
		{"no target", `
bodies:
  - name: Earth
    epoch_jd: 2451545
`, "target"},
		{"unknown key", `
target: 2025-10-04
bodies:
  - name: Earth
    epoch_jd: 2451545
    epcoh: 2000-01-01
`, "epcoh"},
		{"no epoch", `
target: 2025-10-04
bodies:
  - name: Earth
`, "Earth"},
		{"epochs disagree", `
target: 2025-10-04
bodies:
  - name: Icarus
    epoch_jd: 2461000.5
    epoch: 2025-12-21
`, "disagree"},
		{"duplicate", `
target: 2025-10-04
bodies:
  - name: Icarus
    epoch_jd: 2461000.5
  - name: Icarus
    epoch_jd: 2461000.5
`, "twice"},
		{"nan mean motion", `
target: 2025-10-04
bodies:
  - name: Icarus
    period: 409
    mean_motion: .nan
    epoch_jd: 2461000.5
`, "invalid mean motion"},
		{"inf mean motion", `
target: 2025-10-04
bodies:
  - name: Icarus
    period: 409
    mean_motion: -.inf
    epoch_jd: 2461000.5
`, "Icarus"},
		{"unknown body", `
target: 2025-10-04
approaches:
  - body: Apophis
    date: 2029-04-13
    expected_km: 38000
    computed_km: 38000
`, "Apophis"},
	} {
		_, err := scenario.Read(strings.NewReader(tc.yaml))
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestReadMeanMotionError(t *testing.T) {
	_, err := scenario.Read(strings.NewReader(`
target: 2025-10-04
bodies:
  - name: Icarus
    period: 409
    mean_motion: .inf
    epoch_jd: 2461000.5
`))
	if !errors.Is(err, motion.ErrInvalidMeanMotion) {
		t.Errorf("err = %v", err)
	}
}

func TestReadJDZero(t *testing.T) {
	s, err := scenario.Read(strings.NewReader(`
target_jd: 0
bodies:
  - name: Origin
    epoch_jd: 0
`))
	if err != nil {
		t.Fatal(err)
	}
	if j, err := s.Target.JD(); err != nil || j != 0 {
		t.Errorf("target JD %v, %v", j, err)
	}
	b, _ := s.Body("Origin")
	d, err := b.Epoch.Date()
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "-4712-01-01 12:00:00" {
		t.Errorf("JD 0 epoch %s", d)
	}
}
