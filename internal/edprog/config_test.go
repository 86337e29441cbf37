// Public domain.

package edprog

import (
	"strings"
	"testing"

	"github.com/soniakeys/epochdiag/internal/report"
	"github.com/soniakeys/epochdiag/internal/scenario"
)

func TestParseConfig(t *testing.T) {
	opt := report.DefaultOptions()
	out := defaultOutput()
	err := parseConfig(strings.NewReader(`
# comment
noheadings
sexagesimal
json
tolerance=0.02
tolerance Icarus = 0.005
tolerance 2025 SY10=0.001
kepler = 0.05
rate=1.5
rate	Earth = 3
period=400
stale=5000
band=3
`), &opt, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.text.Headings || !out.text.Sexagesimal || !out.json {
		t.Errorf("output options %+v", out)
	}
	if opt.Tolerances.Default != .02 ||
		opt.Tolerances.For("Icarus") != .005 ||
		opt.Tolerances.For("2025 SY10") != .001 ||
		opt.Tolerances.For("Orpheus") != .02 {
		t.Errorf("tolerances %+v", opt.Tolerances)
	}
	if opt.KeplerTolerance != .05 {
		t.Errorf("kepler %v", opt.KeplerTolerance)
	}
	d := opt.Drift
	if d.PerturbationRateKmPerDay != 1.5 || d.RateByBody["Earth"] != 3 ||
		d.DefaultPeriodDays != 400 || d.StaleThresholdKm != 5000 {
		t.Errorf("drift %+v", d)
	}
	if opt.Band != 3 {
		t.Errorf("band %v", opt.Band)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	opt := report.DefaultOptions()
	out := defaultOutput()
	if err := parseConfig(strings.NewReader("\n# nothing\n"), &opt, &out); err != nil {
		t.Fatal(err)
	}
	if !out.text.Headings || out.text.Sexagesimal || out.json {
		t.Errorf("output options %+v", out)
	}
	def := report.DefaultOptions()
	if opt.Tolerances.Default != def.Tolerances.Default || opt.Band != def.Band ||
		opt.Drift.PerturbationRateKmPerDay != def.Drift.PerturbationRateKmPerDay {
		t.Errorf("options changed: %+v", opt)
	}
}

func TestParseConfigZero(t *testing.T) {
	opt := report.DefaultOptions()
	out := defaultOutput()
	if err := parseConfig(strings.NewReader("rate=0\nstale=0\n"), &opt, &out); err != nil {
		t.Fatal(err)
	}
	if opt.Drift.PerturbationRateKmPerDay != 0 || opt.Drift.StaleThresholdKm != 0 {
		t.Errorf("drift %+v", opt.Drift)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, c := range []string{
		"band 2",
		"band=two",
		"rate=-1",
		"stale Earth=100",
		"frobnicate=1",
		"colour",
	} {
		opt := report.DefaultOptions()
		out := defaultOutput()
		err := parseConfig(strings.NewReader("headings\n"+c+"\n"), &opt, &out)
		if err == nil {
			t.Errorf("%q: no error", c)
			continue
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("%q: error %q does not give line", c, err)
		}
	}
}

func TestUnknownBodies(t *testing.T) {
	s, err := scenario.Read(strings.NewReader(`
target: 2025-10-04
bodies:
  - name: Icarus
    period: 409
    epoch_jd: 2461000.5
`))
	if err != nil {
		t.Fatal(err)
	}
	opt := report.DefaultOptions()
	opt.Tolerances.ByBody = map[string]float64{"Icarus": .005, "Ikarus": .005}
	opt.Drift.RateByBody = map[string]float64{"Earth": 2}
	w := unknownBodies(s, opt)
	if len(w) != 2 {
		t.Fatalf("warnings %q", w)
	}
	if !strings.Contains(w[0], `rate for unknown body "Earth"`) ||
		!strings.Contains(w[1], `tolerance for unknown body "Ikarus"`) {
		t.Errorf("warnings %q", w)
	}
}
