// Public domain.

package edprog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/soniakeys/epochdiag/internal/report"
	"github.com/soniakeys/epochdiag/internal/scenario"
)

type outputOptions struct {
	json bool
	text report.TextOptions
}

func defaultOutput() outputOptions {
	return outputOptions{text: report.TextOptions{Headings: true}}
}

var rxSetting = regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+)$`)

// parseConfig reads config file lines into opt and out.
//
// Empty lines and lines beginning with # are ignored.  Other lines are
// a keyword, or a setting "name=value" or "name body=value".
func parseConfig(r io.Reader, opt *report.Options, out *outputOptions) error {
	// setting parses the text following a setting name.  body is "" for
	// the default.
	setting := func(s string) (body string, v float64, err error) {
		ss := rxSetting.FindStringSubmatch(s)
		if len(ss) != 3 {
			return "", 0, fmt.Errorf("invalid format, want name=value")
		}
		v, err = strconv.ParseFloat(ss[2], 64)
		return ss[1], v, err
	}
	perBody := func(m *map[string]float64, body string, v float64) {
		if *m == nil {
			*m = make(map[string]float64)
		}
		(*m)[body] = v
	}

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		ls := strings.TrimSpace(sc.Text())
		if ls == "" || ls[0] == '#' {
			continue
		}
		switch ls {
		case "headings":
			out.text.Headings = true
			continue
		case "noheadings":
			out.text.Headings = false
			continue
		case "sexagesimal":
			out.text.Sexagesimal = true
			continue
		case "decimal":
			out.text.Sexagesimal = false
			continue
		case "json":
			out.json = true
			continue
		case "text":
			out.json = false
			continue
		}
		name := ls
		if i := strings.IndexAny(ls, " \t="); i > 0 {
			name = ls[:i]
		}
		body, v, err := setting(ls[len(name):])
		if err == nil {
			switch {
			case v < 0:
				err = fmt.Errorf("negative value")
			case name == "tolerance" && body == "":
				opt.Tolerances.Default = v
			case name == "tolerance":
				perBody(&opt.Tolerances.ByBody, body, v)
			case name == "rate" && body == "":
				opt.Drift.PerturbationRateKmPerDay = v
			case name == "rate":
				perBody(&opt.Drift.RateByBody, body, v)
			case body != "":
				err = fmt.Errorf("%s is not set per body", name)
			case name == "kepler":
				opt.KeplerTolerance = v
			case name == "period":
				opt.Drift.DefaultPeriodDays = v
			case name == "stale":
				opt.Drift.StaleThresholdKm = v
			case name == "band":
				opt.Band = v
			default:
				err = fmt.Errorf("unrecognized")
			}
		}
		if err != nil {
			return fmt.Errorf("config file line %d: %s: %v", ln, ls, err)
		}
	}
	return sc.Err()
}

// unknownBodies returns warnings for per-body settings naming bodies not in
// the scenario.  likely a typo.
func unknownBodies(s *scenario.Scenario, opt report.Options) (w []string) {
	check := func(what string, m map[string]float64) {
		for name := range m {
			if _, ok := s.Body(name); !ok {
				w = append(w, fmt.Sprintf("config: %s for unknown body %q", what, name))
			}
		}
	}
	check("tolerance", opt.Tolerances.ByBody)
	check("rate", opt.Drift.RateByBody)
	sort.Strings(w)
	return
}
