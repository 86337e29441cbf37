// Public domain.

// Package scenario reads the literal orbital parameters for a diagnostic
// run from a YAML file.
//
// Example:
//
//	name: close approaches, October 2025
//	target: 2025-10-04
//	bodies:
//	  - name: Earth
//	    a: 1
//	    epoch_jd: 2451545.0
//	  - name: Icarus
//	    a: 1.078
//	    period: 409
//	    mean_motion: 0.8805
//	    epoch_jd: 2461000.5
//	    epoch: 2025-11-21
//	approaches:
//	  - body: Icarus
//	    date: 2025-11-20
//	    expected_km: 6.1e6
//	    computed_km: 60.5e6
//
// Dates are YYYY-MM-DD with an optional time, "YYYY-MM-DD hh:mm:ss" or
// RFC 3339, taken as UTC.  A body needs epoch_jd, epoch, or both.  Either
// target or target_jd is required.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/soniakeys/epochdiag/jdate"
	"github.com/soniakeys/epochdiag/motion"
	"github.com/soniakeys/epochdiag/orbit"
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Name       string
	Target     jdate.Epoch
	Bodies     []orbit.Body
	Approaches []orbit.ApproachEvent
}

// Body returns the named body.
func (s *Scenario) Body(name string) (orbit.Body, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return orbit.Body{}, false
}

type fileYAML struct {
	Name       string         `yaml:"name"`
	Target     string         `yaml:"target"`
	TargetJD   *float64       `yaml:"target_jd"`
	Bodies     []bodyYAML     `yaml:"bodies"`
	Approaches []approachYAML `yaml:"approaches"`
}

type bodyYAML struct {
	Name       string   `yaml:"name"`
	A          float64  `yaml:"a"`
	Period     float64  `yaml:"period"`
	MeanMotion float64  `yaml:"mean_motion"`
	EpochJD    *float64 `yaml:"epoch_jd"`
	Epoch      string   `yaml:"epoch"`
}

type approachYAML struct {
	Body       string  `yaml:"body"`
	Date       string  `yaml:"date"`
	ExpectedKm float64 `yaml:"expected_km"`
	ComputedKm float64 `yaml:"computed_km"`
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseDate parses a scenario date.
func ParseDate(s string) (jdate.Date, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return jdate.DateFromTime(t), nil
		}
	}
	return jdate.Date{}, fmt.Errorf("%w: unrecognized date %q", jdate.ErrInvalidEpoch, s)
}

// epoch combines an optional JD and an optional date.  JD 0 is a valid
// epoch, a nil jd is an absent one.
func epoch(jd *float64, date string) (jdate.Epoch, error) {
	switch {
	case jd != nil && date != "":
		d, err := ParseDate(date)
		if err != nil {
			return jdate.Epoch{}, err
		}
		return jdate.EpochFromBoth(*jd, d), nil
	case jd != nil:
		return jdate.EpochFromJD(*jd), nil
	case date != "":
		d, err := ParseDate(date)
		if err != nil {
			return jdate.Epoch{}, err
		}
		return jdate.EpochFromDate(d), nil
	}
	return jdate.Epoch{}, errors.New("no epoch")
}

// Read decodes a scenario.  Unknown keys are errors.
func Read(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f fileYAML
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s := &Scenario{Name: f.Name}
	var err error
	if s.Target, err = epoch(f.TargetJD, f.Target); err != nil {
		return nil, fmt.Errorf("scenario target: %w", err)
	}
	if err = s.Target.Validate(); err != nil {
		return nil, fmt.Errorf("scenario target: %w", err)
	}
	for _, by := range f.Bodies {
		if by.Name == "" {
			return nil, errors.New("scenario: body with no name")
		}
		if _, dup := s.Body(by.Name); dup {
			return nil, fmt.Errorf("scenario: body %s listed twice", by.Name)
		}
		if math.IsNaN(by.MeanMotion) || math.IsInf(by.MeanMotion, 0) {
			return nil, fmt.Errorf("scenario body %s: %w: %v",
				by.Name, motion.ErrInvalidMeanMotion, by.MeanMotion)
		}
		ep, err := epoch(by.EpochJD, by.Epoch)
		if err != nil {
			return nil, fmt.Errorf("scenario body %s: %w", by.Name, err)
		}
		if err = ep.Validate(); err != nil {
			return nil, fmt.Errorf("scenario body %s: %w", by.Name, err)
		}
		s.Bodies = append(s.Bodies, orbit.Body{
			Name:                by.Name,
			SemiMajorAxisAU:     by.A,
			PeriodDays:          by.Period,
			TabulatedMeanMotion: by.MeanMotion,
			Epoch:               ep,
		})
	}
	for i, ay := range f.Approaches {
		b, ok := s.Body(ay.Body)
		if !ok {
			return nil, fmt.Errorf("scenario approach %d: unknown body %q", i+1, ay.Body)
		}
		d, err := ParseDate(ay.Date)
		if err != nil {
			return nil, fmt.Errorf("scenario approach %d (%s): %w", i+1, ay.Body, err)
		}
		s.Approaches = append(s.Approaches, orbit.ApproachEvent{
			Body:               b,
			Date:               d,
			ExpectedDistanceKm: ay.ExpectedKm,
			ComputedDistanceKm: ay.ComputedKm,
		})
	}
	return s, nil
}

// ReadFile reads a scenario file.  File name "-" reads stdin.
func ReadFile(fn string) (*Scenario, error) {
	if fn == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
