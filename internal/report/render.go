// Public domain.

package report

import (
	"bufio"
	"fmt"
	"io"
	"math"

	json "github.com/goccy/go-json"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TextOptions select parts of the text rendering.
type TextOptions struct {
	Headings    bool // section headings and column titles
	Sexagesimal bool // anomaly in d°m′s″ rather than decimal degrees
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteText writes r as a human readable report.
func (r *Report) WriteText(w io.Writer, opt TextOptions) error {
	bw := bufio.NewWriter(w)
	// grouped digits for km figures
	p := message.NewPrinter(language.English)
	km := func(x float64) string { return p.Sprintf("%d", int64(math.Round(x))) }

	if opt.Headings {
		if r.Name > "" {
			fmt.Fprintf(bw, "%s\n", r.Name)
		}
		fmt.Fprintf(bw, "Target %s  JD %.1f\n", r.TargetDate, r.TargetJD)
	}

	// epochs and drift
	if opt.Headings {
		fmt.Fprintf(bw, "\nEpochs\n")
		fmt.Fprintf(bw, "%-12s %11s  %-19s %8s %6s %8s  %s\n",
			"Body", "Epoch JD", "Epoch date", "Age d", "Cycles", "Error km", "Anomaly")
	}
	for _, b := range r.Bodies {
		d := b.Drift
		stale := ""
		if d.Stale {
			stale = "  stale"
		}
		fmt.Fprintf(bw, "%-12s %11.1f  %-19s %8.0f %6.2f %8s  %s%s\n",
			b.Name, b.EpochJD, b.EpochDate.String(), d.EpochAgeDays,
			d.OrbitalCycles, km(d.PositionErrorKm),
			anomaly(d.AccumulatedAnomalyDeg, opt.Sexagesimal), stale)
	}

	// mean motion and period checks
	if opt.Headings {
		fmt.Fprintf(bw, "\nMean motion\n")
		fmt.Fprintf(bw, "%-12s %10s %10s %10s  %-13s %10s %8s\n",
			"Body", "Tabulated", "deg/day", "Delta", "Finding", "Kepler P", "Rel diff")
	}
	for _, b := range r.Bodies {
		if b.MeanMotion == nil && b.Kepler == nil {
			continue
		}
		fmt.Fprintf(bw, "%-12s ", b.Name)
		if v := b.MeanMotion; v != nil {
			fmt.Fprintf(bw, "%10.6f %10.6f %10.6f  %-13s", v.Tabulated,
				v.Expected.DegPerDay, v.Delta, v.Finding.String())
		} else {
			fmt.Fprintf(bw, "%10s %10s %10s  %-13s", "-", "-", "-", "-")
		}
		if k := b.Kepler; k != nil {
			fmt.Fprintf(bw, " %10.3f", k.KeplerPeriod)
			if k.PeriodDays != 0 {
				fmt.Fprintf(bw, " %8.5f", k.RelDiff)
			}
		}
		fmt.Fprintf(bw, "\n")
	}

	// approach distances
	if len(r.Discrepancies) > 0 {
		if opt.Headings {
			fmt.Fprintf(bw, "\nApproaches\n")
			fmt.Fprintf(bw, "%-12s %-10s %6s %12s %12s %7s\n",
				"Body", "Date", "Age d", "Expected km", "Computed km", "Factor")
		}
		for _, d := range r.Discrepancies {
			fmt.Fprintf(bw, "%-12s %-10s %6.0f %12s %12s %6.2fx\n",
				d.Body, d.ApproachDate.String(), d.EpochAgeDays,
				km(d.ExpectedKm), km(d.ComputedKm), d.ErrorFactor)
		}
		s := r.Summary
		fmt.Fprintf(bw, "Median factor %.2fx, range %.2fx to %.2fx, band %gx: %s\n",
			s.MedianErrorFactor, s.MinErrorFactor, s.MaxErrorFactor, s.Band,
			s.Verdict.Heading())
		if a := s.Verdict.Advice(); a > "" {
			fmt.Fprintf(bw, "  %s\n", a)
		}
	}

	if len(r.Notes) > 0 {
		if opt.Headings {
			fmt.Fprintf(bw, "\nNotes\n")
		}
		for _, n := range r.Notes {
			fmt.Fprintf(bw, "  %s\n", n)
		}
	}
	return bw.Flush()
}

// anomaly formats accumulated anomaly.  sexagesimal shows the angle
// reduced to one turn, decimal shows the full accumulated value.
func anomaly(deg float64, dms bool) string {
	if !dms {
		return fmt.Sprintf("%.1f°", deg)
	}
	return fmt.Sprintf("%.1d", sexa.FmtAngle(unit.AngleFromDeg(math.Mod(deg, 360))))
}
