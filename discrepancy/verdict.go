// Public domain.

package discrepancy

import "fmt"

// Verdict is the diagnosis drawn from a Summary.
type Verdict int

const (
	// Insufficient, fewer than two bodies, nothing to compare.
	Insufficient Verdict = iota
	// NoBias, all factors are within the band of 1.
	NoBias
	// Systemic, factors cluster away from 1.
	Systemic
	// BodySpecific, factors scatter.
	BodySpecific
)

// VList describes the verdicts, indexed by Verdict.
var VList = []struct {
	Abbr, Heading, Advice string
}{
	{"insufficient", "Insufficient data",
		"compare at least two bodies"},
	{"none", "No bias",
		"computed distances agree with expected"},
	{"systemic", "Systemic error",
		"errors share a scale; look for a units or scale bug"},
	{"body-specific", "Body specific error",
		"errors are independent; look at per-body epochs and perturbations"},
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(VList) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return VList[v].Abbr
}

// Heading returns a short title for v.
func (v Verdict) Heading() string {
	if v < 0 || int(v) >= len(VList) {
		return v.String()
	}
	return VList[v].Heading
}

// Advice returns what to look at next.
func (v Verdict) Advice() string {
	if v < 0 || int(v) >= len(VList) {
		return ""
	}
	return VList[v].Advice
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
