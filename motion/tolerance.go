// Public domain.

package motion

// Tolerances holds mean motion tolerances, a default and per-body
// overrides, as read from a config file.
type Tolerances struct {
	Default float64
	ByBody  map[string]float64
}

// For returns the tolerance to use for the named body.
func (t Tolerances) For(name string) float64 {
	// look for a config file specified tolerance for this body
	if tol, ok := t.ByBody[name]; ok && tol > 0 {
		return tol
	}
	// not there, fall back on default, which may itself have been
	// configured or may be zero, meaning the package default.
	if t.Default > 0 {
		return t.Default
	}
	return DefaultTolerance
}
