// Public domain.

package jdate

import (
	"fmt"
	"math"
)

// Epoch is a point in time given as a Julian date, a calendar date, or both.
//
// The zero value has neither and is not a valid epoch.
type Epoch struct {
	jd      float64
	date    Date
	hasJD   bool
	hasDate bool
}

// EpochFromJD returns an epoch given by Julian date.
func EpochFromJD(j float64) Epoch {
	return Epoch{jd: j, hasJD: true}
}

// EpochFromDate returns an epoch given by calendar date.
func EpochFromDate(d Date) Epoch {
	return Epoch{date: d, hasDate: true}
}

// EpochFromBoth returns an epoch carrying both representations.  Validate
// checks that they agree.
func EpochFromBoth(j float64, d Date) Epoch {
	return Epoch{jd: j, date: d, hasJD: true, hasDate: true}
}

// IsZero reports whether e carries neither a JD nor a date.
func (e Epoch) IsZero() bool {
	return !e.hasJD && !e.hasDate
}

// JD returns the Julian date of e.  When both representations are present
// the JD is authoritative.
func (e Epoch) JD() (float64, error) {
	switch {
	case e.hasJD:
		if err := checkJD(e.jd); err != nil {
			return 0, err
		}
		return e.jd, nil
	case e.hasDate:
		return DateToJD(e.date)
	}
	return 0, fmt.Errorf("%w: empty epoch", ErrInvalidEpoch)
}

// Date returns the calendar date of e, converting from JD if needed.
func (e Epoch) Date() (Date, error) {
	switch {
	case e.hasDate:
		if !e.date.exists() {
			return Date{}, fmt.Errorf("%w: no such date %s", ErrInvalidEpoch, e.date)
		}
		return e.date, nil
	case e.hasJD:
		return JDToDate(e.jd)
	}
	return Date{}, fmt.Errorf("%w: empty epoch", ErrInvalidEpoch)
}

// Validate checks that e is convertible and, when both a JD and a date are
// present, that they agree to within one day.
func (e Epoch) Validate() error {
	j, err := e.JD()
	if err != nil {
		return err
	}
	if !(e.hasJD && e.hasDate) {
		return nil
	}
	dj, err := DateToJD(e.date)
	if err != nil {
		return err
	}
	if math.Abs(dj-j) >= 1 {
		return fmt.Errorf("%w: JD %.1f and date %s (JD %.1f) disagree",
			ErrInvalidEpoch, j, e.date, dj)
	}
	return nil
}

func (e Epoch) String() string {
	switch {
	case e.hasJD && e.hasDate:
		return fmt.Sprintf("JD %.1f (%s)", e.jd, e.date)
	case e.hasJD:
		if d, err := JDToDate(e.jd); err == nil {
			return fmt.Sprintf("JD %.1f (%s)", e.jd, d)
		}
		return fmt.Sprintf("JD %v", e.jd)
	case e.hasDate:
		return e.date.String()
	}
	return "no epoch"
}

// AgeAt returns the signed whole days from e to target, positive when
// target is after e.
func (e Epoch) AgeAt(target Epoch) (float64, error) {
	ej, err := e.JD()
	if err != nil {
		return 0, err
	}
	tj, err := target.JD()
	if err != nil {
		return 0, err
	}
	return DaysBetween(tj, ej), nil
}
