// Public domain.

// Package jdate converts between calendar dates and Julian dates.
//
// Dates on or after 1582 October 15 (JD 2299160.5) are Gregorian, earlier
// dates are in the Julian calendar.  Julian days begin at noon, so a JD
// ending in .5 is midnight and the half day is carried explicitly in the
// time of day of a Date.
package jdate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/carlosjhr64/jd"
	"github.com/soniakeys/meeus/v3/julian"
)

// ErrInvalidEpoch is returned for Julian dates or calendar dates that
// cannot be converted.
var ErrInvalidEpoch = errors.New("invalid epoch")

// MaxJD bounds the Julian dates accepted, a little under year 270000.
const MaxJD = 1e8

// J2000 epoch, 2000 January 1.5.
const J2000 = 2451545.0

const (
	secPerDay = 86400
	msPerDay  = secPerDay * 1000
)

// first day of the Gregorian calendar
var gregorianStart = Date{Year: 1582, Month: 10, Day: 15}

const gregorianStartJD = 2299160.5

// Date is a calendar date with optional time of day.
//
// Year is astronomical, year 0 is 1 BC.
type Date struct {
	Year, Month, Day int
	Hour, Minute     int
	Second           float64
}

// NewDate is a shortcut for a Date at midnight.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime returns the UTC calendar date and time of t.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	return Date{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// String formats d as YYYY-MM-DD, with the time appended if not midnight.
func (d Date) String() string {
	ymd := fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	switch {
	case d.Hour == 0 && d.Minute == 0 && d.Second == 0:
		return ymd
	case d.Second == math.Trunc(d.Second):
		return fmt.Sprintf("%s %02d:%02d:%02.0f", ymd, d.Hour, d.Minute, d.Second)
	}
	return fmt.Sprintf("%s %02d:%02d:%06.3f", ymd, d.Hour, d.Minute, d.Second)
}

// MarshalText implements encoding.TextMarshaler, in the format of String.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// dayFraction returns the time of day as a fraction of a day.
func (d Date) dayFraction() float64 {
	return (float64(d.Hour)*3600 + float64(d.Minute)*60 + d.Second) / secPerDay
}

// before compares calendar days only.
func (d Date) before(e Date) bool {
	switch {
	case d.Year != e.Year:
		return d.Year < e.Year
	case d.Month != e.Month:
		return d.Month < e.Month
	}
	return d.Day < e.Day
}

// exists reports whether d is a real calendar date with a valid time of day.
func (d Date) exists() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 ||
		d.Hour < 0 || d.Hour > 23 || d.Minute < 0 || d.Minute > 59 ||
		!(d.Second >= 0 && d.Second < 60) {
		return false
	}
	if !d.before(gregorianStart) {
		// a nonexistent day like Feb 30 lands on a different date
		// after a round trip through the day number.
		y, m, dd := jd.J2YMD(jd.YMD2J(d.Year, d.Month, d.Day))
		return y == d.Year && m == d.Month && dd == d.Day
	}
	if d.Year == 1582 && d.Month == 10 && d.Day > 4 {
		return false // dropped at the reform
	}
	return d.Day <= julianMonthDays(d.Year, d.Month)
}

func julianMonthDays(y, m int) int {
	switch m {
	case 2:
		if (y%4+4)%4 == 0 {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// DateToJD returns the Julian date of d.
func DateToJD(d Date) (float64, error) {
	if !d.exists() {
		return 0, fmt.Errorf("%w: no such date %s", ErrInvalidEpoch, d)
	}
	day := float64(d.Day) + d.dayFraction()
	var j float64
	if d.before(gregorianStart) {
		j = julian.CalendarJulianToJD(d.Year, d.Month, day)
	} else {
		j = julian.CalendarGregorianToJD(d.Year, d.Month, day)
	}
	if j < 0 || j > MaxJD {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidEpoch, d)
	}
	return j, nil
}

// JDToDate returns the calendar date and time of day of a Julian date.
//
// Time of day is rounded to the millisecond.
func JDToDate(j float64) (Date, error) {
	if err := checkJD(j); err != nil {
		return Date{}, err
	}
	j = math.Round(j*msPerDay) / msPerDay
	var y, m int
	var df float64
	if j < gregorianStartJD {
		y, m, df = jdToCalendarJulian(j)
	} else {
		y, m, df = julian.JDToCalendar(j)
	}
	day, frac := math.Modf(df)
	s := math.Round(frac*msPerDay) / 1000
	if s >= secPerDay {
		s = secPerDay - .001
	}
	h := int(s / 3600)
	s -= float64(h) * 3600
	min := int(s / 60)
	s -= float64(min) * 60
	return Date{
		Year:   y,
		Month:  m,
		Day:    int(day),
		Hour:   h,
		Minute: min,
		Second: math.Round(s*1000) / 1000,
	}, nil
}

// jdToCalendarJulian is the Julian calendar branch of Meeus' JD to
// calendar algorithm.  meeus/julian.JDToCalendar only takes it for days
// before 1582 October 5.
func jdToCalendarJulian(j float64) (year, month int, day float64) {
	zf, f := math.Modf(j + .5)
	b := int64(zf) + 1524
	c := int64((float64(b) - 122.1) / 365.25)
	d := int64(365.25 * float64(c))
	e := int64(float64(b-d) / 30.6001)
	day = float64(b-d-int64(30.6001*float64(e))) + f
	month = int(e - 1)
	if e >= 14 {
		month = int(e - 13)
	}
	year = int(c - 4716)
	if month <= 2 {
		year = int(c - 4715)
	}
	return
}

func checkJD(j float64) error {
	switch {
	case math.IsNaN(j) || math.IsInf(j, 0):
		return fmt.Errorf("%w: JD %v not finite", ErrInvalidEpoch, j)
	case j < 0 || j > MaxJD:
		return fmt.Errorf("%w: JD %v out of range", ErrInvalidEpoch, j)
	}
	return nil
}

// TimeToJD returns the Julian date of t, taken as UTC.
func TimeToJD(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JDToTime returns j as a UTC time.Time.
func JDToTime(j float64) (time.Time, error) {
	if err := checkJD(j); err != nil {
		return time.Time{}, err
	}
	return julian.JDToTime(j).UTC(), nil
}

// DaysBetween returns the signed number of whole days from epoch to target,
// floored as a calendar day difference is: half a day before epoch counts
// as -1.
func DaysBetween(target, epoch float64) float64 {
	// tolerance keeps an exact day count from flooring to one less
	return math.Floor(target - epoch + 1e-9)
}
