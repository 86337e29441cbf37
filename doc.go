/*
Command epochdiag checks orbital elements for epoch and unit consistency.

Contents

  Program overview
  Command line usage
  Scenario files
  Configuration
  Diagnostics


Program overview

Input is a YAML scenario: a set of bodies with orbital elements and the
epoch those elements are valid for, a target date, and optionally close
approaches with an expected and a computed minimum distance.  Output is a
report with four parts.

  Epochs       the age of each body's elements at the target date and an
               estimate of the position error accumulated over that age
  Mean motion  tabulated mean motion checked against the orbital period,
               in both deg/day and rad/day, and the period checked against
               Kepler's third law
  Approaches   the ratio of computed to expected distance for each close
               approach, and whether the ratios share an order of magnitude
  Notes        findings worth a closer look

Sample run using testdata/oct2025.yaml:

  epochdiag testdata/oct2025.yaml

The approaches in that file have computed distances about ten times the
expected distances.  Ratios of 10.01 and 12.41 share an order of
magnitude, so the verdict is a systemic error, the signature of a units or
scale bug rather than of stale or perturbed elements.


Command line usage

  epochdiag [options] <scenario>    diagnose scenario file
  epochdiag [options] -             diagnose scenario from stdin
  epochdiag -h                      display help and quick reference
  epochdiag -v                      display version and copyright

Options:

  -c <config-file>   read configuration from the named file
  -j                 write the report as JSON

Without -c, epochdiag reads epochdiag.config from the current directory if
it exists.  A file named with -c is required to exist.


Scenario files

  name: close approaches, October 2025
  target: 2025-10-04
  bodies:
    - name: Icarus
      a: 1.078            # semi-major axis, AU
      period: 409         # days
      mean_motion: 0.8805 # deg/day as tabulated
      epoch_jd: 2461000.5
      epoch: 2025-11-21
  approaches:
    - body: Icarus
      date: 2025-06-16
      expected_km: 8.0e6
      computed_km: 8.1e6

A target is given as target (a calendar date) or target_jd.  An epoch is
given as epoch_jd, epoch, or both.  A JD of 0 is a valid epoch, noon
4713 BC January 1.  When both are given they must agree
within a day.  Dates are Gregorian from 1582-10-15 and Julian before.
Dates may include a time of day as "2006-01-02 15:04:05" or RFC 3339.
Every approach must name a listed body.  Unknown keys are errors.


Configuration

The config file is line oriented.  Empty lines and lines starting with #
are ignored.  Allowable keywords:

  headings     section headings and column titles (default)
  noheadings
  decimal      accumulated anomaly in decimal degrees (default)
  sexagesimal  anomaly reduced to one turn, in degrees, minutes, seconds
  text         text report (default)
  json

Settings:

  tolerance=0.01    mean motion tolerance, deg/day
  kepler=0.01       Kepler period tolerance, fraction of period
  rate=1            perturbation rate, km/day of epoch age, 0 for none
  period=365.256363004  period in days for bodies with neither a stated
                    period nor a semi-major axis
  stale=10000       position error in km above which an epoch is stale,
                    0 to flag every nonzero error
  band=2            ratio of largest to smallest error factor for a
                    common order of magnitude

Tolerance and rate may be set per body, as in,

  tolerance Icarus = 0.005
  rate 2025 SY10=2.5

Per body settings for bodies not in the scenario are reported as warnings.


Diagnostics

Epoch drift is a heuristic.  Position error is taken as proportional to
epoch age at the configured rate.  It is a figure for ranking bodies by how
much their elements need updating, not an ephemeris uncertainty.

A tabulated mean motion is classified as consistent, as a unit mismatch
when it matches the rad/day value but not the deg/day value, as
inconsistent when it matches neither, or as ambiguous when it matches both.

Approach error factors are computed/expected.  With fewer than two
approaches the verdict is insufficient.  When every factor is within band
of 1 the verdict is no bias.  Otherwise, when the largest factor is within
band of the smallest, the errors share a scale and the verdict is systemic.
Factors that do not share a scale give a body-specific verdict.
*/
package main
