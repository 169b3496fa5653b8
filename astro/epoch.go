// SPDX-License-Identifier: MIT

// Package astro - epochs.
//
// An Epoch is a moment on the Julian day scale, stored as MJD2000
// (days since 2000-01-01 00:00). Conversions:
//
//	JD      = MJD2000 + 2451544.5
//	MJD     = MJD2000 + 51544
//
// No time-scale corrections (UTC/TT/TDB) are applied.

package astro

import (
	"fmt"
	"time"
)

// Epoch is a moment in time on the Julian day scale.
// The zero value is 2000-01-01 00:00.
type Epoch struct {
	mjd2000 float64
}

// EpochFromJD builds an epoch from a Julian date.
func EpochFromJD(jd float64) Epoch { return Epoch{mjd2000: jd - jdMJD2000} }

// EpochFromMJD builds an epoch from a modified Julian date.
func EpochFromMJD(mjd float64) Epoch { return Epoch{mjd2000: mjd - mjdMJD2000} }

// EpochFromMJD2000 builds an epoch from days since 2000-01-01 00:00.
func EpochFromMJD2000(d float64) Epoch { return Epoch{mjd2000: d} }

// EpochFromTime converts t (any location) to an epoch.
func EpochFromTime(t time.Time) Epoch {
	return EpochFromJD(float64(t.UnixNano())/1e9/Day2Sec + jdUnixEpoch)
}

// Calendar limits accepted by EpochFromGregorian.
const (
	minYear = 1000
	maxYear = 9999
)

// EpochFromGregorian builds the epoch at 00:00 of a Gregorian calendar day.
// Errors: ErrOutOfRange when year is outside [1000, 9999], month outside
// [1, 12], or day outside the month (leap years honoured).
func EpochFromGregorian(day, month, year int) (Epoch, error) {
	if year < minYear || year > maxYear {
		return Epoch{}, astroErrorf(opGregorian, fmt.Errorf("year %d not in [%d,%d]: %w", year, minYear, maxYear, ErrOutOfRange))
	}
	if month < 1 || month > 12 {
		return Epoch{}, astroErrorf(opGregorian, fmt.Errorf("month %d not in [1,12]: %w", month, ErrOutOfRange))
	}
	if last := daysIn(month, year); day < 1 || day > last {
		return Epoch{}, astroErrorf(opGregorian, fmt.Errorf("day %d not in [1,%d]: %w", day, last, ErrOutOfRange))
	}

	return EpochFromJD(float64(julianDayNumber(day, month, year)) - 0.5), nil
}

// julianDayNumber is the Fliegel–Van Flandern integer formula; every
// division truncates toward zero.
func julianDayNumber(day, month, year int) int {
	a := (month - 14) / 12

	return (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
}

// daysIn returns the length of month in year.
func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// JD returns the Julian date.
func (e Epoch) JD() float64 { return e.mjd2000 + jdMJD2000 }

// MJD returns the modified Julian date.
func (e Epoch) MJD() float64 { return e.mjd2000 + mjdMJD2000 }

// MJD2000 returns days since 2000-01-01 00:00.
func (e Epoch) MJD2000() float64 { return e.mjd2000 }

// CenturiesSinceJ2000 returns (JD - 2451545) / 36525.
func (e Epoch) CenturiesSinceJ2000() float64 { return (e.JD() - jdJ2000) / daysPerCentury }

// Time converts back to a UTC time.Time (nanosecond rounding applies).
func (e Epoch) Time() time.Time {
	sec := (e.JD() - jdUnixEpoch) * Day2Sec

	return time.Unix(0, int64(sec*1e9)).UTC()
}

// String renders the epoch as "MJD2000 <days>".
func (e Epoch) String() string { return fmt.Sprintf("MJD2000 %.6f", e.mjd2000) }
