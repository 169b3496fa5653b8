// SPDX-License-Identifier: MIT
package astro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lao/astro"
)

func TestEpoch_Conversions(t *testing.T) {
	e := astro.EpochFromJD(2451545.0)
	assert.InDelta(t, 0.5, e.MJD2000(), 1e-12)
	assert.InDelta(t, 51544.5, e.MJD(), 1e-12)
	assert.InDelta(t, 0.0, e.CenturiesSinceJ2000(), 1e-15)

	assert.InDelta(t, 2451544.5, astro.EpochFromMJD(51544).JD(), 1e-9)
	assert.InDelta(t, 2451554.5, astro.EpochFromMJD2000(10).JD(), 1e-9)

	var zero astro.Epoch
	assert.InDelta(t, 2451544.5, zero.JD(), 1e-9)
}

func TestEpochFromGregorian(t *testing.T) {
	for _, tc := range []struct {
		name             string
		day, month, year int
		jd               float64
	}{
		{"J2000 midnight", 1, 1, 2000, 2451544.5},
		{"2024-01-15", 15, 1, 2024, 2460324.5},
		{"leap day", 29, 2, 2024, 2460369.5},
		{"sputnik", 4, 10, 1957, 2436115.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, err := astro.EpochFromGregorian(tc.day, tc.month, tc.year)
			require.NoError(t, err)
			assert.InDelta(t, tc.jd, e.JD(), 1e-9)
		})
	}
}

func TestEpochFromGregorian_OutOfRange(t *testing.T) {
	for _, tc := range []struct {
		name             string
		day, month, year int
	}{
		{"day 0", 0, 1, 2000},
		{"day 32", 32, 1, 2000},
		{"feb 30", 30, 2, 2024},
		{"feb 29 non-leap", 29, 2, 2023},
		{"month 13", 1, 13, 2000},
		{"year 999", 1, 1, 999},
		{"year 10000", 1, 1, 10000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astro.EpochFromGregorian(tc.day, tc.month, tc.year)
			require.ErrorIs(t, err, astro.ErrOutOfRange)
		})
	}
}

func TestEpochFromTime_RoundTrip(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 6, 0, 0, 0, time.UTC)
	e := astro.EpochFromTime(ts)
	assert.InDelta(t, 2460324.75, e.JD(), 1e-8)
	assert.WithinDuration(t, ts, e.Time(), time.Millisecond)

	greg, err := astro.EpochFromGregorian(15, 1, 2024)
	require.NoError(t, err)
	assert.InDelta(t, greg.MJD2000()+0.25, e.MJD2000(), 1e-8)
}
