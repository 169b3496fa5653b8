// SPDX-License-Identifier: MIT

package astro

import "math"

// Physical constants, SI units.
const (
	// AU is the astronomical unit [m] used by the ephemeris tables.
	AU = 1.4959787070691e11
	// SpeedOfLight [m/s].
	SpeedOfLight = 299792458.0
	// StandardGravity [m/s²].
	StandardGravity = 9.80665
	// EarthRadius [m].
	EarthRadius = 6.3781366e6
)

// Standard gravitational parameters μ = GM [m³/s²].
const (
	MuSun     = 1.327124400189e20
	MuMercury = 2.20329e13
	MuVenus   = 3.248599e14
	MuEarth   = 3.9860044188e14
	MuMoon    = 4.90486959e12
	MuMars    = 4.2828372e13
	MuJupiter = 1.266865349e17
	MuSaturn  = 3.79311879e16
	MuUranus  = 5.7939399e15
	MuNeptune = 6.8365299e15
	MuPluto   = 8.719e11
)

// Unit conversions.
const (
	Deg2Rad  = math.Pi / 180
	Rad2Deg  = 180 / math.Pi
	Day2Sec  = 86400.0
	Sec2Day  = 1 / 86400.0
	Day2Year = 1 / 365.25
	AU2M     = 149597870691.0
)

// SolverTolerance is the relative Newton step below which EccentricAnomaly stops.
const SolverTolerance = 1e-15

// Julian date anchors.
const (
	jdJ2000        = 2451545.0 // 2000-01-01 12:00
	jdMJD2000      = 2451544.5 // 2000-01-01 00:00
	mjdMJD2000     = 51544.0
	jdUnixEpoch    = 2440587.5
	daysPerCentury = 36525.0
)
