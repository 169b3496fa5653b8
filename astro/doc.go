// SPDX-License-Identifier: MIT

// Package astro computes approximate planetary positions on top of linalg.
//
// It provides Julian-day epochs, Euler rotation matrices, Kepler's
// equation, the Keplerian to Cartesian conversion and the JPL
// low-precision ephemeris for the eight major planets (1800-2050):
//
//	mars, _ := astro.NewJPLLowPrecision("Mars")
//	at, _ := astro.EpochFromGregorian(15, 1, 2024)
//	state, err := mars.Ephemeris(at) // [x y z vx vy vz], m and m/s
//
// Positions are heliocentric, referred to the J2000 mean ecliptic and
// equinox. Accuracy is that of the JPL approximation, a few arcminutes
// for the inner planets.
package astro
