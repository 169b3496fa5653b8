// SPDX-License-Identifier: MIT
// Package astro: sentinel error set.

package astro

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a calendar field outside its valid range.
	ErrOutOfRange = errors.New("astro: value out of range")

	// ErrInvalidArgument signals an unknown rotation axis, a non-elliptic
	// orbit, or a nil/non-positive physical parameter.
	ErrInvalidArgument = errors.New("astro: invalid argument")

	// ErrUnknownBody is returned by NewJPLLowPrecision for a name not in the table.
	ErrUnknownBody = errors.New("astro: unknown body")

	// ErrEpochRange is returned when an epoch lies outside a model's validity interval.
	ErrEpochRange = errors.New("astro: epoch outside model validity")

	// ErrNoConvergence is returned when Kepler's equation could not be solved.
	ErrNoConvergence = errors.New("astro: iteration did not converge")
)

const (
	opGregorian  = "EpochFromGregorian"
	opRotation   = "RotationFromEuler"
	opKeplerian  = "KeplerianToCartesian"
	opEccentric  = "EccentricAnomaly"
	opNewJPL     = "NewJPLLowPrecision"
	opEphemeris  = "Ephemeris"
	opProperties = "Properties.Validate"
)

func astroErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
