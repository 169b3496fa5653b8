// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math/rand"
	"strings"
)

// Fill selects how NewFilled initialises a matrix.
type Fill int

const (
	// FillZeros sets every element to 0.
	FillZeros Fill = iota
	// FillOnes sets every element to 1.
	FillOnes
	// FillEye builds the identity; square shapes only.
	FillEye
	// FillRand draws every element from [0,1) (see WithRandSource/WithSeed).
	FillRand
	// FillNone leaves the freshly allocated (zeroed) buffer untouched.
	FillNone
)

var fillNames = [...]string{
	FillZeros: "zeros",
	FillOnes:  "ones",
	FillEye:   "eye",
	FillRand:  "rand",
	FillNone:  "none",
}

// String returns the lower-case policy name, or "Fill(n)" for unknown values.
func (f Fill) String() string {
	if f < 0 || int(f) >= len(fillNames) {
		return fmt.Sprintf("Fill(%d)", int(f))
	}

	return fillNames[f]
}

// ParseFill maps a policy name (case-insensitive) back to its Fill.
// Errors: ErrInvalidArgument for unknown names.
func ParseFill(s string) (Fill, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fillNames {
		if n == name {
			return Fill(i), nil
		}
	}

	return 0, linalgErrorf(opParseFill, fmt.Errorf("%q: %w", s, ErrInvalidArgument))
}

// apply runs the policy against m.
// Errors: ErrLogic (eye on non-square), ErrInvalidArgument (unknown policy).
func (f Fill) apply(m fillTarget, o Options) error {
	switch f {
	case FillZeros:
		m.Zeros()
	case FillOnes:
		m.Ones()
	case FillEye:
		return m.Eye()
	case FillRand:
		m.Rand(o.rng)
	case FillNone:
		// nothing to do; New already zeroed the buffer
	default:
		return fmt.Errorf("%s: %w", f, ErrInvalidArgument)
	}

	return nil
}

// fillTarget is the subset of *Matrix used by Fill.apply.
type fillTarget interface {
	Zeros()
	Ones()
	Eye() error
	Rand(rng *rand.Rand)
}
