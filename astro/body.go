// SPDX-License-Identifier: MIT

package astro

import (
	"fmt"
)

// Body is anything that can report its heliocentric state at an epoch.
type Body interface {
	// Name returns the body's display name.
	Name() string
	// Ephemeris returns [x, y, z, vx, vy, vz] in metres and metres per second.
	Ephemeris(at Epoch) (*RowVector6, error)
	// Describe returns the body's static parameters.
	Describe() Description
}

// Properties are the physical parameters shared by every body.
type Properties struct {
	Name      string
	Mu        float64 // body μ [m³/s²]
	MuCentral float64 // attracting body μ [m³/s²]
	Radius    float64 // [m]
}

// Validate requires strictly positive Mu, MuCentral and Radius.
func (p Properties) Validate() error {
	switch {
	case !(p.Radius > 0):
		return astroErrorf(opProperties, fmt.Errorf("%s: radius %v: %w", p.Name, p.Radius, ErrInvalidArgument))
	case !(p.Mu > 0):
		return astroErrorf(opProperties, fmt.Errorf("%s: mu %v: %w", p.Name, p.Mu, ErrInvalidArgument))
	case !(p.MuCentral > 0):
		return astroErrorf(opProperties, fmt.Errorf("%s: central mu %v: %w", p.Name, p.MuCentral, ErrInvalidArgument))
	}

	return nil
}

// Description is the serialisable summary of a body.
type Description struct {
	Body                         string       `json:"body" yaml:"body"`
	GravitationalParameter       float64      `json:"gravitational_parameter_m3_per_s2" yaml:"gravitational_parameter_m3_per_s2"`
	ParentGravitationalParameter float64      `json:"parent_gravitational_parameter_m3_per_s2" yaml:"parent_gravitational_parameter_m3_per_s2"`
	RadiusM                      float64      `json:"body_radius_m" yaml:"body_radius_m"`
	JPLLowPrecision              *JPLElements `json:"JPL_low_precision,omitempty" yaml:"JPL_low_precision,omitempty"`
}

// describe fills the shared part of a Description.
func (p Properties) describe() Description {
	return Description{
		Body:                         p.Name,
		GravitationalParameter:       p.Mu,
		ParentGravitationalParameter: p.MuCentral,
		RadiusM:                      p.Radius,
	}
}
