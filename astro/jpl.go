// SPDX-License-Identifier: MIT

// Package astro - JPL low-precision planetary ephemeris.
//
// Elements and rates are the 1800 AD - 2050 AD table "Keplerian Elements for
// Approximate Positions of the Major Planets" (J2000 mean ecliptic and
// equinox). For a given epoch:
//
//	T = (JD - 2451545) / 36525
//	x = x0 + ẋ·T                 for a, e, I, L, ϖ, Ω
//	ω = ϖ - Ω,  M = L - ϖ (wrapped into [-180°, 180°])
//	E from Kepler's equation, then KeplerianToCartesian around the Sun.

package astro

import (
	"fmt"
	"math"
	"sort"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/lao/linalg"
)

// Validity interval of the 1800-2050 table in MJD2000, exclusive on both ends.
const (
	jplMinMJD2000 = -73048.0
	jplMaxMJD2000 = 18263.0
)

// JPLElements holds the J2000 elements of one body and their rates per
// Julian century.
type JPLElements struct {
	SemiMajorAxisAU           float64 `json:"semi_major_axis_au" yaml:"semi_major_axis_au"`
	Eccentricity              float64 `json:"eccentricity" yaml:"eccentricity"`
	InclinationDeg            float64 `json:"inclination_deg" yaml:"inclination_deg"`
	MeanLongitudeDeg          float64 `json:"mean_longitude_deg" yaml:"mean_longitude_deg"`
	LongitudeOfPerihelionDeg  float64 `json:"longitude_of_perihelion_deg" yaml:"longitude_of_perihelion_deg"`
	LongitudeOfAscendingDeg   float64 `json:"longitude_of_ascending_node_deg" yaml:"longitude_of_ascending_node_deg"`
	SemiMajorAxisRate         float64 `json:"semi_major_axis_rate_au_per_cy" yaml:"semi_major_axis_rate_au_per_cy"`
	EccentricityRate          float64 `json:"eccentricity_rate_per_cy" yaml:"eccentricity_rate_per_cy"`
	InclinationRate           float64 `json:"inclination_rate_deg_per_cy" yaml:"inclination_rate_deg_per_cy"`
	MeanLongitudeRate         float64 `json:"mean_longitude_rate_deg_per_cy" yaml:"mean_longitude_rate_deg_per_cy"`
	LongitudeOfPerihelionRate float64 `json:"longitude_of_perihelion_rate_deg_per_cy" yaml:"longitude_of_perihelion_rate_deg_per_cy"`
	LongitudeOfAscendingRate  float64 `json:"longitude_of_ascending_node_rate_deg_per_cy" yaml:"longitude_of_ascending_node_rate_deg_per_cy"`
}

type jplEntry struct {
	props Properties
	elem  JPLElements
}

// jplTable is keyed by the names accepted by NewJPLLowPrecision.
var jplTable = map[string]jplEntry{
	"Mercury": {
		Properties{"Mercury", MuMercury, MuSun, 2439500},
		JPLElements{0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
			0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	},
	"Venus": {
		Properties{"Venus", MuVenus, MuSun, 6052000},
		JPLElements{0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
			0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	},
	"EM bary": {
		Properties{"EM bary", MuEarth, MuSun, 6378100},
		JPLElements{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
			0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
	},
	"Mars": {
		Properties{"Mars", MuMars, MuSun, 3396000},
		JPLElements{1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
			0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	},
	"Jupiter": {
		Properties{"Jupiter", MuJupiter, MuSun, 71492000},
		JPLElements{5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
			-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	},
	"Saturn": {
		Properties{"Saturn", MuSaturn, MuSun, 60268000},
		JPLElements{9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
			-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	},
	"Uranus": {
		Properties{"Uranus", MuUranus, MuSun, 25559000},
		JPLElements{19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
			-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	},
	"Neptune": {
		Properties{"Neptune", MuNeptune, MuSun, 24764000},
		JPLElements{30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
			0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
	},
}

// JPLBodies returns the accepted body names, sorted.
func JPLBodies() []string {
	names := make([]string, 0, len(jplTable))
	for name := range jplTable {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// JPLLowPrecision is a Body backed by the JPL approximate-position table.
type JPLLowPrecision struct {
	Properties
	elem JPLElements
}

var _ Body = (*JPLLowPrecision)(nil)

// NewJPLLowPrecision looks up name (see JPLBodies).
// Errors: ErrUnknownBody.
func NewJPLLowPrecision(name string) (*JPLLowPrecision, error) {
	entry, ok := jplTable[name]
	if !ok {
		return nil, astroErrorf(opNewJPL, fmt.Errorf("%q (known: %v): %w", name, JPLBodies(), ErrUnknownBody))
	}
	if err := entry.props.Validate(); err != nil {
		return nil, astroErrorf(opNewJPL, err)
	}

	return &JPLLowPrecision{Properties: entry.props, elem: entry.elem}, nil
}

// Name implements Body.
func (b *JPLLowPrecision) Name() string { return b.Properties.Name }

// Elements returns the table row of the body.
func (b *JPLLowPrecision) Elements() JPLElements { return b.elem }

// KeplerianAt evaluates the elements at epoch as [a, e, i, Ω, ω, E] in SI
// units and radians.
// Errors: ErrEpochRange, ErrNoConvergence.
func (b *JPLLowPrecision) KeplerianAt(at Epoch) (*RowVector6, error) {
	if d := at.MJD2000(); d <= jplMinMJD2000 || d >= jplMaxMJD2000 {
		return nil, astroErrorf(opEphemeris, fmt.Errorf("%s at %v, valid (%v, %v): %w", b.Name(), at, jplMinMJD2000, jplMaxMJD2000, ErrEpochRange))
	}
	t := at.CenturiesSinceJ2000()
	el := b.elem

	a := (el.SemiMajorAxisAU + el.SemiMajorAxisRate*t) * AU2M
	e := el.Eccentricity + el.EccentricityRate*t
	inc := el.InclinationDeg + el.InclinationRate*t
	meanLon := el.MeanLongitudeDeg + el.MeanLongitudeRate*t
	periLon := el.LongitudeOfPerihelionDeg + el.LongitudeOfPerihelionRate*t
	node := el.LongitudeOfAscendingDeg + el.LongitudeOfAscendingRate*t

	argPeri := periLon - node
	meanAnom := wrapDegrees(meanLon - periLon)

	ecc, err := EccentricAnomaly(meanAnom*Deg2Rad, e)
	if err != nil {
		return nil, astroErrorf(opEphemeris, err)
	}
	klog.V(2).Infof("%s: %s T=%.6f a=%.6e e=%.6f M=%.6f° E=%.9frad", opEphemeris, b.Name(), t, a, e, meanAnom, ecc)

	return linalg.NewRowVector[float64, linalg.D6](a, e, inc*Deg2Rad, node*Deg2Rad, argPeri*Deg2Rad, ecc)
}

// Ephemeris implements Body: heliocentric ecliptic J2000 state [m, m/s].
// Errors: ErrEpochRange, ErrNoConvergence.
func (b *JPLLowPrecision) Ephemeris(at Epoch) (*RowVector6, error) {
	elements, err := b.KeplerianAt(at)
	if err != nil {
		return nil, err
	}

	return KeplerianToCartesian(elements, b.MuCentral)
}

// Describe implements Body.
func (b *JPLLowPrecision) Describe() Description {
	d := b.describe()
	elem := b.elem
	d.JPLLowPrecision = &elem

	return d
}

// wrapDegrees maps x into [-180, 180).
func wrapDegrees(x float64) float64 {
	x = math.Mod(x+180, 360)
	if x < 0 {
		x += 360
	}

	return x - 180
}
