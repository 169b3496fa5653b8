// SPDX-License-Identifier: MIT

package astro

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
// Errors: ErrInvalidArgument.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("format %q: %w", s, ErrInvalidArgument)
}

// State is a serialisable ephemeris result.
type State struct {
	Body     string     `json:"body" yaml:"body"`
	MJD2000  float64    `json:"mjd2000" yaml:"mjd2000"`
	JD       float64    `json:"jd" yaml:"jd"`
	Position [3]float64 `json:"position_m" yaml:"position_m"`
	Velocity [3]float64 `json:"velocity_m_per_s" yaml:"velocity_m_per_s"`
}

// NewState evaluates b at epoch into a State.
func NewState(b Body, at Epoch) (State, error) {
	rv, err := b.Ephemeris(at)
	if err != nil {
		return State{}, err
	}
	v := rv.Data()
	s := State{Body: b.Name(), MJD2000: at.MJD2000(), JD: at.JD()}
	copy(s.Position[:], v[:3])
	copy(s.Velocity[:], v[3:])

	return s, nil
}

// Encode writes v to w as indented JSON or as YAML.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("format %q: %w", f, ErrInvalidArgument)
}
