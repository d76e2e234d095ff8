// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit tags how an Angle was supplied.
type Unit uint8

const (
	// UnitRadians is the zero Unit so the zero Angle is 0 rad.
	UnitRadians Unit = iota
	// UnitDegrees marks an angle given in degrees.
	UnitDegrees
)

const (
	suffixRad = "rad"
	suffixDeg = "deg"
)

// Angle is an angle tagged with the unit it was given in. Conversion to
// radians happens once, in Radians.
type Angle struct {
	value float64
	unit  Unit
}

// Rad returns an angle of r radians.
func Rad(r float64) Angle { return Angle{value: r, unit: UnitRadians} }

// Deg returns an angle of d degrees.
func Deg(d float64) Angle { return Angle{value: d, unit: UnitDegrees} }

// Radians normalizes the angle to radians (degrees × π/180).
func (a Angle) Radians() float64 {
	if a.unit == UnitDegrees {
		return a.value * (math.Pi / 180)
	}
	return a.value
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.unit == UnitDegrees {
		return a.value
	}
	return a.value * (180 / math.Pi)
}

// Unit reports the unit the angle was constructed with.
func (a Angle) Unit() Unit { return a.unit }

// Value returns the raw number in the angle's own unit.
func (a Angle) Value() float64 { return a.value }

// String renders the angle in its own unit, e.g. "90deg" or "1.5rad".
func (a Angle) String() string {
	suffix := suffixRad
	if a.unit == UnitDegrees {
		suffix = suffixDeg
	}
	return strconv.FormatFloat(a.value, 'g', -1, 64) + suffix
}

// ParseAngle parses "90deg", "1.5rad" or a bare number (radians). Unit
// suffixes are case-insensitive.
func ParseAngle(s string) (Angle, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	unit := UnitRadians
	switch {
	case strings.HasSuffix(t, suffixDeg):
		unit = UnitDegrees
		t = strings.TrimSuffix(t, suffixDeg)
	case strings.HasSuffix(t, suffixRad):
		t = strings.TrimSuffix(t, suffixRad)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
	if err != nil {
		return Angle{}, fmt.Errorf("ParseAngle(%q): %w", s, ErrBadAngle)
	}
	return Angle{value: v, unit: unit}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Angle) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Angle) UnmarshalText(b []byte) error {
	v, err := ParseAngle(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
