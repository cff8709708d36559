package coords

import (
	"errors"
	"fmt"
)

// Point represents a geographic coordinate in decimal degrees.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// NewPoint creates a Point from latitude and longitude values with validation.
func NewPoint(latitude, longitude float64) (Point, error) {
	p := Point{Latitude: latitude, Longitude: longitude}
	if !p.Valid() {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return p, nil
}

// Valid reports whether the point lies within the latitude/longitude domain.
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// ParseError describes a coordinate string that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse coordinate %q: %s", e.Input, e.Reason)
}

// Unit identifies a distance unit. Area results use the same units squared.
type Unit string

const (
	Kilometers    Unit = "km"
	Miles         Unit = "mi"
	Meters        Unit = "m"
	NauticalMiles Unit = "nm"
)

// ErrUnknownUnit is returned when a unit string is not one of km, mi, m, nm.
var ErrUnknownUnit = errors.New("unknown distance unit")

// Conversion factors from kilometers (1 km = 0.621371 mi, 0.539957 nm).
var fromKilometers = map[Unit]float64{
	Kilometers:    1,
	Miles:         0.621371,
	Meters:        1000,
	NauticalMiles: 0.539957,
}

// ParseUnit converts a unit string such as "km" or "mi" into a Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := fromKilometers[u]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// FromKilometers converts a distance in kilometers into this unit.
func (u Unit) FromKilometers(km float64) (float64, error) {
	f, ok := fromKilometers[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return km * f, nil
}

// ToKilometers converts a distance in this unit into kilometers.
func (u Unit) ToKilometers(v float64) (float64, error) {
	f, ok := fromKilometers[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return v / f, nil
}

// Squared returns the area label for the unit, e.g. "km²".
func (u Unit) Squared() string {
	return string(u) + "²"
}
