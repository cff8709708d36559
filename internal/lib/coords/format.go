package coords

import (
	"fmt"
	"math"
)

// Format identifies a coordinate output notation.
type Format string

const (
	FormatDecimal Format = "decimal"
	FormatDDM     Format = "ddm"
	FormatDMS     Format = "dms"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDecimal, FormatDDM, FormatDMS:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported coordinate format: %q", s)
}

// FormatPoint renders a point in the requested notation. Rounding is fixed so
// that parsing a formatted string and formatting it again is stable: decimal
// uses 6 decimal places, DDM minutes use 3, and DMS seconds use 3.
func FormatPoint(p Point, format Format) (string, error) {
	switch format {
	case FormatDecimal:
		return fmt.Sprintf("%.6f, %.6f", p.Latitude, p.Longitude), nil

	case FormatDDM:
		latDeg, latMin := splitMinutes(p.Latitude)
		lonDeg, lonMin := splitMinutes(p.Longitude)
		return fmt.Sprintf("%s %d° %.3f' %s %d° %.3f'",
			hemisphereNS(p.Latitude), latDeg, latMin,
			hemisphereEW(p.Longitude), lonDeg, lonMin), nil

	case FormatDMS:
		latDeg, latMin, latSec := splitSeconds(p.Latitude)
		lonDeg, lonMin, lonSec := splitSeconds(p.Longitude)
		return fmt.Sprintf("%s %d° %d' %.3f\" %s %d° %d' %.3f\"",
			hemisphereNS(p.Latitude), latDeg, latMin, latSec,
			hemisphereEW(p.Longitude), lonDeg, lonMin, lonSec), nil
	}
	return "", fmt.Errorf("unsupported coordinate format: %q", string(format))
}

func hemisphereNS(lat float64) string {
	if lat < 0 {
		return "S"
	}
	return "N"
}

func hemisphereEW(lon float64) string {
	if lon < 0 {
		return "W"
	}
	return "E"
}

// splitMinutes decomposes a decimal degree value into whole degrees and
// decimal minutes, carrying when the minutes round up to 60.000.
func splitMinutes(v float64) (int, float64) {
	abs := math.Abs(v)
	deg := int(abs)
	min := (abs - float64(deg)) * 60
	if math.Round(min*1000)/1000 >= 60 {
		deg++
		min = 0
	}
	return deg, min
}

// splitSeconds decomposes a decimal degree value into whole degrees, whole
// minutes and decimal seconds, carrying when the seconds round up to 60.000.
func splitSeconds(v float64) (int, int, float64) {
	abs := math.Abs(v)
	deg := int(abs)
	min := int((abs - float64(deg)) * 60)
	sec := ((abs-float64(deg))*60 - float64(min)) * 60
	if math.Round(sec*1000)/1000 >= 60 {
		min++
		sec = 0
	}
	if min >= 60 {
		deg++
		min = 0
	}
	return deg, min, sec
}
