package coords

import (
	"regexp"
	"strconv"
	"strings"
)

// Coordinate string notations are detected structurally: a pair of signed
// decimals means decimal degrees, a seconds group means DMS, otherwise DDM.
// Cardinal letters may lead ("N 47° 36.123") or trail ("47° 36.123' N") each
// half, and ASCII or typographic minute/second marks are both accepted.
var (
	decimalPattern = regexp.MustCompile(
		`(-?\d+\.\d+)[,\s]+(-?\d+\.\d+)`)

	dmsPattern = regexp.MustCompile(
		`(?i)([NS])\s*(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?\s*,?\s*([EW])\s*(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?`)

	dmsSuffixPattern = regexp.MustCompile(
		`(?i)(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?\s*([NS])\s*,?\s*(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?\s*([EW])`)

	ddmPattern = regexp.MustCompile(
		`(?i)([NS])\s*(\d+)[°\s]+(\d+\.?\d*)['′]?\s*,?\s*([EW])\s*(\d+)[°\s]+(\d+\.?\d*)['′]?`)

	ddmSuffixPattern = regexp.MustCompile(
		`(?i)(\d+)[°\s]+(\d+\.?\d*)['′]?\s*([NS])\s*,?\s*(\d+)[°\s]+(\d+\.?\d*)['′]?\s*([EW])`)
)

// Parse converts a coordinate string in decimal, DDM, or DMS notation into a
// Point. It returns a *ParseError if the string matches no known notation or
// the resulting values fall outside the latitude/longitude domain.
func Parse(text string) (Point, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Point{}, &ParseError{Input: text, Reason: "empty string"}
	}

	if m := decimalPattern.FindStringSubmatch(s); m != nil {
		lat, _ := strconv.ParseFloat(m[1], 64)
		lon, _ := strconv.ParseFloat(m[2], 64)
		return checkedPoint(text, lat, lon)
	}

	// DMS must be tried before DDM: a DDM pattern would also match the
	// degree and minute groups of a DMS string and drop the seconds.
	if m := dmsPattern.FindStringSubmatch(s); m != nil {
		return dmsPoint(text, m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	}
	if m := dmsSuffixPattern.FindStringSubmatch(s); m != nil {
		return dmsPoint(text, m[4], m[1], m[2], m[3], m[8], m[5], m[6], m[7])
	}

	if m := ddmPattern.FindStringSubmatch(s); m != nil {
		return ddmPoint(text, m[1], m[2], m[3], m[4], m[5], m[6])
	}
	if m := ddmSuffixPattern.FindStringSubmatch(s); m != nil {
		return ddmPoint(text, m[3], m[1], m[2], m[6], m[4], m[5])
	}

	return Point{}, &ParseError{Input: text, Reason: "unrecognized coordinate format"}
}

func dmsPoint(input, latDir, latDeg, latMin, latSec, lonDir, lonDeg, lonMin, lonSec string) (Point, error) {
	lat, err := sexagesimal(input, latDeg, latMin, latSec)
	if err != nil {
		return Point{}, err
	}
	lon, err := sexagesimal(input, lonDeg, lonMin, lonSec)
	if err != nil {
		return Point{}, err
	}
	return hemispherePoint(input, lat, lon, latDir, lonDir)
}

func ddmPoint(input, latDir, latDeg, latMin, lonDir, lonDeg, lonMin string) (Point, error) {
	lat, err := sexagesimal(input, latDeg, latMin, "0")
	if err != nil {
		return Point{}, err
	}
	lon, err := sexagesimal(input, lonDeg, lonMin, "0")
	if err != nil {
		return Point{}, err
	}
	return hemispherePoint(input, lat, lon, latDir, lonDir)
}

// sexagesimal combines degree, minute and second components into decimal
// degrees, rejecting minute or second values of 60 or more.
func sexagesimal(input, deg, min, sec string) (float64, error) {
	d, _ := strconv.ParseFloat(deg, 64)
	m, _ := strconv.ParseFloat(min, 64)
	s, _ := strconv.ParseFloat(sec, 64)
	if m >= 60 {
		return 0, &ParseError{Input: input, Reason: "minutes must be below 60"}
	}
	if s >= 60 {
		return 0, &ParseError{Input: input, Reason: "seconds must be below 60"}
	}
	return d + m/60 + s/3600, nil
}

func hemispherePoint(input string, lat, lon float64, latDir, lonDir string) (Point, error) {
	switch strings.ToUpper(latDir) {
	case "S":
		lat = -lat
	case "N":
	default:
		return Point{}, &ParseError{Input: input, Reason: "latitude hemisphere must be N or S"}
	}
	switch strings.ToUpper(lonDir) {
	case "W":
		lon = -lon
	case "E":
	default:
		return Point{}, &ParseError{Input: input, Reason: "longitude hemisphere must be E or W"}
	}
	return checkedPoint(input, lat, lon)
}

func checkedPoint(input string, lat, lon float64) (Point, error) {
	p, err := NewPoint(lat, lon)
	if err != nil {
		return Point{}, &ParseError{Input: input, Reason: err.Error()}
	}
	return p, nil
}
