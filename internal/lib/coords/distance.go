package coords

import (
	"errors"
	"math"
)

// earthRadiusKm is the mean radius of the earth. All great-circle math in
// this package assumes a spherical earth, which is accurate to well under a
// percent at puzzle scale.
const earthRadiusKm = 6371.0

// Distance calculates the great-circle distance between two points using the
// Haversine formula, expressed in the requested unit.
func Distance(a, b Point, unit Unit) (float64, error) {
	if !a.Valid() || !b.Valid() {
		return 0, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}

	lat1 := radians(a.Latitude)
	lon1 := radians(a.Longitude)
	lat2 := radians(b.Latitude)
	lon2 := radians(b.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return unit.FromKilometers(earthRadiusKm * c)
}

// Project computes the destination point reached by travelling the given
// distance from origin along a bearing in degrees (0 = north, clockwise).
func Project(origin Point, distance float64, bearing float64, unit Unit) (Point, error) {
	if !origin.Valid() {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	if distance < 0 {
		return Point{}, errors.New("distance must not be negative")
	}

	km, err := unit.ToKilometers(distance)
	if err != nil {
		return Point{}, err
	}

	lat1 := radians(origin.Latitude)
	lon1 := radians(origin.Longitude)
	brng := radians(bearing)
	ang := km / earthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) +
		math.Cos(lat1)*math.Sin(ang)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(ang)*math.Cos(lat1),
		math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2))

	return Point{
		Latitude:  degrees(lat2),
		Longitude: normalizeLongitude(degrees(lon2)),
	}, nil
}

// Midpoint calculates the point halfway along the great-circle path between
// two points. This is not the arithmetic average of the coordinates, which
// gives wrong answers near the antimeridian and at high latitudes.
func Midpoint(a, b Point) (Point, error) {
	if !a.Valid() || !b.Valid() {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}

	lat1 := radians(a.Latitude)
	lon1 := radians(a.Longitude)
	lat2 := radians(b.Latitude)
	dlon := radians(b.Longitude - a.Longitude)

	bx := math.Cos(lat2) * math.Cos(dlon)
	by := math.Cos(lat2) * math.Sin(dlon)

	lat3 := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by))
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Point{
		Latitude:  degrees(lat3),
		Longitude: normalizeLongitude(degrees(lon3)),
	}, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeLongitude wraps a longitude into [-180, 180].
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+540, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
