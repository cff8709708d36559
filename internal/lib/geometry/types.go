package geometry

import (
	"errors"
	"fmt"

	"github.com/gckit/gckit/internal/lib/coords"
)

// Calculator defines geometric operations over sets of geographic points.
// Distances and areas are spherical, consistent with coords.Distance; the
// triangle center calculations treat latitude/longitude as planar x/y, which
// is accurate at puzzle scale.
type Calculator interface {
	// Great-circle midpoint between two points.
	Midpoint(a, b coords.Point) (coords.Point, error)

	// Arithmetic mean of latitudes and longitudes. Requires at least one
	// point. Point sets spanning the antimeridian give a wrong arithmetic
	// result; that limitation is documented rather than corrected.
	Centroid(points []coords.Point) (coords.Point, error)

	// Center of the circle through three points. Fails with a
	// *DegenerateError when the points are collinear.
	Circumcenter(a, b, c coords.Point) (coords.Point, error)

	// Radius of the circle through three points, in the requested unit.
	Circumradius(a, b, c coords.Point, unit coords.Unit) (float64, error)

	// Intersection of the triangle's altitudes. Fails with a
	// *DegenerateError when the points are collinear.
	Orthocenter(a, b, c coords.Point) (coords.Point, error)

	// Triangle area by Heron's formula over haversine side lengths, in the
	// square of the requested unit.
	TriangleArea(a, b, c coords.Point, unit coords.Unit) (float64, error)

	// Min/max scan over the point set. Requires at least one point; a
	// single point is its own box. Longitudes are not unwrapped, so sets
	// crossing the antimeridian produce an oversized box.
	BoundingBox(points []coords.Point) (Box, error)

	// Ray-casting point-in-polygon test. Polygons with fewer than three
	// vertices contain nothing. Points exactly on a polygon edge are
	// reported as outside.
	PointInPolygon(point coords.Point, polygon []coords.Point) (bool, error)
}

// Box is an axis-aligned bounding box in decimal degrees.
type Box struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lng"`
}

// SouthWest returns the minimum corner of the box.
func (b Box) SouthWest() coords.Point {
	return coords.Point{Latitude: b.MinLat, Longitude: b.MinLon}
}

// NorthEast returns the maximum corner of the box.
func (b Box) NorthEast() coords.Point {
	return coords.Point{Latitude: b.MaxLat, Longitude: b.MaxLon}
}

// DegenerateError reports point sets that admit no answer, such as collinear
// points for a circumcenter.
type DegenerateError struct {
	Op     string
	Reason string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: degenerate geometry: %s", e.Op, e.Reason)
}

// ErrNoPoints is returned when an operation needs a non-empty point set.
var ErrNoPoints = errors.New("point set is empty")

// Option configures a Calculator.
type Option func(*calculator)

// WithMaxPoints caps the size of point sets accepted by the set operations.
// Zero, the default, means unbounded.
func WithMaxPoints(n int) Option {
	return func(c *calculator) {
		c.maxPoints = n
	}
}
