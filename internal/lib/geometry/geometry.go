package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/gckit/gckit/internal/lib/coords"
)

// collinearEpsilon is the planar triangle area below which three points are
// treated as collinear.
const collinearEpsilon = 1e-10

// calculator implements the Calculator interface.
type calculator struct {
	maxPoints int
}

// NewCalculator creates a Calculator. By default point sets are unbounded;
// see WithMaxPoints.
func NewCalculator(opts ...Option) Calculator {
	c := &calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *calculator) Midpoint(a, b coords.Point) (coords.Point, error) {
	return coords.Midpoint(a, b)
}

func (c *calculator) Centroid(points []coords.Point) (coords.Point, error) {
	if err := c.checkSet(points, 1); err != nil {
		return coords.Point{}, err
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Latitude
		sumLon += p.Longitude
	}
	n := float64(len(points))
	return coords.Point{Latitude: sumLat / n, Longitude: sumLon / n}, nil
}

func (c *calculator) Circumcenter(a, b, c3 coords.Point) (coords.Point, error) {
	return circumcenter(a, b, c3)
}

func (c *calculator) Circumradius(a, b, c3 coords.Point, unit coords.Unit) (float64, error) {
	center, err := circumcenter(a, b, c3)
	if err != nil {
		return 0, err
	}
	// Distance from the center to any vertex is the radius.
	return coords.Distance(center, a, unit)
}

func (c *calculator) Orthocenter(a, b, c3 coords.Point) (coords.Point, error) {
	center, err := circumcenter(a, b, c3)
	if err != nil {
		return coords.Point{}, err
	}
	// In the plane the orthocenter is A + B + C - 2O, with O the
	// circumcenter.
	return coords.Point{
		Latitude:  a.Latitude + b.Latitude + c3.Latitude - 2*center.Latitude,
		Longitude: a.Longitude + b.Longitude + c3.Longitude - 2*center.Longitude,
	}, nil
}

func (c *calculator) TriangleArea(a, b, c3 coords.Point, unit coords.Unit) (float64, error) {
	ab, err := coords.Distance(a, b, unit)
	if err != nil {
		return 0, err
	}
	bc, err := coords.Distance(b, c3, unit)
	if err != nil {
		return 0, err
	}
	ca, err := coords.Distance(c3, a, unit)
	if err != nil {
		return 0, err
	}

	// Heron's formula. Floating point noise can push the radicand slightly
	// negative for near-collinear triangles.
	s := (ab + bc + ca) / 2
	radicand := s * (s - ab) * (s - bc) * (s - ca)
	if radicand < 0 {
		radicand = 0
	}
	return math.Sqrt(radicand), nil
}

func (c *calculator) BoundingBox(points []coords.Point) (Box, error) {
	if err := c.checkSet(points, 1); err != nil {
		return Box{}, err
	}

	box := Box{
		MinLat: points[0].Latitude,
		MinLon: points[0].Longitude,
		MaxLat: points[0].Latitude,
		MaxLon: points[0].Longitude,
	}
	for _, p := range points[1:] {
		box.MinLat = math.Min(box.MinLat, p.Latitude)
		box.MinLon = math.Min(box.MinLon, p.Longitude)
		box.MaxLat = math.Max(box.MaxLat, p.Latitude)
		box.MaxLon = math.Max(box.MaxLon, p.Longitude)
	}
	return box, nil
}

func (c *calculator) PointInPolygon(point coords.Point, polygon []coords.Point) (bool, error) {
	if !point.Valid() {
		return false, errors.New("invalid point coordinates")
	}
	if c.maxPoints > 0 && len(polygon) > c.maxPoints {
		return false, fmt.Errorf("point set has %d points, limit is %d", len(polygon), c.maxPoints)
	}
	if len(polygon) < 3 {
		return false, nil
	}

	x, y := point.Latitude, point.Longitude

	// Boundary points are outside by definition. Raw ray casting decides
	// them by which edge the ray leaves through, which is not a usable
	// contract, so edges are checked explicitly first.
	j := len(polygon) - 1
	for i := range polygon {
		if onSegment(point, polygon[j], polygon[i]) {
			return false, nil
		}
		j = i
	}

	inside := false
	j = len(polygon) - 1
	for i := range polygon {
		xi, yi := polygon[i].Latitude, polygon[i].Longitude
		xj, yj := polygon[j].Latitude, polygon[j].Longitude

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside, nil
}

// onSegment reports whether p lies on the segment from a to b, within the
// collinearity epsilon.
func onSegment(p, a, b coords.Point) bool {
	cross := (b.Latitude-a.Latitude)*(p.Longitude-a.Longitude) -
		(b.Longitude-a.Longitude)*(p.Latitude-a.Latitude)
	if math.Abs(cross) > collinearEpsilon {
		return false
	}
	return p.Latitude >= math.Min(a.Latitude, b.Latitude)-collinearEpsilon &&
		p.Latitude <= math.Max(a.Latitude, b.Latitude)+collinearEpsilon &&
		p.Longitude >= math.Min(a.Longitude, b.Longitude)-collinearEpsilon &&
		p.Longitude <= math.Max(a.Longitude, b.Longitude)+collinearEpsilon
}

// checkSet validates a point set's size and contents.
func (c *calculator) checkSet(points []coords.Point, minLen int) error {
	if len(points) < minLen {
		if len(points) == 0 {
			return ErrNoPoints
		}
		return fmt.Errorf("point set has %d points, need at least %d", len(points), minLen)
	}
	if c.maxPoints > 0 && len(points) > c.maxPoints {
		return fmt.Errorf("point set has %d points, limit is %d", len(points), c.maxPoints)
	}
	for _, p := range points {
		if !p.Valid() {
			return errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
		}
	}
	return nil
}

// circumcenter solves the planar circumcenter treating latitude and
// longitude as x and y.
func circumcenter(a, b, c coords.Point) (coords.Point, error) {
	x1, y1 := a.Latitude, a.Longitude
	x2, y2 := b.Latitude, b.Longitude
	x3, y3 := c.Latitude, c.Longitude

	area := 0.5 * math.Abs(x1*(y2-y3)+x2*(y3-y1)+x3*(y1-y2))
	if area < collinearEpsilon {
		return coords.Point{}, &DegenerateError{
			Op:     "circumcenter",
			Reason: "the three points are collinear",
		}
	}

	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	ux := ((x1*x1+y1*y1)*(y2-y3) + (x2*x2+y2*y2)*(y3-y1) + (x3*x3+y3*y3)*(y1-y2)) / d
	uy := ((x1*x1+y1*y1)*(x3-x2) + (x2*x2+y2*y2)*(x1-x3) + (x3*x3+y3*y3)*(x2-x1)) / d

	return coords.Point{Latitude: ux, Longitude: uy}, nil
}
