package waypoints

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"

	"github.com/gckit/gckit/internal/lib/coords"
)

// DecodePolyline decodes a Google encoded polyline string into a point
// sequence.
func DecodePolyline(encoded string) ([]coords.Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	pairs, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	points := make([]coords.Point, len(pairs))
	for i, pair := range pairs {
		p, err := coords.NewPoint(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("decoded polyline contains invalid coordinates: %w", err)
		}
		points[i] = p
	}
	return points, nil
}

// EncodePolyline encodes a point sequence as a Google encoded polyline
// string.
func EncodePolyline(points []coords.Point) string {
	pairs := make([][]float64, len(points))
	for i, p := range points {
		pairs[i] = []float64{p.Latitude, p.Longitude}
	}
	return string(polyline.EncodeCoords(pairs))
}
