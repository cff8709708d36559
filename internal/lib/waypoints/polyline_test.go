package waypoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gckit/gckit/internal/lib/coords"
)

func TestDecodePolyline(t *testing.T) {
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Latitude, 1e-5)
	assert.InDelta(t, -120.2, points[0].Longitude, 1e-5)
	assert.InDelta(t, 40.7, points[1].Latitude, 1e-5)
	assert.InDelta(t, -120.95, points[1].Longitude, 1e-5)
	assert.InDelta(t, 43.252, points[2].Latitude, 1e-5)
	assert.InDelta(t, -126.453, points[2].Longitude, 1e-5)
}

func TestDecodePolyline_Empty(t *testing.T) {
	_, err := DecodePolyline("")
	assert.ErrorContains(t, err, "empty")
}

func TestEncodePolyline_RoundTrip(t *testing.T) {
	points := []coords.Point{
		mustPoint(t, 47.6062, -122.3321),
		mustPoint(t, 40.7128, -74.0060),
		mustPoint(t, -33.8678, 151.21),
	}

	encoded := EncodePolyline(points)
	require.NotEmpty(t, encoded)

	decoded, err := DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i].Latitude, decoded[i].Latitude, 1e-5)
		assert.InDelta(t, points[i].Longitude, decoded[i].Longitude, 1e-5)
	}
}
