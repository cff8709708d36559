package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPoint_Decimal(t *testing.T) {
	p := Point{Latitude: 47.602050, Longitude: -122.324194}
	s, err := FormatPoint(p, FormatDecimal)
	require.NoError(t, err)
	assert.Equal(t, "47.602050, -122.324194", s)
}

func TestFormatPoint_DDM(t *testing.T) {
	p := Point{Latitude: 47.602050, Longitude: -122.324194}
	s, err := FormatPoint(p, FormatDDM)
	require.NoError(t, err)
	assert.Equal(t, "N 47° 36.123' W 122° 19.452'", s)
}

func TestFormatPoint_DMS(t *testing.T) {
	p := Point{Latitude: 47.602050, Longitude: -122.324194}
	s, err := FormatPoint(p, FormatDMS)
	require.NoError(t, err)
	assert.Equal(t, "N 47° 36' 7.380\" W 122° 19' 27.098\"", s)
}

func TestFormatPoint_SouthernHemisphere(t *testing.T) {
	p := Point{Latitude: -33.8569, Longitude: 151.2092}
	s, err := FormatPoint(p, FormatDDM)
	require.NoError(t, err)
	assert.Contains(t, s, "S 33°")
	assert.Contains(t, s, "E 151°")
}

func TestFormatPoint_MinuteCarry(t *testing.T) {
	// 46.9999999 rounds to 60.000 minutes; the degree must carry instead.
	p := Point{Latitude: 46.9999999, Longitude: 0}
	s, err := FormatPoint(p, FormatDDM)
	require.NoError(t, err)
	assert.Equal(t, "N 47° 0.000' E 0° 0.000'", s)
}

func TestFormatPoint_UnknownFormat(t *testing.T) {
	_, err := FormatPoint(Point{}, Format("utm"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"decimal", "ddm", "dms"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	_, err := ParseFormat("utm")
	assert.Error(t, err)
}

// Parsing a formatted coordinate and formatting it again must be stable for
// every supported notation.
func TestFormatPoint_RoundTripStable(t *testing.T) {
	points := []Point{
		{Latitude: 47.602050, Longitude: -122.324194},
		{Latitude: -33.856900, Longitude: 151.209200},
		{Latitude: 0.5, Longitude: 0.5},
		{Latitude: -89.999, Longitude: 179.999},
	}

	for _, p := range points {
		for _, format := range []Format{FormatDecimal, FormatDDM, FormatDMS} {
			first, err := FormatPoint(p, format)
			require.NoError(t, err)

			parsed, err := Parse(first)
			require.NoError(t, err, "parsing %q", first)

			second, err := FormatPoint(parsed, format)
			require.NoError(t, err)
			assert.Equal(t, first, second, "format %s not stable for %+v", format, p)

			// The round trip must also stay within the documented
			// rounding tolerance of the original point.
			assert.InDelta(t, p.Latitude, parsed.Latitude, 1e-4)
			assert.InDelta(t, p.Longitude, parsed.Longitude, 1e-4)
		}
	}
}
