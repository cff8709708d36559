package waypoints

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	path := filepath.Join(t.TempDir(), "waypoints.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Latitude", "Longitude"},
		{47.6062, -122.3321},
		{40.7128, -74.0060},
	})

	points, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 47.6062, points[0].Latitude, 1e-6)
	assert.InDelta(t, -74.0060, points[1].Longitude, 1e-6)
}

func TestReadXLSX_SkipsBadRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Puzzle finals 2026"},
		{47.6062, -122.3321},
		{"n/a", "n/a"},
		{999.0, 0.0}, // out-of-range latitude
		{40.7128, -74.0060},
	})

	points, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 40.7128, points[1].Latitude, 1e-6)
}

func TestReadXLSX_Columns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Name", "Lat", "Lon"},
		{"Stage 1", 47.6062, -122.3321},
	})

	points, err := ReadXLSX(path, XLSXOptions{LatColumn: 1, LonColumn: 2})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, -122.3321, points[0].Longitude, 1e-6)
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX("/no/such/book.xlsx", XLSXOptions{})
	assert.Error(t, err)
}
