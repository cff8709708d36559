package waypoints

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gckit/gckit/internal/lib/coords"
)

// XLSXOptions selects where coordinates live in a spreadsheet. The zero
// value reads latitude from the first column and longitude from the second
// of the first sheet.
type XLSXOptions struct {
	Sheet     string
	LatColumn int
	LonColumn int
}

// ReadXLSX reads a point set from an Excel workbook. Rows with missing or
// unparseable coordinate cells, header rows included, are skipped rather
// than failing the whole sheet, since real spreadsheets carry titles, notes
// and totals between data rows.
func ReadXLSX(path string, opts XLSXOptions) ([]coords.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}

	latCol, lonCol := opts.LatColumn, opts.LonColumn
	if latCol == 0 && lonCol == 0 {
		lonCol = 1
	}
	maxCol := latCol
	if lonCol > maxCol {
		maxCol = lonCol
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	var points []coords.Point
	for _, row := range rows {
		if len(row) <= maxCol {
			continue
		}
		lat, err1 := parseCell(row[latCol])
		lon, err2 := parseCell(row[lonCol])
		if err1 != nil || err2 != nil {
			continue
		}
		p, err := coords.NewPoint(lat, lon)
		if err != nil {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

// parseCell parses a coordinate cell, tolerating decimal commas from
// locale-formatted sheets.
func parseCell(val string) (float64, error) {
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(val, 64)
}
