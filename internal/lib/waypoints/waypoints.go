// Package waypoints reads and writes ordered point sets in the formats
// puzzle solvers actually keep them in: plain text coordinate lists, KML
// documents, Google encoded polylines, and spreadsheet exports.
package waypoints

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gckit/gckit/internal/lib/coords"
)

// ReadText parses a point set from text with one coordinate string per line,
// in any notation coords.Parse accepts. Blank lines and lines starting with
// "#" are skipped.
func ReadText(r io.Reader) ([]coords.Point, error) {
	var points []coords.Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := coords.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadFile loads a point set from a file, choosing the parser by extension:
// .kml for KML, .xlsx for spreadsheets, anything else is treated as a text
// coordinate list.
func ReadFile(path string) ([]coords.Point, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		marks, err := ReadKML(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		points := make([]coords.Point, len(marks))
		for i, m := range marks {
			points[i] = m.Point
		}
		return points, nil

	case ".xlsx":
		return ReadXLSX(path, XLSXOptions{})

	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		points, err := ReadText(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return points, nil
	}
}
