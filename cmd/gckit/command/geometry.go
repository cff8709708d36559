package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gckit/gckit/internal/lib/coords"
	"github.com/gckit/gckit/internal/lib/geometry"
	"github.com/gckit/gckit/internal/lib/waypoints"
)

var (
	geometryMode     string
	geometryFormat   string
	geometryUnit     string
	geometryRadius   bool
	geometryInput    string
	geometryPolyline string
	geometryOutKML   string
)

var geometryCmd = &cobra.Command{
	Use:   "geometry [flags] [COORDINATE...]",
	Short: "Geometric calculations over waypoint sets",
	Long: `Run a geometric calculation over a set of waypoints. Points are given
as positional coordinate strings, loaded from a file (--input; text, .kml
or .xlsx), or decoded from an encoded polyline (--polyline); sources are
concatenated in that flag order.

Modes: midpoint (2 points), centroid (1+), circumcenter (3, --radius adds
the circumradius), orthocenter (3), triangle-area (3), bounding-box (1+),
point-in-polygon (test point first, then 3+ polygon vertices).`,
	RunE: runGeometry,
}

func init() {
	geometryCmd.Flags().StringVar(&geometryMode, "mode", "", "operation: midpoint, centroid, circumcenter, orthocenter, triangle-area, bounding-box, point-in-polygon")
	geometryCmd.Flags().StringVar(&geometryFormat, "format", "", "output notation: decimal, ddm, dms")
	geometryCmd.Flags().StringVar(&geometryUnit, "unit", "", "unit for distances and areas: km, mi, m, nm")
	geometryCmd.Flags().BoolVar(&geometryRadius, "radius", false, "also print the circumradius (circumcenter mode)")
	geometryCmd.Flags().StringVar(&geometryInput, "input", "", "load waypoints from a file (.kml, .xlsx, or coordinate text)")
	geometryCmd.Flags().StringVar(&geometryPolyline, "polyline", "", "load waypoints from a Google encoded polyline")
	geometryCmd.Flags().StringVar(&geometryOutKML, "out-kml", "", "write the waypoints and result to a KML file")
	geometryCmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(geometryCmd)
}

func runGeometry(cmd *cobra.Command, args []string) error {
	points, err := gatherPoints(args)
	if err != nil {
		return err
	}

	format, err := defaultFormat(geometryFormat)
	if err != nil {
		return err
	}
	unit, err := defaultUnit(geometryUnit)
	if err != nil {
		return err
	}

	calc := geometry.NewCalculator(geometry.WithMaxPoints(cfg.Geometry.MaxPoints))

	switch geometryMode {
	case "midpoint":
		if len(points) != 2 {
			return fmt.Errorf("midpoint takes exactly two points, got %d", len(points))
		}
		mid, err := calc.Midpoint(points[0], points[1])
		if err != nil {
			return err
		}
		return emitPoint("midpoint", mid, format, points)

	case "centroid":
		center, err := calc.Centroid(points)
		if err != nil {
			return err
		}
		return emitPoint("centroid", center, format, points)

	case "circumcenter":
		if len(points) != 3 {
			return fmt.Errorf("circumcenter takes exactly three points, got %d", len(points))
		}
		center, err := calc.Circumcenter(points[0], points[1], points[2])
		if err != nil {
			return err
		}
		if !geometryRadius {
			return emitPoint("circumcenter", center, format, points)
		}
		radius, err := calc.Circumradius(points[0], points[1], points[2], unit)
		if err != nil {
			return err
		}
		text, err := coords.FormatPoint(center, format)
		if err != nil {
			return err
		}
		if err := maybeWriteKML("circumcenter", center, points); err != nil {
			return err
		}
		return printResult(
			fmt.Sprintf("%s\nradius: %.3f %s", text, radius, unit),
			map[string]interface{}{
				"coordinate": text,
				"point":      center,
				"radius":     radius,
				"unit":       unit,
			},
		)

	case "orthocenter":
		if len(points) != 3 {
			return fmt.Errorf("orthocenter takes exactly three points, got %d", len(points))
		}
		center, err := calc.Orthocenter(points[0], points[1], points[2])
		if err != nil {
			return err
		}
		return emitPoint("orthocenter", center, format, points)

	case "triangle-area":
		if len(points) != 3 {
			return fmt.Errorf("triangle-area takes exactly three points, got %d", len(points))
		}
		area, err := calc.TriangleArea(points[0], points[1], points[2], unit)
		if err != nil {
			return err
		}
		return printResult(
			fmt.Sprintf("%.3f %s", area, unit.Squared()),
			map[string]interface{}{"area": area, "unit": unit.Squared()},
		)

	case "bounding-box":
		box, err := calc.BoundingBox(points)
		if err != nil {
			return err
		}
		sw, err := coords.FormatPoint(box.SouthWest(), format)
		if err != nil {
			return err
		}
		ne, err := coords.FormatPoint(box.NorthEast(), format)
		if err != nil {
			return err
		}
		return printResult(
			fmt.Sprintf("southwest: %s\nnortheast: %s", sw, ne),
			map[string]interface{}{"southwest": box.SouthWest(), "northeast": box.NorthEast()},
		)

	case "point-in-polygon":
		if len(points) < 4 {
			return fmt.Errorf("point-in-polygon takes the test point plus at least three vertices, got %d points", len(points))
		}
		inside, err := calc.PointInPolygon(points[0], points[1:])
		if err != nil {
			return err
		}
		text := "outside"
		if inside {
			text = "inside"
		}
		return printResult(text, map[string]interface{}{"inside": inside})
	}
	return fmt.Errorf("unsupported geometry mode: %q", geometryMode)
}

// gatherPoints concatenates waypoints from --input, --polyline, and the
// positional coordinate strings.
func gatherPoints(args []string) ([]coords.Point, error) {
	var points []coords.Point

	if geometryInput != "" {
		loaded, err := waypoints.ReadFile(geometryInput)
		if err != nil {
			return nil, err
		}
		points = append(points, loaded...)
	}

	if geometryPolyline != "" {
		decoded, err := waypoints.DecodePolyline(geometryPolyline)
		if err != nil {
			return nil, err
		}
		points = append(points, decoded...)
	}

	for _, arg := range args {
		p, err := coords.Parse(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no waypoints given")
	}
	return points, nil
}

// emitPoint prints a computed point and optionally writes the KML export.
func emitPoint(name string, p coords.Point, format coords.Format, inputs []coords.Point) error {
	text, err := coords.FormatPoint(p, format)
	if err != nil {
		return err
	}
	if err := maybeWriteKML(name, p, inputs); err != nil {
		return err
	}
	return printResult(text, map[string]interface{}{
		"coordinate": text,
		"point":      p,
	})
}

// maybeWriteKML writes the input waypoints plus the computed result as a
// KML document when --out-kml is set.
func maybeWriteKML(result string, p coords.Point, inputs []coords.Point) error {
	if geometryOutKML == "" {
		return nil
	}

	marks := make([]waypoints.Placemark, 0, len(inputs)+1)
	for i, in := range inputs {
		marks = append(marks, waypoints.Placemark{
			Name:  fmt.Sprintf("waypoint %d", i+1),
			Point: in,
		})
	}
	marks = append(marks, waypoints.Placemark{Name: result, Point: p})

	f, err := os.Create(geometryOutKML)
	if err != nil {
		return err
	}
	defer f.Close()

	name := strings.TrimSuffix(geometryOutKML, ".kml")
	if err := waypoints.WriteKML(f, name, marks); err != nil {
		return fmt.Errorf("writing %s: %w", geometryOutKML, err)
	}
	return nil
}
