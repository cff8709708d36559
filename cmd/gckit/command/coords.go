package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gckit/gckit/internal/lib/coords"
)

var (
	coordsMode     string
	coordsFormat   string
	coordsUnit     string
	coordsDistance float64
	coordsBearing  float64
)

var coordsCmd = &cobra.Command{
	Use:   "coords [flags] COORDINATE...",
	Short: "Parse, convert and measure coordinates",
	Long: `Operate on coordinate strings in decimal, DDM or DMS notation.
Modes: convert (one coordinate, re-formatted with --out-format), distance
(two coordinates, great-circle distance in --unit), project (one origin
coordinate plus --distance and --bearing).`,
	RunE: runCoords,
}

func init() {
	coordsCmd.Flags().StringVar(&coordsMode, "mode", "convert", "operation: convert, distance, project")
	coordsCmd.Flags().StringVar(&coordsFormat, "out-format", "", "output notation: decimal, ddm, dms")
	coordsCmd.Flags().StringVar(&coordsUnit, "unit", "", "distance unit: km, mi, m, nm")
	coordsCmd.Flags().Float64Var(&coordsDistance, "distance", 0, "distance to project (project mode)")
	coordsCmd.Flags().Float64Var(&coordsBearing, "bearing", 0, "bearing in degrees, 0 = north, clockwise (project mode)")
	rootCmd.AddCommand(coordsCmd)
}

func runCoords(cmd *cobra.Command, args []string) error {
	switch coordsMode {
	case "convert":
		if len(args) != 1 {
			return fmt.Errorf("convert mode takes exactly one coordinate")
		}
		point, err := coords.Parse(args[0])
		if err != nil {
			return err
		}
		format, err := defaultFormat(coordsFormat)
		if err != nil {
			return err
		}
		text, err := coords.FormatPoint(point, format)
		if err != nil {
			return err
		}
		return printResult(text, map[string]interface{}{
			"coordinate": text,
			"point":      point,
		})

	case "distance":
		if len(args) != 2 {
			return fmt.Errorf("distance mode takes exactly two coordinates")
		}
		a, err := coords.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := coords.Parse(args[1])
		if err != nil {
			return err
		}
		unit, err := defaultUnit(coordsUnit)
		if err != nil {
			return err
		}
		d, err := coords.Distance(a, b, unit)
		if err != nil {
			return err
		}
		return printResult(
			fmt.Sprintf("%.3f %s", d, unit),
			map[string]interface{}{"distance": d, "unit": unit},
		)

	case "project":
		if len(args) != 1 {
			return fmt.Errorf("project mode takes exactly one origin coordinate")
		}
		origin, err := coords.Parse(args[0])
		if err != nil {
			return err
		}
		unit, err := defaultUnit(coordsUnit)
		if err != nil {
			return err
		}
		dest, err := coords.Project(origin, coordsDistance, coordsBearing, unit)
		if err != nil {
			return err
		}
		format, err := defaultFormat(coordsFormat)
		if err != nil {
			return err
		}
		text, err := coords.FormatPoint(dest, format)
		if err != nil {
			return err
		}
		return printResult(text, map[string]interface{}{
			"coordinate": text,
			"point":      dest,
		})
	}
	return fmt.Errorf("unsupported coords mode: %q", coordsMode)
}
