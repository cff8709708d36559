// Package command provides the gckit CLI: thin cobra commands over the
// calculation libraries. Commands parse flags, call a library function, and
// print the result; all computation lives under internal/lib.
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gckit/gckit/internal/config"
	"github.com/gckit/gckit/internal/lib/cipher"
	"github.com/gckit/gckit/internal/lib/coords"
	"github.com/gckit/gckit/internal/lib/geometry"
)

var (
	cfgPath    string
	jsonOutput bool
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gckit",
	Short: "Calculation utilities for geocaching puzzles",
	Long: `gckit bundles the calculations that come up when solving geocaching
puzzles: classical cipher decoding, coordinate parsing and conversion
between decimal, DDM and DMS notations, great-circle and planar geometry
over waypoint sets, and small text/number transforms.

Waypoint sets can be given inline, or loaded from text files, KML
documents, encoded polylines and xlsx spreadsheets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI and returns the process exit code: 0 on success, 1
// for usage and parse failures, 2 when a decode or geometry operation
// fails on otherwise well-formed input.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	var decodeErr *cipher.DecodeError
	var degenerateErr *geometry.DegenerateError
	if errors.As(err, &decodeErr) || errors.As(err, &degenerateErr) {
		return 2
	}
	return 1
}

// printResult prints the human-readable text, or the value as indented JSON
// when --json is set.
func printResult(text string, v interface{}) error {
	if jsonOutput {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(text)
	return nil
}

// defaultUnit resolves a unit flag against the configured default.
func defaultUnit(flag string) (coords.Unit, error) {
	if flag == "" {
		flag = cfg.Defaults.Unit
	}
	return coords.ParseUnit(flag)
}

// defaultFormat resolves a format flag against the configured default.
func defaultFormat(flag string) (coords.Format, error) {
	if flag == "" {
		flag = cfg.Defaults.Format
	}
	return coords.ParseFormat(flag)
}
