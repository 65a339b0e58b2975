// Command trajectory computes a projectile trajectory and prints its summary,
// coordinate table, ASCII plot and line chart.
//
// Launch parameters come from flags, from a LaunchInput JSON file argument,
// or from stdin when the argument is "-". Flags set explicitly override the
// file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cxd309/trajectory/internal/engine"
	"github.com/cxd309/trajectory/internal/graph"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	input       engine.LaunchInput
	marker      string
	xTick       string
	yTick       string
	chartHeight int
	chartWidth  int
	format      string
	asJSON      bool
	schema      bool
	verbose     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("trajectory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: trajectory [flags] [input.json | -]")
		fs.PrintDefaults()
	}
	fs.Float64Var(&opts.input.Speed, "speed", 0, "launch speed, m/s")
	fs.Float64Var(&opts.input.Height, "height", 0, "launch height, metres")
	fs.Float64Var(&opts.input.Angle, "angle", 0, "launch angle, degrees")
	fs.StringVar(&opts.format, "format", string(engine.FormatAll), "output: table, plot, chart or all")
	fs.BoolVar(&opts.input.Strict, "strict", false, "reject non-physical launch parameters")
	fs.StringVar(&opts.marker, "marker", graph.DefaultGlyphs.Marker, "plot marker glyph")
	fs.StringVar(&opts.xTick, "xtick", graph.DefaultGlyphs.XTick, "x axis tick glyph")
	fs.StringVar(&opts.yTick, "ytick", graph.DefaultGlyphs.YTick, "y axis tick glyph")
	fs.IntVar(&opts.chartHeight, "chart-height", 10, "line chart rows")
	fs.IntVar(&opts.chartWidth, "chart-width", 0, "line chart columns (0 = one per sample)")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.schema, "schema", false, "print the JSON schema of the input file and exit")
	fs.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(stderr, "trajectory: ", log.Ltime)
	}

	if opts.schema {
		return writeJSON(stdout, engine.Schema())
	}

	input, err := resolveInput(fs, opts, stdin, logger)
	if err != nil {
		return err
	}
	logger.Printf("speed=%g m/s height=%g m angle=%g° format=%s strict=%t",
		input.Speed, input.Height, input.Angle, input.Format, input.Strict)

	report, err := engine.Run(input)
	if err != nil {
		return err
	}
	logger.Printf("displacement=%.3f m samples=%d", report.Displacement, len(report.Coordinates))

	if opts.asJSON {
		return writeJSON(stdout, report)
	}
	return writeText(stdout, report)
}

// resolveInput merges the optional input document with the flags the user set.
func resolveInput(fs *flag.FlagSet, opts options, stdin io.Reader, logger *log.Logger) (engine.LaunchInput, error) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var input engine.LaunchInput
	switch fs.NArg() {
	case 0:
		if !set["speed"] || !set["angle"] {
			return input, errors.New("-speed and -angle are required without an input file")
		}
	case 1:
		data, err := readSource(fs.Arg(0), stdin)
		if err != nil {
			return input, fmt.Errorf("reading input: %w", err)
		}
		if err := json.Unmarshal(data, &input); err != nil {
			return input, fmt.Errorf("invalid input JSON: %w", err)
		}
		logger.Printf("loaded input from %s", fs.Arg(0))
	default:
		return input, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	if set["speed"] {
		input.Speed = opts.input.Speed
	}
	if set["height"] {
		input.Height = opts.input.Height
	}
	if set["angle"] {
		input.Angle = opts.input.Angle
	}
	if set["strict"] {
		input.Strict = opts.input.Strict
	}
	if set["format"] || input.Format == "" {
		input.Format = engine.Format(opts.format)
	}

	glyphs := graph.Glyphs{}
	if input.Glyphs != nil {
		glyphs = *input.Glyphs
	}
	if set["marker"] {
		glyphs.Marker = opts.marker
	}
	if set["xtick"] {
		glyphs.XTick = opts.xTick
	}
	if set["ytick"] {
		glyphs.YTick = opts.yTick
	}
	input.Glyphs = &glyphs

	chart := engine.ChartSize{}
	if input.Chart != nil {
		chart = *input.Chart
	}
	if set["chart-height"] || chart.Height == 0 {
		chart.Height = opts.chartHeight
	}
	if set["chart-width"] {
		chart.Width = opts.chartWidth
	}
	input.Chart = &chart

	return input, nil
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeText(w io.Writer, report engine.Report) error {
	if _, err := fmt.Fprint(w, report.Summary); err != nil {
		return err
	}
	for _, section := range []string{report.Table, report.Plot, report.Chart} {
		if section == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", section); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
