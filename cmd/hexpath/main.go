// Command hexpath loads a hex map scenario, runs its searches and prints the paths.
//
// Usage:
//
//	hexpath [-scenario file.yaml] [-log-level debug] [-json]
//
// When -scenario is empty, HEXPATH_SCENARIO is used. The exit status is 1 when
// the scenario cannot be loaded or a search misses its expect_cost.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/hexastar/astar"
	"github.com/katalvlaran/hexastar/scenario"
)

const envScenario = "HEXPATH_SCENARIO"

var errMismatch = errors.New("hexpath: expected cost not met")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hexpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("scenario", "", "scenario YAML file (default $"+envScenario+")")
	levelName := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	asJSON := fs.Bool("json", false, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		*path = os.Getenv(envScenario)
	}
	if *path == "" {
		return fmt.Errorf("hexpath: no scenario given (use -scenario or $%s)", envScenario)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*levelName)); err != nil {
		return fmt.Errorf("hexpath: bad -log-level: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	var logger *astar.Logger
	if *asJSON {
		logger = astar.NewLogger(slog.NewJSONHandler(stderr, hopts))
	} else {
		logger = astar.NewLogger(slog.NewTextHandler(stderr, hopts))
	}

	sc, err := scenario.Load(*path)
	if err != nil {
		return err
	}
	g, err := sc.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", *path, err)
	}
	logger.InfoContext(context.Background(), "scenario loaded",
		"path", *path,
		"width", sc.Width,
		"height", sc.Height,
		"cells", g.Len(),
		"searches", len(sc.Searches),
	)

	out, err := sc.Run(g, astar.WithLogger(logger))
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range out {
		fmt.Fprintln(stdout, formatOutcome(o))
		if o.Mismatch() {
			failed++
			logger.Warn("unexpected cost",
				"search", o.Spec.Name,
				"want", *o.Spec.ExpectCost,
				"got", o.Result.Cost,
				"found", o.Result.Found,
			)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d searches", errMismatch, failed, len(out))
	}
	return nil
}

// formatOutcome renders one search as a single line of offset coordinates.
func formatOutcome(o scenario.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", o.Spec.Name)
	if !o.Result.Found {
		b.WriteString("no path")
		return b.String()
	}
	fmt.Fprintf(&b, "cost=%g steps=%d path=(%d,%d)", o.Result.Cost, len(o.Result.Path), o.Spec.From[0], o.Spec.From[1])
	for _, t := range o.Result.Path {
		fmt.Fprintf(&b, " (%d,%d)", t.Col, t.Row)
	}
	return b.String()
}
