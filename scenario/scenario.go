// Package scenario loads hex maps and search cases from YAML and builds
// hexgrid graphs from them.
//
// A scenario file draws the map as offset rows, one glyph per cell:
//
//	width: 5
//	default_cost: 1
//	costs: {"~": 3}
//	rows:
//	  - "..#.."
//	  - ".##."
//	searches:
//	  - name: across
//	    from: [0, 0]   # [col, row]
//	    to: [4, 0]
//	    expect_cost: 4
//
// Glyphs: '.' open at default_cost, '#' wall, ' ' no cell, '1'..'9' open at
// that cost, and any single-character key of costs open at the mapped cost.
// Even rows hold up to width glyphs, odd rows up to width-1.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexastar/astar"
	"github.com/katalvlaran/hexastar/hexgrid"
)

// Sentinel errors for scenario parsing and building.
var (
	// ErrNoRows indicates a scenario without any map rows.
	ErrNoRows = errors.New("scenario: no map rows")
	// ErrBadShape indicates width/height that do not fit the rows.
	ErrBadShape = errors.New("scenario: map shape does not match rows")
	// ErrRowTooLong indicates a row with more glyphs than the layout allows.
	ErrRowTooLong = errors.New("scenario: row too long")
	// ErrUnknownGlyph indicates a glyph with no meaning.
	ErrUnknownGlyph = errors.New("scenario: unknown glyph")
	// ErrBadCostTable indicates a costs key that is not a single free glyph.
	ErrBadCostTable = errors.New("scenario: invalid costs entry")
	// ErrBadSearch indicates a search whose endpoint has no cell.
	ErrBadSearch = errors.New("scenario: search endpoint has no cell")
)

const (
	glyphOpen  = '.'
	glyphWall  = '#'
	glyphEmpty = ' '
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Width       int                `yaml:"width"`
	Height      int                `yaml:"height"`
	DefaultCost float64            `yaml:"default_cost"`
	Costs       map[string]float64 `yaml:"costs"`
	Rows        []string           `yaml:"rows"`
	Searches    []SearchSpec       `yaml:"searches"`
}

// SearchSpec is one search case. Endpoints are offset [col, row] pairs.
type SearchSpec struct {
	Name       string   `yaml:"name"`
	From       [2]int   `yaml:"from"`
	To         [2]int   `yaml:"to"`
	ExpectCost *float64 `yaml:"expect_cost"`
}

// Tile is one map cell as drawn in the scenario.
type Tile struct {
	Col, Row int
	X, Y     int
	Glyph    rune
	Wall     bool
	Cost     float64
}

// Outcome is the result of one SearchSpec.
type Outcome struct {
	Spec   SearchSpec
	Result astar.Result[Tile]
}

// Mismatch reports whether the search declared an expected cost that the result missed.
// An expected cost with no path found is a mismatch.
func (o Outcome) Mismatch() bool {
	if o.Spec.ExpectCost == nil {
		return false
	}
	return !o.Result.Found || o.Result.Cost != *o.Spec.ExpectCost
}

// Accessors map Tile fields onto the grid.
var Accessors = hexgrid.Accessors[Tile]{
	X: func(t Tile) int { return t.X },
	Y: func(t Tile) int { return t.Y },
	Type: func(t Tile) hexgrid.NodeType {
		if t.Wall {
			return hexgrid.Wall
		}
		return hexgrid.Open
	},
	Cost: func(t Tile) float64 { return t.Cost },
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario and applies defaults. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if len(sc.Rows) == 0 {
		return nil, ErrNoRows
	}
	if sc.DefaultCost == 0 {
		sc.DefaultCost = 1
	}
	if sc.Width == 0 {
		sc.Width = utf8.RuneCountInString(sc.Rows[0])
		if len(sc.Rows) > 1 {
			sc.Width = max(sc.Width, utf8.RuneCountInString(sc.Rows[1])+1)
		}
	}
	if sc.Height == 0 {
		sc.Height = len(sc.Rows)
	}
	if sc.Width <= 0 || sc.Height != len(sc.Rows) {
		return nil, fmt.Errorf("%w: %dx%d for %d rows", ErrBadShape, sc.Width, sc.Height, len(sc.Rows))
	}
	for key := range sc.Costs {
		r, n := utf8.DecodeRuneInString(key)
		if n == 0 || n != len(key) || r == glyphOpen || r == glyphWall || r == glyphEmpty {
			return nil, fmt.Errorf("%w: %q", ErrBadCostTable, key)
		}
	}

	return &sc, nil
}

// Size returns the map bounds.
func (sc *Scenario) Size() hexgrid.MapSize {
	return hexgrid.MapSize{Width: sc.Width, Height: sc.Height}
}

// Tiles expands the rows into tiles, row by row.
func (sc *Scenario) Tiles() ([]Tile, error) {
	size := sc.Size()
	tiles := make([]Tile, 0, size.Width*size.Height)
	for row, line := range sc.Rows {
		if n := utf8.RuneCountInString(line); n > hexgrid.RowLen(size, row) {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, max %d", ErrRowTooLong, row, n, hexgrid.RowLen(size, row))
		}
		col := 0
		for _, glyph := range line {
			if glyph != glyphEmpty {
				t, err := sc.tile(col, row, glyph)
				if err != nil {
					return nil, err
				}
				tiles = append(tiles, t)
			}
			col++
		}
	}
	return tiles, nil
}

func (sc *Scenario) tile(col, row int, glyph rune) (Tile, error) {
	p := hexgrid.FromOffset(col, row)
	t := Tile{Col: col, Row: row, X: p.X, Y: p.Y, Glyph: glyph, Cost: sc.DefaultCost}
	if cost, ok := sc.Costs[string(glyph)]; ok {
		t.Cost = cost
		return t, nil
	}
	switch {
	case glyph == glyphOpen:
	case glyph == glyphWall:
		t.Wall = true
	case glyph >= '1' && glyph <= '9':
		t.Cost = float64(glyph - '0')
	default:
		return Tile{}, fmt.Errorf("%w: %q at col %d row %d", ErrUnknownGlyph, glyph, col, row)
	}
	return t, nil
}

// Build expands the rows and constructs the graph.
func (sc *Scenario) Build() (*hexgrid.Graph[Tile], error) {
	tiles, err := sc.Tiles()
	if err != nil {
		return nil, err
	}
	return hexgrid.NewGraph(tiles, Accessors, sc.Size())
}

// Run executes every search of the scenario over g, in declaration order.
// It stops at the first search whose endpoint has no cell.
func (sc *Scenario) Run(g *hexgrid.Graph[Tile], opts ...astar.Option) ([]Outcome, error) {
	out := make([]Outcome, 0, len(sc.Searches))
	for i, s := range sc.Searches {
		start, ok := g.GetNodeAt(hexgrid.FromOffset(s.From[0], s.From[1]))
		if !ok {
			return out, fmt.Errorf("%w: search %d (%s) from %v", ErrBadSearch, i, s.Name, s.From)
		}
		goal, ok := g.GetNodeAt(hexgrid.FromOffset(s.To[0], s.To[1]))
		if !ok {
			return out, fmt.Errorf("%w: search %d (%s) to %v", ErrBadSearch, i, s.Name, s.To)
		}
		res, err := astar.Search(g, start, goal, opts...)
		if err != nil {
			return out, fmt.Errorf("search %d (%s): %w", i, s.Name, err)
		}
		out = append(out, Outcome{Spec: s, Result: res})
	}
	return out, nil
}
