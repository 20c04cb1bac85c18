// internal/pieceset/pieceset.go
//
// Provides piece-set catalog management for the solver.
//
// Responsibilities:
//   - Load named piece sets from an environment-provided YAML file or fall
//     back to the embedded defaults.
//   - Parse piece codes into puzzle pieces on demand; every Build call mints
//     fresh tiles so one catalog serves concurrent solves.
//   - Supply utility functions like Sets, Get, and Stats.
//
// Piece codes:
//   - Four shape letters (C=club, D=diamond, H=heart, S=spade) for the
//     north, east, south, west edges, e.g. "SDHD". A bare code is a
//     standard red piece: tabs north and east, blanks south and west.
//   - An optional "/TBBT" segment overrides the ends (T=tab, B=blank) and
//     an optional "/black" segment the side; the face is normalized back
//     to standard form at construction, so these spell the same tile in a
//     different orientation.
//
// Environment variables:
//   PIECESET_FILE=/path/to/sets.yaml
//
// Initialization is run once (sync.Once).

package pieceset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/otplabs/onetough/internal/puzzle"
)

//go:embed default_sets.yaml
var embeddedSets []byte

// Set is one named catalog entry: a list of piece codes.
type Set struct {
	Name   string   `yaml:"name"`
	Pieces []string `yaml:"pieces"`
}

type catalogFile struct {
	Sets []Set `yaml:"sets"`
}

var (
	initOnce   sync.Once
	catalog    []Set
	catalogIdx map[string]Set
	initialErr error
)

// Init loads the piece-set catalog exactly once: from PIECESET_FILE when
// set, otherwise from the embedded defaults. Every code in every set is
// parsed here, so a bad catalog fails at startup rather than mid-solve.
func Init() error {
	initOnce.Do(func() {
		raw := embeddedSets
		if path := os.Getenv("PIECESET_FILE"); path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				initialErr = err
				return
			}
			raw = b
		}

		var file catalogFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			initialErr = fmt.Errorf("pieceset: parse catalog: %w", err)
			return
		}
		if len(file.Sets) == 0 {
			initialErr = fmt.Errorf("pieceset: catalog holds no sets")
			return
		}

		idx := make(map[string]Set, len(file.Sets))
		for _, s := range file.Sets {
			if s.Name == "" {
				initialErr = fmt.Errorf("pieceset: set without a name")
				return
			}
			if _, dup := idx[s.Name]; dup {
				initialErr = fmt.Errorf("pieceset: duplicate set %q", s.Name)
				return
			}
			if _, err := s.Build(); err != nil {
				initialErr = fmt.Errorf("pieceset: set %q: %w", s.Name, err)
				return
			}
			idx[s.Name] = s
		}
		catalog = file.Sets
		catalogIdx = idx
	})
	return initialErr
}

// Sets returns the catalog in file order.
func Sets() []Set {
	return catalog
}

// Get looks a set up by name.
func Get(name string) (Set, bool) {
	s, ok := catalogIdx[name]
	return s, ok
}

// Stats returns counts of loaded sets and pieces across them.
func Stats() (setCount int, pieceCount int) {
	for _, s := range catalog {
		pieceCount += len(s.Pieces)
	}
	return len(catalog), pieceCount
}

// Build parses the set's codes into freshly minted pieces. Two builds of
// the same set yield tiles with distinct identities.
func (s Set) Build() ([]*puzzle.Piece, error) {
	out := make([]*puzzle.Piece, 0, len(s.Pieces))
	for _, code := range s.Pieces {
		p, err := ParseCode(code)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseCode mints one piece from a code like "SDHD", "SDHD/TBBT" or
// "SDHD/TBBT/black".
func ParseCode(code string) (*puzzle.Piece, error) {
	parts := strings.Split(strings.TrimSpace(code), "/")
	if len(parts) > 3 {
		return nil, fmt.Errorf("piece code %q: too many segments", code)
	}

	shapes, err := parseShapes(code, parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		p, err := puzzle.NewPiece(shapes[0], shapes[1], shapes[2], shapes[3])
		if err != nil {
			return nil, fmt.Errorf("piece code %q: %w", code, err)
		}
		return p, nil
	}

	ends, err := parseEnds(code, parts[1])
	if err != nil {
		return nil, err
	}
	side := puzzle.Red
	if len(parts) == 3 {
		side, err = parseSide(code, parts[2])
		if err != nil {
			return nil, err
		}
	}

	marks := [4]puzzle.EdgeMark{}
	for i := range marks {
		marks[i] = puzzle.EdgeMark{Shape: shapes[i], End: ends[i]}
	}
	p, err := puzzle.NewPieceOriented(puzzle.NewOrientation(side, marks[0], marks[1], marks[2], marks[3]))
	if err != nil {
		return nil, fmt.Errorf("piece code %q: %w", code, err)
	}
	return p, nil
}

func parseShapes(code, s string) ([4]puzzle.Shape, error) {
	var out [4]puzzle.Shape
	if len(s) != 4 {
		return out, fmt.Errorf("piece code %q: need 4 shape letters, got %d", code, len(s))
	}
	for i := 0; i < 4; i++ {
		switch s[i] {
		case 'C', 'c':
			out[i] = puzzle.Club
		case 'D', 'd':
			out[i] = puzzle.Diamond
		case 'H', 'h':
			out[i] = puzzle.Heart
		case 'S', 's':
			out[i] = puzzle.Spade
		default:
			return out, fmt.Errorf("piece code %q: unknown shape letter %q", code, s[i])
		}
	}
	return out, nil
}

func parseEnds(code, s string) ([4]puzzle.End, error) {
	var out [4]puzzle.End
	if len(s) != 4 {
		return out, fmt.Errorf("piece code %q: need 4 end letters, got %d", code, len(s))
	}
	for i := 0; i < 4; i++ {
		switch s[i] {
		case 'T', 't':
			out[i] = puzzle.Tab
		case 'B', 'b':
			out[i] = puzzle.Blank
		default:
			return out, fmt.Errorf("piece code %q: unknown end letter %q", code, s[i])
		}
	}
	return out, nil
}

func parseSide(code, s string) (puzzle.Side, error) {
	switch strings.ToLower(s) {
	case "red":
		return puzzle.Red, nil
	case "black":
		return puzzle.Black, nil
	default:
		return puzzle.Red, fmt.Errorf("piece code %q: unknown side %q", code, s)
	}
}
