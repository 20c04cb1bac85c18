// internal/puzzle/board.go
//
// Puzzle: an immutable rectangular board of cells.
// Responsibilities:
//   - Validate dimensions, capacity, and every placed piece against its
//     grid neighbors at construction time. Construction is the single
//     source of board legality; there is no separate validation pass.
//   - Total accessors for renderers: Get and Neighbors never fail,
//     out-of-bounds coordinates read as empty cells.
//   - Functional updates: PlaceAt and FitAt return new boards, the
//     receiver is never mutated.

package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Puzzle is an immutable width×height board in row-major order. Boards are
// only ever constructed through NewPuzzle, so every Puzzle value satisfies
// the full neighbor-fit constraint.
type Puzzle struct {
	width  int
	height int
	cells  []Cell
}

// NewPuzzle builds a board from at most width*height cells in row-major
// order, right-padding with empties. Width and height must be both zero or
// both positive. Every occupied cell is checked against its neighbors; the
// first offender aborts construction with a PlacementError.
func NewPuzzle(width, height int, cells []Cell) (*Puzzle, error) {
	switch {
	case width < 0:
		return nil, fmt.Errorf("%w: negative width is not allowed", ErrDimensionMismatch)
	case height < 0:
		return nil, fmt.Errorf("%w: negative height is not allowed", ErrDimensionMismatch)
	case width == 0 && height > 0:
		return nil, fmt.Errorf("%w: width must be positive since height is positive", ErrDimensionMismatch)
	case height == 0 && width > 0:
		return nil, fmt.Errorf("%w: height must be positive since width is positive", ErrDimensionMismatch)
	}
	if len(cells) > width*height {
		return nil, fmt.Errorf("%w: %d pieces will not fit in a puzzle of size %d (width %d, height %d)",
			ErrCapacityExceeded, len(cells), width*height, width, height)
	}

	grid := make([]Cell, width*height)
	copy(grid, cells)
	p := &Puzzle{width: width, height: height, cells: grid}

	for i, c := range grid {
		if c.IsEmpty() {
			continue
		}
		col, row := i%width, i/width
		neighbors := p.Neighbors(col, row)
		fits := c.piece.FitsNeighbors(neighbors)
		var conflicts []EdgeConflict
		for _, e := range Edges {
			if !fits[e] {
				conflicts = append(conflicts, EdgeConflict{Edge: e, Neighbor: neighbors[e].String()})
			}
		}
		if len(conflicts) > 0 {
			return nil, &PlacementError{Col: col, Row: row, Piece: c.piece.String(), Conflicts: conflicts}
		}
	}
	return p, nil
}

func (p *Puzzle) Width() int  { return p.width }
func (p *Puzzle) Height() int { return p.height }

// Count returns the number of placed pieces.
func (p *Puzzle) Count() int {
	n := 0
	for _, c := range p.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Cells returns a copy of the board content in row-major order.
func (p *Puzzle) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// Get returns the cell at (col, row); out-of-bounds coordinates read as an
// empty cell, so callers never need a bounds check.
func (p *Puzzle) Get(col, row int) Cell {
	if col < 0 || row < 0 || col >= p.width || row >= p.height {
		return EmptySpot()
	}
	return p.cells[row*p.width+col]
}

// Neighbors returns the four cells adjacent to (col, row), indexed by Edge.
func (p *Puzzle) Neighbors(col, row int) [4]Cell {
	return [4]Cell{
		North: p.Get(col, row-1),
		East:  p.Get(col+1, row),
		South: p.Get(col, row+1),
		West:  p.Get(col-1, row),
	}
}

// Contains reports whether this exact tile is already on the board.
func (p *Puzzle) Contains(piece *Piece) bool {
	for _, c := range p.cells {
		if !c.IsEmpty() && c.piece.piece.Same(piece) {
			return true
		}
	}
	return false
}

// Equal compares boards cell by cell under Cell.Equal semantics. Since an
// empty cell equals nothing, only boards without empties can be equal; use
// Key for value identity that treats empties as interchangeable.
func (p *Puzzle) Equal(other *Puzzle) bool {
	if other == nil || p.width != other.width || p.height != other.height {
		return false
	}
	for i := range p.cells {
		if !p.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// Key is a canonical value identity for deduplication: dimensions plus each
// cell's (tile serial, flip, turn). All empty cells render alike, so boards
// with the same pieces in the same places collapse to one key.
func (p *Puzzle) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", p.width, p.height)
	for _, c := range p.cells {
		if c.IsEmpty() {
			b.WriteString("|_")
			continue
		}
		fmt.Fprintf(&b, "|%d.%t.%d", c.piece.piece.id, c.piece.flip, c.piece.turn)
	}
	return b.String()
}

// PlaceAt returns a new board with op at (col, row). The target must lie
// inside the current bounds and be empty; the new board re-runs the full
// neighbor validation, so an ill-fitting piece surfaces as a
// PlacementError.
func (p *Puzzle) PlaceAt(op OrientedPiece, col, row int) (*Puzzle, error) {
	if col < 0 || row < 0 || col >= p.width || row >= p.height {
		return nil, fmt.Errorf("%w: col %d, row %d on a %dx%d puzzle",
			ErrOutOfBounds, col, row, p.width, p.height)
	}
	if !p.Get(col, row).IsEmpty() {
		return nil, &PlacementError{Col: col, Row: row, Piece: op.String(), Occupied: true}
	}
	cells := make([]Cell, len(p.cells))
	copy(cells, p.cells)
	cells[row*p.width+col] = Occupied(op)
	return NewPuzzle(p.width, p.height, cells)
}

// FitAt tries the tile at (col, row) in all eight orientations, growing the
// board first when the target lies outside it. A tile already on the board
// fits nowhere. Conflicting orientations are expected and skipped; the
// survivors come back deduplicated by value.
func (p *Puzzle) FitAt(piece *Piece, col, row int) ([]*Puzzle, error) {
	if p.Contains(piece) {
		return nil, nil
	}
	base := p
	if col >= p.width || row >= p.height {
		grown, err := p.grow(max(col+1, p.width), max(row+1, p.height))
		if err != nil {
			return nil, err
		}
		base = grown
	}

	seen := make(map[string]struct{}, 8)
	var out []*Puzzle
	for _, flip := range [2]bool{false, true} {
		for _, turn := range Turns {
			next, err := base.PlaceAt(Orient(piece, flip, turn), col, row)
			if err != nil {
				if errors.Is(err, ErrPlacementConflict) || errors.Is(err, ErrOutOfBounds) {
					continue
				}
				return nil, err
			}
			key := next.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, next)
		}
	}
	return out, nil
}

// grow rebuilds the board at a larger size, replaying every placed piece.
// Growing only adds empty cells, so a legal board stays legal.
func (p *Puzzle) grow(width, height int) (*Puzzle, error) {
	next, err := NewPuzzle(width, height, nil)
	if err != nil {
		return nil, err
	}
	for i, c := range p.cells {
		if c.IsEmpty() {
			continue
		}
		next, err = next.PlaceAt(c.piece, i%p.width, i/p.width)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
