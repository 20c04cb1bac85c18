// internal/puzzle/errors.go
//
// Error values for the puzzle engine.
// Sentinels cover the unconditional failures (bad orientation data, bad
// board dimensions, too many pieces, out-of-bounds placement); a structured
// PlacementError carries the detail of a piece that cannot occupy a cell.

package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOrientation: the ends pattern is not one of the four
	// cyclic tab/blank patterns a real piece can show.
	ErrInvalidOrientation = errors.New("puzzle: invalid orientation")

	// ErrDimensionMismatch: negative dimensions, or exactly one of
	// width/height is zero.
	ErrDimensionMismatch = errors.New("puzzle: invalid dimensions")

	// ErrCapacityExceeded: more pieces than the board has cells.
	ErrCapacityExceeded = errors.New("puzzle: capacity exceeded")

	// ErrOutOfBounds: a placement targeted a cell outside the board.
	ErrOutOfBounds = errors.New("puzzle: out of bounds")

	// ErrPlacementConflict is the base of every PlacementError.
	ErrPlacementConflict = errors.New("puzzle: placement conflict")
)

// EdgeConflict names one direction a placed piece failed in and the
// display form of whatever sits there.
type EdgeConflict struct {
	Edge     Edge
	Neighbor string
}

// PlacementError reports a piece that cannot legally occupy a cell: either
// the cell is already taken, or one or more neighbor edges refuse the fit.
type PlacementError struct {
	Col, Row  int
	Piece     string // display form of the offending piece
	Occupied  bool   // the target cell already held a piece
	Conflicts []EdgeConflict
}

func (e *PlacementError) Error() string {
	if e.Occupied {
		return fmt.Sprintf("piece %s can not be placed at col %d, row %d: cell is occupied",
			e.Piece, e.Col, e.Row)
	}
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = fmt.Sprintf("%s is %s", c.Edge, c.Neighbor)
	}
	return fmt.Sprintf("piece %s does not fit at col %d, row %d: %s",
		e.Piece, e.Col, e.Row, strings.Join(parts, ", "))
}

func (e *PlacementError) Unwrap() error { return ErrPlacementConflict }
