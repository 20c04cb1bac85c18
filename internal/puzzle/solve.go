// internal/puzzle/solve.go
//
// The whole-puzzle search: a layered backtracker that grows boards one cell
// at a time in row-major order. Each layer keeps only the boards whose
// newest piece fits its already-placed neighbors, so invalid partial boards
// are pruned the moment they appear instead of at the end.

package puzzle

import "fmt"

// Solve fills a columns×rows board with the given pieces. Exactly
// columns*rows tiles must be supplied. The returned map holds the surviving
// boards at every piece count from 1 to columns*rows; the boards at the
// final count are the solutions. Boards in each layer are deduplicated by
// value and kept in discovery order.
func Solve(columns, rows int, pieces []*Piece) (map[int][]*Puzzle, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: solve needs positive dimensions, got %dx%d",
			ErrDimensionMismatch, columns, rows)
	}
	if len(pieces) != columns*rows {
		return nil, fmt.Errorf("%w: %d pieces supplied for a %dx%d puzzle (need %d)",
			ErrCapacityExceeded, len(pieces), columns, rows, columns*rows)
	}

	empty, err := NewPuzzle(0, 0, nil)
	if err != nil {
		return nil, err
	}

	layers := make(map[int][]*Puzzle, len(pieces))
	current := []*Puzzle{empty}
	for size := 1; size <= len(pieces); size++ {
		// Next cell in row-major fill order. The board grows a column at
		// a time until it is full width, then a row at a time; FitAt
		// handles the growth itself.
		col := (size - 1) % columns
		row := (size - 1) / columns

		seen := make(map[string]struct{})
		next := []*Puzzle{}
		for _, board := range current {
			for _, piece := range pieces {
				fits, err := board.FitAt(piece, col, row)
				if err != nil {
					return nil, err
				}
				for _, f := range fits {
					key := f.Key()
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					next = append(next, f)
				}
			}
		}
		layers[size] = next
		current = next
	}
	return layers, nil
}

// Solutions runs Solve and returns only the complete boards.
func Solutions(columns, rows int, pieces []*Piece) ([]*Puzzle, error) {
	layers, err := Solve(columns, rows, pieces)
	if err != nil {
		return nil, err
	}
	return layers[columns*rows], nil
}
