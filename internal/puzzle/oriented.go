// internal/puzzle/oriented.go
//
// OrientedPiece: a tile shown after a specific (flip, turn) transform.
// Equality and ordering look at the transform parameters, not the resulting
// face — two transforms that happen to present the same face are still
// different values. The effective face is computed once and cached.
//
// Cell models the "piece or nothing" content of one board position as a
// tagged value instead of a type hierarchy. An empty cell fits anything and
// equals nothing, not even another empty cell.

package puzzle

// OrientedPiece is a tile plus the transform it is shown under.
type OrientedPiece struct {
	piece *Piece
	flip  bool
	turn  Turn
	face  Orientation
}

// Orient presents the tile after an optional left-right flip and a
// clockwise turn.
func Orient(p *Piece, flip bool, turn Turn) OrientedPiece {
	return OrientedPiece{
		piece: p,
		flip:  flip,
		turn:  turn,
		face:  p.Orientation().Reorient(flip, turn),
	}
}

// Piece returns the underlying tile.
func (op OrientedPiece) Piece() *Piece { return op.piece }

func (op OrientedPiece) Flip() bool { return op.flip }
func (op OrientedPiece) Turn() Turn { return op.turn }

// Face returns the effective orientation after the transform.
func (op OrientedPiece) Face() Orientation { return op.face }

func (op OrientedPiece) String() string { return op.face.String() }

// Equal compares by tile identity and transform parameters.
func (op OrientedPiece) Equal(other OrientedPiece) bool {
	return op.piece.Same(other.piece) && op.flip == other.flip && op.turn == other.turn
}

// Compare orders by tile serial, then flip (unflipped first), then turn.
func (op OrientedPiece) Compare(other OrientedPiece) int {
	a, b := op.piece.ID(), other.piece.ID()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	if op.flip != other.flip {
		if !op.flip {
			return -1
		}
		return 1
	}
	switch {
	case op.turn < other.turn:
		return -1
	case op.turn > other.turn:
		return 1
	}
	return 0
}

// FitsRight reports whether other sits directly to the right. Two views of
// the same tile never fit, whatever their faces show.
func (op OrientedPiece) FitsRight(other OrientedPiece) bool {
	return !op.piece.Same(other.piece) && op.face.FitsRight(other.face)
}

// FitsLeft reports whether other sits directly to the left.
func (op OrientedPiece) FitsLeft(other OrientedPiece) bool {
	return !op.piece.Same(other.piece) && op.face.FitsLeft(other.face)
}

// FitsAbove reports whether other sits directly above this piece.
func (op OrientedPiece) FitsAbove(other OrientedPiece) bool {
	return !op.piece.Same(other.piece) && op.face.FitsAbove(other.face)
}

// FitsBelow reports whether other sits directly below this piece.
func (op OrientedPiece) FitsBelow(other OrientedPiece) bool {
	return !op.piece.Same(other.piece) && op.face.FitsBelow(other.face)
}

// fitsToward checks this piece's e edge against the neighbor cell in that
// direction. Empty neighbors never constrain; a neighbor wrapping the same
// tile always refuses.
func (op OrientedPiece) fitsToward(e Edge, n Cell) bool {
	if n.IsEmpty() {
		return true
	}
	if op.piece.Same(n.piece.piece) {
		return false
	}
	return op.face.Mark(e).Fits(n.piece.face.Mark(e.Opposite()))
}

// FitsNeighbors checks all four directions against the given neighbor
// cells, indexed by Edge.
func (op OrientedPiece) FitsNeighbors(neighbors [4]Cell) [4]bool {
	var fits [4]bool
	for _, e := range Edges {
		fits[e] = op.fitsToward(e, neighbors[e])
	}
	return fits
}

// FitsAllNeighbors is the conjunction of FitsNeighbors.
func (op OrientedPiece) FitsAllNeighbors(neighbors [4]Cell) bool {
	for _, e := range Edges {
		if !op.fitsToward(e, neighbors[e]) {
			return false
		}
	}
	return true
}

// Cell is one board position: an oriented piece, or nothing.
type Cell struct {
	piece    OrientedPiece
	occupied bool
}

// Occupied wraps an oriented piece as cell content.
func Occupied(op OrientedPiece) Cell { return Cell{piece: op, occupied: true} }

// EmptySpot is the placeholder for a position with no piece.
func EmptySpot() Cell { return Cell{} }

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool { return !c.occupied }

// Piece returns the cell's oriented piece, if any.
func (c Cell) Piece() (OrientedPiece, bool) { return c.piece, c.occupied }

// Equal treats empty cells as placeholders without identity: an empty cell
// equals nothing, not even another empty cell.
func (c Cell) Equal(other Cell) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	return c.piece.Equal(other.piece)
}

// String renders the cell's face, or "(empty)".
func (c Cell) String() string {
	if c.IsEmpty() {
		return "(empty)"
	}
	return c.piece.String()
}
