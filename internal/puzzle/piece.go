// internal/puzzle/piece.go
//
// Piece: a physical tile. Construction normalizes any face-up presentation
// to standard position, so every piece has one canonical internal form.
// Two tiles stamped with identical symbols are still different tiles, so
// identity is a creation-time serial number, never the face value.

package puzzle

import "sync/atomic"

// Piece is one physical puzzle tile, stored in standard position.
type Piece struct {
	id  uint64
	std Orientation
}

// pieceSerial hands out process-unique tile identities.
var pieceSerial atomic.Uint64

// NewPiece builds a tile from four shapes already in standard position:
// tabs north and east, blanks south and west, red side up.
func NewPiece(north, east, south, west Shape) (*Piece, error) {
	return NewPieceOriented(NewOrientation(Red,
		EdgeMark{north, Tab}, EdgeMark{east, Tab},
		EdgeMark{south, Blank}, EdgeMark{west, Blank}))
}

// NewPieceOriented builds a tile from any face-up presentation, normalizing
// it to standard position. Fails with ErrInvalidOrientation when the ends
// pattern is not one a real piece can show.
func NewPieceOriented(o Orientation) (*Piece, error) {
	std, err := o.ToStandard()
	if err != nil {
		return nil, err
	}
	return &Piece{id: pieceSerial.Add(1), std: std}, nil
}

// ID returns the tile's serial number.
func (p *Piece) ID() uint64 { return p.id }

// Orientation returns the tile's standard-position face.
func (p *Piece) Orientation() Orientation { return p.std }

func (p *Piece) String() string { return p.std.String() }

// Same reports whether other is this exact physical tile. Tiles with equal
// faces but different serials are not the same.
func (p *Piece) Same(other *Piece) bool {
	return p != nil && other != nil && p.id == other.id
}

// FitsRight reports whether other, in standard position, sits to the right
// of this tile. A tile never fits itself.
func (p *Piece) FitsRight(other *Piece) bool {
	return !p.Same(other) && p.std.FitsRight(other.std)
}

// FitsLeft reports whether other sits to the left of this tile.
func (p *Piece) FitsLeft(other *Piece) bool {
	return !p.Same(other) && p.std.FitsLeft(other.std)
}

// FitsAbove reports whether other, in standard position, sits above this
// tile.
func (p *Piece) FitsAbove(other *Piece) bool {
	return !p.Same(other) && p.std.FitsAbove(other.std)
}

// FitsBelow reports whether other sits below this tile.
func (p *Piece) FitsBelow(other *Piece) bool {
	return !p.Same(other) && p.std.FitsBelow(other.std)
}
