package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientDefault(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	op := Orient(piece1, false, NoTurn)

	assert.Equal(t, "Red-♠♦♡♢", op.String())
	assert.Same(t, piece1, op.Piece())
	assert.False(t, op.Flip())
	assert.Equal(t, NoTurn, op.Turn())

	face := op.Face()
	assert.Equal(t, Red, face.Side())
	assert.Equal(t, EdgeMark{Spade, Tab}, face.North())
	assert.Equal(t, EdgeMark{Diamond, Tab}, face.East())
	assert.Equal(t, EdgeMark{Heart, Blank}, face.South())
	assert.Equal(t, EdgeMark{Diamond, Blank}, face.West())
}

func TestOrientTransforms(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)

	assert.Equal(t, "Black-♠♢♡♦", Orient(piece1, true, NoTurn).String())
	assert.Equal(t, "Red-♢♠♦♡", Orient(piece1, false, Turn90).String())
	assert.Equal(t, "Black-♦♠♢♡", Orient(piece1, true, Turn90).String())
}

func TestOrientedPieceEquality(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	clone1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)

	assert.True(t, Orient(piece1, false, NoTurn).Equal(Orient(piece1, false, NoTurn)))
	// A clone shows the same face but is a different tile.
	assert.Equal(t, Orient(piece1, false, NoTurn).String(), Orient(clone1, false, NoTurn).String())
	assert.False(t, Orient(piece1, false, NoTurn).Equal(Orient(clone1, false, NoTurn)))
	assert.False(t, Orient(piece1, false, NoTurn).Equal(Orient(piece4, false, NoTurn)))

	// Different transforms of the same tile are different values.
	assert.False(t, Orient(piece1, false, NoTurn).Equal(Orient(piece1, true, NoTurn)))
	assert.False(t, Orient(piece1, false, NoTurn).Equal(Orient(piece1, false, Turn90)))
	assert.True(t, Orient(piece1, true, Turn180).Equal(Orient(piece1, true, Turn180)))
}

func TestOrientedPieceCompare(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)

	assert.Equal(t, -1, Orient(piece1, false, NoTurn).Compare(Orient(piece4, false, NoTurn)))
	assert.Equal(t, -1, Orient(piece1, false, Turn270).Compare(Orient(piece1, true, NoTurn)))
	assert.Equal(t, -1, Orient(piece1, false, Turn90).Compare(Orient(piece1, false, Turn180)))
	assert.Equal(t, 0, Orient(piece4, true, Turn90).Compare(Orient(piece4, true, Turn90)))
	assert.Equal(t, 1, Orient(piece4, false, NoTurn).Compare(Orient(piece1, true, Turn270)))
}

func TestOrientedFitsRight(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)
	op4 := Orient(piece4, false, NoTurn)
	require.Equal(t, "Red-♦♣♧♢", op4.String())

	cases := []struct {
		flip bool
		turn Turn
		face string
		fits bool
	}{
		{false, NoTurn, "Red-♠♦♡♢", true},
		{false, Turn90, "Red-♢♠♦♡", false},
		{false, Turn180, "Red-♡♢♠♦", false},
		{false, Turn270, "Red-♦♡♢♠", false},
		{true, NoTurn, "Black-♠♢♡♦", false},
		{true, Turn90, "Black-♦♠♢♡", false},
		{true, Turn180, "Black-♡♦♠♢", true},
		{true, Turn270, "Black-♢♡♦♠", false},
	}
	for _, tc := range cases {
		op1 := Orient(piece1, tc.flip, tc.turn)
		assert.Equal(t, tc.face, op1.String())
		assert.Equal(t, tc.fits, op1.FitsRight(op4), "face %s", tc.face)
	}
}

func TestOrientedFitsLeft(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece3 := mustPiece(t, Heart, Diamond, Diamond, Heart)
	op3 := Orient(piece3, false, NoTurn)
	require.Equal(t, "Red-♥♦♢♡", op3.String())

	cases := []struct {
		flip bool
		turn Turn
		face string
		fits bool
	}{
		{false, NoTurn, "Red-♠♦♡♢", true},
		{false, Turn90, "Red-♢♠♦♡", false},
		{false, Turn180, "Red-♡♢♠♦", false},
		{false, Turn270, "Red-♦♡♢♠", false},
		{true, NoTurn, "Black-♠♢♡♦", false},
		{true, Turn90, "Black-♦♠♢♡", false},
		{true, Turn180, "Black-♡♦♠♢", true},
		{true, Turn270, "Black-♢♡♦♠", false},
	}
	for _, tc := range cases {
		op1 := Orient(piece1, tc.flip, tc.turn)
		assert.Equal(t, tc.face, op1.String())
		assert.Equal(t, tc.fits, op1.FitsLeft(op3), "face %s", tc.face)
	}
}

func TestOrientedFitsAboveBelow(t *testing.T) {
	piece9 := mustPiece(t, Heart, Spade, Spade, Club)
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	op1 := Orient(piece1, false, NoTurn)
	require.Equal(t, "Red-♠♦♡♢", op1.String())

	cases := []struct {
		flip bool
		turn Turn
		face string
		fits bool
	}{
		{false, NoTurn, "Red-♥♠♤♧", true},
		{false, Turn90, "Red-♧♥♠♤", false},
		{false, Turn180, "Red-♤♧♥♠", false},
		{false, Turn270, "Red-♠♤♧♥", false},
		{true, NoTurn, "Black-♥♧♤♠", true},
		{true, Turn90, "Black-♠♥♧♤", false},
		{true, Turn180, "Black-♤♠♥♧", false},
		{true, Turn270, "Black-♧♤♠♥", false},
	}
	for _, tc := range cases {
		op9 := Orient(piece9, tc.flip, tc.turn)
		assert.Equal(t, tc.face, op9.String())
		assert.Equal(t, tc.fits, op9.FitsAbove(op1), "face %s", tc.face)
		assert.Equal(t, tc.fits, op9.FitsBelow(op1), "face %s", tc.face)
	}
}

func TestOrientedNeverFitsItself(t *testing.T) {
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)
	a := Orient(piece4, false, NoTurn)
	b := Orient(piece4, true, Turn180)

	// Geometry aside, two views of one tile never sit together.
	assert.False(t, a.FitsRight(b))
	assert.False(t, a.FitsLeft(b))
	assert.False(t, a.FitsAbove(b))
	assert.False(t, a.FitsBelow(b))
}

func TestFitsNeighbors(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece2 := mustPiece(t, Club, Heart, Spade, Heart)
	piece3 := mustPiece(t, Heart, Diamond, Diamond, Heart)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)

	op1 := Orient(piece1, false, NoTurn)

	neighbors := [4]Cell{
		North: Occupied(Orient(piece2, false, NoTurn)),
		South: Occupied(Orient(piece3, false, NoTurn)),
		East:  Occupied(Orient(piece4, false, NoTurn)),
		West:  EmptySpot(),
	}
	assert.Equal(t, [4]bool{North: true, East: true, South: true, West: true}, op1.FitsNeighbors(neighbors))
	assert.True(t, op1.FitsAllNeighbors(neighbors))

	shuffled := [4]Cell{
		North: EmptySpot(),
		South: Occupied(Orient(piece2, false, NoTurn)),
		East:  Occupied(Orient(piece3, false, NoTurn)),
		West:  Occupied(Orient(piece4, false, NoTurn)),
	}
	assert.Equal(t, [4]bool{North: true, East: false, South: false, West: false}, op1.FitsNeighbors(shuffled))
	assert.False(t, op1.FitsAllNeighbors(shuffled))
}

func TestEmptySpot(t *testing.T) {
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	occupied := Occupied(Orient(piece1, false, NoTurn))

	e1 := EmptySpot()
	e2 := EmptySpot()

	assert.True(t, e1.IsEmpty())
	assert.False(t, occupied.IsEmpty())

	// The empty placeholder equals nothing, not even another empty cell.
	assert.False(t, e1.Equal(e2))
	assert.False(t, e1.Equal(e1))
	assert.False(t, e1.Equal(occupied))
	assert.False(t, occupied.Equal(e1))
	assert.True(t, occupied.Equal(Occupied(Orient(piece1, false, NoTurn))))

	_, ok := e1.Piece()
	assert.False(t, ok)
	got, ok := occupied.Piece()
	assert.True(t, ok)
	assert.Equal(t, "Red-♠♦♡♢", got.String())
	assert.Equal(t, "(empty)", e1.String())
}
