package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "(Empty 0x0 Puzzle)", mustPuzzle(t, 0, 0).String())
	assert.Equal(t, "(Empty 1x1 Puzzle)", mustPuzzle(t, 1, 1).String())
	assert.Equal(t, "(Empty 3x2 Puzzle)", mustPuzzle(t, 3, 2).String())
}

func TestRenderSinglePiece(t *testing.T) {
	piece3 := mustPiece(t, Heart, Diamond, Diamond, Heart)
	p := mustPuzzle(t, 1, 1, Occupied(Orient(piece3, false, NoTurn)))

	want := "┌♥┐\n" +
		"♡R♦\n" +
		"└♢┘"
	assert.Equal(t, want, p.String())
}

func TestRenderRow(t *testing.T) {
	piece3 := mustPiece(t, Heart, Diamond, Diamond, Heart)
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)

	p := mustPuzzle(t, 2, 1,
		Occupied(Orient(piece3, false, NoTurn)),
		Occupied(Orient(piece1, false, NoTurn)))

	// The shared edge shows the tab's solid pip.
	want := "┌♥┬♠┐\n" +
		"♡R♦R♦\n" +
		"└♢┴♡┘"
	assert.Equal(t, want, p.String())
}

func TestRenderPartialGrid(t *testing.T) {
	piece3 := mustPiece(t, Heart, Diamond, Diamond, Heart)
	piece1 := mustPiece(t, Spade, Diamond, Heart, Diamond)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)

	p := mustPuzzle(t, 2, 2,
		Occupied(Orient(piece3, false, NoTurn)),
		Occupied(Orient(piece1, false, NoTurn)),
		Occupied(Orient(piece4, false, NoTurn)))

	// The bottom-right cell is empty; its border falls away and the rows
	// keep their trailing spaces.
	want := "┌♥┬♠┐\n" +
		"♡R♦R♦\n" +
		"├♦┼♡┘\n" +
		"♢R♣  \n" +
		"└♧┘  "
	assert.Equal(t, want, p.String())
}

func TestRenderSolvedRow(t *testing.T) {
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)
	piece9 := mustPiece(t, Heart, Spade, Spade, Club)

	p := mustPuzzle(t, 2, 1,
		Occupied(Orient(piece4, false, NoTurn)),
		Occupied(Orient(piece9, false, NoTurn)))

	want := "┌♦┬♥┐\n" +
		"♢R♣R♠\n" +
		"└♧┴♤┘"
	assert.Equal(t, want, p.String())
}

func TestRenderSolvedColumn(t *testing.T) {
	piece9 := mustPiece(t, Heart, Spade, Spade, Club)
	piece4 := mustPiece(t, Diamond, Club, Club, Diamond)

	top := Orient(piece9, false, Turn270)
	require.Equal(t, "Red-♠♤♧♥", top.String())
	bottom := Orient(piece4, false, Turn270)
	require.Equal(t, "Red-♣♧♢♦", bottom.String())

	p := mustPuzzle(t, 1, 2, Occupied(top), Occupied(bottom))

	want := "┌♠┐\n" +
		"♥R♤\n" +
		"├♣┤\n" +
		"♦R♧\n" +
		"└♢┘"
	assert.Equal(t, want, p.String())
}
