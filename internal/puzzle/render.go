// internal/puzzle/render.go
//
// Text rendering of a board with box-drawing characters. Each cell draws as
// a 2x2 block plus shared borders: pips on the borders, the side letter in
// the middle. A shared edge between two placed pieces shows the solid pip
// of whichever side holds the tab; against an empty cell the placed side's
// pip shows. Junction characters follow cell occupancy, so partially filled
// boards get ragged but correct outlines.

package puzzle

import (
	"fmt"
	"strings"
)

// String draws the board. A board with no pieces renders as a placeholder,
// e.g. "(Empty 2x2 Puzzle)".
func (p *Puzzle) String() string {
	if p.Count() == 0 {
		return fmt.Sprintf("(Empty %dx%d Puzzle)", p.width, p.height)
	}
	lines := make([]string, 0, 2*p.height+1)
	for row := 0; row <= p.height; row++ {
		lines = append(lines, p.borderLine(row))
		if row < p.height {
			lines = append(lines, p.middleLine(row))
		}
	}
	return strings.Join(lines, "\n")
}

// occupied reports whether (col, row) is in bounds and holds a piece.
func (p *Puzzle) occupied(col, row int) bool {
	return !p.Get(col, row).IsEmpty()
}

// borderLine draws the horizontal border above row (row == height draws the
// bottom edge): junctions at piece corners, pips on the shared edges.
func (p *Puzzle) borderLine(row int) string {
	var b strings.Builder
	for col := 0; col <= p.width; col++ {
		b.WriteRune(p.junction(col, row))
		if col < p.width {
			b.WriteRune(p.horizontalPip(col, row))
		}
	}
	return b.String()
}

// middleLine draws the body of row: west/east pips at the vertical borders
// and the side letter in each occupied cell.
func (p *Puzzle) middleLine(row int) string {
	var b strings.Builder
	for col := 0; col <= p.width; col++ {
		b.WriteRune(p.verticalPip(col, row))
		if col < p.width {
			if c := p.Get(col, row); !c.IsEmpty() {
				b.WriteRune(c.piece.face.Side().Letter())
			} else {
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

// junction picks the box-drawing character where four cell corners meet,
// from which of the surrounding cells are occupied.
func (p *Puzzle) junction(col, row int) rune {
	ul := p.occupied(col-1, row-1)
	ur := p.occupied(col, row-1)
	dl := p.occupied(col-1, row)
	dr := p.occupied(col, row)

	left := ul || dl
	right := ur || dr
	up := ul || ur
	down := dl || dr

	switch {
	case left && right && up && down:
		return '┼'
	case left && right && down:
		return '┬'
	case left && right && up:
		return '┴'
	case up && down && right:
		return '├'
	case up && down && left:
		return '┤'
	case right && down:
		return '┌'
	case left && down:
		return '┐'
	case right && up:
		return '└'
	case left && up:
		return '┘'
	case left && right:
		return '─'
	case up && down:
		return '│'
	default:
		return ' '
	}
}

// horizontalPip draws the shared edge between (col, row-1) above and
// (col, row) below. On a legal board exactly one of two touching edges is a
// tab; the solid tab pip wins.
func (p *Puzzle) horizontalPip(col, row int) rune {
	upper := p.Get(col, row-1)
	lower := p.Get(col, row)
	switch {
	case !upper.IsEmpty() && !lower.IsEmpty():
		if m := upper.piece.face.Mark(South); m.End == Tab {
			return m.Pip()
		}
		return lower.piece.face.Mark(North).Pip()
	case !upper.IsEmpty():
		return upper.piece.face.Mark(South).Pip()
	case !lower.IsEmpty():
		return lower.piece.face.Mark(North).Pip()
	default:
		return ' '
	}
}

// verticalPip draws the shared edge between (col-1, row) on the left and
// (col, row) on the right, with the same tab-wins rule.
func (p *Puzzle) verticalPip(col, row int) rune {
	left := p.Get(col-1, row)
	right := p.Get(col, row)
	switch {
	case !left.IsEmpty() && !right.IsEmpty():
		if m := left.piece.face.Mark(East); m.End == Tab {
			return m.Pip()
		}
		return right.piece.face.Mark(West).Pip()
	case !left.IsEmpty():
		return left.piece.face.Mark(East).Pip()
	case !right.IsEmpty():
		return right.piece.face.Mark(West).Pip()
	default:
		return ' '
	}
}
