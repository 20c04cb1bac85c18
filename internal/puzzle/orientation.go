// internal/puzzle/orientation.go
//
// Orientation: one presentation of a piece face.
// Responsibilities:
//   - Hold which side is up and the four (shape, end) edges in NESW order.
//   - Geometric transforms: left-right flip and clockwise quarter turns.
//   - Validity (the ends form one of the four legal cyclic patterns) and
//     normalization to standard position (red up, tabs north and east).
//   - Edge-level fit predicates: two touching edges interlock when the
//     shapes match and exactly one of them is a tab.
//
// Orientation is an immutable value; every transform returns a new one.

package puzzle

import (
	"fmt"
	"strings"
)

// EdgeMark is a single edge: its shape symbol plus connector polarity.
type EdgeMark struct {
	Shape Shape
	End   End
}

// Fits reports whether two touching edges interlock: same shape, one tab
// and one blank.
func (m EdgeMark) Fits(other EdgeMark) bool {
	return m.Shape == other.Shape && m.End != other.End
}

// Pip returns the edge's display glyph.
func (m EdgeMark) Pip() rune { return m.Shape.Pip(m.End) }

// Orientation is one presentation of a piece face: which side is up plus
// the four edges, stored as parallel end/shape tuples indexed by Edge.
// The zero value is not usable; construct with NewOrientation.
type Orientation struct {
	side   Side
	ends   [4]End
	shapes [4]Shape
}

// NewOrientation builds an orientation from the four edges in compass order.
func NewOrientation(side Side, north, east, south, west EdgeMark) Orientation {
	return Orientation{
		side:   side,
		ends:   [4]End{north.End, east.End, south.End, west.End},
		shapes: [4]Shape{north.Shape, east.Shape, south.Shape, west.Shape},
	}
}

func (o Orientation) Side() Side { return o.side }

// End returns the connector polarity of the given edge.
func (o Orientation) End(e Edge) End { return o.ends[e] }

// Shape returns the shape symbol of the given edge.
func (o Orientation) Shape(e Edge) Shape { return o.shapes[e] }

// Mark returns the full (shape, end) pair of the given edge.
func (o Orientation) Mark(e Edge) EdgeMark {
	return EdgeMark{Shape: o.shapes[e], End: o.ends[e]}
}

func (o Orientation) North() EdgeMark { return o.Mark(North) }
func (o Orientation) East() EdgeMark  { return o.Mark(East) }
func (o Orientation) South() EdgeMark { return o.Mark(South) }
func (o Orientation) West() EdgeMark  { return o.Mark(West) }

// String renders the compact display form, e.g. "Red-♥♦♢♡".
func (o Orientation) String() string {
	var b strings.Builder
	b.WriteString(o.side.Label())
	b.WriteByte('-')
	for _, e := range Edges {
		b.WriteRune(o.Mark(e).Pip())
	}
	return b.String()
}

// Compare orders orientations lexicographically by side, then the four
// ends, then the four shapes. Returns -1, 0, or 1.
func (o Orientation) Compare(other Orientation) int {
	if o.side != other.side {
		if o.side < other.side {
			return -1
		}
		return 1
	}
	for _, e := range Edges {
		if o.ends[e] != other.ends[e] {
			if o.ends[e] < other.ends[e] {
				return -1
			}
			return 1
		}
	}
	for _, e := range Edges {
		if o.shapes[e] != other.shapes[e] {
			if o.shapes[e] < other.shapes[e] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Reorient applies an optional left-right flip, then a clockwise turn.
// The flip mirrors the card as seen from above: east and west swap and the
// visible side toggles. A 90° turn carries each edge one step clockwise
// (north to east, east to south, and so on).
func (o Orientation) Reorient(flip bool, turn Turn) Orientation {
	marks := [4]EdgeMark{o.Mark(North), o.Mark(East), o.Mark(South), o.Mark(West)}
	side := o.side
	if flip {
		marks[East], marks[West] = marks[West], marks[East]
		side = side.Opposite()
	}
	var turned [4]EdgeMark
	k := turn.quarters()
	for i, m := range marks {
		turned[(i+k)%4] = m
	}
	return NewOrientation(side, turned[North], turned[East], turned[South], turned[West])
}

// validEndPatterns are the ends a real piece can show: two adjacent tabs
// and two adjacent blanks, in any of the four rotations.
var validEndPatterns = [4][4]End{
	{Tab, Tab, Blank, Blank},
	{Blank, Tab, Tab, Blank},
	{Blank, Blank, Tab, Tab},
	{Tab, Blank, Blank, Tab},
}

// standardEnds is the ends pattern of standard position: tabs north and
// east, blanks south and west.
var standardEnds = [4]End{Tab, Tab, Blank, Blank}

// IsValid reports whether the ends form one of the four legal patterns.
func (o Orientation) IsValid() bool {
	for _, pattern := range validEndPatterns {
		if o.ends == pattern {
			return true
		}
	}
	return false
}

// IsStandard reports whether the orientation is exactly standard position:
// red side up with the standard ends pattern, no rotation credit.
func (o Orientation) IsStandard() bool {
	return o.side == Red && o.ends == standardEnds
}

// ToStandard normalizes a valid orientation to standard position: flip once
// if the black side is up, then rotate up to three quarter turns. A valid
// ends pattern is one of four rotations of the target, so this always
// terminates at standard.
func (o Orientation) ToStandard() (Orientation, error) {
	if !o.IsValid() {
		return Orientation{}, fmt.Errorf("%w: %s", ErrInvalidOrientation, o)
	}
	std := o.Reorient(o.side == Black, NoTurn)
	for i := 0; i < 3 && !std.IsStandard(); i++ {
		std = std.Reorient(false, Turn90)
	}
	return std, nil
}

// FitsRight reports whether other can sit directly to the right of this
// orientation: the east edge here interlocks with other's west edge.
func (o Orientation) FitsRight(other Orientation) bool {
	return o.Mark(East).Fits(other.Mark(West))
}

// FitsLeft reports whether other can sit directly to the left.
func (o Orientation) FitsLeft(other Orientation) bool {
	return o.Mark(West).Fits(other.Mark(East))
}

// FitsAbove reports whether other can sit directly above this orientation:
// the north edge here interlocks with other's south edge.
func (o Orientation) FitsAbove(other Orientation) bool {
	return o.Mark(North).Fits(other.Mark(South))
}

// FitsBelow reports whether other can sit directly below.
func (o Orientation) FitsBelow(other Orientation) bool {
	return o.Mark(South).Fits(other.Mark(North))
}
