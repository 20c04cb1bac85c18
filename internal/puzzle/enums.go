// internal/puzzle/enums.go
//
// Closed enumerations for the puzzle geometry.
// Defines:
//   - Shape: the suit symbol stamped on an edge (Club/Diamond/Heart/Spade).
//   - End:   connector polarity, tab (sticks out) or blank (recessed).
//   - Side:  which face of the card is up (Red/Black).
//   - Turn:  clockwise rotation amount in degrees.
//   - Edge:  compass direction of a piece edge, also used as an array index.
//
// Each enum has a fixed rank; comparisons go by rank, never by declaration
// order elsewhere in the code.

package puzzle

import "strconv"

// Shape is the suit symbol on a piece edge.
// Shapes order alphabetically: Club < Diamond < Heart < Spade.
type Shape uint8

const (
	Club Shape = iota + 1
	Diamond
	Heart
	Spade
)

var shapeLabels = [...]string{Club: "Club", Diamond: "Diamond", Heart: "Heart", Spade: "Spade"}

// Label returns the display name of the shape.
func (s Shape) Label() string {
	if int(s) < len(shapeLabels) && shapeLabels[s] != "" {
		return shapeLabels[s]
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

func (s Shape) String() string { return s.Label() }

// pipGlyphs holds the solid (tab) and hollow (blank) glyph per shape.
var pipGlyphs = map[Shape][2]rune{
	Club:    {'♣', '♧'},
	Diamond: {'♦', '♢'},
	Heart:   {'♥', '♡'},
	Spade:   {'♠', '♤'},
}

// Pip returns the glyph for this shape with the given connector:
// solid for a tab, hollow for a blank.
func (s Shape) Pip(e End) rune {
	g := pipGlyphs[s]
	if e == Tab {
		return g[0]
	}
	return g[1]
}

// End says whether an edge sticks out (tab) or in (blank). Tab < Blank.
type End uint8

const (
	Tab End = iota + 1
	Blank
)

// Label returns the display name of the connector polarity.
func (e End) Label() string {
	if e == Tab {
		return "Tab"
	}
	return "Blank"
}

func (e End) String() string { return e.Label() }

// Side is the face of the card shown up. Red < Black.
type Side uint8

const (
	Red Side = iota + 1
	Black
)

// Label returns the display name of the side.
func (s Side) Label() string {
	if s == Red {
		return "Red"
	}
	return "Black"
}

func (s Side) String() string { return s.Label() }

// Letter returns the one-letter form used by the board renderer.
func (s Side) Letter() rune {
	if s == Red {
		return 'R'
	}
	return 'B'
}

// Opposite returns the other face.
func (s Side) Opposite() Side {
	if s == Red {
		return Black
	}
	return Red
}

// Turn is a clockwise rotation amount in degrees.
type Turn uint16

const (
	NoTurn  Turn = 0
	Turn90  Turn = 90
	Turn180 Turn = 180
	Turn270 Turn = 270
)

// Turns lists the four rotations in increasing order.
var Turns = [4]Turn{NoTurn, Turn90, Turn180, Turn270}

func (t Turn) String() string { return strconv.Itoa(int(t)) + "°" }

// quarters returns the rotation as a count of 90° steps.
func (t Turn) quarters() int { return int(t/90) % 4 }

// Edge names one of the four sides of a square piece and doubles as the
// index into neighbor arrays. North < East < South < West.
type Edge uint8

const (
	North Edge = iota
	East
	South
	West
)

// Edges lists the four directions in index order.
var Edges = [4]Edge{North, East, South, West}

var edgeLabels = [...]string{North: "North", East: "East", South: "South", West: "West"}

// Label returns the display name of the direction.
func (e Edge) Label() string {
	if int(e) < len(edgeLabels) {
		return edgeLabels[e]
	}
	return "Edge(" + strconv.Itoa(int(e)) + ")"
}

func (e Edge) String() string { return e.Label() }

// Opposite returns the facing direction: North↔South, East↔West.
func (e Edge) Opposite() Edge { return (e + 2) % 4 }
