package cssgrad

import (
	"fmt"
	"strings"
)

// Direction is a side keyword of linear-gradient. The legacy keywords name
// the starting side ("top" runs downward); the "to" keywords name the end.
type Direction int

const (
	// ToRight is the fallback for omitted or unrecognized directions.
	ToRight Direction = iota
	ToLeft
	ToBottom
	ToTop
	Left
	Right
	Top
	Bottom
)

var directionNames = [...]string{
	ToRight:  "to right",
	ToLeft:   "to left",
	ToBottom: "to bottom",
	ToTop:    "to top",
	Left:     "left",
	Right:    "right",
	Top:      "top",
	Bottom:   "bottom",
}

// ParseDirection maps a keyword to a Direction. Matching ignores case and
// surrounding or repeated whitespace. Unrecognized input yields ToRight and
// false.
func ParseDirection(s string) (Direction, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	for d, name := range directionNames {
		if name == key {
			return Direction(d), true
		}
	}
	return ToRight, false
}

// Valid reports whether d is one of the eight keywords.
func (d Direction) Valid() bool {
	return d >= 0 && int(d) < len(directionNames)
}

// String returns the CSS keyword.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Vertical reports whether the gradient axis runs top to bottom.
func (d Direction) Vertical() bool {
	switch d {
	case Top, ToBottom, Bottom, ToTop:
		return true
	}
	return false
}

// Step returns the unit step taken along the axis during traversal:
// +1 walks toward larger coordinates, -1 toward smaller ones.
func (d Direction) Step() int {
	switch d {
	case Bottom, ToTop, Right, ToLeft:
		return -1
	}
	return 1
}

// Inverted reports whether stop positions are mirrored for a decreasing
// traversal.
func (d Direction) Inverted() bool {
	return d.Step() < 0
}

// axis returns the gradient axis length for a width x height buffer.
func (d Direction) axis(width, height int) int {
	if d.Vertical() {
		return height
	}
	return width
}
