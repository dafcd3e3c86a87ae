package cssgrad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit of a stop position.
type Unit int

const (
	// UnitAuto marks an absent position: the stop is auto-distributed.
	UnitAuto Unit = iota
	UnitPercent
	UnitPx
	UnitIn
	UnitMM
	UnitCM
	UnitPt
	UnitPc
)

var unitNames = [...]string{
	UnitAuto:    "auto",
	UnitPercent: "%",
	UnitPx:      "px",
	UnitIn:      "in",
	UnitMM:      "mm",
	UnitCM:      "cm",
	UnitPt:      "pt",
	UnitPc:      "pc",
}

// pixelsPerUnit holds absolute unit ratios at 96 DPI.
var pixelsPerUnit = map[Unit]float64{
	UnitPx: 1,
	UnitIn: 96,
	UnitMM: 3.77952756,
	UnitCM: 37.7952756,
	UnitPt: 1.3333333,
	UnitPc: 16,
}

// String returns the CSS suffix of the unit.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

func unitFromSuffix(s string) (Unit, bool) {
	for u, name := range unitNames {
		if Unit(u) != UnitAuto && name == s {
			return Unit(u), true
		}
	}
	return UnitAuto, false
}

// Length is an unresolved position along the gradient axis.
// The zero value is the auto (absent) position.
type Length struct {
	Value float64
	Unit  Unit
}

// Auto is the absent position.
var Auto = Length{}

// IsAuto reports whether the position is absent.
func (l Length) IsAuto() bool {
	return l.Unit == UnitAuto
}

// String formats the length as CSS, or "auto".
func (l Length) String() string {
	if l.IsAuto() {
		return "auto"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// ToPixels converts the length to a whole-pixel offset on an axis of the
// given size. Percentages are relative to size; absolute units use 96 DPI.
// Results are floored and limited to the int32 range. Auto lengths have no
// pixel value and return 0.
func (l Length) ToPixels(size int) int {
	var px float64
	switch l.Unit {
	case UnitAuto:
		return 0
	case UnitPercent:
		px = l.Value / 100 * float64(size)
	default:
		px = l.Value * pixelsPerUnit[l.Unit]
	}
	return int(math.Floor(clampFloat(px, math.MinInt32, math.MaxInt32)))
}

// ParseLength parses a stop position token. A bare number is a fraction of
// the axis ("0.5" is 50%); otherwise the token is a number followed by "%"
// or one of px, in, mm, cm, pt, pc.
func ParseLength(token string) (Length, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Auto, fmt.Errorf("%w: empty token", ErrInvalidLength)
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Auto, fmt.Errorf("%w: %q", ErrInvalidLength, token)
		}
		return Length{Value: v * 100, Unit: UnitPercent}, nil
	}

	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == 0 {
		return Auto, fmt.Errorf("%w: %q", ErrInvalidLength, token)
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Auto, fmt.Errorf("%w: %q", ErrInvalidLength, token)
	}
	u, ok := unitFromSuffix(strings.ToLower(s[i:]))
	if !ok {
		return Auto, fmt.Errorf("%w: %q", ErrInvalidLength, token)
	}
	return Length{Value: v, Unit: u}, nil
}
