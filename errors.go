package cssgrad

import "errors"

// Sentinel errors for cssgrad. Parse errors wrap one of these with the
// offending token; match them with errors.Is.
var (
	// ErrSyntax is returned when the source is not wrapped in
	// "linear-gradient(" ... ")".
	ErrSyntax = errors.New("cssgrad: malformed linear-gradient")

	// ErrEmptyStopList is returned when no color stop remains after the
	// direction keyword is removed.
	ErrEmptyStopList = errors.New("cssgrad: gradient has no color stops")

	// ErrInvalidColor is returned for a color token that is not a hex,
	// rgb(), rgba(), hsl(), hsla() or named color.
	ErrInvalidColor = errors.New("cssgrad: invalid color")

	// ErrInvalidLength is returned by ParseLength. ParseGradient recovers
	// from it by treating the stop position as auto.
	ErrInvalidLength = errors.New("cssgrad: invalid length")

	// ErrInvalidDirection is returned by SetDirection for values outside
	// the eight side keywords.
	ErrInvalidDirection = errors.New("cssgrad: invalid direction")
)
