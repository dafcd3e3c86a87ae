package cssgrad

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	gradientPrefix = "linear-gradient("

	// defaultSource is the gradient held by NewGradient.
	defaultSource = "linear-gradient(#000,#fff)"

	// defaultDirection applies when the first parameter is already a stop.
	defaultDirection = ToBottom
)

// RawStop is a parsed color stop. A Position with UnitAuto means the stop
// is distributed evenly between its positioned neighbors.
type RawStop struct {
	Color    Color
	Position Length
}

// Gradient is a parsed linear-gradient: a direction and at least one color
// stop. A Gradient is changed only as a whole, by Parse or SetDirection,
// and may be rendered concurrently at any size.
type Gradient struct {
	source string
	dir    Direction
	stops  []RawStop
}

// NewGradient returns the top-to-bottom black-to-white gradient
// "linear-gradient(#000,#fff)".
func NewGradient() *Gradient {
	g := &Gradient{}
	if err := g.Parse(defaultSource); err != nil {
		panic(err)
	}
	return g
}

// ParseGradient parses a CSS linear-gradient() string.
//
// Example:
//
//	g, err := cssgrad.ParseGradient("linear-gradient(to bottom, #f00, rgba(0,0,255,.5) 80%)")
//	if err != nil {
//	    return err
//	}
//	pm := cssgrad.RenderToBuffer(g, 64, 256)
func ParseGradient(source string) (*Gradient, error) {
	g := &Gradient{}
	if err := g.Parse(source); err != nil {
		return nil, err
	}
	return g, nil
}

// Parse replaces the gradient with the one described by source. On error
// the gradient is left unchanged.
func (g *Gradient) Parse(source string) error {
	s := strings.TrimSpace(source)
	if len(s) < len(gradientPrefix)+1 ||
		!strings.EqualFold(s[:len(gradientPrefix)], gradientPrefix) ||
		s[len(s)-1] != ')' {
		return fmt.Errorf("%w: must be wrapped in %s...)", ErrSyntax, gradientPrefix)
	}

	params, err := splitParams(normalizeSpace(s[len(gradientPrefix) : len(s)-1]))
	if err != nil {
		return err
	}

	dir := defaultDirection
	if !looksLikeColor(params[0]) {
		d, ok := ParseDirection(params[0])
		if !ok {
			Logger().Debug("cssgrad: unknown direction, using fallback",
				slog.String("direction", params[0]), slog.String("fallback", d.String()))
		}
		dir = d
		params = params[1:]
	}
	if len(params) == 0 {
		return ErrEmptyStopList
	}

	stops := make([]RawStop, 0, len(params))
	for i, p := range params {
		parsed, err := parseStop(p)
		if err != nil {
			return fmt.Errorf("cssgrad: stop %d: %w", i, err)
		}
		stops = append(stops, parsed...)
	}

	g.source = s
	g.dir = dir
	g.stops = stops
	return nil
}

// String returns the source the gradient was parsed from.
func (g *Gradient) String() string {
	return g.source
}

// Direction returns the gradient direction.
func (g *Gradient) Direction() Direction {
	return g.dir
}

// SetDirection changes the direction without re-parsing the stops.
func (g *Gradient) SetDirection(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	g.dir = d
	return nil
}

// Stops returns a copy of the parsed color stops.
func (g *Gradient) Stops() []RawStop {
	return append([]RawStop(nil), g.stops...)
}

// Resolve positions the stops on an axis of axisSize pixels, mirrored
// when the direction traverses the axis backwards.
func (g *Gradient) Resolve(axisSize int) []ResolvedStop {
	return ResolveStops(g.stops, axisSize, g.dir.Inverted())
}

// parseStop parses "<color> [<length> [<length>]]". A second length repeats
// the color as a new stop. A malformed first length degrades to auto and a
// malformed second length is dropped.
func parseStop(seg string) ([]RawStop, error) {
	fields := strings.Fields(seg)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty stop", ErrInvalidColor)
	}
	c, err := ParseColor(fields[0])
	if err != nil {
		return nil, err
	}

	stops := []RawStop{{Color: c, Position: Auto}}
	if len(fields) > 1 {
		stops[0].Position = stopLength(fields[1])
	}
	if len(fields) > 2 {
		if end := stopLength(fields[2]); !end.IsAuto() {
			stops = append(stops, RawStop{Color: c, Position: end})
		}
	}
	return stops, nil
}

func stopLength(token string) Length {
	l, err := ParseLength(token)
	if err != nil {
		Logger().Debug("cssgrad: stop length degraded to auto",
			slog.String("token", token), slog.Any("error", err))
		return Auto
	}
	return l
}

// looksLikeColor reports whether the first parameter is a color stop rather
// than a direction keyword.
func looksLikeColor(param string) bool {
	p := strings.ToLower(param)
	if strings.HasPrefix(p, "#") || strings.HasPrefix(p, "rgb") || strings.HasPrefix(p, "hsl") {
		return true
	}
	first, _, _ := strings.Cut(p, " ")
	return isColorName(first)
}

// normalizeSpace collapses whitespace runs to one space and drops spaces
// around commas and parentheses. A space after ")" is kept because it
// separates a color function from its stop length.
func normalizeSpace(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(collapsed))
	for i := 0; i < len(collapsed); i++ {
		c := collapsed[i]
		if c == ' ' {
			prev := collapsed[i-1]
			next := collapsed[i+1]
			if prev == '(' || prev == ',' || next == '(' || next == ',' || next == ')' {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitParams splits the parameter list on commas that are not nested in
// parentheses, so rgba(255,255,255,.2) stays a single parameter.
func splitParams(s string) ([]string, error) {
	var (
		params []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced ')' at offset %d", ErrSyntax, i)
			}
		case ',':
			if depth == 0 {
				params = append(params, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unclosed '('", ErrSyntax)
	}
	return append(params, s[start:]), nil
}
