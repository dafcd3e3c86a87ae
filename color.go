package cssgrad

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an sRGB color with 8-bit channels and a fractional alpha.
// Channels are clamped into range when a Color is built with NewColor or
// parsed with ParseColor.
type Color struct {
	R, G, B uint8
	A       float64 // 0.0 (transparent) to 1.0 (opaque)
}

// Transparent is the color of untouched pixels and of the "transparent" keyword.
var Transparent = Color{}

// NewColor creates a color, clamping r, g, b into [0, 255] and a into [0, 1].
func NewColor(r, g, b int, a float64) Color {
	return Color{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
		A: clamp01(a),
	}
}

// NRGBA converts the color to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha8(c.A)}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Lerp performs linear interpolation between two colors on every channel,
// alpha included.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: clamp01(c.A + (other.A-c.A)*t),
	}
}

// String returns the color in CSS notation: #rrggbb when opaque,
// rgba(r,g,b,a) otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// ParseColor parses a CSS color token: #RGB, #RGBA, #RRGGBB, #RRGGBBAA,
// rgb(), rgba(), hsl(), hsla(), a CSS3 extended color keyword or
// "transparent". Matching is case-insensitive.
func ParseColor(token string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty token", ErrInvalidColor)
	}

	if c, ok := namedColor(s); ok {
		return c, nil
	}

	var (
		c  Color
		ok bool
	)
	switch {
	case s[0] == '#':
		c, ok = parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb"):
		c, ok = parseRGBColor(s)
	case strings.HasPrefix(s, "hsl"):
		c, ok = parseHSLColor(s)
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	return c, nil
}

// namedColor looks up a CSS3 extended color keyword. The keyword set is
// identical to the SVG 1.1 names carried by x/image/colornames.
func namedColor(name string) (Color, bool) {
	if name == "transparent" {
		return Transparent, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// isColorName reports whether s is a color keyword.
func isColorName(s string) bool {
	_, ok := namedColor(strings.ToLower(s))
	return ok
}

// parseHexColor parses the digits after '#'.
// Short forms expand each nibble by duplication ("f0a" -> "ff00aa").
func parseHexColor(hex string) (Color, bool) {
	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3, 4:
		vals := []*uint32{&r, &g, &b, &a}
		for i := 0; i < len(hex); i++ {
			if !parseHex(hex[i:i+1], vals[i]) {
				return Color{}, false
			}
			*vals[i] *= 17
		}
	case 6, 8:
		vals := []*uint32{&r, &g, &b, &a}
		for i := 0; i < len(hex); i += 2 {
			if !parseHex(hex[i:i+2], vals[i/2]) {
				return Color{}, false
			}
		}
	default:
		return Color{}, false
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: float64(a) / 255}, true
}

// parseHex decodes hex digits into val. It reports false on any non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// parseRGBColor parses rgb(r,g,b) and rgba(r,g,b,a). Channels may be
// numbers or percentages; fractional channel values are truncated.
func parseRGBColor(s string) (Color, bool) {
	args, ok := functionArgs(s, "rgb", "rgba")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return Color{}, false
	}

	var ch [3]int
	for i := range ch {
		v, ok := parseChannel(args[i])
		if !ok {
			return Color{}, false
		}
		ch[i] = int(clampFloat(v, 0, 255))
	}

	a := 1.0
	if len(args) == 4 {
		if a, ok = parseAlpha(args[3]); !ok {
			return Color{}, false
		}
	}
	return NewColor(ch[0], ch[1], ch[2], a), true
}

// parseHSLColor parses hsl(h,s%,l%) and hsla(h,s%,l%,a).
func parseHSLColor(s string) (Color, bool) {
	args, ok := functionArgs(s, "hsl", "hsla")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return Color{}, false
	}

	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(strings.TrimSuffix(args[i], "%"), 64)
		if err != nil {
			return Color{}, false
		}
		v[i] = f
	}

	a := 1.0
	if len(args) == 4 {
		if a, ok = parseAlpha(args[3]); !ok {
			return Color{}, false
		}
	}
	return HSL(v[0], v[1]/100, v[2]/100, a), true
}

// HSL creates a color from hue in degrees (any value, taken modulo 360),
// saturation and lightness in [0, 1] and alpha in [0, 1].
func HSL(h, s, l, a float64) Color {
	s = clamp01(s)
	l = clamp01(l)

	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2

	return Color{
		R: hueChannel(m1, m2, h+120),
		G: hueChannel(m1, m2, h),
		B: hueChannel(m1, m2, h-120),
		A: clamp01(a),
	}
}

// hueChannel evaluates one RGB channel for the hue-rotated angle h,
// interpolating between m1 and m2 across the six hue sextants.
func hueChannel(m1, m2, h float64) uint8 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	var c float64
	switch {
	case h*6 < 1:
		c = m1 + (m2-m1)*h*6
	case h*2 < 1:
		c = m2
	case h*3 < 2:
		c = m1 + (m2-m1)*(2.0/3-h)*6
	default:
		c = m1
	}
	return uint8(clampFloat(math.Round(c*255), 0, 255))
}

// functionArgs splits "name(a,b,c)" into its trimmed arguments when name is
// one of names.
func functionArgs(s string, names ...string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	name := strings.TrimSpace(s[:open])
	known := false
	for _, n := range names {
		if name == n {
			known = true
			break
		}
	}
	if !known {
		return nil, false
	}

	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

func parseChannel(s string) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v * 255 / 100, err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseAlpha(s string) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return clamp01(v / 100), err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return clamp01(v), err == nil
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(clampFloat(math.Round(v), 0, 255))
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to [0, 1] range. NaN maps to 0.
func clamp01(x float64) float64 {
	return clampFloat(x, 0, 1)
}

func clampFloat(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x >= lo {
		return x
	}
	return lo
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
