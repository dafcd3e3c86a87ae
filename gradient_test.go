package cssgrad

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient("linear-gradient(to bottom, #f00, #00f 75%)")
	if err != nil {
		t.Fatalf("ParseGradient() error = %v", err)
	}
	if g.Direction() != ToBottom {
		t.Errorf("Direction() = %v, want to bottom", g.Direction())
	}
	want := []RawStop{
		{Color: Color{255, 0, 0, 1}, Position: Auto},
		{Color: Color{0, 0, 255, 1}, Position: Length{75, UnitPercent}},
	}
	if got := g.Stops(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stops() = %+v, want %+v", got, want)
	}
	if g.String() != "linear-gradient(to bottom, #f00, #00f 75%)" {
		t.Errorf("String() = %q", g.String())
	}
}

func TestParseGradient_FunctionCommas(t *testing.T) {
	g, err := ParseGradient("linear-gradient(rgba(255,255,255,.2), rgba(255,255,255,.2) 1px, rgba(0,0,0,.05))")
	if err != nil {
		t.Fatalf("ParseGradient() error = %v", err)
	}
	stops := g.Stops()
	if len(stops) != 3 {
		t.Fatalf("len(Stops()) = %d, want 3", len(stops))
	}
	if g.Direction() != ToBottom {
		t.Errorf("Direction() = %v, want default to bottom", g.Direction())
	}
	if !stops[0].Position.IsAuto() || !stops[2].Position.IsAuto() {
		t.Errorf("first and last stops should be auto, got %v and %v", stops[0].Position, stops[2].Position)
	}
	if stops[1].Position != (Length{1, UnitPx}) {
		t.Errorf("stops[1].Position = %v, want 1px", stops[1].Position)
	}
	if !colorsEqual(stops[2].Color, Color{0, 0, 0, 0.05}) {
		t.Errorf("stops[2].Color = %+v", stops[2].Color)
	}

	resolved := g.Resolve(10)
	positions := []int{resolved[0].Position, resolved[1].Position, resolved[2].Position}
	if !reflect.DeepEqual(positions, []int{0, 1, 10}) {
		t.Errorf("resolved positions = %v, want [0 1 10]", positions)
	}
}

func TestParseGradient_Variants(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		dir       Direction
		stopCount int
	}{
		{
			name:      "legacy stripes",
			src:       "linear-gradient(top, rgba(255,255,255,.2), rgba(255,255,255,.2) 1px, rgba(255,255,255,.05) 1px, rgba(255,255,255,0) 50%, rgba(0,0,0,0) 50%, rgba(0,0,0,.05))",
			dir:       Top,
			stopCount: 6,
		},
		{
			name:      "messy whitespace",
			src:       "  linear-gradient(  to   left ,\n\trgb( 1 , 2 , 3 )  10% ,  hsl( 0 , 100% , 50% ) )  ",
			dir:       ToLeft,
			stopCount: 2,
		},
		{"named first stop", "linear-gradient(red, blue)", ToBottom, 2},
		{"named first stop with length", "linear-gradient(Red 10%, blue)", ToBottom, 2},
		{"unknown direction", "linear-gradient(45deg, red, blue)", ToRight, 2},
		{"single stop", "linear-gradient(#f00)", ToBottom, 1},
		{"double position", "linear-gradient(to right, red 10% 20%, blue)", ToRight, 3},
		{"upper-case function", "LINEAR-GRADIENT(#000, #fff)", ToBottom, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGradient(tt.src)
			if err != nil {
				t.Fatalf("ParseGradient() error = %v", err)
			}
			if g.Direction() != tt.dir {
				t.Errorf("Direction() = %v, want %v", g.Direction(), tt.dir)
			}
			if n := len(g.Stops()); n != tt.stopCount {
				t.Errorf("len(Stops()) = %d, want %d", n, tt.stopCount)
			}
		})
	}
}

func TestParseGradient_WhitespaceNormalized(t *testing.T) {
	g, err := ParseGradient("linear-gradient( to left , rgb( 1 , 2 , 3 )  10% , hsl( 0 , 100% , 50% ) )")
	if err != nil {
		t.Fatalf("ParseGradient() error = %v", err)
	}
	stops := g.Stops()
	if stops[0].Color != (Color{1, 2, 3, 1}) || stops[0].Position != (Length{10, UnitPercent}) {
		t.Errorf("stops[0] = %+v", stops[0])
	}
	if stops[1].Color != (Color{255, 0, 0, 1}) {
		t.Errorf("stops[1] = %+v", stops[1])
	}
}

func TestParseGradient_MalformedLengthDegradesToAuto(t *testing.T) {
	g, err := ParseGradient("linear-gradient(#000 10em, #888 bogus, #fff 1.5)")
	if err != nil {
		t.Fatalf("ParseGradient() error = %v", err)
	}
	stops := g.Stops()
	if !stops[0].Position.IsAuto() || !stops[1].Position.IsAuto() {
		t.Errorf("malformed lengths should be auto, got %v, %v", stops[0].Position, stops[1].Position)
	}
	if stops[2].Position != (Length{150, UnitPercent}) {
		t.Errorf("stops[2].Position = %v, want 150%%", stops[2].Position)
	}
}

func TestParseGradient_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrSyntax},
		{"radial", "radial-gradient(red, blue)", ErrSyntax},
		{"missing close", "linear-gradient(red, blue", ErrSyntax},
		{"prefix only", "linear-gradient(", ErrSyntax},
		{"unclosed function", "linear-gradient(rgb(1,2,3, #fff)", ErrSyntax},
		{"stray paren", "linear-gradient(#000), (#fff)", ErrSyntax},
		{"no params", "linear-gradient()", ErrEmptyStopList},
		{"direction only", "linear-gradient(to right)", ErrEmptyStopList},
		{"bad hex", "linear-gradient(#zzz, #fff)", ErrInvalidColor},
		{"bad name", "linear-gradient(#000, nope)", ErrInvalidColor},
		{"empty stop", "linear-gradient(#000,, #fff)", ErrInvalidColor},
		{"bad rgb arity", "linear-gradient(rgb(1,2), #fff)", ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGradient(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseGradient(%q) error = %v, want %v", tt.src, err, tt.want)
			}
			if g != nil {
				t.Errorf("ParseGradient(%q) returned a partial gradient", tt.src)
			}
		})
	}
}

func TestGradient_ParseIsAtomic(t *testing.T) {
	g := NewGradient()
	before := g.Stops()

	if err := g.Parse("linear-gradient(to top, #000, nope)"); err == nil {
		t.Fatal("Parse() should fail")
	}
	if g.String() != "linear-gradient(#000,#fff)" {
		t.Errorf("String() = %q after failed parse", g.String())
	}
	if g.Direction() != ToBottom {
		t.Errorf("Direction() = %v after failed parse", g.Direction())
	}
	if !reflect.DeepEqual(g.Stops(), before) {
		t.Errorf("Stops() changed after failed parse")
	}

	if err := g.Parse("linear-gradient(to top, red, blue, lime)"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Direction() != ToTop || len(g.Stops()) != 3 {
		t.Errorf("Parse() did not replace the gradient: %v, %d stops", g.Direction(), len(g.Stops()))
	}

	// Re-parsing without a direction resets it too.
	if err := g.Parse("linear-gradient(red, blue)"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Direction() != ToBottom {
		t.Errorf("Direction() = %v, want to bottom", g.Direction())
	}
}

func TestNewGradient(t *testing.T) {
	g := NewGradient()
	want := []RawStop{
		{Color: Color{0, 0, 0, 1}, Position: Auto},
		{Color: Color{255, 255, 255, 1}, Position: Auto},
	}
	if !reflect.DeepEqual(g.Stops(), want) {
		t.Errorf("Stops() = %+v, want %+v", g.Stops(), want)
	}
	if g.Direction() != ToBottom {
		t.Errorf("Direction() = %v, want to bottom", g.Direction())
	}
}

func TestGradient_SetDirection(t *testing.T) {
	g := NewGradient()
	if err := g.SetDirection(Bottom); err != nil {
		t.Fatalf("SetDirection(Bottom) error = %v", err)
	}
	if g.Direction() != Bottom {
		t.Errorf("Direction() = %v, want bottom", g.Direction())
	}
	if err := g.SetDirection(Direction(42)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("SetDirection(42) error = %v, want ErrInvalidDirection", err)
	}
	if g.Direction() != Bottom {
		t.Errorf("invalid SetDirection changed direction to %v", g.Direction())
	}
}

func TestGradient_StopsIsCopy(t *testing.T) {
	g := NewGradient()
	stops := g.Stops()
	stops[0].Color = Color{1, 2, 3, 1}
	if g.Stops()[0].Color == stops[0].Color {
		t.Error("mutating Stops() result changed the gradient")
	}
}

func TestSplitParams(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"rgb(1,2,3),#fff", []string{"rgb(1,2,3)", "#fff"}},
		{"to top,hsla(1,2%,3%,.4) 5%,f(g(h,i),j)", []string{"to top", "hsla(1,2%,3%,.4) 5%", "f(g(h,i),j)"}},
		{"", []string{""}},
		{"a,", []string{"a", ""}},
	}
	for _, tt := range tests {
		got, err := splitParams(tt.in)
		if err != nil {
			t.Errorf("splitParams(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitParams(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  to   bottom ,  #fff", "to bottom,#fff"},
		{"rgb ( 1 , 2 , 3 ) 50%", "rgb(1,2,3) 50%"},
		{"\tred\n10%", "red 10%"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeSpace(tt.in); got != tt.want {
			t.Errorf("normalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
