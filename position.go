package cssgrad

import "math"

// ResolvedStop is a color stop placed at a pixel offset along the axis.
type ResolvedStop struct {
	Color    Color
	Position int
}

// ResolveStops places stops on an axis of axisSize pixels.
//
// A single stop is repeated so the gradient is a solid color. The first
// stop defaults to 0 and the last to axisSize; interior stops without a
// position are spread evenly between their positioned neighbors. With
// invert set every position p becomes axisSize-p-1, for traversals that
// walk the axis backwards.
//
// Explicit positions are not reordered, so the result may decrease when
// the source lists positions out of order. The input is never modified.
func ResolveStops(stops []RawStop, axisSize int, invert bool) []ResolvedStop {
	if len(stops) == 0 {
		return nil
	}
	if len(stops) == 1 {
		stops = []RawStop{stops[0], {Color: stops[0].Color, Position: Auto}}
	}

	last := len(stops) - 1
	out := make([]ResolvedStop, len(stops))
	for i, s := range stops {
		out[i].Color = s.Color
		if !s.Position.IsAuto() {
			out[i].Position = s.Position.ToPixels(axisSize)
		}
	}
	if stops[last].Position.IsAuto() {
		out[last].Position = axisSize
	}
	// An auto first stop is already at 0.

	for i := 1; i < last; {
		if !stops[i].Position.IsAuto() {
			i++
			continue
		}
		k := i
		for k < last && stops[k].Position.IsAuto() {
			k++
		}
		begin, end := out[i-1].Position, out[k].Position
		step := float64(end-begin) / float64(k-i+1)
		for n := 1; i < k; n++ {
			out[i].Position = begin + int(math.Round(step*float64(n)))
			i++
		}
	}

	if invert {
		for i := range out {
			out[i].Position = axisSize - out[i].Position - 1
		}
	}
	return out
}
