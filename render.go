package cssgrad

import (
	"log/slog"
	"math"
)

// RenderToBuffer rasterizes g into a width x height pixmap.
//
// The axis is walked one line at a time from the first stop in the
// direction's step; each full row or column gets the color interpolated
// between the two stops around it. Lines before the first stop or after the
// last one stay transparent. Rendering never fails: a gradient without
// stops yields a transparent buffer.
func RenderToBuffer(g *Gradient, width, height int, opts ...RenderOption) *Pixmap {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	width = max(width, 0)
	height = max(height, 0)

	pm := o.pixmap
	switch {
	case pm == nil:
		pm = NewPixmap(width, height)
	case pm.width != width || pm.height != height:
		Logger().Warn("cssgrad: pixmap size mismatch, allocating a new one",
			slog.Int("width", width), slog.Int("height", height),
			slog.Int("pixmapWidth", pm.width), slog.Int("pixmapHeight", pm.height))
		pm = NewPixmap(width, height)
	default:
		pm.Clear(Transparent)
	}

	axis := g.dir.axis(width, height)
	stops := g.Resolve(axis)
	Logger().Debug("cssgrad: render",
		slog.String("direction", g.dir.String()),
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("stops", len(stops)))

	rasterize(pm, g.dir, stops, axis)
	return pm
}

// Render is shorthand for RenderToBuffer(g, width, height, opts...).
func (g *Gradient) Render(width, height int, opts ...RenderOption) *Pixmap {
	return RenderToBuffer(g, width, height, opts...)
}

// rasterize fills the lines of pm covered by stops. Stops at the same
// position form a hard transition: the last of them wins.
func rasterize(pm *Pixmap, dir Direction, stops []ResolvedStop, axis int) {
	if len(stops) < 2 {
		return
	}

	fill := pm.FillColumn
	if dir.Vertical() {
		fill = pm.FillRow
	}

	step := dir.Step()
	pos := traversalPositions(stops, step)
	last := len(stops) - 1

	i := 0
	for p := pos[0]; p >= 0 && p < axis && (p-pos[last])*step <= 0; p += step {
		// Skip every stop at or behind p.
		for i < last && (pos[i+1]-p)*step <= 0 {
			i++
		}

		c := stops[i].Color
		if i < last {
			t := math.Abs(float64(p-pos[i]) / float64(pos[i]-pos[i+1]))
			c = c.Lerp(stops[i+1].Color, t)
		}
		fill(p, c)
	}
}

// traversalPositions returns the stop positions clamped so they never move
// backwards along the traversal: a stop placed before an earlier stop is
// moved up to it.
func traversalPositions(stops []ResolvedStop, step int) []int {
	pos := make([]int, len(stops))
	pos[0] = stops[0].Position
	for i := 1; i < len(stops); i++ {
		p := stops[i].Position
		if (p-pos[i-1])*step < 0 {
			p = pos[i-1]
		}
		pos[i] = p
	}
	return pos
}
