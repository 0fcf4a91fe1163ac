package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	istroke "github.com/JohnEsleyer/ubevid/internal/stroke"
)

// strokeOutline expands a path's stroke into filled outline subpaths,
// applying dashing first when the stroke carries a dash pattern. The
// result is ready for toRasterEdges with the nonzero fill rule, same as
// any other filled shape.
//
// internal/stroke keeps its own Point/PathElement types to avoid an
// import cycle with the root package (the same reason raster_adapter.go
// exists for fills), so every subpath crosses the boundary twice: once
// flattened into stroke.PathElement going in, once flattened back into
// gg.Point coming out.
func strokeOutline(path *gg.Path, stroke gg.Stroke, tolerance float64) [][]gg.Point {
	subpaths := path.FlattenSubpaths(tolerance)
	if stroke.IsDashed() {
		var dashed [][]gg.Point
		for _, sp := range subpaths {
			dashed = append(dashed, applyDash(sp, stroke.Dash)...)
		}
		subpaths = dashed
	}

	expander := istroke.NewStrokeExpander(istroke.Stroke{
		Width:      stroke.Width,
		Cap:        toStrokeCap(stroke.Cap),
		Join:       toStrokeJoin(stroke.Join),
		MiterLimit: stroke.MiterLimit,
	})
	expander.SetTolerance(tolerance)

	var out [][]gg.Point
	for _, sp := range subpaths {
		elems := subpathToStrokeElements(sp)
		if elems == nil {
			continue
		}
		out = append(out, strokeElementsToSubpaths(expander.Expand(elems))...)
	}
	return out
}

func toStrokeCap(c gg.LineCap) istroke.LineCap {
	switch c {
	case gg.LineCapRound:
		return istroke.LineCapRound
	case gg.LineCapSquare:
		return istroke.LineCapSquare
	default:
		return istroke.LineCapButt
	}
}

func toStrokeJoin(j gg.LineJoin) istroke.LineJoin {
	switch j {
	case gg.LineJoinRound:
		return istroke.LineJoinRound
	case gg.LineJoinBevel:
		return istroke.LineJoinBevel
	default:
		return istroke.LineJoinMiter
	}
}

// subpathToStrokeElements converts a flattened polyline into the
// MoveTo/LineTo(/Close) sequence StrokeExpander expects. FlattenSubpaths
// closes a subpath by repeating its first point as its last, so a
// matching first/last point is read back as Close rather than a
// degenerate closing segment.
func subpathToStrokeElements(pts []gg.Point) []istroke.PathElement {
	if len(pts) < 2 {
		return nil
	}
	closed := pts[0] == pts[len(pts)-1] && len(pts) > 2
	end := len(pts)
	if closed {
		end--
	}

	elems := make([]istroke.PathElement, 0, end+1)
	elems = append(elems, istroke.MoveTo{Point: toStrokePoint(pts[0])})
	for i := 1; i < end; i++ {
		elems = append(elems, istroke.LineTo{Point: toStrokePoint(pts[i])})
	}
	if closed {
		elems = append(elems, istroke.Close{})
	}
	return elems
}

func toStrokePoint(p gg.Point) istroke.Point {
	return istroke.Point{X: p.X, Y: p.Y}
}

// strokeElementsToSubpaths splits a StrokeExpander outline back into
// gg.Point subpaths. The expander only ever emits MoveTo/LineTo/Close
// (the outline is already flattened), so no curve cases are needed.
func strokeElementsToSubpaths(elems []istroke.PathElement) [][]gg.Point {
	var out [][]gg.Point
	var cur []gg.Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, e := range elems {
		switch v := e.(type) {
		case istroke.MoveTo:
			flush()
			cur = append(cur, gg.Point{X: v.Point.X, Y: v.Point.Y})
		case istroke.LineTo:
			cur = append(cur, gg.Point{X: v.Point.X, Y: v.Point.Y})
		case istroke.Close:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	flush()
	return out
}

// applyDash splits a flattened polyline into its "on" segments per the
// dash pattern, each returned as an independent subpath so a gap starts
// a new contour with its own caps rather than bridging across the gap.
func applyDash(pts []gg.Point, dash *gg.Dash) [][]gg.Point {
	if len(pts) < 2 || dash == nil || !dash.IsDashed() {
		return [][]gg.Point{pts}
	}
	pattern := dash.EffectiveArray()
	if len(pattern) == 0 {
		return [][]gg.Point{pts}
	}

	// Walk the pattern cycle starting at the normalized offset, find
	// which entry we start inside and how far into it we already are.
	offset := dash.NormalizedOffset()
	idx := 0
	into := offset
	for into >= pattern[idx] {
		into -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - into
	on := idx%2 == 0

	var out [][]gg.Point
	var cur []gg.Point
	if on {
		cur = append(cur, pts[0])
	}

	for i := 0; i+1 < len(pts); i++ {
		segStart := pts[i]
		segEnd := pts[i+1]
		segLen := segStart.Distance(segEnd)
		traveled := 0.0

		for traveled < segLen {
			step := segLen - traveled
			if step > remaining {
				step = remaining
			}
			traveled += step
			remaining -= step

			t := traveled / segLen
			p := segStart.Lerp(segEnd, t)

			if on {
				cur = append(cur, p)
			}

			if remaining <= 1e-9 {
				if on && len(cur) > 1 {
					out = append(out, cur)
				}
				cur = nil
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				on = !on
				if on {
					cur = append(cur, p)
				}
			}
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
