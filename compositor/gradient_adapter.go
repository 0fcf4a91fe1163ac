package compositor

import (
	"math"

	"github.com/JohnEsleyer/ubevid"
)

// gradientBrush builds a Brush for g over a node's w x h local box, then
// wraps it so ColorAt accepts the absolute canvas coordinates fillPath
// samples at: the gradient's axis is computed in local box space (per the
// CSS linear-gradient-line construction) and the node's own transform
// rotates right along with the shape it fills, by inverse-mapping the
// sample point back to local space before delegating.
func gradientBrush(g *gg.Gradient, w, h float64, m gg.Matrix) gg.Brush {
	local := localGradientBrush(g, w, h)
	inv := m.Invert()
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		lp := inv.TransformPoint(gg.Point{X: x, Y: y})
		return local.ColorAt(lp.X, lp.Y)
	})
}

func localGradientBrush(g *gg.Gradient, w, h float64) gg.Brush {
	stops := g.ResolvedStops()
	cx, cy := w/2, h/2

	if g.Kind == gg.GradientRadial {
		radius := math.Hypot(w/2, h/2)
		if radius <= 0 {
			radius = 1
		}
		brush := gg.NewRadialGradientBrush(cx, cy, 0, radius)
		for _, s := range stops {
			brush.AddColorStop(s.Position, s.Color)
		}
		return brush
	}

	// 0deg points up (-y), measured clockwise.
	rad := g.AngleDeg * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)

	corners := [4]gg.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}}
	minT, maxT := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		t := (c.X-cx)*dx + (c.Y-cy)*dy
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}
	if minT == maxT {
		maxT = minT + 1
	}

	x0, y0 := cx+minT*dx, cy+minT*dy
	x1, y1 := cx+maxT*dx, cy+maxT*dy
	brush := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, s := range stops {
		brush.AddColorStop(s.Position, s.Color)
	}
	return brush
}
