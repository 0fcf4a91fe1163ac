package compositor

import (
	"testing"

	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/blend"
	"github.com/JohnEsleyer/ubevid/internal/raster"
)

func squareEdges(x0, y0, x1, y1 float64) []raster.PathEdge {
	pts := []raster.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}
	var edges []raster.PathEdge
	for i := 0; i+1 < len(pts); i++ {
		edges = append(edges, raster.PathEdge{P0: pts[i], P1: pts[i+1]})
	}
	return edges
}

func TestFillPathSolidColor(t *testing.T) {
	dst := gg.NewPixmap(10, 10)
	edges := squareEdges(2, 2, 8, 8)

	fillPath(dst, edges, gg.FillRuleNonZero, gg.Solid(gg.Red), blend.BlendSourceOver, 1.0)

	c := dst.GetPixel(5, 5)
	if c.A < 0.9 {
		t.Errorf("center alpha = %v, want near 1", c.A)
	}
	if c.R < 0.9 || c.G > 0.1 || c.B > 0.1 {
		t.Errorf("center color = %+v, want red", c)
	}

	outside := dst.GetPixel(0, 0)
	if outside.A != 0 {
		t.Errorf("outside alpha = %v, want 0", outside.A)
	}
}

func TestFillPathRespectsOpacity(t *testing.T) {
	dst := gg.NewPixmap(10, 10)
	edges := squareEdges(2, 2, 8, 8)

	fillPath(dst, edges, gg.FillRuleNonZero, gg.Solid(gg.Blue), blend.BlendSourceOver, 0.5)

	c := dst.GetPixel(5, 5)
	if c.A < 0.4 || c.A > 0.6 {
		t.Errorf("center alpha = %v, want near 0.5", c.A)
	}
}

func TestFillPathNilBrushNoOp(t *testing.T) {
	dst := gg.NewPixmap(10, 10)
	edges := squareEdges(2, 2, 8, 8)
	fillPath(dst, edges, gg.FillRuleNonZero, nil, blend.BlendSourceOver, 1.0)

	if dst.GetPixel(5, 5).A != 0 {
		t.Error("nil brush should leave the destination untouched")
	}
}
