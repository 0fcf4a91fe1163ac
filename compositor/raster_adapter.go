package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/raster"
)

// rasterPixmap adapts a *gg.Pixmap to internal/raster's Pixmap/AAPixmap
// interfaces. raster keeps its own RGBA/Point types to avoid an import
// cycle with the root package, so every call across the boundary needs a
// field-for-field conversion; this type is where that conversion happens,
// once, instead of scattered across the compositor.
type rasterPixmap struct {
	pm *gg.Pixmap
}

func wrapPixmap(pm *gg.Pixmap) rasterPixmap {
	return rasterPixmap{pm: pm}
}

func (p rasterPixmap) Width() int  { return p.pm.Width() }
func (p rasterPixmap) Height() int { return p.pm.Height() }

func (p rasterPixmap) SetPixel(x, y int, c raster.RGBA) {
	p.pm.SetPixel(x, y, toGGColor(c))
}

func (p rasterPixmap) FillSpan(x1, x2, y int, c raster.RGBA) {
	p.pm.FillSpan(x1, x2, y, toGGColor(c))
}

func (p rasterPixmap) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	p.pm.BlendPixelAlpha(x, y, toGGColor(c), alpha)
}

func toGGColor(c raster.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toRasterColor(c gg.RGBA) raster.RGBA {
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// toRasterPoints converts a flattened gg.Point path into raster.Point, the
// named type FillAA/Stroke take.
func toRasterPoints(pts []gg.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

// toRasterEdges converts subpath-aware edges (pairs of consecutive points
// within one contour, never bridging across a MoveTo) into raster.PathEdge
// for FillAAFromEdges, which handles multi-contour fills correctly where
// the deprecated point-list FillAA does not.
func toRasterEdges(subpaths [][]gg.Point) []raster.PathEdge {
	var edges []raster.PathEdge
	for _, sp := range subpaths {
		for i := 0; i+1 < len(sp); i++ {
			edges = append(edges, raster.PathEdge{
				P0: raster.Point{X: sp[i].X, Y: sp[i].Y},
				P1: raster.Point{X: sp[i+1].X, Y: sp[i+1].Y},
			})
		}
	}
	return edges
}
