package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/blend"
	"github.com/JohnEsleyer/ubevid/internal/raster"
)

// coverageMask collects per-pixel antialiased coverage from the
// rasterizer without committing any color, so a fill can defer color
// sampling — a gradient or pattern brush needs the pixel coordinate, not
// just a coverage fraction — until after the shape's antialiased edges
// are known. internal/raster only knows how to fill a single constant
// RGBA; this is what lets the compositor reuse its edge-accurate AA path
// for brush and pattern fills too.
type coverageMask struct {
	width, height int
	data          []uint8
}

func newCoverageMask(w, h int) *coverageMask {
	return &coverageMask{width: w, height: h, data: make([]uint8, w*h)}
}

func (c *coverageMask) Width() int  { return c.width }
func (c *coverageMask) Height() int { return c.height }

func (c *coverageMask) SetPixel(x, y int, _ raster.RGBA) {
	c.set(x, y, 255)
}

func (c *coverageMask) BlendPixelAlpha(x, y int, _ raster.RGBA, alpha uint8) {
	c.set(x, y, alpha)
}

func (c *coverageMask) set(x, y int, v uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if v > c.data[y*c.width+x] {
		c.data[y*c.width+x] = v
	}
}

// fillPath rasterizes edges into antialiased coverage, then blends the
// brush's per-pixel color onto dst through mode at the given opacity.
// Used for every shape fill and every stroke-outline fill (the outline
// from strokeOutline arrives here exactly like any other filled path).
func fillPath(dst *gg.Pixmap, edges []raster.PathEdge, rule gg.FillRule, brush gg.Brush, mode blend.BlendMode, opacity float64) {
	if brush == nil || len(edges) == 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	cov := newCoverageMask(w, h)
	r := raster.NewRasterizer(w, h)
	r.FillAAFromEdges(cov, edges, toRasterFillRule(rule), raster.RGBA{A: 1})

	blendPx := blend.GetBlendFunc(mode)
	data := dst.Data()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			coverage := cov.data[row+x]
			if coverage == 0 {
				continue
			}
			c := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			a := c.A * float64(coverage) / 255 * opacity
			if a <= 0 {
				continue
			}
			sr := uint8(clampByte(c.R * a * 255))
			sg := uint8(clampByte(c.G * a * 255))
			sb := uint8(clampByte(c.B * a * 255))
			sa := uint8(clampByte(a * 255))

			i := (row + x) * 4
			dr, dg, db, da := blendPx(sr, sg, sb, sa, data[i], data[i+1], data[i+2], data[i+3])
			data[i], data[i+1], data[i+2], data[i+3] = dr, dg, db, da
		}
	}
}

func toRasterFillRule(rule gg.FillRule) raster.FillRule {
	if rule == gg.FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
