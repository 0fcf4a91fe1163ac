package compositor

import (
	"math"

	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/blend"
	"github.com/JohnEsleyer/ubevid/text"
)

// drawText lays out rn's body with ComputeTextLinesForSource, then blits
// each glyph's rasterized coverage mask at the position
// (cx + xmin, lineY + size - h - ymin): xmin/ymin are the glyph's own
// bounding-box origin relative to its drawing pen, h is the bounding
// box's pixel height, and size stands in for the line's baseline offset
// from its top, matching how glyph bounds are already anchored
// baseline-left with ascenders at negative Y.
//
// Glyph bitmaps are hinted raster coverage, not vector outlines, so only
// translation and uniform scale (via the rasterize ppem) follow the
// node's transform; rotation and skew affect layout geometry but not
// individual glyph shapes.
func drawText(dst *gg.Pixmap, rn *renderNode, rect rectLike, absX, absY float64, scale float64, opacity float64, gc *glyphCache, store *gg.Store) {
	ts := rn.style.Text
	source := store.Font(ts.FontFamily)
	if source == nil {
		return
	}

	ppem := ts.FontSize * scale
	lines := text.ComputeTextLinesForSource(source, rn.scene.Text, ts.FontSize, ts.LetterSpacing, rect.W)
	lineHeight := ts.LineHeight * ts.FontSize * scale

	for i, line := range lines {
		lineY := absY + float64(i)*lineHeight

		startX := absX
		switch ts.Align {
		case gg.TextAlignCenter:
			startX = absX + (rect.W-line.Width)*scale/2
		case gg.TextAlignRight:
			startX = absX + (rect.W-line.Width)*scale
		}

		cx := startX
		for _, ch := range line.Chars {
			glyph := gc.getOrRasterize(source, ch.Rune, ppem)
			if glyph != nil && glyph.Mask != nil {
				xmin := float64(glyph.Bounds.Min.X)
				ymin := float64(glyph.Bounds.Min.Y)
				h := float64(glyph.Bounds.Dy())
				x0 := cx + xmin
				y0 := lineY + ppem - h - ymin
				blitGlyphMask(dst, glyph, x0, y0, ts.Color, rn.style.BlendMode, opacity)
			}
			cx += ch.Advance * scale
		}
	}
}

// rectLike is the subset of a layout rectangle drawText needs, kept
// decoupled from layout.Rect so this file has no import on the layout
// package.
type rectLike struct {
	W, H float64
}

// blitGlyphMask composites one rasterized glyph's coverage mask onto dst
// at (x0, y0), tinted by color and scaled by opacity, through mode.
func blitGlyphMask(dst *gg.Pixmap, glyph *text.GlyphImage, x0, y0 float64, color gg.RGBA, mode blend.BlendMode, opacity float64) {
	blendPx := blend.GetBlendFunc(mode)
	data := dst.Data()
	w, h := dst.Width(), dst.Height()

	bounds := glyph.Mask.Bounds()
	originX, originY := int(math.Round(x0)), int(math.Round(y0))

	for gy := bounds.Min.Y; gy < bounds.Max.Y; gy++ {
		py := originY + gy - bounds.Min.Y
		if py < 0 || py >= h {
			continue
		}
		for gx := bounds.Min.X; gx < bounds.Max.X; gx++ {
			px := originX + gx - bounds.Min.X
			if px < 0 || px >= w {
				continue
			}
			coverage := glyph.Mask.AlphaAt(gx, gy).A
			if coverage == 0 {
				continue
			}
			a := color.A * float64(coverage) / 255 * opacity
			if a <= 0 {
				continue
			}
			sr := uint8(clampByte(color.R * a * 255))
			sg := uint8(clampByte(color.G * a * 255))
			sb := uint8(clampByte(color.B * a * 255))
			sa := uint8(clampByte(a * 255))

			idx := (py*w + px) * 4
			dr, dg, db, da := blendPx(sr, sg, sb, sa, data[idx], data[idx+1], data[idx+2], data[idx+3])
			data[idx], data[idx+1], data[idx+2], data[idx+3] = dr, dg, db, da
		}
	}
}
