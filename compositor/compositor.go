// Package compositor walks a decoded scene tree against its computed
// layout rectangles and paints it into a single Pixmap, in the fixed
// per-node order shadow, fill, stroke, image, text, then children.
package compositor

import (
	"math"
	"sort"

	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/blend"
	"github.com/JohnEsleyer/ubevid/internal/filter"
	"github.com/JohnEsleyer/ubevid/layout"
	"github.com/JohnEsleyer/ubevid/scenedoc"
)

// flattenTolerance bounds the chord error curves are flattened to before
// rasterization; small enough that no node's curvature is visibly faceted
// at typical document scales.
const flattenTolerance = 0.25

// Render lays out and paints scene against a width x height canvas.
func Render(scene *scenedoc.SceneNode, store *gg.Store, width, height int) *gg.Pixmap {
	tree := buildTree(scene, store)
	rects := layout.Compute(tree.layout, float64(width), float64(height))
	dst := gg.NewPixmap(width, height)
	renderNodeRecursive(tree, rects, dst, 0, 0, 1, newGlyphCache(), store)
	return dst
}

// renderNodeRecursive paints rn and its subtree into dst. parentAbsX/
// parentAbsY accumulate the node's position in dst's coordinate space
// (layout.Compute's rectangles are parent-local, not absolute);
// parentOpacity carries the accumulated opacity a layer-less ancestor
// chain has already applied, per the "own opacity vs. layer opacity"
// split: a node that allocates a layer paints its own content and
// children at full strength and applies current_opacity once, in a
// single blit, rather than compounding it at every draw call inside
// the layer.
func renderNodeRecursive(rn *renderNode, rects map[*layout.Node]layout.Rect, dst *gg.Pixmap, parentAbsX, parentAbsY, parentOpacity float64, gc *glyphCache, store *gg.Store) {
	rect := rects[rn.layout]
	absX := parentAbsX + rect.X
	absY := parentAbsY + rect.Y
	currentOpacity := parentOpacity * rn.style.Opacity

	if rect.W <= 0 && rect.H <= 0 && !hasVisualContent(rn) {
		return
	}

	localPath := gg.BuildNodePath(rn.scene.Tag, rn.scene.D, rect.W, rect.H, rn.style.Radii)
	m := nodeMatrix(absX, absY, rect.W, rect.H, rn.style.Transform)

	layered := needsLayer(rn)
	target := dst
	ownOpacity := currentOpacity
	childOpacity := currentOpacity
	if layered {
		target = gg.NewPixmap(dst.Width(), dst.Height())
		ownOpacity = 1
		childOpacity = 1
	}

	drawShadow(target, rn, localPath, m, ownOpacity)
	drawFill(target, rn, localPath, m, rect, ownOpacity)
	drawStroke(target, rn, localPath, m, ownOpacity)
	drawImageIfAny(target, rn, localPath, m, rect, ownOpacity, store)
	drawTextIfAny(target, rn, rect, m, ownOpacity, gc, store)

	children := sortedByZIndex(rn.children)
	if layered && clippingActive(rn) && len(children) > 0 {
		childLayer := gg.NewPixmap(dst.Width(), dst.Height())
		for _, c := range children {
			renderNodeRecursive(c, rects, childLayer, absX, absY, childOpacity, gc, store)
		}
		cov := rasterizePathCoverage(localPath.Transform(m), dst.Width(), dst.Height(), flattenTolerance)
		applyCoverageAsMask(childLayer, cov)
		blitLayer(target, childLayer, blend.BlendSourceOver, 1)
	} else {
		for _, c := range children {
			renderNodeRecursive(c, rects, target, absX, absY, childOpacity, gc, store)
		}
	}

	if layered {
		finalizeLayer(dst, target, rn, store, currentOpacity)
	}
}

// nodeMatrix composes a node's absolute transform: translate to its
// layout position, pre-translate to the box center, pre-rotate, pre-skew,
// pre-scale, pre-translate back from the center — so every angular and
// scale input pivots on the node's own box center rather than its
// top-left corner.
func nodeMatrix(absX, absY, w, h float64, t gg.Transform) gg.Matrix {
	cx, cy := w/2, h/2
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	rot := t.RotateDeg * math.Pi / 180
	skewX := math.Tan(t.SkewXDeg * math.Pi / 180)
	skewY := math.Tan(t.SkewYDeg * math.Pi / 180)

	m := gg.Translate(absX, absY)
	m = m.Multiply(gg.Translate(cx, cy))
	m = m.Multiply(gg.Rotate(rot))
	m = m.Multiply(gg.Shear(skewX, skewY))
	m = m.Multiply(gg.Scale(scale, scale))
	m = m.Multiply(gg.Translate(-cx, -cy))
	return m
}

// drawShadow fills a copy of the node's path, offset in local (pre-
// transform) space so the shadow rotates and scales along with its
// caster, at current_opacity * 0.3 per the shadow's coupling to the
// node's own effective opacity.
func drawShadow(dst *gg.Pixmap, rn *renderNode, localPath *gg.Path, m gg.Matrix, opacity float64) {
	sh := rn.style.Shadow
	if sh == nil {
		return
	}
	offset := localPath.Transform(gg.Translate(sh.OffsetX, sh.OffsetY))
	abs := offset.Transform(m)
	edges := toRasterEdges(abs.FlattenSubpaths(flattenTolerance))
	fillPath(dst, edges, gg.FillRuleNonZero, gg.Solid(sh.Color), blend.BlendSourceOver, opacity*0.3)
}

func drawFill(dst *gg.Pixmap, rn *renderNode, localPath *gg.Path, m gg.Matrix, rect layout.Rect, opacity float64) {
	if !rn.style.HasBackground && rn.style.Gradient == nil {
		return
	}
	abs := localPath.Transform(m)
	edges := toRasterEdges(abs.FlattenSubpaths(flattenTolerance))

	var brush gg.Brush
	if rn.style.Gradient != nil {
		brush = gradientBrush(rn.style.Gradient, rect.W, rect.H, m)
	} else {
		brush = gg.Solid(rn.style.Background)
	}
	fillPath(dst, edges, gg.FillRuleNonZero, brush, rn.style.BlendMode, opacity)
}

func drawStroke(dst *gg.Pixmap, rn *renderNode, localPath *gg.Path, m gg.Matrix, opacity float64) {
	if !rn.style.HasStroke || rn.style.Stroke.Stroke.Width <= 0 {
		return
	}
	outline := strokeOutline(localPath, rn.style.Stroke.Stroke, flattenTolerance)
	abs := transformSubpaths(outline, m)
	edges := toRasterEdges(abs)
	fillPath(dst, edges, gg.FillRuleNonZero, gg.Solid(rn.style.Stroke.Color), rn.style.BlendMode, opacity)
}

func drawImageIfAny(dst *gg.Pixmap, rn *renderNode, localPath *gg.Path, m gg.Matrix, rect layout.Rect, opacity float64, store *gg.Store) {
	if rn.kind != kindImage {
		return
	}
	pm := store.Asset(rn.scene.Src)
	if pm == nil {
		return
	}
	abs := localPath.Transform(m)
	edges := toRasterEdges(abs.FlattenSubpaths(flattenTolerance))
	brush := imageBrush(pm, rect.W, rect.H, rn.style.ObjectFit, m)
	fillPath(dst, edges, gg.FillRuleNonZero, brush, rn.style.BlendMode, opacity)
}

func drawTextIfAny(dst *gg.Pixmap, rn *renderNode, rect layout.Rect, m gg.Matrix, opacity float64, gc *glyphCache, store *gg.Store) {
	if rn.kind != kindText {
		return
	}
	scale := rn.style.Transform.Scale
	if scale == 0 {
		scale = 1
	}
	origin := m.TransformPoint(gg.Point{X: 0, Y: 0})
	drawText(dst, rn, rectLike{W: rect.W, H: rect.H}, origin.X, origin.Y, scale, opacity, gc, store)
}

// clippingActive reports whether rn's own geometry should clip its
// children: either overflow is explicitly hidden, or the node has a
// nonzero corner radius (a rounded box implicitly clips its contents to
// its curve).
func clippingActive(rn *renderNode) bool {
	return rn.layout.Style.Overflow == layout.OverflowHidden || rn.style.Radii != gg.CornerRadii{}
}

// needsLayer decides whether rn must paint into an offscreen layer before
// reaching its destination: a mask, any active color-matrix or blur
// filter, clipping with children to clip, or a non-default blend mode
// with children whose own blending must stay scoped to rn's subtree
// rather than bleeding into whatever painted before rn's siblings.
func needsLayer(rn *renderNode) bool {
	hasChildren := len(rn.children) > 0
	nonDefaultBlend := rn.style.BlendMode != blend.BlendSourceOver
	return rn.scene.Mask != nil ||
		!rn.style.Filters.IsIdentity() ||
		(clippingActive(rn) && hasChildren) ||
		(nonDefaultBlend && hasChildren)
}

// finalizeLayer runs group filters, then the node's mask, then blits the
// finished layer onto dst at current_opacity through the node's blend
// mode — the single point where a layered node's accumulated opacity is
// actually applied.
func finalizeLayer(dst, layer *gg.Pixmap, rn *renderNode, store *gg.Store, opacity float64) {
	bounds := filter.Rect{MinX: 0, MinY: 0, MaxX: float32(dst.Width()), MaxY: float32(dst.Height())}

	if !rn.style.Filters.IsIdentity() {
		filter.ApplyFilterSet(layer, layer, rn.style.Filters, bounds)
		if rn.style.Filters.BlurRadius > 0 {
			filter.NewBlurFilter(rn.style.Filters.BlurRadius).Apply(layer, layer, bounds)
		}
	}

	if rn.scene.Mask != nil {
		mask := renderMask(rn.scene.Mask, store, dst.Width(), dst.Height(), rn.style.MaskMode, rn.style.MaskInverted)
		applyMaskToLayer(layer, mask)
	}

	blitLayer(dst, layer, rn.style.BlendMode, opacity)
}

// blitLayer composites a full-canvas layer onto dst through mode, scaling
// every premultiplied byte by opacity first.
func blitLayer(dst, layer *gg.Pixmap, mode blend.BlendMode, opacity float64) {
	blendPx := blend.GetBlendFunc(mode)
	src := layer.Data()
	out := dst.Data()
	n := dst.Width() * dst.Height()

	for i := 0; i < n; i++ {
		idx := i * 4
		if src[idx+3] == 0 {
			continue
		}
		sr := uint8(clampByte(float64(src[idx]) * opacity))
		sg := uint8(clampByte(float64(src[idx+1]) * opacity))
		sb := uint8(clampByte(float64(src[idx+2]) * opacity))
		sa := uint8(clampByte(float64(src[idx+3]) * opacity))

		dr, dg, db, da := blendPx(sr, sg, sb, sa, out[idx], out[idx+1], out[idx+2], out[idx+3])
		out[idx], out[idx+1], out[idx+2], out[idx+3] = dr, dg, db, da
	}
}

func transformSubpaths(subpaths [][]gg.Point, m gg.Matrix) [][]gg.Point {
	out := make([][]gg.Point, len(subpaths))
	for i, sp := range subpaths {
		t := make([]gg.Point, len(sp))
		for j, p := range sp {
			t[j] = m.TransformPoint(p)
		}
		out[i] = t
	}
	return out
}

// hasVisualContent reports whether rn paints anything on its own, so a
// zero-size node with no children (an empty spacer view, typically) can
// be skipped without walking its style further.
func hasVisualContent(rn *renderNode) bool {
	return rn.style.HasBackground ||
		rn.style.Gradient != nil ||
		rn.style.HasStroke ||
		rn.style.Shadow != nil ||
		rn.kind == kindImage ||
		rn.kind == kindText ||
		len(rn.children) > 0
}

// sortedByZIndex returns children in ascending z-index order, stable on
// ties so same-layer siblings keep their document order.
func sortedByZIndex(children []*renderNode) []*renderNode {
	out := make([]*renderNode, len(children))
	copy(out, children)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].layout.Style.ZIndex < out[j].layout.Style.ZIndex
	})
	return out
}
