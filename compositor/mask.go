package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/layout"
	"github.com/JohnEsleyer/ubevid/scenedoc"
)

// renderMask renders node's own subtree against a synthetic root sized
// width x height, then reduces the result to an 8-bit mask per mode:
// alpha mode reads the rendered pixmap's own alpha channel directly,
// luminance mode takes the Rec.601 luma of its premultiplied color.
// inverted flips every mask byte afterward. mode and inverted come from
// the owning node's style, not node itself — the mask vocabulary
// (content vs. mode) is split the same way across the scene document.
func renderMask(node *scenedoc.SceneNode, store *gg.Store, width, height int, mode gg.MaskMode, inverted bool) *gg.Mask {
	tree := buildTree(node, store)
	rects := layout.Compute(tree.layout, float64(width), float64(height))
	pm := gg.NewPixmap(width, height)
	renderNodeRecursive(tree, rects, pm, 0, 0, 1, newGlyphCache(), store)

	var mask *gg.Mask
	if mode == gg.MaskModeLuminance {
		mask = gg.NewMaskFromLuma(pm)
	} else {
		mask = gg.NewMaskFromPixmapAlpha(pm)
	}
	if inverted {
		mask.Invert()
	}
	return mask
}
