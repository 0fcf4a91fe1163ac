package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/layout"
	"github.com/JohnEsleyer/ubevid/scenedoc"
	"github.com/JohnEsleyer/ubevid/text"
)

// nodeKind classifies a decoded tag into the fixed set the compositor
// treats specially. The wire format keeps tag as an open string (new tags
// should never fail to parse), but every draw decision only cares about
// this small, closed classification.
type nodeKind int

const (
	kindGeneric nodeKind = iota
	kindText
	kindImage
)

func classifyTag(tag string) nodeKind {
	switch tag {
	case "text":
		return kindText
	case "image":
		return kindImage
	default:
		return kindGeneric
	}
}

// renderNode pairs a decoded scene node and its resolved paint style with
// the layout.Node built from it. layout.Compute keys its result map by
// *layout.Node pointer identity and knows nothing about scene/paint data,
// so this tree is what lets the compositor recover "what does this
// rectangle belong to and how should it be painted" while walking both
// trees together.
type renderNode struct {
	scene    *scenedoc.SceneNode
	style    gg.Style
	layout   *layout.Node
	children []*renderNode
	kind     nodeKind
}

// buildTree resolves style and constructs the parallel scene/layout tree
// rooted at scene. The returned node's layout field is ready to pass to
// layout.Compute.
func buildTree(scene *scenedoc.SceneNode, store *gg.Store) *renderNode {
	style, lstyle := resolveStyle(scene.Style)

	ln := &layout.Node{Style: lstyle}
	kind := classifyTag(scene.Tag)
	rn := &renderNode{scene: scene, style: style, layout: ln, kind: kind}

	switch kind {
	case kindText:
		attachTextMeasure(rn, store)
	case kindImage:
		attachImageMeasure(rn, store)
	}

	for _, c := range scene.Children {
		child := buildTree(c, store)
		rn.children = append(rn.children, child)
		ln.Children = append(ln.Children, child.layout)
	}
	return rn
}

// attachTextMeasure gives the node a content-driven size per §4.7: shape
// the text against the available width (or unbounded, for a MinContent/
// MaxContent request) and report (max line width, line_count ·
// line_height). A node whose font family names a font the store never
// loaded is left unmeasured, falling through to sizeNode's zero-size
// default rather than panicking.
func attachTextMeasure(rn *renderNode, store *gg.Store) {
	source := store.Font(rn.style.Text.FontFamily)
	if source == nil {
		return
	}
	body := rn.scene.Text
	fontSize := rn.style.Text.FontSize
	letterSpacing := rn.style.Text.LetterSpacing
	lineHeight := rn.style.Text.LineHeight

	rn.layout.Measure = func(c layout.Constraint) (float64, float64) {
		maxWidth := 0.0
		if c.Mode == layout.Definite {
			maxWidth = c.AvailableWidth
		}
		lines := text.ComputeTextLinesForSource(source, body, fontSize, letterSpacing, maxWidth)

		var w float64
		for _, l := range lines {
			if l.Width > w {
				w = l.Width
			}
		}
		h := float64(len(lines)) * lineHeight * fontSize
		return w, h
	}
}

// attachImageMeasure reports the decoded asset's pixel dimensions as the
// node's intrinsic size; sizeNode only consults this for whichever axis
// the style left Auto, so an explicit width/height still wins per axis.
func attachImageMeasure(rn *renderNode, store *gg.Store) {
	pm := store.Asset(rn.scene.Src)
	if pm == nil {
		return
	}
	w, h := float64(pm.Width()), float64(pm.Height())
	rn.layout.Measure = func(layout.Constraint) (float64, float64) {
		return w, h
	}
}
