package layout

// Compute lays out root and its entire subtree inside a (width, height)
// viewport and returns every node's rectangle. The root's rectangle is at
// (0, 0); every other rectangle is in parent-local coordinates (relative
// to the parent box's origin). The compositor accumulates absolute
// position itself while walking the scene tree alongside this map.
func Compute(root *Node, width, height float64) map[*Node]Rect {
	out := make(map[*Node]Rect)
	rect := Rect{X: 0, Y: 0, W: width, H: height}
	out[root] = rect
	layoutChildren(root, rect, out)
	return out
}

// layoutChildren lays out n's children inside n's own already-resolved
// box, writing each child's parent-local rectangle into out and
// recursing into grandchildren.
func layoutChildren(n *Node, box Rect, out map[*Node]Rect) {
	st := n.Style
	contentX := st.PaddingLeft
	contentY := st.PaddingTop
	contentW := box.W - st.PaddingLeft - st.PaddingRight
	contentH := box.H - st.PaddingTop - st.PaddingBottom
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	var inFlow, absolute []*Node
	for _, c := range n.Children {
		if c.Style.Position == PositionAbsolute {
			absolute = append(absolute, c)
		} else {
			inFlow = append(inFlow, c)
		}
	}

	horizontal := st.FlexDirection == Row
	mainSize, crossSize := contentW, contentH
	if !horizontal {
		mainSize, crossSize = contentH, contentW
	}

	items := make([]flexItem, 0, len(inFlow))
	var totalBase, totalGrow, totalShrink float64
	for _, c := range inFlow {
		it := newFlexItem(c, contentW, contentH, horizontal)
		items = append(items, it)
		totalBase += it.mainOuter
		totalGrow += c.Style.FlexGrow
		totalShrink += c.Style.FlexShrink * it.mainOuter
	}

	free := mainSize - totalBase
	mainSizes := make([]float64, len(items))
	for i, it := range items {
		s := it.mainOuter
		switch {
		case free > 0 && totalGrow > 0:
			s += free * (it.node.Style.FlexGrow / totalGrow)
		case free < 0 && totalShrink > 0:
			share := it.node.Style.FlexShrink * it.mainOuter / totalShrink
			s += free * share
			if s < 0 {
				s = 0
			}
		}
		mainSizes[i] = s
	}

	var usedMain float64
	for _, s := range mainSizes {
		usedMain += s
	}
	remaining := mainSize - usedMain
	if remaining < 0 {
		remaining = 0
	}

	var cursor, gap float64
	count := len(items)
	switch st.Justify {
	case JustifyCenter:
		cursor = remaining / 2
	case JustifyEnd:
		cursor = remaining
	case JustifySpaceBetween:
		if count > 1 {
			gap = remaining / float64(count-1)
		}
	case JustifySpaceAround:
		if count > 0 {
			gap = remaining / float64(count)
			cursor = gap / 2
		}
	}

	for i, it := range items {
		mOuter := mainSizes[i]
		mInner := mOuter - it.marginMainStart - it.marginMainEnd
		if mInner < 0 {
			mInner = 0
		}

		cOuter := it.crossOuter
		align := it.node.Style.Align
		if align == AlignStretch && it.crossAuto {
			cOuter = crossSize
		}
		cInner := cOuter - it.marginCrossStart - it.marginCrossEnd
		if cInner < 0 {
			cInner = 0
		}

		var crossPos float64
		switch align {
		case AlignCenter:
			crossPos = (crossSize-cOuter)/2 + it.marginCrossStart
		case AlignEnd:
			crossPos = crossSize - cOuter + it.marginCrossStart
		default:
			crossPos = it.marginCrossStart
		}

		mainPos := cursor + it.marginMainStart

		var rect Rect
		if horizontal {
			rect = Rect{X: contentX + mainPos, Y: contentY + crossPos, W: mInner, H: cInner}
		} else {
			rect = Rect{X: contentX + crossPos, Y: contentY + mainPos, W: cInner, H: mInner}
		}
		out[it.node] = rect
		layoutChildren(it.node, rect, out)

		cursor += mOuter + gap
	}

	for _, c := range absolute {
		rect := absoluteRect(c, box)
		out[c] = rect
		layoutChildren(c, rect, out)
	}
}

type flexItem struct {
	node                                           *Node
	mainOuter, crossOuter                          float64
	marginMainStart, marginMainEnd                 float64
	marginCrossStart, marginCrossEnd               float64
	crossAuto                                      bool
}

func newFlexItem(n *Node, availW, availH float64, horizontal bool) flexItem {
	w, h, wAuto, hAuto := sizeNode(n, availW, availH)
	st := n.Style

	it := flexItem{node: n}
	if horizontal {
		it.mainOuter = w + st.MarginLeft + st.MarginRight
		it.crossOuter = h + st.MarginTop + st.MarginBottom
		it.marginMainStart, it.marginMainEnd = st.MarginLeft, st.MarginRight
		it.marginCrossStart, it.marginCrossEnd = st.MarginTop, st.MarginBottom
		it.crossAuto = hAuto
	} else {
		it.mainOuter = h + st.MarginTop + st.MarginBottom
		it.crossOuter = w + st.MarginLeft + st.MarginRight
		it.marginMainStart, it.marginMainEnd = st.MarginTop, st.MarginBottom
		it.marginCrossStart, it.marginCrossEnd = st.MarginLeft, st.MarginRight
		it.crossAuto = wAuto
	}
	_ = wAuto
	return it
}

// sizeNode resolves a node's own content-box width/height against the
// reference axes available to it. A definite dimension wins outright; an
// auto dimension on a leaf (Measure != nil) is resolved by measuring; an
// auto dimension on a container with children is approximated by summing
// (main axis) or taking the max (cross axis) of the children's own base
// sizes — a single forward pass, not the fully recursive intrinsic-size
// computation a browser engine would do, which is an accepted
// simplification for a headless, single-pass renderer.
func sizeNode(n *Node, availW, availH float64) (w, h float64, wAuto, hAuto bool) {
	st := n.Style
	rw, wOK := st.Width.Resolve(availW)
	rh, hOK := st.Height.Resolve(availH)
	wAuto = !wOK
	hAuto = !hOK

	switch {
	case wOK && hOK:
		// both definite
	case n.Measure != nil:
		aw := rw
		mode := Definite
		if !wOK {
			mode = MaxContent
			aw = availW
		}
		mw, mh := n.Measure(Constraint{AvailableWidth: aw, Mode: mode})
		if !wOK {
			rw = mw
		}
		if !hOK {
			rh = mh
		}
	case len(n.Children) > 0:
		rw, rh = intrinsicContainerSize(n, availW, availH, rw, rh, wOK, hOK)
	default:
		if !wOK {
			rw = 0
		}
		if !hOK {
			rh = 0
		}
	}

	if st.AspectRatio > 0 {
		switch {
		case wAuto && !hAuto:
			rw = rh * st.AspectRatio
		case hAuto && !wAuto:
			rh = rw / st.AspectRatio
		}
	}
	return rw, rh, wAuto, hAuto
}

func intrinsicContainerSize(n *Node, availW, availH, rw, rh float64, wOK, hOK bool) (float64, float64) {
	horizontal := n.Style.FlexDirection == Row
	var mainSum, crossMax float64
	for _, c := range n.Children {
		if c.Style.Position == PositionAbsolute {
			continue
		}
		cw, ch, _, _ := sizeNode(c, availW, availH)
		cw += c.Style.MarginLeft + c.Style.MarginRight
		ch += c.Style.MarginTop + c.Style.MarginBottom
		if horizontal {
			mainSum += cw
			if ch > crossMax {
				crossMax = ch
			}
		} else {
			mainSum += ch
			if cw > crossMax {
				crossMax = cw
			}
		}
	}
	pad := n.Style
	if horizontal {
		if !wOK {
			rw = mainSum + pad.PaddingLeft + pad.PaddingRight
		}
		if !hOK {
			rh = crossMax + pad.PaddingTop + pad.PaddingBottom
		}
	} else {
		if !hOK {
			rh = mainSum + pad.PaddingTop + pad.PaddingBottom
		}
		if !wOK {
			rw = crossMax + pad.PaddingLeft + pad.PaddingRight
		}
	}
	return rw, rh
}

// absoluteRect resolves a position:absolute node's rect from its inset
// edges against the containing box; any side left Auto falls back to
// the node's own resolved size anchored at the opposite edge (or 0,0 if
// no edges are set at all).
func absoluteRect(n *Node, box Rect) Rect {
	w, h, _, _ := sizeNode(n, box.W, box.H)
	inset := n.Style.Inset

	x, haveLeft := resolveInset(inset.Left, box.W)
	right, haveRight := resolveInset(inset.Right, box.W)
	y, haveTop := resolveInset(inset.Top, box.H)
	bottom, haveBottom := resolveInset(inset.Bottom, box.H)

	switch {
	case haveLeft && haveRight:
		w = box.W - x - right
	case haveRight && !haveLeft:
		x = box.W - right - w
	case !haveLeft && !haveRight:
		x = 0
	}
	switch {
	case haveTop && haveBottom:
		h = box.H - y - bottom
	case haveBottom && !haveTop:
		y = box.H - bottom - h
	case !haveTop && !haveBottom:
		y = 0
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func resolveInset(d *Dimension, reference float64) (float64, bool) {
	if d == nil {
		return 0, false
	}
	v, ok := d.Resolve(reference)
	return v, ok
}
