package gg

// BuildPrimitivePath constructs the vector path for a node that has no
// explicit `d` attribute. circle/ellipse nodes get an oval inscribed in
// the layout rectangle (0,0,w,h); every other tag gets a rectangle with
// the node's per-corner border radii. The path is always closed.
func BuildPrimitivePath(tag string, w, h float64, radii CornerRadii) *Path {
	b := BuildPath()
	switch tag {
	case "circle", "ellipse":
		b.Ellipse(w/2, h/2, w/2, h/2)
	default:
		b.RoundRectCorners(0, 0, w, h, radii)
	}
	return b.Build()
}

// BuildNodePath resolves a node's geometry: if d is non-empty it is parsed
// as an SVG path string, otherwise the tag's implicit primitive shape is
// used. An empty or unparsable d falls back to the implicit primitive so
// a node with a malformed path attribute still has geometry to work with.
func BuildNodePath(tag, d string, w, h float64, radii CornerRadii) *Path {
	if d != "" {
		if p := ParseSVGPath(d); p != nil && len(p.Elements()) > 0 {
			return p
		}
	}
	return BuildPrimitivePath(tag, w, h, radii)
}
