package compositor

import (
	"strconv"

	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/blend"
	"github.com/JohnEsleyer/ubevid/layout"
)

// resolveStyle turns a scene document's raw style map into the two
// render-ready forms every downstream component reads from: paint-side
// gg.Style and layout-side layout.Style. Every key is optional; a missing
// or malformed key resolves to its documented default rather than
// failing the parse, mirroring gg.ParseDimension's own substitute-safe-
// defaults behavior.
func resolveStyle(raw map[string]any) (gg.Style, layout.Style) {
	style := gg.Style{Opacity: 1, BlendMode: blend.BlendSourceOver}
	lstyle := layout.DefaultStyle()

	if raw == nil {
		return style, lstyle
	}

	resolveVisuals(raw, &style)
	resolveBorderAndStroke(raw, &style)
	resolveFilters(raw, &style)
	resolveShadow(raw, &style)
	resolveText(raw, &style)
	resolveTransform(raw, &style)
	if fit, ok := raw["objectFit"].(string); ok {
		style.ObjectFit = gg.ObjectFitFromName(fit)
	}

	resolveLayout(raw, &lstyle)

	return style, lstyle
}

func resolveVisuals(raw map[string]any, style *gg.Style) {
	if bg, ok := raw["backgroundColor"].(string); ok {
		style.Background = gg.Hex(bg)
		style.HasBackground = true
	}
	if g, ok := raw["gradient"].(map[string]any); ok {
		style.Gradient = resolveGradient(g)
	}
	if r, ok := raw["borderRadius"]; ok {
		style.Radii = resolveRadii(r)
	}
	if op, ok := numberOf(raw["opacity"]); ok {
		style.Opacity = op
	}
	if bm, ok := raw["blendMode"].(string); ok {
		style.BlendMode = gg.BlendModeFromName(bm)
	}
	if m, ok := raw["mask"].(map[string]any); ok {
		if mode, ok := m["mode"].(string); ok {
			style.MaskMode = gg.MaskModeFromName(mode)
		}
		if inv, ok := m["inverted"].(bool); ok {
			style.MaskInverted = inv
		}
	}
}

func resolveGradient(g map[string]any) *gg.Gradient {
	grad := &gg.Gradient{}
	if t, ok := g["type"].(string); ok && t == "radial" {
		grad.Kind = gg.GradientRadial
	}
	if a, ok := numberOf(g["angle"]); ok {
		grad.AngleDeg = a
	}

	colors, _ := g["colors"].([]any)
	positions, _ := g["stops"].([]any)
	for i, c := range colors {
		cs, ok := c.(string)
		if !ok {
			continue
		}
		stop := gg.GradientStop{Color: gg.Hex(cs)}
		if i < len(positions) {
			if p, ok := numberOf(positions[i]); ok {
				stop.Position = p
				stop.HasPos = true
			}
		}
		grad.Stops = append(grad.Stops, stop)
	}
	return grad
}

func resolveRadii(v any) gg.CornerRadii {
	switch t := v.(type) {
	case map[string]any:
		radii := gg.CornerRadii{}
		if n, ok := numberOf(t["topLeft"]); ok {
			radii.TopLeft = n
		}
		if n, ok := numberOf(t["topRight"]); ok {
			radii.TopRight = n
		}
		if n, ok := numberOf(t["bottomRight"]); ok {
			radii.BottomRight = n
		}
		if n, ok := numberOf(t["bottomLeft"]); ok {
			radii.BottomLeft = n
		}
		return radii
	default:
		if n, ok := numberOf(v); ok {
			return gg.UniformRadii(n)
		}
		return gg.CornerRadii{}
	}
}

// resolveBorderAndStroke maps the document's single border/line vocabulary
// onto both Style.Border and Style.Stroke: the data model names "border
// color and width" and, separately, line-cap/line-join/dash as "Stroke"
// properties, but defines no second color/width pair for a path stroke —
// a node's border and its path stroke share one paint. A path-tag node
// with no border set stays unstroked; a rect/view with border set also
// gets its path geometry stroked, which is a no-op for a view (which
// usually has no fill/stroke geometry path of its own) and the intended
// border-box look for a rect/circle/ellipse.
func resolveBorderAndStroke(raw map[string]any, style *gg.Style) {
	_, hasColor := raw["borderColor"]
	_, hasWidth := raw["borderWidth"]
	if !hasColor && !hasWidth {
		return
	}

	s := gg.DefaultStroke()
	if w, ok := numberOf(raw["borderWidth"]); ok {
		s.Width = w
	}
	if c, ok := raw["lineCap"].(string); ok {
		s.Cap = lineCapFromName(c)
	}
	if j, ok := raw["lineJoin"].(string); ok {
		s.Join = lineJoinFromName(j)
	}
	if arr, ok := raw["dashArray"].([]any); ok && len(arr) > 0 {
		lengths := make([]float64, 0, len(arr))
		for _, v := range arr {
			if n, ok := numberOf(v); ok {
				lengths = append(lengths, n)
			}
		}
		s.Dash = gg.NewDash(lengths...)
	}
	if off, ok := numberOf(raw["dashOffset"]); ok {
		s = s.WithDashOffset(off)
	}

	color := gg.Black
	if c, ok := raw["borderColor"].(string); ok {
		color = gg.Hex(c)
	}

	stroke := gg.StrokeStyle{Color: color, Stroke: s}
	style.Border = stroke
	style.HasBorder = true
	style.Stroke = stroke
	style.HasStroke = true
}

func lineCapFromName(name string) gg.LineCap {
	switch name {
	case "round":
		return gg.LineCapRound
	case "square":
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoinFromName(name string) gg.LineJoin {
	switch name {
	case "round":
		return gg.LineJoinRound
	case "bevel":
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func resolveFilters(raw map[string]any, style *gg.Style) {
	f := gg.FilterSet{Brightness: 1, Contrast: 1, Saturation: 1}
	set := false
	if n, ok := numberOf(raw["grayscale"]); ok {
		f.Grayscale = n
		set = true
	}
	if n, ok := numberOf(raw["brightness"]); ok {
		f.Brightness = n
		set = true
	}
	if n, ok := numberOf(raw["contrast"]); ok {
		f.Contrast = n
		set = true
	}
	if n, ok := numberOf(raw["saturation"]); ok {
		f.Saturation = n
		set = true
	}
	if n, ok := numberOf(raw["invert"]); ok {
		f.Invert = n
		set = true
	}
	if n, ok := numberOf(raw["sepia"]); ok {
		f.Sepia = n
		set = true
	}
	if n, ok := numberOf(raw["blurRadius"]); ok {
		f.BlurRadius = n
		set = true
	}
	if set {
		style.Filters = f
	}
}

func resolveShadow(raw map[string]any, style *gg.Style) {
	_, hasColor := raw["shadowColor"]
	_, hasBlur := raw["shadowBlur"]
	_, hasX := raw["shadowOffsetX"]
	_, hasY := raw["shadowOffsetY"]
	if !hasColor && !hasBlur && !hasX && !hasY {
		return
	}
	sh := &gg.Shadow{}
	if c, ok := raw["shadowColor"].(string); ok {
		sh.Color = gg.Hex(c)
	}
	if n, ok := numberOf(raw["shadowBlur"]); ok {
		sh.Blur = n
	}
	if n, ok := numberOf(raw["shadowOffsetX"]); ok {
		sh.OffsetX = n
	}
	if n, ok := numberOf(raw["shadowOffsetY"]); ok {
		sh.OffsetY = n
	}
	style.Shadow = sh
}

func resolveText(raw map[string]any, style *gg.Style) {
	t := gg.TextStyle{Color: gg.Black, FontSize: 16, LineHeight: 1.2}
	if c, ok := raw["color"].(string); ok {
		t.Color = gg.Hex(c)
	}
	if n, ok := numberOf(raw["fontSize"]); ok {
		t.FontSize = n
	}
	if f, ok := raw["fontFamily"].(string); ok {
		t.FontFamily = f
	}
	if a, ok := raw["textAlign"].(string); ok {
		t.Align = gg.TextAlignFromName(a)
	}
	if n, ok := numberOf(raw["lineHeight"]); ok {
		t.LineHeight = n
	}
	if n, ok := numberOf(raw["letterSpacing"]); ok {
		t.LetterSpacing = n
	}
	style.Text = t
}

func resolveTransform(raw map[string]any, style *gg.Style) {
	tr := gg.Transform{Scale: 1}
	if n, ok := numberOf(raw["rotate"]); ok {
		tr.RotateDeg = n
	}
	if n, ok := numberOf(raw["scale"]); ok {
		tr.Scale = n
	}
	if n, ok := numberOf(raw["skewX"]); ok {
		tr.SkewXDeg = n
	}
	if n, ok := numberOf(raw["skewY"]); ok {
		tr.SkewYDeg = n
	}
	style.Transform = tr
}

func resolveLayout(raw map[string]any, l *layout.Style) {
	if w, ok := raw["width"]; ok {
		l.Width = toLayoutDimension(w)
	}
	if h, ok := raw["height"]; ok {
		l.Height = toLayoutDimension(h)
	}
	if n, ok := numberOf(raw["aspectRatio"]); ok {
		l.AspectRatio = n
	}
	if n, ok := numberOf(raw["flexGrow"]); ok {
		l.FlexGrow = n
	}
	if n, ok := numberOf(raw["flexShrink"]); ok {
		l.FlexShrink = n
	}
	if d, ok := raw["flexDirection"].(string); ok && d == "column" {
		l.FlexDirection = layout.Column
	}
	if j, ok := raw["justify"].(string); ok {
		l.Justify = justifyFromName(j)
	}
	if a, ok := raw["align"].(string); ok {
		l.Align = alignFromName(a)
	}

	resolveBoxSides(raw, "margin", &l.MarginTop, &l.MarginRight, &l.MarginBottom, &l.MarginLeft)
	resolveBoxSides(raw, "padding", &l.PaddingTop, &l.PaddingRight, &l.PaddingBottom, &l.PaddingLeft)

	if p, ok := raw["position"].(string); ok && p == "absolute" {
		l.Position = layout.PositionAbsolute
	}
	if inset, ok := raw["inset"].(map[string]any); ok {
		l.Inset = resolveInset(inset)
	}
	if n, ok := numberOf(raw["zIndex"]); ok {
		l.ZIndex = int(n)
	}
	if o, ok := raw["overflow"].(string); ok && o == "hidden" {
		l.Overflow = layout.OverflowHidden
	}
}

// resolveBoxSides applies a uniform value (e.g. "margin") then lets
// per-side keys ("marginTop", ...) override it individually, per §4.7's
// "per-side overrides win over the uniform" rule.
func resolveBoxSides(raw map[string]any, prefix string, top, right, bottom, left *float64) {
	if n, ok := numberOf(raw[prefix]); ok {
		*top, *right, *bottom, *left = n, n, n, n
	}
	if n, ok := numberOf(raw[prefix+"Top"]); ok {
		*top = n
	}
	if n, ok := numberOf(raw[prefix+"Right"]); ok {
		*right = n
	}
	if n, ok := numberOf(raw[prefix+"Bottom"]); ok {
		*bottom = n
	}
	if n, ok := numberOf(raw[prefix+"Left"]); ok {
		*left = n
	}
}

func resolveInset(raw map[string]any) layout.Inset {
	var inset layout.Inset
	if n, ok := numberOf(raw["top"]); ok {
		d := layout.Pt(n)
		inset.Top = &d
	}
	if n, ok := numberOf(raw["left"]); ok {
		d := layout.Pt(n)
		inset.Left = &d
	}
	if n, ok := numberOf(raw["right"]); ok {
		d := layout.Pt(n)
		inset.Right = &d
	}
	if n, ok := numberOf(raw["bottom"]); ok {
		d := layout.Pt(n)
		inset.Bottom = &d
	}
	return inset
}

func justifyFromName(name string) layout.Justify {
	switch name {
	case "center":
		return layout.JustifyCenter
	case "end":
		return layout.JustifyEnd
	case "space-between":
		return layout.JustifySpaceBetween
	case "space-around":
		return layout.JustifySpaceAround
	default:
		return layout.JustifyStart
	}
}

func alignFromName(name string) layout.Align {
	switch name {
	case "start":
		return layout.AlignStart
	case "center":
		return layout.AlignCenter
	case "end":
		return layout.AlignEnd
	default:
		return layout.AlignStretch
	}
}

// toLayoutDimension mirrors gg.ParseDimension but returns layout.Auto()
// for the literal string "auto" (and for anything unparseable), since
// layout.Dimension distinguishes auto from a zero point value.
func toLayoutDimension(v any) layout.Dimension {
	if s, ok := v.(string); ok && s == "auto" {
		return layout.Auto()
	}
	d := gg.ParseDimension(v)
	if d.Percent {
		return layout.Dimension{Value: d.Value, Percent: true}
	}
	return layout.Pt(d.Value)
}

// numberOf accepts float64, int, or a numeric string (JSON decodes all
// document numbers as float64, but this keeps the resolver forgiving of
// hand-authored scene documents with string-typed numbers too).
func numberOf(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
