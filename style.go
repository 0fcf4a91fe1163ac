package gg

import (
	"strconv"
	"strings"

	"github.com/JohnEsleyer/ubevid/internal/blend"
)

// Dimension is a layout-affecting size that is either an absolute point
// value or a fraction of the parent's corresponding axis.
type Dimension struct {
	Value   float64
	Percent bool
}

// Resolve converts the dimension to points given the reference axis length.
func (d Dimension) Resolve(reference float64) float64 {
	if d.Percent {
		return d.Value * reference
	}
	return d.Value
}

// ParseDimension accepts either a numeric point value or a string ending in
// "%" (converted to a 0..1 fraction). Anything else resolves to zero so a
// malformed document still renders.
func ParseDimension(v any) Dimension {
	switch t := v.(type) {
	case float64:
		return Dimension{Value: t}
	case int:
		return Dimension{Value: float64(t)}
	case string:
		s := strings.TrimSpace(t)
		if strings.HasSuffix(s, "%") {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil {
				return Dimension{}
			}
			return Dimension{Value: n / 100, Percent: true}
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Dimension{}
		}
		return Dimension{Value: n}
	default:
		return Dimension{}
	}
}

// blendModeNames maps the document's blend-mode vocabulary onto the
// compositor's internal blend table. Unknown names fall back to
// source-over so an unrecognized value never breaks rendering.
var blendModeNames = map[string]blend.BlendMode{
	"source-over":  blend.BlendSourceOver,
	"screen":       blend.BlendScreen,
	"overlay":      blend.BlendOverlay,
	"darken":       blend.BlendDarken,
	"lighten":      blend.BlendLighten,
	"color-dodge":  blend.BlendColorDodge,
	"color-burn":   blend.BlendColorBurn,
	"hard-light":   blend.BlendHardLight,
	"soft-light":   blend.BlendSoftLight,
	"difference":   blend.BlendDifference,
	"exclusion":    blend.BlendExclusion,
	"multiply":     blend.BlendMultiply,
	"hue":          blend.BlendHue,
	"saturation":   blend.BlendSaturation,
	"color":        blend.BlendColor,
	"luminosity":   blend.BlendLuminosity,
	"plus":         blend.BlendPlus,
	"xor":          blend.BlendXor,
}

// BlendModeFromName resolves a blend-mode name to its internal
// representation, defaulting to source-over for anything unrecognized.
func BlendModeFromName(name string) blend.BlendMode {
	if mode, ok := blendModeNames[name]; ok {
		return mode
	}
	return blend.BlendSourceOver
}

// ObjectFit controls how an image is scaled to fill its layout rectangle.
type ObjectFit int

const (
	ObjectFitFill ObjectFit = iota
	ObjectFitContain
	ObjectFitCover
)

// ObjectFitFromName resolves an object-fit name, defaulting to fill.
func ObjectFitFromName(name string) ObjectFit {
	switch name {
	case "contain":
		return ObjectFitContain
	case "cover":
		return ObjectFitCover
	default:
		return ObjectFitFill
	}
}

// MaskMode selects how a mask child's rendered pixmap is reduced to an
// 8-bit coverage mask.
type MaskMode int

const (
	MaskModeAlpha MaskMode = iota
	MaskModeLuminance
)

// MaskModeFromName resolves a mask-mode name, defaulting to alpha.
func MaskModeFromName(name string) MaskMode {
	if name == "luminance" {
		return MaskModeLuminance
	}
	return MaskModeAlpha
}

// GradientKind distinguishes the two gradient shapes the compositor
// understands.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop is one color stop in a gradient. Position is in 0..1; when a
// gradient has fewer explicit positions than colors, stops are spaced
// evenly over the remaining range.
type GradientStop struct {
	Color    RGBA
	Position float64
	HasPos   bool
}

// Gradient describes a background gradient fill.
type Gradient struct {
	Kind  GradientKind
	Stops []GradientStop
	// AngleDeg is the linear-gradient axis, CSS convention: 0 points up,
	// measured clockwise.
	AngleDeg float64
}

// ResolvedStops returns the gradient's stops with every position filled in,
// spacing unspecified positions evenly between their neighbors.
func (g Gradient) ResolvedStops() []GradientStop {
	stops := make([]GradientStop, len(g.Stops))
	copy(stops, g.Stops)
	if len(stops) == 0 {
		return stops
	}
	if !stops[0].HasPos {
		stops[0].Position = 0
		stops[0].HasPos = true
	}
	last := len(stops) - 1
	if !stops[last].HasPos {
		stops[last].Position = 1
		stops[last].HasPos = true
	}
	i := 0
	for i < len(stops) {
		if stops[i].HasPos {
			i++
			continue
		}
		// Find the next stop with an explicit position and spread evenly.
		j := i
		for j < len(stops) && !stops[j].HasPos {
			j++
		}
		start := stops[i-1].Position
		end := stops[j].Position
		span := j - i + 1
		for k := i; k < j; k++ {
			t := float64(k-i+1) / float64(span)
			stops[k].Position = start + (end-start)*t
			stops[k].HasPos = true
		}
		i = j
	}
	return stops
}

// CornerRadii holds a per-corner border radius in points, already clamped
// by the caller to min(corner, w/2, h/2).
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformRadii returns a CornerRadii with all four corners equal to r.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Inset describes positioned-element offsets from each edge of the
// containing box; a nil pointer field means "not set".
type Inset struct {
	Top, Left, Right, Bottom *float64
}

// Shadow describes a drop shadow rendered behind a node's fill.
type Shadow struct {
	Color   RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// FilterSet holds the scalar color-matrix filter inputs plus blur radius.
// Grayscale, Invert, and Sepia are mix amounts (0 is identity). Brightness,
// Contrast, and Saturation are multiplicative factors (1 is identity) — a
// node's resolved style always populates these three with 1 when the
// document omits them, so a zero-value FilterSet{} is only meaningful as
// "nothing requested yet", not as a rendered node's actual filter set.
type FilterSet struct {
	Grayscale  float64
	Brightness float64
	Contrast   float64
	Saturation float64
	Invert     float64
	Sepia      float64
	BlurRadius float64
}

// IsIdentity reports whether the filter set has no visible effect and the
// compositor can skip allocating a filter layer.
func (f FilterSet) IsIdentity() bool {
	return f.Grayscale == 0 &&
		(f.Brightness == 0 || f.Brightness == 1) &&
		(f.Contrast == 0 || f.Contrast == 1) &&
		(f.Saturation == 0 || f.Saturation == 1) &&
		f.Invert == 0 && f.Sepia == 0 && f.BlurRadius == 0
}

// Transform describes the node-local transform inputs, applied in the
// fixed order translate -> rotate -> skew -> scale -> translate-to-origin,
// pivoted on the node's layout-rectangle center.
type Transform struct {
	RotateDeg float64
	Scale     float64
	SkewXDeg  float64
	SkewYDeg  float64
}

// IsIdentity reports whether the transform has no visible effect.
func (t Transform) IsIdentity() bool {
	return t.RotateDeg == 0 && (t.Scale == 0 || t.Scale == 1) &&
		t.SkewXDeg == 0 && t.SkewYDeg == 0
}

// StrokeStyle pairs a paint color with the geometric stroke parameters
// already modeled by Stroke (width, cap, join, miter limit, dash).
type StrokeStyle struct {
	Color  RGBA
	Stroke Stroke
}

// TextStyle groups the text-only style fields.
type TextStyle struct {
	Color         RGBA
	FontFamily    string
	FontSize      float64
	Align         TextAlign
	LineHeight    float64
	LetterSpacing float64
}

// TextAlign selects horizontal alignment of wrapped text lines.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextAlignFromName resolves a text-align name, defaulting to left.
func TextAlignFromName(name string) TextAlign {
	switch name {
	case "center":
		return TextAlignCenter
	case "right":
		return TextAlignRight
	default:
		return TextAlignLeft
	}
}

// Style is the fully parsed, render-ready form of a node's StyleConfig.
// Fields use Go zero values as their natural defaults wherever the
// document's defaults are already zero (opacity is the one exception,
// defaulted to 1 by the scene decoder since zero would hide every node).
type Style struct {
	Background     RGBA
	HasBackground  bool
	Gradient       *Gradient
	Radii          CornerRadii
	Border         StrokeStyle
	HasBorder      bool
	Opacity        float64
	BlendMode      blend.BlendMode
	MaskMode       MaskMode
	MaskInverted   bool
	Stroke         StrokeStyle
	HasStroke      bool
	Filters        FilterSet
	Shadow         *Shadow
	Text           TextStyle
	ObjectFit      ObjectFit
	Transform      Transform
}
