package layout

// MeasureMode tells a leaf's MeasureFunc how to interpret the available
// width it is given: a hard constraint, or a request for the content's
// natural minimum/maximum extent.
type MeasureMode int

const (
	Definite MeasureMode = iota
	MinContent
	MaxContent
)

// Constraint is the input to a leaf's MeasureFunc.
type Constraint struct {
	AvailableWidth float64
	Mode           MeasureMode
}

// MeasureFunc computes a leaf's intrinsic content size given a width
// constraint. Go closures capture the leaf's own style and font data by
// reference, so this is simply a function value, not a trait object.
type MeasureFunc func(Constraint) (w, h float64)

// Node is one entry in the layout tree: a style plus, for leaves with
// content-driven sizing (text, in practice), a measure callback.
type Node struct {
	Style    Style
	Measure  MeasureFunc
	Children []*Node
}

// Rect is an absolute-within-parent layout rectangle.
type Rect struct {
	X, Y, W, H float64
}
