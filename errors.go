package gg

import "errors"

// Sentinel errors returned by the Engine and Store. Callers should use
// errors.Is rather than comparing strings.
var (
	// ErrEmptyFontData is returned when LoadFont is given a zero-length
	// byte slice.
	ErrEmptyFontData = errors.New("gg: empty font data")

	// ErrEmptyAssetData is returned when LoadAsset is given a zero-length
	// byte slice.
	ErrEmptyAssetData = errors.New("gg: empty asset data")

	// ErrUnknownAsset names a scene document reference to an asset name
	// that was never loaded into the Store. Render does not return it: a
	// node naming an unloaded asset is skipped when drawn.
	ErrUnknownAsset = errors.New("gg: unknown asset")

	// ErrUnknownFont names a scene document reference to a font name that
	// was never loaded into the Store. Render does not return it: a text
	// node naming an unloaded font is skipped when drawn.
	ErrUnknownFont = errors.New("gg: unknown font")

	// ErrInvalidDimensions is returned when a render or asset call is
	// given a non-positive width or height.
	ErrInvalidDimensions = errors.New("gg: invalid dimensions")

	// ErrRenderInProgress is returned when Render is called concurrently
	// on the same Engine.
	ErrRenderInProgress = errors.New("gg: render already in progress")
)

// DecodeError wraps a failure to decode font, image, or scene-document
// bytes, keeping the original cause available through errors.Unwrap.
type DecodeError struct {
	Kind string // "font", "asset", or "scene"
	Name string // the asset/font name, or "" for a scene document
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return "gg: decode " + e.Kind + ": " + e.Err.Error()
	}
	return "gg: decode " + e.Kind + " " + e.Name + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
