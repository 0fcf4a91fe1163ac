package gg

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/JohnEsleyer/ubevid/compositor"
	"github.com/JohnEsleyer/ubevid/hardware"
	"github.com/JohnEsleyer/ubevid/scenedoc"
)

// Engine is the public entry point: it owns a Store and renders scene
// documents against it. An Engine is safe for concurrent use except that
// Render calls on the same Engine serialize against each other — the
// renderer has no internal parallelism to share, so a second concurrent
// call is rejected outright rather than queued.
type Engine struct {
	store     *Store
	rendering atomic.Bool
}

// New creates an Engine with an empty asset store.
func New() *Engine {
	return &Engine{store: NewStore()}
}

// LoadFont decodes TTF/OTF font data and stores it under name for later use
// by text nodes.
func (e *Engine) LoadFont(name string, data []byte) error {
	return e.store.LoadFont(name, data)
}

// LoadAsset decodes an encoded image and stores it under name for later use
// by image nodes.
func (e *Engine) LoadAsset(name string, data []byte) error {
	return e.store.LoadAsset(name, data)
}

// LoadAssetRaw stores pre-decoded straight-alpha RGBA8 pixels under name.
func (e *Engine) LoadAssetRaw(name string, width, height int, pixels []byte) error {
	return e.store.LoadAssetRaw(name, width, height, pixels)
}

// GetHardwareInfo probes for a GPU adapter, bounded by ctx. It never fails:
// a probe failure or cancellation reports the CPU fallback.
func (e *Engine) GetHardwareInfo(ctx context.Context) hardware.Info {
	return hardware.Probe(ctx)
}

// MeasurePath returns the arc length of an SVG path-data string.
func (e *Engine) MeasurePath(d string) float64 {
	return MeasurePath(ParseSVGPath(d))
}

// Render decodes a scene document and composites it into a premultiplied
// RGBA8 pixel buffer, row-major, width*height*4 bytes long.
//
// Only one Render may run on an Engine at a time; a concurrent call returns
// ErrRenderInProgress instead of blocking.
func (e *Engine) Render(sceneJSON []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gg: render: %w (%dx%d)", ErrInvalidDimensions, width, height)
	}
	if !e.rendering.CompareAndSwap(false, true) {
		return nil, ErrRenderInProgress
	}
	defer e.rendering.Store(false)

	root, err := scenedoc.Decode(sceneJSON)
	if err != nil {
		return nil, &DecodeError{Kind: "scene", Err: err}
	}

	pm := compositor.Render(root, e.store, width, height)
	return pm.Data(), nil
}
