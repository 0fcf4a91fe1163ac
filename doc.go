// Package gg is a headless, deterministic 2D scene renderer.
//
// # Overview
//
// gg walks a tree of SceneNodes — view/rect/circle/ellipse/image/path/text —
// computes a flexbox-style layout, and composites the result into a single
// premultiplied RGBA8 pixmap. Rendering is single-threaded and has no
// suspension points; the only asynchronous boundary anywhere in the package
// is the advisory hardware probe (see the hardware subpackage), which has no
// effect on pixel output.
//
// # Quick start
//
//	import "github.com/JohnEsleyer/ubevid"
//
//	store := gg.NewStore()
//	_ = store.LoadFont("body", fontBytes)
//	_ = store.LoadAsset("logo", pngBytes)
//
// # Architecture
//
//   - Root package: color, path, stroke, gradient, mask, and the font/asset
//     store shared by every renderer stage.
//   - scenedoc: JSON scene-document decoding into SceneNode trees.
//   - layout: the bespoke flexbox-style box model and Layout Bridge.
//   - compositor: the per-node render state machine (transform composition,
//     layering, draw order, clipping).
//   - text: font parsing, shaping, word-wrap, and glyph caching.
//   - internal/{blend,filter,raster,stroke,image,color}: the compositor's
//     pixel-level building blocks.
//   - hardware: the async GPU capability probe.
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down; angles in
// degrees in style properties, radians in path math.
//
// # Invariants
//
// Every pixel buffer the package produces or consumes is premultiplied
// RGBA8 in sRGB encoding. The scene tree is strictly a tree — no node is
// shared — except that a node's mask field may reference a SceneNode
// disjoint from the children tree.
package gg
