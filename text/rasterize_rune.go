package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterizeRune renders a single character to a coverage mask at the given
// point size, resolving the rune's glyph via the face's own cmap, which is
// what a codepoint-keyed glyph cache needs.
func RasterizeRune(source *FontSource, r rune, ppem float64) *GlyphImage {
	xparsed, ok := source.Parsed().(*ximageParsedFont)
	if !ok {
		return nil
	}

	opts := &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	}
	otFace, err := opentype.NewFace(xparsed.font, opts)
	if err != nil {
		return nil
	}
	defer func() {
		_ = otFace.Close()
	}()

	bounds, advance, ok := otFace.GlyphBounds(r)
	if !ok {
		return &GlyphImage{Advance: fixedToFloat64(advance)}
	}

	minX := int(bounds.Min.X) >> 6
	minY := int(bounds.Min.Y) >> 6
	maxX := int(bounds.Max.X+63) >> 6
	maxY := int(bounds.Max.Y+63) >> 6
	rect := image.Rect(minX, minY, maxX, maxY)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return &GlyphImage{Advance: fixedToFloat64(advance)}
	}

	mask := image.NewAlpha(rect)
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: otFace,
		Dot:  fixed.Point26_6{},
	}
	drawer.DrawString(string(r))

	return &GlyphImage{
		Mask:    mask,
		Bounds:  rect,
		Advance: fixedToFloat64(advance),
	}
}
