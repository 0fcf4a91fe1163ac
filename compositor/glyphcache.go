package compositor

import (
	"math"
	"sync"

	"github.com/JohnEsleyer/ubevid/text"
)

// glyphKey identifies one cached coverage mask by font, character, and
// point size rounded to a hundredth of a unit — matching sizes that
// differ only by floating-point noise should share a cache entry.
type glyphKey struct {
	font string
	char rune
	size int
}

func newGlyphKey(fontName string, r rune, size float64) glyphKey {
	return glyphKey{font: fontName, char: r, size: int(math.Round(size * 100))}
}

// glyphCache memoizes rasterized glyph coverage masks keyed by
// (font name, codepoint, size), the vocabulary the scene document speaks
// in. It grows unbounded for the life of a render and is shared across an
// entire render call so repeated characters (or repeated text nodes)
// rasterize once.
type glyphCache struct {
	mu      sync.RWMutex
	entries map[glyphKey]*text.GlyphImage
}

func newGlyphCache() *glyphCache {
	return &glyphCache{entries: make(map[glyphKey]*text.GlyphImage)}
}

// getOrRasterize returns the coverage mask for r in source at ppem,
// rasterizing and inserting it on a miss via text.RasterizeRune.
func (c *glyphCache) getOrRasterize(source *text.FontSource, r rune, ppem float64) *text.GlyphImage {
	key := newGlyphKey(source.Name(), r, ppem)

	c.mu.RLock()
	if g, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return g
	}
	c.mu.RUnlock()

	glyph := text.RasterizeRune(source, r, ppem)

	c.mu.Lock()
	c.entries[key] = glyph
	c.mu.Unlock()
	return glyph
}
