// Package text loads fonts and rasterizes individual runes for the
// compositor's text nodes.
//
// The pipeline is deliberately narrow:
//
//   - FontSource: a parsed font file, shared across an Engine's lifetime
//   - ComputeTextLinesForSource: word-wraps a string against a font at a
//     given size and available width
//   - RasterizeRune: renders a single character to a coverage mask at a
//     point size, the unit the compositor's glyph cache keys on
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	lines := text.ComputeTextLinesForSource(source, "hello world", 24, 0, 200)
//	glyph := text.RasterizeRune(source, 'H', 24)
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface. The default,
// golang.org/x/image/font/opentype, is registered under the name "ximage".
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
