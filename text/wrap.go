package text

import "strings"

// WrappedChar is one character of a wrapped line together with the
// horizontal advance it consumed (glyph advance plus letter spacing).
type WrappedChar struct {
	Rune    rune
	Advance float64
}

// WrappedLine is one line produced by ComputeTextLines.
type WrappedLine struct {
	Chars []WrappedChar
	Width float64
}

// String reassembles the line's runes back into text.
func (l WrappedLine) String() string {
	var b strings.Builder
	for _, c := range l.Chars {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// ComputeTextLines greedily wraps text into lines under maxWidth, measuring
// each character's advance via the font source at the given size.
// maxWidth <= 0 disables wrapping (a single logical line per input line).
//
// The algorithm processes one explicit newline-delimited line at a time,
// accumulating whole words (a leading space included with every word but
// the first on a line) until adding the next word would overflow the
// current line, at which point the current line is flushed and the new
// word starts the next one, with its leading space stripped.
func ComputeTextLines(parsed ParsedFont, text string, fontSize, letterSpacing, maxWidth float64) []WrappedLine {
	wrapWidth := maxWidth
	if wrapWidth <= 0 {
		wrapWidth = 1e18
	}

	var lines []WrappedLine

	for _, rawLine := range strings.Split(text, "\n") {
		current := WrappedLine{}
		words := strings.Split(rawLine, " ")
		for i, word := range words {
			wordWithSpace := word
			if i != 0 {
				wordWithSpace = " " + word
			}

			var wordChars []WrappedChar
			var wordWidth float64
			for _, r := range wordWithSpace {
				adv := charAdvance(parsed, r, fontSize) + letterSpacing
				wordChars = append(wordChars, WrappedChar{Rune: r, Advance: adv})
				wordWidth += adv
			}

			if current.Width+wordWidth > wrapWidth && len(current.Chars) > 0 {
				lines = append(lines, current)
				trimmed := wordChars
				if i > 0 && len(trimmed) > 0 {
					trimmed = trimmed[1:]
				}
				var tw float64
				for _, c := range trimmed {
					tw += c.Advance
				}
				current = WrappedLine{Chars: trimmed, Width: tw}
			} else {
				current.Chars = append(current.Chars, wordChars...)
				current.Width += wordWidth
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// charAdvance resolves a rune's advance width at the given point size via
// the font's glyph index and per-glyph advance tables.
func charAdvance(parsed ParsedFont, r rune, size float64) float64 {
	gid := parsed.GlyphIndex(r)
	return parsed.GlyphAdvance(gid, size)
}

// ComputeTextLinesForSource wraps text using a FontSource's parsed font,
// bypassing Face entirely since layout only needs glyph indices and
// advances, not rendering.
func ComputeTextLinesForSource(source *FontSource, text string, fontSize, letterSpacing, maxWidth float64) []WrappedLine {
	return ComputeTextLines(source.Parsed(), text, fontSize, letterSpacing, maxWidth)
}
