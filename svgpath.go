package gg

import (
	"strconv"
)

// ParseSVGPath parses an SVG path data string into a Path, supporting
// move, line, horizontal/vertical line, cubic, quadratic, and close-path
// segments, both absolute and relative. Unsupported segment kinds (arcs,
// shorthand curves) are ignored rather than aborting the parse, since a
// document with one exotic segment should still render everything else.
// A string with no path tokens at all (empty, or only unrecognized
// characters) yields nil; a string whose first move command lacks its
// coordinates yields an empty path.
func ParseSVGPath(d string) *Path {
	toks := tokenizeSVGPath(d)
	if len(toks) == 0 {
		return nil
	}

	p := NewPath()
	var cx, cy float64   // current point
	var sx, sy float64   // subpath start, for ClosePath
	i := 0

	readNum := func() (float64, bool) {
		if i >= len(toks) || !toks[i].isNum {
			return 0, false
		}
		v := toks[i].num
		i++
		return v, true
	}

	for i < len(toks) {
		if !toks[i].isCmd {
			// Stray number with no command context; skip it.
			i++
			continue
		}
		cmd := toks[i].cmd
		abs := cmd >= 'A' && cmd <= 'Z'
		i++

		switch lower(cmd) {
		case 'm':
			x, ok1 := readNum()
			y, ok2 := readNum()
			if !ok1 || !ok2 {
				return p
			}
			if !abs {
				x, y = cx+x, cy+y
			}
			p.MoveTo(x, y)
			cx, cy = x, y
			sx, sy = x, y
			// Subsequent coordinate pairs under an 'm' are implicit 'l'.
			for i+1 < len(toks) && toks[i].isNum && toks[i+1].isNum {
				lx, _ := readNum()
				ly, _ := readNum()
				if !abs {
					lx, ly = cx+lx, cy+ly
				}
				p.LineTo(lx, ly)
				cx, cy = lx, ly
			}
		case 'l':
			for i+1 < len(toks) && toks[i].isNum && toks[i+1].isNum {
				x, _ := readNum()
				y, _ := readNum()
				if !abs {
					x, y = cx+x, cy+y
				}
				p.LineTo(x, y)
				cx, cy = x, y
			}
		case 'h':
			for i < len(toks) && toks[i].isNum {
				x, _ := readNum()
				if !abs {
					x = cx + x
				}
				p.LineTo(x, cy)
				cx = x
			}
		case 'v':
			for i < len(toks) && toks[i].isNum {
				y, _ := readNum()
				if !abs {
					y = cy + y
				}
				p.LineTo(cx, y)
				cy = y
			}
		case 'c':
			for i+5 < len(toks) && allNum(toks[i:i+6]) {
				x1, _ := readNum()
				y1, _ := readNum()
				x2, _ := readNum()
				y2, _ := readNum()
				x, _ := readNum()
				y, _ := readNum()
				if !abs {
					x1, y1 = cx+x1, cy+y1
					x2, y2 = cx+x2, cy+y2
					x, y = cx+x, cy+y
				}
				p.CubicTo(x1, y1, x2, y2, x, y)
				cx, cy = x, y
			}
		case 'q':
			for i+3 < len(toks) && allNum(toks[i:i+4]) {
				x1, _ := readNum()
				y1, _ := readNum()
				x, _ := readNum()
				y, _ := readNum()
				if !abs {
					x1, y1 = cx+x1, cy+y1
					x, y = cx+x, cy+y
				}
				p.QuadraticTo(x1, y1, x, y)
				cx, cy = x, y
			}
		case 'z':
			p.Close()
			cx, cy = sx, sy
		default:
			// Unsupported segment kind (arcs, shorthand curves): skip its
			// numeric arguments up to the next command token.
			for i < len(toks) && toks[i].isNum {
				i++
			}
		}
	}
	return p
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func allNum(toks []svgToken) bool {
	for _, t := range toks {
		if !t.isNum {
			return false
		}
	}
	return true
}

type svgToken struct {
	isCmd bool
	cmd   byte
	isNum bool
	num   float64
}

// tokenizeSVGPath splits an SVG path data string into command letters and
// numbers, tolerating SVG's loose separators (commas, missing whitespace
// before a signed number, a second decimal point starting a new number, so
// "1.5.5" reads as 1.5 and .5).
func tokenizeSVGPath(d string) []svgToken {
	var toks []svgToken
	n := len(d)
	i := 0
	isCmdByte := func(c byte) bool {
		switch c {
		case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q', 'Z', 'z',
			'A', 'a', 'S', 's', 'T', 't':
			return true
		}
		return false
	}
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
			i++
		case isCmdByte(c):
			toks = append(toks, svgToken{isCmd: true, cmd: c})
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			i++
			sawDot := d[start] == '.'
			for i < n {
				ch := d[i]
				if ch >= '0' && ch <= '9' {
					i++
					continue
				}
				if ch == '.' && !sawDot {
					sawDot = true
					i++
					continue
				}
				if (ch == 'e' || ch == 'E') && i+1 < n {
					i++
					if i < n && (d[i] == '+' || d[i] == '-') {
						i++
					}
					continue
				}
				break
			}
			v, err := strconv.ParseFloat(d[start:i], 64)
			if err != nil {
				continue
			}
			toks = append(toks, svgToken{isNum: true, num: v})
		default:
			i++
		}
	}
	return toks
}
