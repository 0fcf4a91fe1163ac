package compositor

import (
	"math"

	"github.com/JohnEsleyer/ubevid"
)

// imageBrush maps an image onto a node's w x h local box under fit, then
// wraps it the same way gradientBrush does: the node's transform rotates
// with the image by inverse-mapping the absolute sample point back to
// local box space before delegating.
func imageBrush(pm *gg.Pixmap, w, h float64, fit gg.ObjectFit, m gg.Matrix) gg.Brush {
	local := localImageBrush(pm, w, h, fit)
	inv := m.Invert()
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		lp := inv.TransformPoint(gg.Point{X: x, Y: y})
		return local.ColorAt(lp.X, lp.Y)
	})
}

// localImageBrush samples pm with bilinear interpolation, scaled and
// centered into the w x h box per fit: fill stretches each axis
// independently, contain scales uniformly to stay fully inside the box,
// cover scales uniformly to fully cover it (cropping whichever axis
// overflows).
func localImageBrush(pm *gg.Pixmap, w, h float64, fit gg.ObjectFit) gg.Brush {
	iw, ih := float64(pm.Width()), float64(pm.Height())
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return gg.NewCustomBrush(func(float64, float64) gg.RGBA { return gg.RGBA{} })
	}

	var sx, sy float64
	switch fit {
	case gg.ObjectFitContain:
		s := math.Min(w/iw, h/ih)
		sx, sy = s, s
	case gg.ObjectFitCover:
		s := math.Max(w/iw, h/ih)
		sx, sy = s, s
	default:
		sx, sy = w/iw, h/ih
	}

	drawW, drawH := iw*sx, ih*sy
	ox, oy := (w-drawW)/2, (h-drawH)/2

	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		ix := (x - ox) / sx
		iy := (y - oy) / sy
		if ix < 0 || iy < 0 || ix >= iw || iy >= ih {
			return gg.RGBA{}
		}
		return bilinearSample(pm, ix, iy)
	})
}

func bilinearSample(pm *gg.Pixmap, x, y float64) gg.RGBA {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)

	c00 := safePixel(pm, x0, y0)
	c10 := safePixel(pm, x0+1, y0)
	c01 := safePixel(pm, x0, y0+1)
	c11 := safePixel(pm, x0+1, y0+1)

	top := lerpRGBA(c00, c10, fx)
	bot := lerpRGBA(c01, c11, fx)
	return lerpRGBA(top, bot, fy)
}

func lerpRGBA(a, b gg.RGBA, t float64) gg.RGBA {
	return gg.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func safePixel(pm *gg.Pixmap, x, y int) gg.RGBA {
	if x < 0 || y < 0 || x >= pm.Width() || y >= pm.Height() {
		return gg.RGBA{}
	}
	return pm.GetPixel(x, y)
}
