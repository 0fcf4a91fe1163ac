package filter

import "github.com/JohnEsleyer/ubevid"

// ApplyFilterSet runs the fixed-order color-matrix sequence over src into
// dst: saturation+grayscale, contrast, brightness, invert, sepia. Unlike
// ColorMatrixFilter, which composes an arbitrary 4x5 matrix, this walks
// the sequence as successive per-pixel lerps, matching the order a
// document author expects filters to visually stack. src and dst may be
// the same pixmap since each output pixel depends only on the
// corresponding input pixel.
func ApplyFilterSet(src, dst *gg.Pixmap, fs gg.FilterSet, bounds Rect) {
	if src == nil || dst == nil || fs.IsIdentity() {
		return
	}

	minX := clampInt(int(bounds.MinX), 0, src.Width())
	maxX := clampInt(int(bounds.MaxX), 0, src.Width())
	minY := clampInt(int(bounds.MinY), 0, src.Height())
	maxY := clampInt(int(bounds.MaxY), 0, src.Height())
	if maxX > dst.Width() {
		maxX = dst.Width()
	}
	if maxY > dst.Height() {
		maxY = dst.Height()
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	srcData := src.Data()
	dstData := dst.Data()
	srcWidth := src.Width()
	dstWidth := dst.Width()

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			srcIdx := (y*srcWidth + x) * 4
			dstIdx := (y*dstWidth + x) * 4

			a := srcData[srcIdx+3]
			if a == 0 {
				dstData[dstIdx+0] = 0
				dstData[dstIdx+1] = 0
				dstData[dstIdx+2] = 0
				dstData[dstIdx+3] = 0
				continue
			}

			// Un-premultiply to straight-alpha [0,1].
			af := float64(a) / 255
			r := float64(srcData[srcIdx+0]) / float64(a)
			g := float64(srcData[srcIdx+1]) / float64(a)
			b := float64(srcData[srcIdx+2]) / float64(a)

			r, g, b = applyFilterSetPixel(r, g, b, fs)

			// Re-premultiply by the original alpha and clamp.
			dstData[dstIdx+0] = uint8(clamp255f(r*af*255 + 0.5))
			dstData[dstIdx+1] = uint8(clamp255f(g*af*255 + 0.5))
			dstData[dstIdx+2] = uint8(clamp255f(b*af*255 + 0.5))
			dstData[dstIdx+3] = a
		}
	}
}

func applyFilterSetPixel(r, g, b float64, fs gg.FilterSet) (float64, float64, float64) {
	// 1. Saturation + grayscale: mix toward luminance by (1-sat), then by gs.
	lum := 0.2126*r + 0.7152*g + 0.0722*b
	sat := fs.Saturation
	if sat == 0 {
		sat = 1
	}
	r = lum + (r-lum)*sat
	g = lum + (g-lum)*sat
	b = lum + (b-lum)*sat
	if fs.Grayscale != 0 {
		r = r + (lum-r)*fs.Grayscale
		g = g + (lum-g)*fs.Grayscale
		b = b + (lum-b)*fs.Grayscale
	}

	// 2. Contrast.
	ct := fs.Contrast
	if ct == 0 {
		ct = 1
	}
	if ct != 1 {
		r = (r-0.5)*ct + 0.5
		g = (g-0.5)*ct + 0.5
		b = (b-0.5)*ct + 0.5
	}

	// 3. Brightness.
	bright := fs.Brightness
	if bright == 0 {
		bright = 1
	}
	if bright != 1 {
		r *= bright
		g *= bright
		b *= bright
	}

	// 4. Invert.
	if fs.Invert != 0 {
		r = r + (1-r-r)*fs.Invert
		g = g + (1-g-g)*fs.Invert
		b = b + (1-b-b)*fs.Invert
	}

	// 5. Sepia.
	if fs.Sepia != 0 {
		sr := 0.393*r + 0.769*g + 0.189*b
		sg := 0.349*r + 0.686*g + 0.168*b
		sb := 0.272*r + 0.534*g + 0.131*b
		r = r + (sr-r)*fs.Sepia
		g = g + (sg-g)*fs.Sepia
		b = b + (sb-b)*fs.Sepia
	}

	return r, g, b
}
