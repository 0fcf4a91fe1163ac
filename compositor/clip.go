package compositor

import (
	"github.com/JohnEsleyer/ubevid"
	"github.com/JohnEsleyer/ubevid/internal/raster"
)

// rasterizePathCoverage fills path (already in dst's coordinate space) into
// a full-canvas coverage buffer, the same antialiased byte-per-pixel shape
// fillPath's coverageMask produces. Used to build a clip mask from a node's
// own geometry and to feed RenderMask's alpha/luminance reduction.
func rasterizePathCoverage(path *gg.Path, width, height int, tolerance float64) *coverageMask {
	edges := toRasterEdges(path.FlattenSubpaths(tolerance))
	cov := newCoverageMask(width, height)
	r := raster.NewRasterizer(width, height)
	r.FillAAFromEdges(cov, edges, raster.FillRuleNonZero, raster.RGBA{A: 1})
	return cov
}

// applyCoverageAsMask scales every pixel of layer by cov's coverage byte,
// clipping layer's content to path's interior in place.
func applyCoverageAsMask(layer *gg.Pixmap, cov *coverageMask) {
	data := layer.Data()
	for i, v := range cov.data {
		if v == 255 {
			continue
		}
		idx := i * 4
		data[idx] = clampByteU(data[idx], v)
		data[idx+1] = clampByteU(data[idx+1], v)
		data[idx+2] = clampByteU(data[idx+2], v)
		data[idx+3] = clampByteU(data[idx+3], v)
	}
}

// applyMaskToLayer scales every pixel of layer by mask's 8-bit value,
// implementing §4.9's "multiply alpha (and premultiplied color) by the
// mask value" rule.
func applyMaskToLayer(layer *gg.Pixmap, mask *gg.Mask) {
	data := layer.Data()
	w, h := layer.Width(), layer.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := mask.At(x, y)
			if v == 255 {
				continue
			}
			idx := (y*w + x) * 4
			data[idx] = clampByteU(data[idx], v)
			data[idx+1] = clampByteU(data[idx+1], v)
			data[idx+2] = clampByteU(data[idx+2], v)
			data[idx+3] = clampByteU(data[idx+3], v)
		}
	}
}

func clampByteU(b uint8, scale uint8) uint8 {
	return uint8(uint32(b) * uint32(scale) / 255)
}
