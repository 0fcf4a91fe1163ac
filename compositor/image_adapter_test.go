package compositor

import (
	"testing"

	"github.com/JohnEsleyer/ubevid"
)

func solidPixmap(w, h int, c gg.RGBA) *gg.Pixmap {
	pm := gg.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}

func TestLocalImageBrushFillStretches(t *testing.T) {
	img := solidPixmap(2, 4, gg.Red)
	brush := localImageBrush(img, 20, 20, gg.ObjectFitFill)

	c := brush.ColorAt(10, 10)
	if c.R < 0.9 {
		t.Errorf("center = %+v, want near red", c)
	}
}

func TestLocalImageBrushContainLetterboxesTransparent(t *testing.T) {
	img := solidPixmap(10, 10, gg.Red)
	// A box twice as wide as it is tall: contain should letterbox the
	// extra horizontal space, leaving it transparent.
	brush := localImageBrush(img, 20, 10, gg.ObjectFitContain)

	edge := brush.ColorAt(1, 5)
	if edge.A != 0 {
		t.Errorf("letterboxed edge = %+v, want fully transparent", edge)
	}
	center := brush.ColorAt(10, 5)
	if center.R < 0.9 {
		t.Errorf("center = %+v, want near red", center)
	}
}

func TestImageBrushFollowsTransform(t *testing.T) {
	img := solidPixmap(4, 4, gg.Blue)
	m := gg.Translate(50, 50)
	brush := imageBrush(img, 4, 4, gg.ObjectFitFill, m)

	c := brush.ColorAt(52, 52)
	if c.B < 0.9 {
		t.Errorf("translated sample = %+v, want near blue", c)
	}
}
