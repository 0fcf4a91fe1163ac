package compositor

import (
	"testing"

	"github.com/JohnEsleyer/ubevid"
	istroke "github.com/JohnEsleyer/ubevid/internal/stroke"
)

func TestStrokeOutlineOpenLine(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	outline := strokeOutline(p, gg.DefaultStroke().WithWidth(2), 0.25)
	if len(outline) == 0 {
		t.Fatal("expected at least one outline subpath")
	}
	for _, sp := range outline {
		if len(sp) < 3 {
			t.Errorf("outline subpath has %d points, want a closed polygon", len(sp))
		}
	}
}

func TestStrokeOutlineClosedRectangle(t *testing.T) {
	p := gg.NewPath()
	p.Rectangle(0, 0, 10, 10)

	outline := strokeOutline(p, gg.DefaultStroke().WithWidth(1), 0.25)
	if len(outline) == 0 {
		t.Fatal("expected outline subpaths for a stroked rectangle")
	}
}

func TestStrokeOutlineDashedLineSplitsIntoSegments(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	stroke := gg.DefaultStroke().WithWidth(2).WithDashPattern(5, 5)
	outline := strokeOutline(p, stroke, 0.25)

	// 100 units / (5 on + 5 off) = 10 dashes, each its own outline subpath.
	if len(outline) < 5 {
		t.Errorf("len(outline) = %d, want multiple dash segments", len(outline))
	}
}

func TestStrokeOutlineSolidLineIsSingleSegment(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	outline := strokeOutline(p, gg.DefaultStroke().WithWidth(2), 0.25)
	if len(outline) != 1 {
		t.Errorf("len(outline) = %d, want 1 for an undashed straight line", len(outline))
	}
}

func TestApplyDashNilDashReturnsWholeSubpath(t *testing.T) {
	pts := []gg.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	out := applyDash(pts, nil)
	if len(out) != 1 || len(out[0]) != 2 {
		t.Errorf("applyDash with nil dash should pass the subpath through unchanged")
	}
}

func TestToStrokeCapAndJoin(t *testing.T) {
	if toStrokeCap(gg.LineCapRound) != istroke.LineCapRound {
		t.Error("LineCapRound did not map to istroke.LineCapRound")
	}
	if toStrokeJoin(gg.LineJoinBevel) != istroke.LineJoinBevel {
		t.Error("LineJoinBevel did not map to istroke.LineJoinBevel")
	}
}
