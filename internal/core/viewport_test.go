package core

import (
	"math"
	"testing"
)

func TestViewportLetterbox(t *testing.T) {
	tests := []struct {
		name     string
		area     Rect
		wantCols int
		wantRows int
		wantOffX int
		wantOffY int
	}{
		// 800x600 with 2:1 cells needs cols = rows * 2 * 4/3
		{"wide terminal pads sides", NewRect(0, 0, 200, 30), 80, 30, 60, 0},
		{"tall terminal pads top", NewRect(0, 0, 80, 60), 80, 30, 0, 15},
		{"area offset is respected", NewRect(0, 1, 80, 30), 80, 30, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(800, 600, tc.area)
			if v.Cols != tc.wantCols || v.Rows != tc.wantRows {
				t.Errorf("size = %dx%d, expected %dx%d", v.Cols, v.Rows, tc.wantCols, tc.wantRows)
			}
			if v.OffsetX != tc.wantOffX || v.OffsetY != tc.wantOffY {
				t.Errorf("offset = (%d, %d), expected (%d, %d)", v.OffsetX, v.OffsetY, tc.wantOffX, tc.wantOffY)
			}
		})
	}
}

func TestViewportDegenerateArea(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 0, 0))
	if v.Cols < 1 || v.Rows < 1 {
		t.Errorf("degenerate area should still produce a 1x1 viewport, got %dx%d", v.Cols, v.Rows)
	}
	p, _ := v.ToField(0, 0)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Error("ToField should never produce NaN")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 80, 30))

	col, row := v.ToCell(V(400, 300))
	if col != 40 || row != 15 {
		t.Errorf("ToCell(centre) = (%d, %d), expected (40, 15)", col, row)
	}

	p, inside := v.ToField(col, row)
	if !inside {
		t.Fatal("centre cell should be inside the field")
	}
	if math.Abs(p.X-405) > 1e-9 || math.Abs(p.Y-310) > 1e-9 {
		t.Errorf("ToField(40, 15) = %v, expected cell centre (405, 310)", p)
	}
}

func TestViewportToFieldOutside(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 200, 30))

	p, inside := v.ToField(10, 5)
	if inside {
		t.Error("cell in the letterbox padding should be reported outside")
	}
	if p.X != 0 {
		t.Errorf("outside point should clamp to the field edge, got %v", p)
	}
}

func TestViewportToCellRectMinimumSize(t *testing.T) {
	v := NewViewport(800, 600, NewRect(0, 0, 80, 30))

	r := v.ToCellRect(SquareAt(V(100, 100), 2))
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny boxes should cover at least one cell, got %+v", r)
	}

	r = v.ToCellRect(NewRectF(0, 0, 40, 40))
	if r.W != 4 || r.H != 2 {
		t.Errorf("ToCellRect(40x40) = %dx%d, expected 4x2", r.W, r.H)
	}
}
