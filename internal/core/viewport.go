package core

import "math"

// CellAspect is the height-to-width ratio of a terminal cell.
const CellAspect = 2.0

// Viewport maps a fixed logical play-field onto a block of screen cells.
// The field keeps its aspect ratio and is centred inside the available area
// (letterboxed), so game logic never depends on the terminal size.
type Viewport struct {
	FieldW, FieldH float64
	OffsetX        int // Left column of the scaled field
	OffsetY        int // Top row of the scaled field
	Cols, Rows     int // Size of the scaled field in cells
}

// NewViewport fits a fieldW x fieldH play-field into area.
func NewViewport(fieldW, fieldH float64, area Rect) Viewport {
	v := Viewport{FieldW: fieldW, FieldH: fieldH}
	if area.W <= 0 || area.H <= 0 || fieldW <= 0 || fieldH <= 0 {
		v.OffsetX, v.OffsetY = area.X, area.Y
		v.Cols, v.Rows = 1, 1
		return v
	}

	renderRatio := fieldW / fieldH
	screenRatio := float64(area.W) / (float64(area.H) * CellAspect)

	if screenRatio > renderRatio {
		// Screen is wider than the field: match height, pad the sides
		v.Rows = area.H
		v.Cols = int(float64(v.Rows) * CellAspect * fieldW / fieldH)
	} else {
		// Screen is taller than the field: match width, pad top and bottom
		v.Cols = area.W
		v.Rows = int(float64(v.Cols) * fieldH / fieldW / CellAspect)
	}
	v.Cols = Clamp(v.Cols, 1, area.W)
	v.Rows = Clamp(v.Rows, 1, area.H)
	v.OffsetX = area.X + (area.W-v.Cols)/2
	v.OffsetY = area.Y + (area.H-v.Rows)/2
	return v
}

// Area returns the cells covered by the play-field.
func (v Viewport) Area() Rect {
	return NewRect(v.OffsetX, v.OffsetY, v.Cols, v.Rows)
}

// ScaleX returns cells per field unit horizontally.
func (v Viewport) ScaleX() float64 {
	return float64(v.Cols) / v.FieldW
}

// ScaleY returns cells per field unit vertically.
func (v Viewport) ScaleY() float64 {
	return float64(v.Rows) / v.FieldH
}

func (v Viewport) cellX(x float64) float64 { return x * float64(v.Cols) / v.FieldW }
func (v Viewport) cellY(y float64) float64 { return y * float64(v.Rows) / v.FieldH }

// ToCell converts a field point to the cell containing it.
func (v Viewport) ToCell(p Vec) (int, int) {
	x := v.OffsetX + int(math.Floor(v.cellX(p.X)))
	y := v.OffsetY + int(math.Floor(v.cellY(p.Y)))
	return x, y
}

// ToCellF converts a field point to fractional cell coordinates.
func (v Viewport) ToCellF(p Vec) (float64, float64) {
	return float64(v.OffsetX) + v.cellX(p.X), float64(v.OffsetY) + v.cellY(p.Y)
}

// ToCellRect converts a field box to the cells it covers. Every non-empty
// box covers at least one cell so small entities stay visible.
func (v Viewport) ToCellRect(r RectF) Rect {
	x0 := int(math.Floor(v.cellX(r.X)))
	y0 := int(math.Floor(v.cellY(r.Y)))
	x1 := int(math.Ceil(v.cellX(r.Right())))
	y1 := int(math.Ceil(v.cellY(r.Bottom())))
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(v.OffsetX+x0, v.OffsetY+y0, w, h)
}

// Contains reports whether the cell lies inside the scaled play-field.
func (v Viewport) Contains(col, row int) bool {
	return v.Area().Contains(col, row)
}

// ToField converts a cell to the field point at its centre.
// The boolean is false when the cell lies in the letterbox padding.
func (v Viewport) ToField(col, row int) (Vec, bool) {
	inside := v.Contains(col, row)
	cx := ClampF(float64(col-v.OffsetX)+0.5, 0, float64(v.Cols))
	cy := ClampF(float64(row-v.OffsetY)+0.5, 0, float64(v.Rows))
	return Vec{X: cx * v.FieldW / float64(v.Cols), Y: cy * v.FieldH / float64(v.Rows)}, inside
}

// ScaleRel converts a relative cell movement to field units.
func (v Viewport) ScaleRel(dCols, dRows int) Vec {
	return Vec{X: float64(dCols) * v.FieldW / float64(v.Cols), Y: float64(dRows) * v.FieldH / float64(v.Rows)}
}
