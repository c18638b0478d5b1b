package geom

import "fmt"

// Triangle is an isosceles (or equilateral) triangle with a horizontal
// base. Position is the middle of the base; the peak sits Height above it,
// or below it when UpsideDown is set.
type Triangle struct {
	Position   Vector2
	BaseWidth  float64
	Height     float64
	UpsideDown bool
}

// NewTriangle creates a triangle. No validation is performed.
func NewTriangle(position Vector2, baseWidth, height float64, upsideDown bool) Triangle {
	return Triangle{
		Position:   position,
		BaseWidth:  baseWidth,
		Height:     height,
		UpsideDown: upsideDown,
	}
}

// ZeroTriangle returns a new triangle with all-zero geometry, pointing up.
func ZeroTriangle() Triangle {
	return Triangle{Position: ZeroVector()}
}

// BottomLeft returns the left end of the base.
func (t Triangle) BottomLeft() Vector2 {
	p := t.Position.Clone()
	p.Subtract(Vector2{X: t.BaseWidth / 2})
	return p
}

// BottomRight returns the right end of the base.
func (t Triangle) BottomRight() Vector2 {
	p := t.Position.Clone()
	p.Add(Vector2{X: t.BaseWidth / 2})
	return p
}

// Peak returns the apex opposite the base.
func (t Triangle) Peak() Vector2 {
	p := t.Position.Clone()
	if t.UpsideDown {
		p.Add(Vector2{Y: t.Height})
	} else {
		p.Subtract(Vector2{Y: t.Height})
	}
	return p
}

// Points returns the corners in drawing order: bottom-left, bottom-right, peak.
func (t Triangle) Points() []Vector2 {
	return []Vector2{t.BottomLeft(), t.BottomRight(), t.Peak()}
}

// Bounds returns the axis-aligned bounding box of the triangle.
func (t Triangle) Bounds() Rectangle {
	top := t.Position.Y - t.Height
	if t.UpsideDown {
		top = t.Position.Y
	}
	return Rectangle{
		X:      t.BottomLeft().X,
		Y:      top,
		Width:  t.BaseWidth,
		Height: t.Height,
	}
}

func (t Triangle) String() string {
	return fmt.Sprintf("[Triangle @ %s - %sx%s, UpsideDown=%t]",
		t.Position, FormatFloat(t.BaseWidth), FormatFloat(t.Height), t.UpsideDown)
}
