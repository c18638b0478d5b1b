package geom

import "fmt"

// Rectangle is an axis-aligned box described by its top-left corner and
// its extent. Width and Height may be negative; nothing is clamped.
type Rectangle struct {
	X, Y          float64 // Top-left corner position
	Width, Height float64
}

// NewRectangle creates a new rectangle with the given position and dimensions.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// ZeroRect returns a new rectangle with every field set to zero.
func ZeroRect() Rectangle {
	return Rectangle{}
}

// Top returns the y-coordinate of the top edge.
func (r Rectangle) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

func (r Rectangle) TopLeft() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

func (r Rectangle) TopRight() Vector2 {
	return Vector2{X: r.Right(), Y: r.Y}
}

func (r Rectangle) BottomLeft() Vector2 {
	return Vector2{X: r.X, Y: r.Bottom()}
}

func (r Rectangle) BottomRight() Vector2 {
	return Vector2{X: r.Right(), Y: r.Bottom()}
}

// Centre returns the centre point of the rectangle.
func (r Rectangle) Centre() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the extent of the rectangle as a vector.
func (r Rectangle) Size() Vector2 {
	return Vector2{X: r.Width, Y: r.Height}
}

// Edge and corner setters move the named edge or corner and keep the
// opposite one where it was, adjusting Width and Height to match.

// SetTop moves the top edge to y, keeping the bottom edge fixed.
func (r *Rectangle) SetTop(y float64) {
	bottom := r.Bottom()
	r.Y = y
	r.Height = bottom - y
}

// SetBottom moves the bottom edge to y, keeping the top edge fixed.
func (r *Rectangle) SetBottom(y float64) {
	r.Height = y - r.Y
}

// SetLeft moves the left edge to x, keeping the right edge fixed.
func (r *Rectangle) SetLeft(x float64) {
	right := r.Right()
	r.X = x
	r.Width = right - x
}

// SetRight moves the right edge to x, keeping the left edge fixed.
func (r *Rectangle) SetRight(x float64) {
	r.Width = x - r.X
}

// SetTopLeft moves the top-left corner to p; the bottom-right corner stays.
func (r *Rectangle) SetTopLeft(p Vector2) {
	r.SetLeft(p.X)
	r.SetTop(p.Y)
}

// SetTopRight moves the top-right corner to p; the bottom-left corner stays.
func (r *Rectangle) SetTopRight(p Vector2) {
	r.SetRight(p.X)
	r.SetTop(p.Y)
}

// SetBottomLeft moves the bottom-left corner to p; the top-right corner stays.
func (r *Rectangle) SetBottomLeft(p Vector2) {
	r.SetLeft(p.X)
	r.SetBottom(p.Y)
}

// SetBottomRight moves the bottom-right corner to p; the top-left corner stays.
func (r *Rectangle) SetBottomRight(p Vector2) {
	r.SetRight(p.X)
	r.SetBottom(p.Y)
}

// SetSize changes the extent, keeping the top-left corner fixed.
func (r *Rectangle) SetSize(size Vector2) {
	r.Width = size.X
	r.Height = size.Y
}

// SetCentre translates the rectangle so its centre lands on p.
func (r *Rectangle) SetCentre(p Vector2) {
	r.X = p.X - r.Width/2
	r.Y = p.Y - r.Height/2
}

// MoveBy translates the rectangle by v in place.
func (r *Rectangle) MoveBy(v Vector2) *Rectangle {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Overlaps reports whether r and other share any point. Rectangles that
// only touch along an edge or at a corner overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	// No overlap if one rect is strictly above, below, left or right of the other
	if r.Top() > other.Bottom() || r.Bottom() < other.Top() {
		return false
	}
	if r.Left() > other.Right() || r.Right() < other.Left() {
		return false
	}
	return true
}

// ContainsPoint reports whether v lies inside r. Points on the boundary
// are inside.
func (r Rectangle) ContainsPoint(v Vector2) bool {
	return v.X >= r.X && v.Y >= r.Y && v.X <= r.Right() && v.Y <= r.Bottom()
}

// IsInside reports whether r lies entirely within other, edges included.
func (r Rectangle) IsInside(other Rectangle) bool {
	return r.Top() >= other.Top() &&
		r.Bottom() <= other.Bottom() &&
		r.Left() >= other.Left() &&
		r.Right() <= other.Right()
}

// Clone returns an independent copy of r.
func (r Rectangle) Clone() Rectangle {
	return Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[Rectangle @ (%s, %s) %s x %s]",
		FormatFloat(r.X), FormatFloat(r.Y), FormatFloat(r.Width), FormatFloat(r.Height))
}
