package geom

import (
	"fmt"
	"math"
)

// Vector2 is a point or displacement in 2D space.
// The Y axis grows downwards, as in SVG.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a vector, rejecting NaN and infinite components.
func NewVector2(x, y float64) (Vector2, error) {
	if !isFinite(x) || !isFinite(y) {
		return Vector2{}, fmt.Errorf("%w: vector components must be finite, got (%v, %v)", ErrInvalidArgument, x, y)
	}
	return Vector2{X: x, Y: y}, nil
}

// MustVector2 is like NewVector2 but panics on invalid components.
func MustVector2(x, y float64) Vector2 {
	v, err := NewVector2(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// VectorFrom builds a vector from exactly two untyped values, such as the
// elements of a decoded YAML sequence. Only Go numeric kinds are accepted;
// strings are rejected even when they look numeric.
func VectorFrom(values ...any) (Vector2, error) {
	if len(values) != 2 {
		return Vector2{}, fmt.Errorf("%w: vector needs 2 components, got %d", ErrInvalidArgument, len(values))
	}
	x, ok := toFloat(values[0])
	if !ok {
		return Vector2{}, fmt.Errorf("%w: x component %v (%T) is not a number", ErrInvalidArgument, values[0], values[0])
	}
	y, ok := toFloat(values[1])
	if !ok {
		return Vector2{}, fmt.Errorf("%w: y component %v (%T) is not a number", ErrInvalidArgument, values[1], values[1])
	}
	return NewVector2(x, y)
}

// ZeroVector returns a new vector at the origin.
func ZeroVector() Vector2 {
	return Vector2{}
}

// Clone returns an independent copy of v.
func (v Vector2) Clone() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Add adds o to v in place.
func (v *Vector2) Add(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Subtract subtracts o from v in place.
func (v *Vector2) Subtract(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies both components by f in place.
func (v *Vector2) Scale(f float64) *Vector2 {
	v.X *= f
	v.Y *= f
	return v
}

// MultiplyComponentwise multiplies v by o component by component, in place.
func (v *Vector2) MultiplyComponentwise(o Vector2) *Vector2 {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// Multiply accepts either a number (scale) or a vector (component-wise
// product). Any other operand leaves v untouched and returns
// ErrInvalidArgument.
func (v *Vector2) Multiply(operand any) (*Vector2, error) {
	switch o := operand.(type) {
	case Vector2:
		return v.MultiplyComponentwise(o), nil
	case *Vector2:
		if o == nil {
			return v, fmt.Errorf("%w: nil vector operand", ErrInvalidArgument)
		}
		return v.MultiplyComponentwise(*o), nil
	}
	f, ok := toFloat(operand)
	if !ok || math.IsNaN(f) {
		return v, fmt.Errorf("%w: cannot multiply by %v (%T)", ErrInvalidArgument, operand, operand)
	}
	return v.Scale(f), nil
}

// Divide divides both components by s in place. Division by zero follows
// IEEE-754 and yields infinite or NaN components.
func (v *Vector2) Divide(s float64) *Vector2 {
	v.X /= s
	v.Y /= s
	return v
}

// DotProduct returns the dot product of v and o.
func (v Vector2) DotProduct(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// UnitVector returns a vector of length 1 pointing the same way as v.
// The zero vector has no direction and yields the zero vector.
func (v Vector2) UnitVector() Vector2 {
	l := v.Length()
	if l == 0 {
		return ZeroVector()
	}
	u := v.Clone()
	u.Divide(l)
	return u
}

// LimitTo returns a copy of v whose magnitude is at most maxLength.
func (v Vector2) LimitTo(maxLength float64) (Vector2, error) {
	if math.IsNaN(maxLength) || maxLength < 0 {
		return Vector2{}, fmt.Errorf("%w: limit %v must be a non-negative number", ErrInvalidArgument, maxLength)
	}
	if v.Length() <= maxLength {
		return v.Clone(), nil
	}
	u := v.UnitVector()
	u.Scale(maxLength)
	return u, nil
}

// SetTo returns a copy of v scaled to exactly length. The zero vector
// stays zero.
func (v Vector2) SetTo(length float64) (Vector2, error) {
	if math.IsNaN(length) {
		return Vector2{}, fmt.Errorf("%w: length is NaN", ErrInvalidArgument)
	}
	u := v.UnitVector()
	u.Scale(length)
	return u, nil
}

// AngleFrom returns the clockwise angle in radians, in [0, 2π), of v as
// seen from o, with 0 pointing along +Y: directly "above" o in the
// positive-Y sense is 0, to the left is π/2 and opposite is π.
func (v Vector2) AngleFrom(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	a := math.Atan2(-dx, dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// MinComponent returns the smaller of X and Y.
func (v Vector2) MinComponent() float64 {
	return math.Min(v.X, v.Y)
}

// MaxComponent returns the larger of X and Y.
func (v Vector2) MaxComponent() float64 {
	return math.Max(v.X, v.Y)
}

// MinMagnitudeComponent returns the component closest to zero, keeping
// its sign. Ties go to X.
func (v Vector2) MinMagnitudeComponent() float64 {
	if math.Abs(v.Y) < math.Abs(v.X) {
		return v.Y
	}
	return v.X
}

// MaxMagnitudeComponent returns the component furthest from zero, keeping
// its sign. Ties go to X.
func (v Vector2) MaxMagnitudeComponent() float64 {
	if math.Abs(v.Y) > math.Abs(v.X) {
		return v.Y
	}
	return v.X
}

func (v Vector2) String() string {
	return "(" + FormatFloat(v.X) + ", " + FormatFloat(v.Y) + ")"
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
