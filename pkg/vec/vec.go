// Package vec provides a mutable 2D vector that notifies observers after
// every mutation.
//
// A Vec is always handled through a *Vec obtained from New, Zero or Copy.
// Copying a Vec by value shares its observers with the copy; use Copy
// instead.
//
// Degenerate math is not guarded: dividing by zero or normalizing a zero
// vector yields NaN or Inf components.
package vec

import (
	"fmt"
	"math"
)

// Vec is a 2D point or direction.
type Vec struct {
	x, y    float64
	changes *changeSet
}

// New returns the vector (x, y).
func New(x, y float64) *Vec {
	return &Vec{x: x, y: y}
}

// Zero returns the vector (0, 0).
func Zero() *Vec {
	return &Vec{}
}

// Copy returns a new vector with the coordinates of v and no observers.
func Copy(v *Vec) *Vec {
	return New(v.x, v.y)
}

func (v *Vec) X() float64 { return v.x }
func (v *Vec) Y() float64 { return v.y }

// XY returns both components.
func (v *Vec) XY() (float64, float64) { return v.x, v.y }

// Array returns the components as [x, y].
func (v *Vec) Array() [2]float64 { return [2]float64{v.x, v.y} }

func (v *Vec) MagSq() float64 { return v.x*v.x + v.y*v.y }

func (v *Vec) Mag() float64 { return math.Sqrt(v.MagSq()) }

// Angle returns the direction of v in radians.
func (v *Vec) Angle() float64 { return math.Atan2(v.y, v.x) }

// Perpendicular returns v rotated 90 degrees counter-clockwise as a new vector.
func (v *Vec) Perpendicular() *Vec { return New(-v.y, v.x) }

func (v *Vec) Dot(a *Vec) float64 { return v.x*a.x + v.y*a.y }

// Cross returns the z component of the 3D cross product.
func (v *Vec) Cross(a *Vec) float64 { return v.x*a.y - v.y*a.x }

// AngleBetween returns the signed angle from v to a in radians.
func (v *Vec) AngleBetween(a *Vec) float64 {
	return math.Atan2(v.Cross(a), v.Dot(a))
}

func (v *Vec) Copy() *Vec  { return New(v.x, v.y) }
func (v *Vec) Clone() *Vec { return v.Copy() }

// Equals reports exact component equality.
func (v *Vec) Equals(a *Vec) bool { return Equal(v, a, 0) }

// ApproxEquals reports whether both components differ by at most epsilon.
// An epsilon of zero or less means exact equality.
func (v *Vec) ApproxEquals(a *Vec, epsilon float64) bool { return Equal(v, a, epsilon) }

func (v *Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.x, v.y)
}

// Mutators. Each commits the new components and then dispatches exactly once.

func (v *Vec) SetX(x float64) *Vec {
	v.x = x
	v.changed()
	return v
}

func (v *Vec) SetY(y float64) *Vec {
	v.y = y
	v.changed()
	return v
}

func (v *Vec) Set(x, y float64) *Vec {
	v.x, v.y = x, y
	v.changed()
	return v
}

// To copies the coordinates of a into v.
func (v *Vec) To(a *Vec) *Vec {
	return v.Set(a.x, a.y)
}

func (v *Vec) Zero() *Vec {
	return v.Set(0, 0)
}

func (v *Vec) Add(a *Vec) *Vec {
	return v.Set(v.x+a.x, v.y+a.y)
}

func (v *Vec) Sub(a *Vec) *Vec {
	return v.Set(v.x-a.x, v.y-a.y)
}

// AddK adds k to both components.
func (v *Vec) AddK(k float64) *Vec {
	return v.Set(v.x+k, v.y+k)
}

func (v *Vec) SubK(k float64) *Vec {
	return v.Set(v.x-k, v.y-k)
}

func (v *Vec) MulK(k float64) *Vec {
	return v.Set(v.x*k, v.y*k)
}

func (v *Vec) DivK(k float64) *Vec {
	return v.Set(v.x/k, v.y/k)
}

// Lerp moves v toward a by the factor k.
func (v *Vec) Lerp(a *Vec, k float64) *Vec {
	return v.Set(v.x+(a.x-v.x)*k, v.y+(a.y-v.y)*k)
}

func (v *Vec) Negate() *Vec {
	return v.Set(-v.x, -v.y)
}

func (v *Vec) Normalize() *Vec {
	mag := v.Mag()
	return v.Set(v.x/mag, v.y/mag)
}

// Rotate turns v by angle radians.
func (v *Vec) Rotate(angle float64) *Vec {
	sin, cos := math.Sincos(angle)
	return v.Set(v.x*cos-v.y*sin, v.x*sin+v.y*cos)
}

// Limit shortens v to max if it is longer. A vector already within the
// limit is left untouched and nothing is dispatched.
func (v *Vec) Limit(max float64) *Vec {
	magSq := v.MagSq()
	if magSq <= max*max {
		return v
	}
	factor := max / math.Sqrt(magSq)
	return v.Set(v.x*factor, v.y*factor)
}

func (v *Vec) SetMag(mag float64) *Vec {
	factor := mag / v.Mag()
	return v.Set(v.x*factor, v.y*factor)
}

// ToMin keeps the smaller of each component of v and a.
func (v *Vec) ToMin(a *Vec) *Vec {
	return v.Set(math.Min(v.x, a.x), math.Min(v.y, a.y))
}

// ToMax keeps the larger of each component of v and a.
func (v *Vec) ToMax(a *Vec) *Vec {
	return v.Set(math.Max(v.x, a.x), math.Max(v.y, a.y))
}

func (v *Vec) Floor() *Vec {
	return v.Set(math.Floor(v.x), math.Floor(v.y))
}

func (v *Vec) Ceil() *Vec {
	return v.Set(math.Ceil(v.x), math.Ceil(v.y))
}

// Round rounds half up, so -2.5 becomes -2.
func (v *Vec) Round() *Vec {
	return v.Set(roundHalfUp(v.x), roundHalfUp(v.y))
}

func (v *Vec) ToPerpendicular() *Vec {
	return v.Set(-v.y, v.x)
}

// Reflect mirrors v across the line whose normal is normal.
func (v *Vec) Reflect(normal *Vec) *Vec {
	r := Reflect(v, normal)
	return v.Set(r.x, r.y)
}

// Project replaces v with its projection onto onto.
func (v *Vec) Project(onto *Vec) *Vec {
	p := Projected(v, onto)
	return v.Set(p.x, p.y)
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
