package vec

import "math"

// The functions below never modify their arguments and never dispatch;
// each returns a fresh vector with no observers.

func Add(a, b *Vec) *Vec { return New(a.x+b.x, a.y+b.y) }

func Sub(a, b *Vec) *Vec { return New(a.x-b.x, a.y-b.y) }

func AddK(a *Vec, k float64) *Vec { return New(a.x+k, a.y+k) }

func SubK(a *Vec, k float64) *Vec { return New(a.x-k, a.y-k) }

func MulK(a *Vec, k float64) *Vec { return New(a.x*k, a.y*k) }

func DivK(a *Vec, k float64) *Vec { return New(a.x/k, a.y/k) }

func Dot(a, b *Vec) float64 { return a.x*b.x + a.y*b.y }

func Cross(a, b *Vec) float64 { return a.x*b.y - a.y*b.x }

// Normalized returns a unit vector with the direction of a.
func Normalized(a *Vec) *Vec {
	mag := a.Mag()
	return New(a.x/mag, a.y/mag)
}

func Lerp(a, b *Vec, k float64) *Vec {
	return New(a.x+(b.x-a.x)*k, a.y+(b.y-a.y)*k)
}

func AngleBetween(a, b *Vec) float64 {
	return math.Atan2(Cross(a, b), Dot(a, b))
}

func Rotate(a *Vec, angle float64) *Vec {
	sin, cos := math.Sincos(angle)
	return New(a.x*cos-a.y*sin, a.x*sin+a.y*cos)
}

func Limit(a *Vec, max float64) *Vec {
	if a.MagSq() > max*max {
		return MulK(Normalized(a), max)
	}
	return Copy(a)
}

func SetMag(a *Vec, mag float64) *Vec {
	return MulK(Normalized(a), mag)
}

func Min(a, b *Vec) *Vec { return New(math.Min(a.x, b.x), math.Min(a.y, b.y)) }

func Max(a, b *Vec) *Vec { return New(math.Max(a.x, b.x), math.Max(a.y, b.y)) }

func Ceil(a *Vec) *Vec { return New(math.Ceil(a.x), math.Ceil(a.y)) }

func Floor(a *Vec) *Vec { return New(math.Floor(a.x), math.Floor(a.y)) }

func Round(a *Vec) *Vec { return New(roundHalfUp(a.x), roundHalfUp(a.y)) }

// Reflect mirrors a across the line whose normal is normal.
func Reflect(a, normal *Vec) *Vec {
	n := Normalized(normal)
	return Sub(a, MulK(n, Dot(a, n)*2))
}

// Projected returns the projection of a onto onto.
func Projected(a, onto *Vec) *Vec {
	unit := Normalized(onto)
	return MulK(unit, Dot(a, unit))
}

// Equal reports whether a and b match component-wise within epsilon.
// An epsilon of zero or less compares exactly.
func Equal(a, b *Vec, epsilon float64) bool {
	if epsilon > 0 {
		return math.Abs(a.x-b.x) <= epsilon && math.Abs(a.y-b.y) <= epsilon
	}
	return a.x == b.x && a.y == b.y
}
