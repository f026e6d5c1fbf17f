package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of axis types a Position or Area can be built over.
type Number interface {
	constraints.Signed | constraints.Float
}

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// rem returns the truncated remainder of v/m for any Number.
func rem[T Number](v, m T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(v), float64(m)))
	}
	return v - (v/m)*m
}

// SafeMod returns v mod m, always in [0, m) for positive m.
func SafeMod[T Number](v, m T) T {
	return rem(rem(v, m)+m, m)
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Square returns v*v.
func Square[T Number](v T) T { return v * v }

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsBetween reports whether lo <= v <= hi.
func IsBetween[T Number](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// MinMax returns a and b ordered ascending.
func MinMax[T Number](a, b T) (T, T) {
	if a < b {
		return a, b
	}
	return b, a
}

// Gcd returns the greatest common divisor of |a| and |b|.
func Gcd[T constraints.Signed](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of |a| and |b|. Lcm(0, 0) is 0.
func Lcm[T constraints.Signed](a, b T) T {
	a, b = Abs(a), Abs(b)
	g := Gcd(a, b)
	if g == 0 {
		return 0
	}
	return a / g * b
}
