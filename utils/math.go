package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolut value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the [lo, hi] interval.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// Lerp interpolates linearly between a and b. The t parameter is not clamped,
// values outside of [0, 1] extrapolate. Lerp(a, b, 0) == a and Lerp(a, b, 1) == b
// hold exactly.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}
