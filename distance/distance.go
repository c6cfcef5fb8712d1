package distance

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float calculates the Euclidean distance between two float vectors.
// Assumes vectors are the same length (caller's responsibility).
func Float[T constraints.Float](a, b []T) float64 {
	return math.Sqrt(SquaredFloat(a, b))
}

// SquaredFloat calculates the squared Euclidean distance between two float vectors.
func SquaredFloat[T constraints.Float](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// Unsigned calculates the Euclidean distance between two unsigned integer vectors.
func Unsigned[T constraints.Unsigned](a, b []T) float64 {
	return math.Sqrt(SquaredUnsigned(a, b))
}

// SquaredUnsigned calculates the squared Euclidean distance between two unsigned integer vectors.
func SquaredUnsigned[T constraints.Unsigned](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(AbsDiffUnsigned(a[i], b[i]))
		sum += d * d
	}
	return sum
}

// Signed calculates the Euclidean distance between two signed integer vectors.
func Signed[T constraints.Signed](a, b []T) float64 {
	return math.Sqrt(SquaredSigned(a, b))
}

// SquaredSigned calculates the squared Euclidean distance between two signed integer vectors.
func SquaredSigned[T constraints.Signed](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(AbsDiffSigned(a[i], b[i]))
		sum += d * d
	}
	return sum
}

// AbsDiffUnsigned returns |a-b| without wrapping.
func AbsDiffUnsigned[T constraints.Unsigned](a, b T) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// AbsDiffSigned returns |a-b| as an unsigned magnitude.
// The subtraction happens in uint64, which is exact for any pair of int64 values.
func AbsDiffSigned[T constraints.Signed](a, b T) uint64 {
	x, y := int64(a), int64(b)
	if x > y {
		return uint64(x) - uint64(y)
	}
	return uint64(y) - uint64(x)
}
