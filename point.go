package kmeans

// Point is the capability a coordinate type needs to be clustered.
//
// Distance must be symmetric and non-negative, and zero for equal points.
// Mean must accept any non-empty slice and return a point of the same type;
// the receiver is only used for dispatch and its value is ignored.
// Equal decides convergence, so it should be exact rather than approximate.
//
// The point package provides implementations for fixed-arity numeric tuples
// and dense float64 vectors.
type Point[P any] interface {
	Distance(other P) float64
	Mean(points []P) (P, error)
	Equal(other P) bool
}

// Source is the randomness consumed by k-means++ seeding.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}
