package point

import (
	"github.com/periodicaidan/kmeans/distance"
	"golang.org/x/exp/constraints"
)

// Int2 is a point with two signed integer coordinates. Means are truncated toward zero.
type Int2[T constraints.Signed] [2]T

// Distance returns the Euclidean distance between p and q.
func (p Int2[T]) Distance(q Int2[T]) float64 {
	return distance.Signed(p[:], q[:])
}

// Mean returns the coordinate-wise mean of ps. The receiver is not used.
func (Int2[T]) Mean(ps []Int2[T]) (Int2[T], error) {
	var m Int2[T]
	if err := meanSigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Int2[T]{}, err
	}
	return m, nil
}

func (p Int2[T]) Equal(q Int2[T]) bool { return p == q }

// Int3 is a point with three signed integer coordinates. Means are truncated toward zero.
type Int3[T constraints.Signed] [3]T

func (p Int3[T]) Distance(q Int3[T]) float64 {
	return distance.Signed(p[:], q[:])
}

func (Int3[T]) Mean(ps []Int3[T]) (Int3[T], error) {
	var m Int3[T]
	if err := meanSigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Int3[T]{}, err
	}
	return m, nil
}

func (p Int3[T]) Equal(q Int3[T]) bool { return p == q }

// Int4 is a point with four signed integer coordinates. Means are truncated toward zero.
type Int4[T constraints.Signed] [4]T

func (p Int4[T]) Distance(q Int4[T]) float64 {
	return distance.Signed(p[:], q[:])
}

func (Int4[T]) Mean(ps []Int4[T]) (Int4[T], error) {
	var m Int4[T]
	if err := meanSigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Int4[T]{}, err
	}
	return m, nil
}

func (p Int4[T]) Equal(q Int4[T]) bool { return p == q }
