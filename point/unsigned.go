package point

import (
	"github.com/periodicaidan/kmeans/distance"
	"golang.org/x/exp/constraints"
)

// Uint2 is a point with two unsigned integer coordinates. Means are truncated.
type Uint2[T constraints.Unsigned] [2]T

// Distance returns the Euclidean distance between p and q.
func (p Uint2[T]) Distance(q Uint2[T]) float64 {
	return distance.Unsigned(p[:], q[:])
}

// Mean returns the coordinate-wise mean of ps. The receiver is not used.
func (Uint2[T]) Mean(ps []Uint2[T]) (Uint2[T], error) {
	var m Uint2[T]
	if err := meanUnsigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Uint2[T]{}, err
	}
	return m, nil
}

func (p Uint2[T]) Equal(q Uint2[T]) bool { return p == q }

// Uint3 is a point with three unsigned integer coordinates. Means are truncated.
type Uint3[T constraints.Unsigned] [3]T

func (p Uint3[T]) Distance(q Uint3[T]) float64 {
	return distance.Unsigned(p[:], q[:])
}

func (Uint3[T]) Mean(ps []Uint3[T]) (Uint3[T], error) {
	var m Uint3[T]
	if err := meanUnsigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Uint3[T]{}, err
	}
	return m, nil
}

func (p Uint3[T]) Equal(q Uint3[T]) bool { return p == q }

// Uint4 is a point with four unsigned integer coordinates. Means are truncated.
type Uint4[T constraints.Unsigned] [4]T

func (p Uint4[T]) Distance(q Uint4[T]) float64 {
	return distance.Unsigned(p[:], q[:])
}

func (Uint4[T]) Mean(ps []Uint4[T]) (Uint4[T], error) {
	var m Uint4[T]
	if err := meanUnsigned(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Uint4[T]{}, err
	}
	return m, nil
}

func (p Uint4[T]) Equal(q Uint4[T]) bool { return p == q }
