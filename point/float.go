package point

import (
	"github.com/periodicaidan/kmeans/distance"
	"golang.org/x/exp/constraints"
)

// Float2 is a point with two float coordinates. Means are computed in float64 and converted back to T.
type Float2[T constraints.Float] [2]T

// Distance returns the Euclidean distance between p and q.
func (p Float2[T]) Distance(q Float2[T]) float64 {
	return distance.Float(p[:], q[:])
}

// Mean returns the coordinate-wise mean of ps. The receiver is not used.
func (Float2[T]) Mean(ps []Float2[T]) (Float2[T], error) {
	var m Float2[T]
	if err := meanFloat(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Float2[T]{}, err
	}
	return m, nil
}

func (p Float2[T]) Equal(q Float2[T]) bool { return p == q }

// Float3 is a point with three float coordinates. Means are computed in float64 and converted back to T.
type Float3[T constraints.Float] [3]T

func (p Float3[T]) Distance(q Float3[T]) float64 {
	return distance.Float(p[:], q[:])
}

func (Float3[T]) Mean(ps []Float3[T]) (Float3[T], error) {
	var m Float3[T]
	if err := meanFloat(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Float3[T]{}, err
	}
	return m, nil
}

func (p Float3[T]) Equal(q Float3[T]) bool { return p == q }

// Float4 is a point with four float coordinates. Means are computed in float64 and converted back to T.
type Float4[T constraints.Float] [4]T

func (p Float4[T]) Distance(q Float4[T]) float64 {
	return distance.Float(p[:], q[:])
}

func (Float4[T]) Mean(ps []Float4[T]) (Float4[T], error) {
	var m Float4[T]
	if err := meanFloat(m[:], len(ps), func(i int) []T { return ps[i][:] }); err != nil {
		return Float4[T]{}, err
	}
	return m, nil
}

func (p Float4[T]) Equal(q Float4[T]) bool { return p == q }
