package point

import (
	"gonum.org/v1/gonum/floats"
)

// Vector is a dense float64 point of arbitrary dimension.
//
// All vectors handed to one clustering run must share a length; gonum panics
// on mismatched lengths.
type Vector []float64

// Distance returns the Euclidean (L2) distance between v and w.
func (v Vector) Distance(w Vector) float64 {
	return floats.Distance(v, w, 2)
}

// Mean returns a freshly allocated coordinate-wise mean of vs.
func (Vector) Mean(vs []Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, ErrNoPoints
	}

	m := make(Vector, len(vs[0]))
	for _, v := range vs {
		floats.Add(m, v)
	}
	floats.Scale(1/float64(len(vs)), m)

	return m, nil
}

// Equal reports whether v and w have the same length and identical coordinates.
func (v Vector) Equal(w Vector) bool {
	return floats.Equal(v, w)
}
