package point

import (
	"errors"

	"github.com/periodicaidan/kmeans/internal/conv"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNoPoints is returned when a mean is requested over zero points.
	ErrNoPoints = errors.New("mean of zero points")

	// ErrOverflow is wrapped when an integer mean cannot be represented.
	ErrOverflow = conv.ErrOverflow
)

// meanFloat writes the coordinate-wise mean of n points into dst.
// coords(i) returns the coordinates of point i.
func meanFloat[T constraints.Float](dst []T, n int, coords func(i int) []T) error {
	if n == 0 {
		return ErrNoPoints
	}

	sums := make([]float64, len(dst))
	for i := 0; i < n; i++ {
		for j, c := range coords(i) {
			sums[j] += float64(c)
		}
	}
	for j := range dst {
		dst[j] = T(sums[j] / float64(n))
	}
	return nil
}

func meanUnsigned[T constraints.Unsigned](dst []T, n int, coords func(i int) []T) error {
	if n == 0 {
		return ErrNoPoints
	}

	sums := make([]uint64, len(dst))
	for i := 0; i < n; i++ {
		for j, c := range coords(i) {
			s, err := conv.AddUint64(sums[j], uint64(c))
			if err != nil {
				return err
			}
			sums[j] = s
		}
	}
	for j := range dst {
		v, err := conv.NarrowUnsigned[T](sums[j] / uint64(n))
		if err != nil {
			return err
		}
		dst[j] = v
	}
	return nil
}

func meanSigned[T constraints.Signed](dst []T, n int, coords func(i int) []T) error {
	if n == 0 {
		return ErrNoPoints
	}

	sums := make([]int64, len(dst))
	for i := 0; i < n; i++ {
		for j, c := range coords(i) {
			s, err := conv.AddInt64(sums[j], int64(c))
			if err != nil {
				return err
			}
			sums[j] = s
		}
	}
	for j := range dst {
		v, err := conv.NarrowSigned[T](sums[j] / int64(n))
		if err != nil {
			return err
		}
		dst[j] = v
	}
	return nil
}
