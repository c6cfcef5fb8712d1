package kmeans

import (
	"errors"
	"fmt"

	"github.com/periodicaidan/kmeans/internal/conv"
)

var (
	// ErrInvalidArgument is wrapped by every input validation error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoPoints is returned when there is nothing to cluster.
	ErrNoPoints = fmt.Errorf("%w: no points to cluster", ErrInvalidArgument)

	// ErrNumericOverflow is wrapped when an integer mean or a member index
	// cannot be represented. The point package's adapters return it.
	ErrNumericOverflow = conv.ErrOverflow

	// ErrEmptyCluster is returned under FailOnEmpty when a cluster has no
	// members at recalculation time.
	ErrEmptyCluster = errors.New("cluster has no members")
)

// ErrInvalidK indicates a cluster count outside [1, number of points].
//
// It unwraps to ErrInvalidArgument.
type ErrInvalidK struct {
	K      int
	Points int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid cluster count: k=%d with %d points", e.K, e.Points)
}

func (e *ErrInvalidK) Unwrap() error { return ErrInvalidArgument }

// ErrRecalculation indicates that a centroid could not be recomputed.
//
// The original underlying error (ErrEmptyCluster, or whatever the point's
// Mean returned) can be accessed via errors.Unwrap.
type ErrRecalculation struct {
	Cluster   int
	Iteration int
	cause     error
}

func (e *ErrRecalculation) Error() string {
	return fmt.Sprintf("recalculating cluster %d in round %d: %v", e.Cluster, e.Iteration, e.cause)
}

func (e *ErrRecalculation) Unwrap() error { return e.cause }

func validate(k, n int) error {
	if n == 0 {
		return ErrNoPoints
	}
	if k < 1 || k > n {
		return &ErrInvalidK{K: k, Points: n}
	}
	if _, err := conv.IntToUint32(n); err != nil {
		return fmt.Errorf("too many points: %w", err)
	}
	return nil
}
