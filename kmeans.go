package kmeans

import (
	"context"
	"time"
)

// Result is the outcome of Fit.
type Result[P Point[P]] struct {
	// Clusters holds exactly k clusters. Every input point is a member of
	// exactly one of them.
	Clusters []Cluster[P]

	// Iterations is the number of recalculate/assign rounds run after the
	// initial assignment.
	Iterations int

	// Converged is false only when WithMaxIterations stopped the run.
	Converged bool

	// Inertia is the within-cluster sum of squared distances.
	Inertia float64
}

// Partition clusters points into k groups and returns the clusters.
// It is Fit without the run statistics.
func Partition[P Point[P]](ctx context.Context, k int, points []P, opts ...Option) ([]Cluster[P], error) {
	res, err := Fit(ctx, k, points, opts...)
	if err != nil {
		return nil, err
	}
	return res.Clusters, nil
}

// Fit clusters points into k groups using k-means++ seeding followed by
// Lloyd's iteration.
//
// Rounds of recalculation and assignment repeat until two consecutive rounds
// produce the same centroids and the same member lists. Points are never
// modified; clusters hold copies.
//
// Fit fails with an error wrapping ErrInvalidArgument unless
// 1 <= k <= len(points). Errors from recalculation are returned as
// *ErrRecalculation. ctx is checked between rounds.
func Fit[P Point[P]](ctx context.Context, k int, points []P, opts ...Option) (*Result[P], error) {
	o := newOptions(opts...)
	logger := o.logger.WithK(k).WithCount(len(points))

	start := time.Now()
	res, iterations, err := fit(ctx, k, points, o, logger)
	duration := time.Since(start)

	converged := err == nil && res.Converged
	o.metricsCollector.RecordFit(k, len(points), iterations, converged, duration, err)
	logger.LogFit(ctx, iterations, converged, duration, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func fit[P Point[P]](ctx context.Context, k int, points []P, o *options, logger *Logger) (*Result[P], int, error) {
	if err := validate(k, len(points)); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	centroids := make([]P, k)
	for i, idx := range seedIndices(k, points, o.rand) {
		centroids[i] = points[idx]
	}
	logger.LogSeed(ctx, time.Since(start))

	a := newAssigner(points, o.workers)

	current, _, err := a.assign(ctx, centroids)
	if err != nil {
		return nil, 0, err
	}

	iterations := 0
	converged := false
	for o.maxIterations == 0 || iterations < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, iterations, err
		}

		start := time.Now()
		iterations++

		previous := current
		for i := range previous {
			c, err := previous[i].next(points, o.emptyPolicy)
			if err != nil {
				return nil, iterations, &ErrRecalculation{Cluster: i, Iteration: iterations, cause: err}
			}
			centroids[i] = c
		}

		var moved int
		current, moved, err = a.assign(ctx, centroids)
		if err != nil {
			return nil, iterations, err
		}

		duration := time.Since(start)
		o.metricsCollector.RecordRound(iterations, moved, duration)
		logger.LogRound(ctx, iterations, moved, duration)

		if equalPartitions(previous, current) {
			converged = true
			break
		}
	}

	res := &Result[P]{
		Clusters:   make([]Cluster[P], k),
		Iterations: iterations,
		Converged:  converged,
	}
	for i := range current {
		res.Clusters[i] = current[i].resolve(points)
		res.Inertia += res.Clusters[i].Inertia()
	}

	return res, iterations, nil
}
