package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Assign appends p to the member list of the cluster whose centroid is
// nearest and returns that cluster's index. Ties go to the lower index.
func Assign[P Point[P]](p P, clusters []Cluster[P]) int {
	best := 0
	bestDist := p.Distance(clusters[0].Centroid)
	for i := 1; i < len(clusters); i++ {
		if d := p.Distance(clusters[i].Centroid); d < bestDist {
			best, bestDist = i, d
		}
	}

	clusters[best].Members = append(clusters[best].Members, p)

	return best
}

// nearest returns the index of the centroid closest to p, preferring the
// lower index on ties.
func nearest[P Point[P]](p P, centroids []P) int {
	best := 0
	bestDist := p.Distance(centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := p.Distance(centroids[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// minChunk is the smallest number of points handed to one worker.
const minChunk = 256

// assigner runs the assignment step over a fixed point set.
type assigner[P Point[P]] struct {
	points  []P
	workers int

	labels []int
	prev   []int
}

func newAssigner[P Point[P]](points []P, workers int) *assigner[P] {
	labels := make([]int, len(points))
	prev := make([]int, len(points))
	for i := range labels {
		labels[i], prev[i] = -1, -1
	}

	return &assigner[P]{
		points:  points,
		workers: max(workers, 1),
		labels:  labels,
		prev:    prev,
	}
}

// assign builds a fresh set of partitions around centroids. It also returns
// how many points changed cluster since the previous call.
func (a *assigner[P]) assign(ctx context.Context, centroids []P) ([]partition[P], int, error) {
	a.prev, a.labels = a.labels, a.prev

	if err := a.label(ctx, centroids); err != nil {
		return nil, 0, err
	}

	indices := make([][]uint32, len(centroids))
	moved := 0
	for i, l := range a.labels {
		// Input length was checked against uint32 before any work started.
		indices[l] = append(indices[l], uint32(i))
		if a.prev[i] != l {
			moved++
		}
	}

	parts := make([]partition[P], len(centroids))
	for c := range centroids {
		parts[c] = newPartition(centroids[c])
		parts[c].members.AddMany(indices[c])
	}

	return parts, moved, nil
}

func (a *assigner[P]) label(ctx context.Context, centroids []P) error {
	n := len(a.points)
	if a.workers == 1 || n < 2*minChunk {
		for i, p := range a.points {
			a.labels[i] = nearest(p, centroids)
		}
		return nil
	}

	chunk := max((n+a.workers-1)/a.workers, minChunk)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				a.labels[i] = nearest(a.points[i], centroids)
			}
			return nil
		})
	}

	return g.Wait()
}
