// Package kmeans implements k-means clustering with k-means++ seeding.
//
// Given a set of points and a cluster count k, kmeans partitions the points
// into k clusters, each represented by a centroid, using Lloyd's iteration:
// points are assigned to their nearest centroid, centroids move to the mean
// of their members, and the two steps repeat until neither the centroids nor
// the member lists change.
//
// # Quick Start
//
//	points := []point.Float2[float64]{{1, 2}, {1, 3}, {8, 7}, {9, 8}}
//	clusters, err := kmeans.Partition(ctx, 2, points)
//	for _, c := range clusters {
//	    fmt.Println(c.Centroid, c.Members)
//	}
//
// # Point Types
//
// Anything implementing Point can be clustered. The point package ships
// adapters for 2, 3 and 4 dimensional tuples over float, unsigned and signed
// coordinates, and point.Vector for dense float64 vectors of any length.
// Integer means are truncated; a mean that does not fit the coordinate type
// fails with ErrNumericOverflow rather than wrapping.
//
// # Reproducibility
//
// Seeding is the only source of randomness. Runs with the same seed and the
// same input order produce identical clusters:
//
//	res, _ := kmeans.Fit(ctx, 3, points, kmeans.WithSeed(42))
//
// # Run Control
//
//	kmeans.WithMaxIterations(100)                     // stop oscillating inputs
//	kmeans.WithEmptyClusterPolicy(kmeans.FailOnEmpty) // error instead of keeping the centroid
//	kmeans.WithWorkers(runtime.NumCPU())              // parallel assignment, same result
//
// Fit also returns the number of rounds, whether the run converged and the
// within-cluster sum of squares. Cancelling ctx stops the run between rounds.
package kmeans
