// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and generators for clustered
// point sets whose true grouping is known.
//
// # Random Source
//
//	rng := testutil.NewRNG(seed)
//	clusters, _ := kmeans.Partition(ctx, k, points, kmeans.WithRand(rng))
//
// # Clustered Data
//
//	points, labels := rng.Blobs2D(centers, 50, 0.5)
//	vecs := rng.ClusteredVectors(1000, 16, 4, 0.1)
package testutil
