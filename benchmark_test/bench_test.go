package benchmark_test

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/periodicaidan/kmeans"
	"github.com/periodicaidan/kmeans/point"
	"github.com/periodicaidan/kmeans/testutil"
)

func BenchmarkFit_Float2(b *testing.B) {
	ctx := context.Background()
	centers := []point.Float2[float64]{{0, 0}, {20, 0}, {0, 20}, {20, 20}}
	points, _ := testutil.NewRNG(1).Blobs2D(centers, 2500, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmeans.Fit(ctx, 4, points, kmeans.WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFit_Vector(b *testing.B) {
	for _, dim := range []int{8, 64} {
		for _, workers := range []int{1, runtime.GOMAXPROCS(0)} {
			b.Run(fmt.Sprintf("dim=%d/workers=%d", dim, workers), func(b *testing.B) {
				benchmarkFitVector(b, 10000, dim, 16, workers)
			})
		}
	}
}

func benchmarkFitVector(b *testing.B, num, dim, k, workers int) {
	ctx := context.Background()
	points := testutil.NewRNG(1).ClusteredVectors(num, dim, k, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := kmeans.Fit(ctx, k, points,
			kmeans.WithSeed(uint64(i)),
			kmeans.WithWorkers(workers),
			kmeans.WithMaxIterations(100),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSeed(b *testing.B) {
	points := testutil.NewRNG(1).UniformVectors(10000, 16)
	rng := testutil.NewRNG(2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmeans.Seed(32, points, rng); err != nil {
			b.Fatal(err)
		}
	}
}
