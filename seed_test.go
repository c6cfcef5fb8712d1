package kmeans

import (
	"testing"

	"github.com/periodicaidan/kmeans/point"
	"github.com/periodicaidan/kmeans/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestWeightedIndex(t *testing.T) {
	weights := []float64{0, 1, 0, 3}

	tests := []struct {
		name string
		draw float64
		want int
	}{
		{"zero draw skips leading zero weight", 0, 1},
		{"just below first boundary", 0.2499, 1},
		{"on a boundary moves past it", 0.25, 3},
		{"top of range", 0.999, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{floats: []float64{tt.draw}}
			got := weightedIndex(weights, make([]float64, len(weights)), src)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("first index is reachable", func(t *testing.T) {
		src := &scriptedSource{floats: []float64{0}}
		got := weightedIndex([]float64{2, 2}, make([]float64, 2), src)
		assert.Equal(t, 0, got)
	})

	t.Run("all zero falls back to uniform", func(t *testing.T) {
		src := &scriptedSource{ints: []int{2}}
		got := weightedIndex([]float64{0, 0, 0}, make([]float64, 3), src)
		assert.Equal(t, 2, got)
	})
}

func TestSeed_FavorsFarPoints(t *testing.T) {
	points := []point.Float2[float64]{{0, 0}, {0, 0}, {0, 0}, {10, 10}}

	// First pick is index 0; the remaining duplicates carry zero weight.
	src := &scriptedSource{ints: []int{0}, floats: []float64{0.5}}

	clusters, err := Seed(2, points, src)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, point.Float2[float64]{0, 0}, clusters[0].Centroid)
	assert.Equal(t, point.Float2[float64]{10, 10}, clusters[1].Centroid)
}

func TestSeed_UsesNearestCentroid(t *testing.T) {
	points := []point.Float2[float64]{{0, 0}, {1, 0}, {10, 0}, {11, 0}}

	// Picks 0, then 2 (pool [1 2 3], weights [1 100 121], r=0.25*222),
	// then the pool [1 3] has weights [1 1] and r=0.75*2 picks index 3.
	src := &scriptedSource{ints: []int{0}, floats: []float64{0.25, 0.75}}

	clusters, err := Seed(3, points, src)
	require.NoError(t, err)
	assert.Equal(t,
		[]point.Float2[float64]{{0, 0}, {10, 0}, {11, 0}},
		Centroids(clusters),
	)
}

func TestSeed_DistinctPoints(t *testing.T) {
	points := testutil.NewRNG(17).UniformVectors(50, 3)

	for _, k := range []int{1, 2, 10, 50} {
		idx := seedIndices(k, points, testutil.NewRNG(uint64(k)))
		require.Len(t, idx, k)

		seen := make(map[int]bool, k)
		for _, i := range idx {
			assert.False(t, seen[i], "index %d chosen twice", i)
			seen[i] = true
		}
	}
}

func TestSeed_EmptyMembers(t *testing.T) {
	points := floatGroups()

	clusters, err := Seed(4, points, testutil.NewRNG(1))
	require.NoError(t, err)
	require.Len(t, clusters, 4)
	for _, c := range clusters {
		assert.Empty(t, c.Members)
	}
}

func TestSeed_InvalidK(t *testing.T) {
	points := floatGroups()

	_, err := Seed(0, points, testutil.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Seed(len(points)+1, points, testutil.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Seed[point.Float2[float64]](1, nil, testutil.NewRNG(1))
	assert.ErrorIs(t, err, ErrNoPoints)
}
