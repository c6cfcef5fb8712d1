package kmeans

import (
	"slices"
	"sort"
)

// Seed picks k initial centroids from points with k-means++ and returns them
// as empty clusters.
//
// The first centroid is drawn uniformly. Every following centroid is drawn from
// the remaining points with probability proportional to the squared distance
// to the nearest centroid chosen so far. A point is never chosen twice.
func Seed[P Point[P]](k int, points []P, src Source) ([]Cluster[P], error) {
	if err := validate(k, len(points)); err != nil {
		return nil, err
	}

	chosen := seedIndices(k, points, src)

	clusters := make([]Cluster[P], len(chosen))
	for i, idx := range chosen {
		clusters[i] = NewCluster(points[idx])
	}

	return clusters, nil
}

// seedIndices returns the input indices of the k chosen centroids.
func seedIndices[P Point[P]](k int, points []P, src Source) []int {
	chosen := make([]int, 0, k)

	first := src.IntN(len(points))
	chosen = append(chosen, first)

	// Candidate pool in input order, with each candidate's squared distance
	// to its nearest chosen centroid.
	pool := make([]int, 0, len(points)-1)
	weights := make([]float64, 0, len(points)-1)
	for i := range points {
		if i == first {
			continue
		}
		d := points[first].Distance(points[i])
		pool = append(pool, i)
		weights = append(weights, d*d)
	}

	cumulative := make([]float64, len(pool))

	for len(chosen) < k {
		pick := weightedIndex(weights, cumulative[:len(weights)], src)
		c := pool[pick]
		chosen = append(chosen, c)

		pool = slices.Delete(pool, pick, pick+1)
		weights = slices.Delete(weights, pick, pick+1)

		for j, i := range pool {
			d := points[c].Distance(points[i])
			weights[j] = min(weights[j], d*d)
		}
	}

	return chosen
}

// weightedIndex draws an index with probability proportional to its weight.
// cumulative is scratch space of the same length as weights.
func weightedIndex(weights, cumulative []float64, src Source) int {
	var total float64
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}

	// Every remaining candidate sits on a centroid already.
	if !(total > 0) {
		return src.IntN(len(weights))
	}

	r := src.Float64() * total
	i := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > r
	})
	if i == len(cumulative) {
		i = len(cumulative) - 1
	}

	return i
}
