package testutil

import (
	"math/rand/v2"
	"sync"

	"github.com/periodicaidan/kmeans/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies kmeans.Source.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) []point.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([]point.Vector, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors scattered around clusters uniform
// centroids in [0, 10)^dim. Vector i belongs to centroid i % clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) []point.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([][]float64, clusters)
	for c := range centroids {
		centroids[c] = make([]float64, dim)
		for j := range dim {
			centroids[c][j] = 10 * r.rand.Float64()
		}
	}

	vectors := make([]point.Vector, num)
	for i := range num {
		centroid := centroids[i%clusters]
		vec := make(point.Vector, dim)
		for j := range dim {
			// Add Gaussian noise to centroid
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// Blobs2D generates perCenter points around each center with Gaussian noise
// of the given standard deviation. It also returns, for every point, the index
// of the center it was drawn from. Points are grouped by center.
func (r *RNG) Blobs2D(centers []point.Float2[float64], perCenter int, spread float64) ([]point.Float2[float64], []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]point.Float2[float64], 0, len(centers)*perCenter)
	labels := make([]int, 0, len(centers)*perCenter)

	for c, center := range centers {
		for range perCenter {
			points = append(points, point.Float2[float64]{
				center[0] + r.rand.NormFloat64()*spread,
				center[1] + r.rand.NormFloat64()*spread,
			})
			labels = append(labels, c)
		}
	}

	return points, labels
}

// UniformGrid2D returns random integer points in [0, size)^2.
func (r *RNG) UniformGrid2D(num int, size uint8) []point.Uint2[uint8] {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]point.Uint2[uint8], num)
	for i := range points {
		points[i] = point.Uint2[uint8]{
			uint8(r.rand.IntN(int(size))),
			uint8(r.rand.IntN(int(size))),
		}
	}

	return points
}
