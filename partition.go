package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// partition is the working form of a Cluster during Lloyd's iteration.
// Members are indices into the input slice, so point payloads are only copied
// once, when the final clusters are resolved. Roaring iterates in ascending
// order, which is input order.
type partition[P Point[P]] struct {
	centroid P
	members  *roaring.Bitmap
}

func newPartition[P Point[P]](centroid P) partition[P] {
	return partition[P]{
		centroid: centroid,
		members:  roaring.New(),
	}
}

func (p partition[P]) equal(other partition[P]) bool {
	return p.centroid.Equal(other.centroid) && p.members.Equals(other.members)
}

func (p partition[P]) points(points []P) []P {
	out := make([]P, 0, p.members.GetCardinality())
	it := p.members.Iterator()
	for it.HasNext() {
		out = append(out, points[it.Next()])
	}
	return out
}

// next returns the centroid for the following round.
func (p partition[P]) next(points []P, policy EmptyClusterPolicy) (P, error) {
	if p.members.IsEmpty() {
		if policy == FailOnEmpty {
			var zero P
			return zero, ErrEmptyCluster
		}
		return p.centroid, nil
	}
	return p.centroid.Mean(p.points(points))
}

func (p partition[P]) resolve(points []P) Cluster[P] {
	return Cluster[P]{
		Centroid: p.centroid,
		Members:  p.points(points),
	}
}

func equalPartitions[P Point[P]](a, b []partition[P]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}
