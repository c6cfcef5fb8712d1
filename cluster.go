package kmeans

import "fmt"

// Cluster is a group of points represented by a centroid.
type Cluster[P Point[P]] struct {
	Centroid P
	// Members are kept in input order.
	Members []P
}

// NewCluster returns an empty cluster centered at centroid.
func NewCluster[P Point[P]](centroid P) Cluster[P] {
	return Cluster[P]{Centroid: centroid}
}

// Len returns the number of members.
func (c Cluster[P]) Len() int {
	return len(c.Members)
}

// Equal reports whether c and other have equal centroids and the same
// members in the same order.
func (c Cluster[P]) Equal(other Cluster[P]) bool {
	if !c.Centroid.Equal(other.Centroid) || len(c.Members) != len(other.Members) {
		return false
	}
	for i := range c.Members {
		if !c.Members[i].Equal(other.Members[i]) {
			return false
		}
	}
	return true
}

// Recalculate moves the centroid to the mean of the members and clears the
// membership. An empty cluster is handled according to policy.
func (c *Cluster[P]) Recalculate(policy EmptyClusterPolicy) error {
	if len(c.Members) == 0 {
		if policy == FailOnEmpty {
			return ErrEmptyCluster
		}
		return nil
	}

	m, err := c.Centroid.Mean(c.Members)
	if err != nil {
		return err
	}

	c.Centroid = m
	c.Members = nil

	return nil
}

// Inertia returns the sum of squared distances from each member to the centroid.
func (c Cluster[P]) Inertia() float64 {
	var sum float64
	for _, m := range c.Members {
		d := m.Distance(c.Centroid)
		sum += d * d
	}
	return sum
}

// Centroids returns the centroid of every cluster, in order.
func Centroids[P Point[P]](clusters []Cluster[P]) []P {
	out := make([]P, len(clusters))
	for i := range clusters {
		out[i] = clusters[i].Centroid
	}
	return out
}

// EmptyClusterPolicy decides what recalculation does with a cluster that lost
// all of its members.
type EmptyClusterPolicy int

const (
	// KeepCentroid leaves the centroid where it was.
	KeepCentroid EmptyClusterPolicy = iota
	// FailOnEmpty aborts clustering with ErrEmptyCluster.
	FailOnEmpty
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case KeepCentroid:
		return "KeepCentroid"
	case FailOnEmpty:
		return "FailOnEmpty"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}
