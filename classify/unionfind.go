package classify

// disjointSet is a union-find forest over the byte domain with path
// compression and union by rank.
type disjointSet struct {
	parent [256]uint8
	rank   [256]uint8
}

func newDisjointSet() *disjointSet {
	ds := &disjointSet{}
	for i := range ds.parent {
		ds.parent[i] = uint8(i)
	}
	return ds
}

// find returns the root of u's class, halving the path on the way up.
func (ds *disjointSet) find(u uint8) uint8 {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the classes of u and v; it is a no-op if they already share a root.
func (ds *disjointSet) union(u, v uint8) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	// attach the shallower tree under the deeper one
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
		return
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
}
