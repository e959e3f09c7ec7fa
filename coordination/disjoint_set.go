package coordination

// disjointSet is a union-find over site indices 0..n-1 with path compression
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, compressing the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v.
func (ds *disjointSet) union(u, v int) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
}

// groups returns the sets ordered by their lowest member, members ascending.
func (ds *disjointSet) groups() [][]int {
	var (
		out   [][]int
		where = make(map[int]int, len(ds.parent))
	)
	for i := range ds.parent {
		r := ds.find(i)
		g, ok := where[r]
		if !ok {
			g = len(out)
			where[r] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], i)
	}

	return out
}
