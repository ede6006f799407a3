package mst

// dsu is a disjoint-set forest over node IDs with path halving and union by rank.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(ids []string) *dsu {
	d := &dsu{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// has reports whether id belongs to the forest.
func (d *dsu) has(id string) bool {
	_, ok := d.parent[id]

	return ok
}

func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (d *dsu) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
