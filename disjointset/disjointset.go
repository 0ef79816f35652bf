// Package disjointset implements a union-find forest over a fixed universe
// of integer elements, used during dungeon generation to guarantee that all
// rooms end up in one connected component.
package disjointset

// Forest tracks a partition of {0..n-1} into disjoint sets, each identified
// by a representative element. Indices outside the universe are a programmer
// error and panic.
type Forest struct {
	parent []int
	size   []int
}

// New creates a forest of n singleton sets.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// Find returns the representative element of the set containing i. Every
// node on the path from i to the root is repointed directly to the root. The
// walk is iterative so deep forests cannot overflow the stack.
func (f *Forest) Find(i int) int {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		i, f.parent[i] = f.parent[i], root
	}
	return root
}

// Merge unions the sets containing i and j, re-parenting the smaller set
// under the larger, and returns the size of the merged set. Merging elements
// already in the same set is a no-op that still returns the set's size.
func (f *Forest) Merge(i, j int) int {
	ri, rj := f.Find(i), f.Find(j)
	if ri != rj {
		// Keep ri the root with no fewer descendants.
		if f.size[ri] < f.size[rj] {
			ri, rj = rj, ri
		}
		f.parent[rj] = ri
		f.size[ri] += f.size[rj]
	}
	return f.size[ri]
}
