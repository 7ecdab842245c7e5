package graph

import (
	"sort"
)

// View is a read-only restriction of a Graph to a subset of its vertices,
// typically one connected component. Vertices are re-indexed into a local
// contiguous 0-based space; the local order is ascending global vertex id and
// defines the vertex iteration order algorithm results are spliced against.
type View struct {
	Vertices []int // local index -> global vertex id, ascending

	graph         *Graph
	globalToLocal map[int]int
	edges         [][2]int // local-index edge pairs
}

// NewView builds a view over the given global vertex ids. The vertex set is
// copied and sorted; edges with both endpoints inside the set are retained.
// Undirected edges are retained once, in the orientation they were added.
func NewView(g *Graph, vertices []int) *View {
	vs := append([]int(nil), vertices...)
	sort.Ints(vs)

	v := &View{
		Vertices:      vs,
		graph:         g,
		globalToLocal: make(map[int]int, len(vs)),
	}
	for local, global := range vs {
		v.globalToLocal[global] = local
	}

	for _, e := range g.Edges() {
		lu, uOK := v.globalToLocal[e[0]]
		lv, vOK := v.globalToLocal[e[1]]
		if uOK && vOK {
			v.edges = append(v.edges, [2]int{lu, lv})
		}
	}

	return v
}

// NewComponentView builds a view over all vertices carrying the given
// component label.
func NewComponentView(g *Graph, labels []int, label int) *View {
	var vertices []int
	for v, l := range labels {
		if l == label {
			vertices = append(vertices, v)
		}
	}
	return NewView(g, vertices)
}

// NumNodes returns the number of vertices in the view.
func (v *View) NumNodes() int {
	return len(v.Vertices)
}

// NumEdges returns the number of edges with both endpoints inside the view.
func (v *View) NumEdges() int {
	return len(v.edges)
}

// Edges returns the view's edges as (u, v) pairs of local indices, in the
// underlying graph's edge insertion order.
func (v *View) Edges() [][2]int {
	return v.edges
}

// Directed reports whether the underlying graph is directed.
func (v *View) Directed() bool {
	return v.graph.Directed
}

// GlobalID maps a local vertex index back to its global vertex id.
func (v *View) GlobalID(local int) int {
	return v.Vertices[local]
}

// LocalID maps a global vertex id to its local index. The second return value
// reports whether the vertex belongs to the view.
func (v *View) LocalID(global int) (int, bool) {
	local, ok := v.globalToLocal[global]
	return local, ok
}
