package graph

import (
	"fmt"
)

// Graph represents an unweighted graph over a contiguous 0-based vertex index
// space using simple adjacency arrays. It can be directed or undirected and is
// treated as read-only for the duration of a metric computation run.
type Graph struct {
	NumNodes    int     `json:"num_nodes"`
	Directed    bool    `json:"directed"`
	Adjacency   [][]int `json:"-"` // adjacency[i] = out-neighbors of vertex i
	InAdjacency [][]int `json:"-"` // inAdjacency[i] = in-neighbors of vertex i (mirrors Adjacency when undirected)

	numEdges int
	edges    [][2]int // edges in insertion order, one entry per logical edge
}

// NewGraph creates a new graph with n vertices and no edges.
func NewGraph(numNodes int, directed bool) *Graph {
	return &Graph{
		NumNodes:    numNodes,
		Directed:    directed,
		Adjacency:   make([][]int, numNodes),
		InAdjacency: make([][]int, numNodes),
	}
}

// AddEdge adds an edge between two vertices. For undirected graphs the edge is
// recorded in both adjacency lists but counts as a single edge.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.NumNodes || v < 0 || v >= g.NumNodes {
		return fmt.Errorf("vertex index out of range: u=%d, v=%d, numNodes=%d", u, v, g.NumNodes)
	}

	g.Adjacency[u] = append(g.Adjacency[u], v)
	g.InAdjacency[v] = append(g.InAdjacency[v], u)

	if !g.Directed && u != v {
		g.Adjacency[v] = append(g.Adjacency[v], u)
		g.InAdjacency[u] = append(g.InAdjacency[u], v)
	}

	g.edges = append(g.edges, [2]int{u, v})
	g.numEdges++
	return nil
}

// NumEdges returns the number of logical edges in the graph.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// Edges returns all edges as (u, v) pairs in insertion order. Undirected edges
// appear exactly once, oriented the way they were added.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the out-neighbors of a vertex.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.NumNodes {
		return nil
	}
	return g.Adjacency[v]
}

// Clone creates a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	clone := NewGraph(g.NumNodes, g.Directed)
	for i := 0; i < g.NumNodes; i++ {
		clone.Adjacency[i] = append([]int(nil), g.Adjacency[i]...)
		clone.InAdjacency[i] = append([]int(nil), g.InAdjacency[i]...)
	}
	clone.edges = append([][2]int(nil), g.edges...)
	clone.numEdges = g.numEdges
	return clone
}

// Validate checks graph consistency.
func (g *Graph) Validate() error {
	if g.NumNodes < 0 {
		return fmt.Errorf("graph has negative vertex count: %d", g.NumNodes)
	}
	if len(g.Adjacency) != g.NumNodes || len(g.InAdjacency) != g.NumNodes {
		return fmt.Errorf("adjacency arrays inconsistent with vertex count %d", g.NumNodes)
	}

	for i := 0; i < g.NumNodes; i++ {
		for _, neighbor := range g.Adjacency[i] {
			if neighbor < 0 || neighbor >= g.NumNodes {
				return fmt.Errorf("invalid neighbor %d for vertex %d", neighbor, i)
			}
		}
	}

	for _, e := range g.edges {
		if e[0] < 0 || e[0] >= g.NumNodes || e[1] < 0 || e[1] >= g.NumNodes {
			return fmt.Errorf("invalid edge (%d, %d)", e[0], e[1])
		}
	}

	return nil
}
