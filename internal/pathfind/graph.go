// Package pathfind holds the weighted demo graph of the applications slide,
// its shortest route, and a spike that traces that route edge by edge.
package pathfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBadNode = errors.New("pathfind: node out of range")
	ErrNoPath  = errors.New("pathfind: no path")
)

type Node struct {
	Label string
	X, Y  float64
}

// Edge is undirected.
type Edge struct {
	A, B   int
	Weight float64
}

type Graph struct {
	Nodes []Node
	Edges []Edge
}

// DemoGraph is the nine-node A..I graph laid out for a 400x320 panel.
func DemoGraph() Graph {
	return Graph{
		Nodes: []Node{
			{"A", 50, 50}, {"B", 180, 30}, {"C", 320, 60},
			{"D", 100, 160}, {"E", 250, 150}, {"F", 350, 180},
			{"G", 60, 260}, {"H", 200, 270}, {"I", 340, 280},
		},
		Edges: []Edge{
			{0, 1, 4}, {0, 3, 2}, {1, 2, 3}, {1, 4, 5},
			{2, 5, 1}, {3, 4, 6}, {3, 6, 3}, {4, 5, 2},
			{4, 7, 4}, {5, 8, 3}, {6, 7, 5}, {7, 8, 2},
		},
	}
}

// ShortestPath runs Dijkstra from one node to another and returns the node
// sequence with its total weight. Ties keep the first route found.
func (g Graph) ShortestPath(from, to int) ([]int, float64, error) {
	n := len(g.Nodes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, 0, fmt.Errorf("%w: %d -> %d of %d", ErrBadNode, from, to, n)
	}

	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	for {
		u := -1
		for i := range dist {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 || u == to {
			break
		}
		done[u] = true
		for _, e := range g.Edges {
			v := e.Other(u)
			if v < 0 || done[v] {
				continue
			}
			if d := dist[u] + e.Weight; d < dist[v] {
				dist[v] = d
				prev[v] = u
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil, 0, fmt.Errorf("%w: %s -> %s", ErrNoPath, g.Nodes[from].Label, g.Nodes[to].Label)
	}
	var path []int
	for v := to; v >= 0; v = prev[v] {
		path = append([]int{v}, path...)
	}
	return path, dist[to], nil
}

// Other returns the endpoint of e opposite to u, or -1 if e does not touch u.
func (e Edge) Other(u int) int {
	switch u {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return -1
}

// OnPath reports whether e joins two consecutive nodes of path.
func (e Edge) OnPath(path []int) bool {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return true
		}
	}
	return false
}

// Contains reports whether node i lies on path.
func Contains(path []int, i int) bool {
	for _, p := range path {
		if p == i {
			return true
		}
	}
	return false
}
