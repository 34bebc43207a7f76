// Package mst computes minimum spanning trees rooted at a chosen node.
//
// Compute runs Prim's algorithm over an adjacency list derived from a plain
// edge list and returns the tree edges in the order their child nodes were
// finalized. That order is what the sequencer replays, so it is part of the
// contract: ties between equal weights are decided by the order in which
// candidates entered the frontier, and among edges of one node by their
// position in the edge list.
package mst

import "math"

type candidate struct {
	node   int
	weight float64

	// insertion counter, equal weights pop oldest first
	seq int
}

func candidateLess(a, b candidate) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

// Compute returns the minimum spanning tree of the component reachable
// from root. Only the length of nodes is used.
//
// Preconditions: root and all edge endpoints are valid indices into nodes
// (see Validate). Compute does not check them.
//
// The root is not part of the result, so a root without edges yields an
// empty result. Nodes not reachable from root are omitted.
func Compute[N any](nodes []N, edges []Edge, root int) Result {
	n := len(nodes)

	adjacent := adjacencyOf(n, edges)

	inTree := make([]bool, n)
	parent := make([]int, n)
	best := make([]float64, n)

	for idx := range best {
		best[idx] = math.Inf(1)
		parent[idx] = -1
	}

	best[root] = 0
	parent[root] = root

	var seq int
	frontier := MakeHeap(candidateLess)
	frontier.Push(candidate{node: root, weight: 0, seq: seq})

	result := make(Result, 0, max(0, n-1))

	for !frontier.IsEmpty() {
		current := frontier.Pop()

		node := current.node
		if inTree[node] {
			// stale entry, node was finalized with a smaller weight earlier
			continue
		}

		inTree[node] = true

		if node != root {
			result = append(result, Step{
				Parent: parent[node],
				Child:  node,
				Weight: current.weight,
			})
		}

		for _, edgeIdx := range adjacent[node] {
			edge := edges[edgeIdx]

			other := edge.Other(node)
			if inTree[other] || !(edge.Weight < best[other]) {
				continue
			}

			best[other] = edge.Weight
			parent[other] = node

			seq++
			frontier.Push(candidate{node: other, weight: edge.Weight, seq: seq})
		}
	}

	return result
}

// adjacencyOf indexes the edges by endpoint. Every node keeps its edges in
// edge list order. A self loop is listed once.
func adjacencyOf(n int, edges []Edge) [][]int {
	adjacent := make([][]int, n)

	for idx, edge := range edges {
		adjacent[edge.From] = append(adjacent[edge.From], idx)

		if edge.To != edge.From {
			adjacent[edge.To] = append(adjacent[edge.To], idx)
		}
	}

	return adjacent
}
