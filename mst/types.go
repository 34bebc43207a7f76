package mst

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrRootOutOfRange = errors.New("mst: root out of range")
	ErrEdgeOutOfRange = errors.New("mst: edge endpoint out of range")
	ErrNegativeWeight = errors.New("mst: negative edge weight")
)

// Edge is an undirected, weighted connection between two node indices.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Other returns the endpoint of the edge that is not node. For a self loop
// this is node itself.
func (e Edge) Other(node int) int {
	if e.From == node {
		return e.To
	}

	return e.From
}

// Step is one edge of the spanning tree, in the order it was finalized.
type Step struct {
	Parent int
	Child  int
	Weight float64
}

func (s Step) String() string {
	return fmt.Sprintf("%d->%d (%g)", s.Parent, s.Child, s.Weight)
}

// Result holds the steps of a spanning tree in finalization order. The
// root itself never appears as a child.
type Result []Step

// Total returns the sum of all step weights.
func (r Result) Total() float64 {
	var total float64
	for _, step := range r {
		total += step.Weight
	}

	return total
}

// Children returns the child node of every step, in order.
func (r Result) Children() []int {
	children := make([]int, 0, len(r))
	for _, step := range r {
		children = append(children, step.Child)
	}

	return children
}

// Validate checks the preconditions of Compute: the root and every edge
// endpoint must be valid indices into a node list of length nodeCount, and
// no edge may have a negative or NaN weight.
func Validate(nodeCount int, edges []Edge, root int) error {
	if root < 0 || root >= nodeCount {
		return fmt.Errorf("root %d with %d nodes: %w", root, nodeCount, ErrRootOutOfRange)
	}

	return ValidateEdges(nodeCount, edges)
}

// ValidateEdges is Validate without the root check.
func ValidateEdges(nodeCount int, edges []Edge) error {
	for idx, edge := range edges {
		if edge.From < 0 || edge.From >= nodeCount || edge.To < 0 || edge.To >= nodeCount {
			return fmt.Errorf("edge %d (%d-%d) with %d nodes: %w", idx, edge.From, edge.To, nodeCount, ErrEdgeOutOfRange)
		}

		if edge.Weight < 0 || math.IsNaN(edge.Weight) {
			return fmt.Errorf("edge %d (%d-%d) weight %g: %w", idx, edge.From, edge.To, edge.Weight, ErrNegativeWeight)
		}
	}

	return nil
}
