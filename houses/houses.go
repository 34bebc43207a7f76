// Package houses holds the map of houses and roads the spanning tree is
// computed on: loading it from JSON or YAML, validating it, hit-testing
// clicks against houses and generating random demo maps.
package houses

import (
	"errors"
	"fmt"
	"math"

	"github.com/oliverbestmann/house-roads/mst"
	"github.com/quasilyte/gmath"
)

// HouseSize is the edge length of the square a house occupies, anchored at
// its position.
const HouseSize = 80

var ErrNoHouses = errors.New("houses: map has no houses")

type House struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Position is the top left corner of the house.
func (h House) Position() gmath.Vec {
	return gmath.Vec{X: h.X, Y: h.Y}
}

// Center is the point roads are drawn to.
func (h House) Center() gmath.Vec {
	return h.Position().Add(gmath.Vec{X: HouseSize / 2, Y: HouseSize / 2})
}

// Road connects two houses by index. Time is the weight used for the
// spanning tree.
type Road struct {
	From int     `json:"from" yaml:"from"`
	To   int     `json:"to" yaml:"to"`
	Time float64 `json:"time" yaml:"time"`
}

type Map struct {
	Houses []House `json:"houses" yaml:"houses"`
	Roads  []Road  `json:"roads" yaml:"roads"`
}

// Edges converts the roads into spanning tree edges, keeping their order.
func (m *Map) Edges() []mst.Edge {
	edges := make([]mst.Edge, 0, len(m.Roads))
	for _, road := range m.Roads {
		edges = append(edges, mst.Edge{From: road.From, To: road.To, Weight: road.Time})
	}

	return edges
}

// Validate checks that the map has houses and that every road connects
// existing houses with a nonnegative time.
func (m *Map) Validate() error {
	if len(m.Houses) == 0 {
		return ErrNoHouses
	}

	if err := mst.ValidateEdges(len(m.Houses), m.Edges()); err != nil {
		return fmt.Errorf("invalid road: %w", err)
	}

	return nil
}

// Solve computes the spanning tree rooted at the given house.
func (m *Map) Solve(root int) (mst.Result, error) {
	edges := m.Edges()

	if err := mst.Validate(len(m.Houses), edges, root); err != nil {
		return nil, err
	}

	return mst.Compute(m.Houses, edges, root), nil
}

// HouseAt returns the index of the first house whose square contains p.
// The square includes its border.
func (m *Map) HouseAt(p gmath.Vec) (int, bool) {
	for idx, house := range m.Houses {
		inX := p.X >= house.X && p.X <= house.X+HouseSize
		inY := p.Y >= house.Y && p.Y <= house.Y+HouseSize

		if inX && inY {
			return idx, true
		}
	}

	return -1, false
}

// Bounds returns the smallest rectangle covering all houses.
func (m *Map) Bounds() gmath.Rect {
	if len(m.Houses) == 0 {
		return gmath.Rect{}
	}

	bounds := gmath.Rect{
		Min: gmath.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: gmath.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	for _, house := range m.Houses {
		bounds.Min.X = min(bounds.Min.X, house.X)
		bounds.Min.Y = min(bounds.Min.Y, house.Y)
		bounds.Max.X = max(bounds.Max.X, house.X+HouseSize)
		bounds.Max.Y = max(bounds.Max.Y, house.Y+HouseSize)
	}

	return bounds
}
