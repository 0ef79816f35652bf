// Package dijkstra builds multi-source distance fields ("Dijkstra maps")
// over the tile grid, for gradient-following pathfinding. Based on the
// roguebasin articles "Dijkstra Maps Visualized" and "The Incredible Power
// of Dijkstra Maps".
package dijkstra

import (
	"math"
	"math/rand"

	"github.com/jonathansharman/rl/geometry"
)

// Map records, for every tile reachable from a goal, its distance to the
// nearest goal in 4-directional steps. A map is immutable after Build and
// is meant to be rebuilt fresh each turn.
type Map struct {
	distances map[geometry.Point]int
}

// Build performs a breadth-first search seeded at every tile of tiles
// satisfying isGoal, expanding through 4-directional neighbors not
// satisfying isBlocking. Points outside the generated region must block,
// or the search will leak past the map's edge. Unreachable tiles get no
// entry.
func Build(tiles []geometry.Point, isGoal, isBlocking func(geometry.Point) bool) *Map {
	m := &Map{distances: make(map[geometry.Point]int)}
	type node struct {
		p geometry.Point
		d int
	}
	var queue []node
	for _, p := range tiles {
		if isGoal(p) {
			m.distances[p] = 0
			queue = append(queue, node{p: p})
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, off := range geometry.NeighborOffsets4 {
			neighbor := n.p.Add(off)
			if isBlocking(neighbor) {
				continue
			}
			if _, visited := m.distances[neighbor]; visited {
				continue
			}
			// Breadth-first order visits tiles in ascending distance.
			m.distances[neighbor] = n.d + 1
			queue = append(queue, node{p: neighbor, d: n.d + 1})
		}
	}
	return m
}

// Distance returns the distance from p to the nearest goal tile, or false
// if no goal is reachable from p.
func (m *Map) Distance(p geometry.Point) (int, bool) {
	d, ok := m.distances[p]
	return d, ok
}

// StepTowards returns the offset to a uniformly random neighbor of p that
// is strictly closer to a goal than p, or false if no neighbor improves on
// p's own distance.
func (m *Map) StepTowards(p geometry.Point, rng *rand.Rand) (geometry.Vector, bool) {
	return m.step(p, rng, false)
}

// StepAway returns the offset to a uniformly random neighbor of p that is
// strictly farther from every goal than p, or false if no neighbor is.
func (m *Map) StepAway(p geometry.Point, rng *rand.Rand) (geometry.Vector, bool) {
	return m.step(p, rng, true)
}

// step collects the 4-directional neighbors of p whose recorded distance
// strictly improves on p's own and picks one uniformly at random, so ties
// are broken by chance rather than iteration order.
func (m *Map) step(p geometry.Point, rng *rand.Rand, away bool) (geometry.Vector, bool) {
	best, ok := m.distances[p]
	if !ok {
		if away {
			best = math.MinInt
		} else {
			best = math.MaxInt
		}
	}
	var offsets []geometry.Vector
	for _, off := range geometry.NeighborOffsets4 {
		d, ok := m.distances[p.Add(off)]
		if !ok {
			continue
		}
		improves := d < best
		if away {
			improves = d > best
		}
		switch {
		case improves:
			best = d
			offsets = append(offsets[:0], off)
		case d == best && len(offsets) > 0:
			offsets = append(offsets, off)
		}
	}
	if len(offsets) == 0 {
		return geometry.Vector{}, false
	}
	return offsets[rng.Intn(len(offsets))], true
}
