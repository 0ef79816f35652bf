package generation

import (
	"sort"

	"github.com/jonathansharman/rl/disjointset"
	"github.com/jonathansharman/rl/geometry"
	"github.com/jonathansharman/rl/grid"
)

// connectRooms carves corridors between room pairs in ascending order of
// gap distance, merging each connected pair in a disjoint-set forest.
// Connection stops once the forest reports a single set and the most recent
// corridor exceeded the slack distance, so a degenerate zero-distance merge
// cannot end connection while a better corridor is still queued.
func (g *Generator) connectRooms(tiles grid.TileMap, rooms []geometry.Rectangle, cfg Config) {
	if len(rooms) < 2 {
		return
	}
	type pair struct {
		i, j int
		in   geometry.Intersection
		dist int
	}
	var pairs []pair
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			in := rooms[i].Intersect(rooms[j])
			pairs = append(pairs, pair{i: i, j: j, in: in, dist: in.Distance()})
		}
	}
	// Descending by distance, so the cheapest connections pop first.
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].dist > pairs[b].dist
	})
	forest := disjointset.New(len(rooms))
	for len(pairs) > 0 {
		p := pairs[len(pairs)-1]
		pairs = pairs[:len(pairs)-1]
		g.carveCorridor(tiles, rooms[p.i], rooms[p.j], p.in)
		if forest.Merge(p.i, p.j) == len(rooms) && p.dist > cfg.ConnectionSlack {
			break
		}
	}
}

// carveCorridor connects two rooms according to their intersection: a
// straight corridor across a shared axis range, or a two-segment elbow
// between nearest corners when no axis range is shared. Overlapping rooms
// need no corridor.
func (g *Generator) carveCorridor(tiles grid.TileMap, a, b geometry.Rectangle, in geometry.Intersection) {
	kind := g.floorKind()
	switch in.Kind {
	case geometry.IntersectReal:
		// The rooms' floors already overlap.
	case geometry.IntersectHorizontal:
		if in.Rect.Size.Y == 0 {
			// Edge-adjacent rooms need no corridor.
			return
		}
		x := in.Rect.Pos.X + g.rng.Intn(in.Rect.Size.X)
		g.carveSegment(tiles,
			geometry.Point{X: x, Y: in.Rect.Pos.Y},
			geometry.Point{X: x, Y: in.Rect.MaxY() - 1},
			kind)
	case geometry.IntersectVertical:
		if in.Rect.Size.X == 0 {
			return
		}
		y := in.Rect.Pos.Y + g.rng.Intn(in.Rect.Size.Y)
		g.carveSegment(tiles,
			geometry.Point{X: in.Rect.Pos.X, Y: y},
			geometry.Point{X: in.Rect.MaxX() - 1, Y: y},
			kind)
	case geometry.IntersectNone:
		ca, cb := nearestCorners(a, b)
		elbow := geometry.Point{X: ca.X, Y: cb.Y}
		if g.rng.Intn(2) == 0 {
			elbow = geometry.Point{X: cb.X, Y: ca.Y}
		}
		g.carveSegment(tiles, ca, elbow, kind)
		g.carveSegment(tiles, elbow, cb, kind)
	}
}

// carveSegment carves a straight orthogonal run of floor from one point to
// another, inclusive.
func (g *Generator) carveSegment(tiles grid.TileMap, from, to geometry.Point, kind grid.Tile) {
	step := geometry.Vector{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	p := from
	for {
		carveFloor(tiles, p, kind)
		if p == to {
			return
		}
		p = p.Add(step)
	}
}

// nearestCorners returns the floor cells of a and b closest to each other,
// for rooms that share no axis range.
func nearestCorners(a, b geometry.Rectangle) (geometry.Point, geometry.Point) {
	var ca, cb geometry.Point
	if a.MaxX() <= b.Pos.X {
		ca.X, cb.X = a.MaxX()-1, b.Pos.X
	} else {
		ca.X, cb.X = a.Pos.X, b.MaxX()-1
	}
	if a.MaxY() <= b.Pos.Y {
		ca.Y, cb.Y = a.MaxY()-1, b.Pos.Y
	} else {
		ca.Y, cb.Y = a.Pos.Y, b.MaxY()-1
	}
	return ca, cb
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
