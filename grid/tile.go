// Package grid defines the sparse tile map produced by dungeon generation
// and consumed, through predicates, by the vision and influence-map engines.
package grid

import (
	"sort"

	"github.com/jonathansharman/rl/geometry"
)

// Tile is a single cell of the dungeon: a wall or one of several cosmetic
// floor materials. Floor materials have no gameplay effect.
type Tile int

const (
	TileWall Tile = iota
	TileFloorStone
	TileFloorWood
	TileFloorMoss
)

// FloorTiles lists every floor material, for random selection per room.
var FloorTiles = [...]Tile{TileFloorStone, TileFloorWood, TileFloorMoss}

// IsFloor reports whether the tile can be walked on.
func (t Tile) IsFloor() bool {
	return t != TileWall
}

// IsWall reports whether the tile blocks movement and sight.
func (t Tile) IsWall() bool {
	return t == TileWall
}

// TileMap is a sparse mapping from grid points to tiles. A point with no
// entry lies outside the generated region and blocks movement and sight;
// absence never means floor. Every entry present was explicitly carved by
// the generator, and the map never shrinks after generation.
type TileMap map[geometry.Point]Tile

// At returns the tile at p, if one was carved there.
func (m TileMap) At(p geometry.Point) (Tile, bool) {
	t, ok := m[p]
	return t, ok
}

// IsFloor reports whether p holds a floor tile. Uncarved points are not
// floor.
func (m TileMap) IsFloor(p geometry.Point) bool {
	t, ok := m[p]
	return ok && t.IsFloor()
}

// Blocks reports whether p blocks movement and sight: a wall tile or any
// point outside the carved region. This is the passability predicate handed
// to the vision and influence-map engines.
func (m TileMap) Blocks(p geometry.Point) bool {
	return !m.IsFloor(p)
}

// Bounds returns the smallest rectangle containing every carved tile, or an
// empty rectangle for an empty map.
func (m TileMap) Bounds() geometry.Rectangle {
	if len(m) == 0 {
		return geometry.Rectangle{}
	}
	first := true
	var minX, minY, maxX, maxY int
	for p := range m {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return geometry.Rectangle{
		Pos:  geometry.Point{X: minX, Y: minY},
		Size: geometry.Vector{X: maxX - minX + 1, Y: maxY - minY + 1},
	}
}

// Points returns every carved point in row-major order.
func (m TileMap) Points() []geometry.Point {
	points := make([]geometry.Point, 0, len(m))
	for p := range m {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// FloorPoints returns every floor point in row-major order.
func (m TileMap) FloorPoints() []geometry.Point {
	points := m.Points()
	floors := points[:0]
	for _, p := range points {
		if m[p].IsFloor() {
			floors = append(floors, p)
		}
	}
	return floors
}
