// Package generation handles procedural generation of dungeon layouts:
// room placement inside a bordered region, floor carving, and corridor
// connection with a connectivity guarantee.
package generation

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jonathansharman/rl/geometry"
	"github.com/jonathansharman/rl/grid"
)

// Dungeon is the result of generation: the carved tile map plus the floor
// tiles available to external collaborators for spawn placement, in
// row-major order.
type Dungeon struct {
	Tiles      grid.TileMap
	OpenFloors []geometry.Point
}

// Generator handles procedural generation of dungeon layouts.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new dungeon generator.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorWithRand creates a dungeon generator drawing from an existing
// random stream, so generation can share one stream with other systems.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// SetSeed allows setting a specific seed for reproducible dungeons.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate places rooms, carves their floors, and connects them into one
// component. Generation never fails outright: if the placement retry
// ceiling is reached before the floor-ratio target, the result simply has
// fewer rooms. Callers that need a hard floor-ratio guarantee must check
// the result themselves. Invalid configurations (room size bounds out of
// order, region too small for its border) are programmer errors and panic.
func (g *Generator) Generate(cfg Config) *Dungeon {
	inner := innerRegion(cfg)
	rooms := g.placeRooms(cfg, inner)
	tiles := grid.TileMap{}
	for _, room := range rooms {
		kind := g.floorKind()
		for y := room.Pos.Y; y < room.MaxY(); y++ {
			for x := room.Pos.X; x < room.MaxX(); x++ {
				carveFloor(tiles, geometry.Point{X: x, Y: y}, kind)
			}
		}
	}
	g.connectRooms(tiles, rooms, cfg)
	return &Dungeon{Tiles: tiles, OpenFloors: tiles.FloorPoints()}
}

// innerRegion returns the configured region inset by the one-tile border
// reserved for the perimeter wall, panicking on configurations that cannot
// produce a valid dungeon.
func innerRegion(cfg Config) geometry.Rectangle {
	if cfg.MinRoomSize <= 0 || cfg.MinRoomSize > cfg.MaxRoomSize {
		panic(fmt.Sprintf("generation: invalid room size bounds [%d, %d]", cfg.MinRoomSize, cfg.MaxRoomSize))
	}
	inner := geometry.Rectangle{
		Pos:  cfg.Region.Pos.Add(geometry.Vector{X: 1, Y: 1}),
		Size: cfg.Region.Size.Sub(geometry.Vector{X: 2, Y: 2}),
	}
	if inner.Size.X < cfg.MinRoomSize || inner.Size.Y < cfg.MinRoomSize {
		panic(fmt.Sprintf("generation: region %+v too small to fit a %d-tile room inside its border", cfg.Region, cfg.MinRoomSize))
	}
	return inner
}

// placeRooms samples rooms until the accepted floor area reaches the
// configured ratio of the region or the retry ceiling is hit. Candidates
// that touch an already-placed room are nudged one tile in a random
// direction and re-tested against all placed rooms; the quadratic check is
// fine for the small room counts involved.
func (g *Generator) placeRooms(cfg Config, inner geometry.Rectangle) []geometry.Rectangle {
	var rooms []geometry.Rectangle
	floorArea := 0
	regionArea := cfg.Region.Area()
	retries := 0
	for float64(floorArea) < cfg.MinFloorRatio*float64(regionArea) {
		room := g.sampleRoom(cfg, inner)
		for touchesAny(room, rooms) {
			room.Pos = room.Pos.Add(geometry.RandomNeighbor8(g.rng))
		}
		room = crop(room, inner)
		if room.Size.X < cfg.MinRoomSize || room.Size.Y < cfg.MinRoomSize {
			retries++
			if retries >= cfg.PlacementRetries {
				log.Printf("generation: retry ceiling (%d) reached with %d rooms placed", cfg.PlacementRetries, len(rooms))
				break
			}
			continue
		}
		rooms = append(rooms, room)
		floorArea += room.Area()
	}
	return rooms
}

// sampleRoom draws a candidate room uniformly within the size bounds and
// positions it uniformly inside the bordered region.
func (g *Generator) sampleRoom(cfg Config, inner geometry.Rectangle) geometry.Rectangle {
	w := cfg.MinRoomSize + g.rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	h := cfg.MinRoomSize + g.rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	w = min(w, inner.Size.X)
	h = min(h, inner.Size.Y)
	return geometry.Rectangle{
		Pos: geometry.Point{
			X: inner.Pos.X + g.rng.Intn(inner.Size.X-w+1),
			Y: inner.Pos.Y + g.rng.Intn(inner.Size.Y-h+1),
		},
		Size: geometry.Vector{X: w, Y: h},
	}
}

// touchesAny reports whether the candidate overlaps or is edge-adjacent to
// any placed room.
func touchesAny(candidate geometry.Rectangle, rooms []geometry.Rectangle) bool {
	for _, room := range rooms {
		if candidate.Touching(room) {
			return true
		}
	}
	return false
}

// crop intersects the candidate with the bordered region. A candidate
// nudged entirely outside the region becomes degenerate (zero size).
func crop(candidate, inner geometry.Rectangle) geometry.Rectangle {
	in := candidate.Intersect(inner)
	if in.Kind != geometry.IntersectReal {
		return geometry.Rectangle{}
	}
	return in.Rect
}

// carveFloor writes a floor tile at p and marks its eight neighbors as
// wall wherever nothing has been carved yet. Walls are a byproduct of
// carving, so overlapping carves never leave walls inside a room.
func carveFloor(tiles grid.TileMap, p geometry.Point, kind grid.Tile) {
	tiles[p] = kind
	for _, off := range geometry.NeighborOffsets8 {
		n := p.Add(off)
		if _, ok := tiles[n]; !ok {
			tiles[n] = grid.TileWall
		}
	}
}

// floorKind picks a random cosmetic floor material.
func (g *Generator) floorKind() grid.Tile {
	return grid.FloorTiles[g.rng.Intn(len(grid.FloorTiles))]
}
