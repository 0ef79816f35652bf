// Package level ties the spatial engines together around one generated
// dungeon: it owns the tile map for the dungeon's lifetime, tracks what the
// viewer can see and remembers, and rebuilds per-faction influence maps
// each turn.
package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/jonathansharman/rl/arena"
	"github.com/jonathansharman/rl/dijkstra"
	"github.com/jonathansharman/rl/generation"
	"github.com/jonathansharman/rl/geometry"
	"github.com/jonathansharman/rl/grid"
	"github.com/jonathansharman/rl/vision"
)

// CollisionKind classifies what a creature would run into at a point.
type CollisionKind int

const (
	// CollisionNone means the point is open.
	CollisionNone CollisionKind = iota
	// CollisionOutOfBounds means the point was never carved.
	CollisionOutOfBounds
	// CollisionWall means the point holds a wall tile.
	CollisionWall
	// CollisionCreature means another creature occupies the point.
	CollisionCreature
)

// Collision describes a refused move or spawn. Creature is set only for
// CollisionCreature.
type Collision struct {
	Kind     CollisionKind
	Creature arena.ID
}

// Level is the world state for one dungeon.
type Level struct {
	tiles grid.TileMap
	// Carved points in row-major order, the universe for influence maps.
	points []geometry.Point
	// Open floor tiles in row-major order, for spawn placement.
	open    []geometry.Point
	arena   *arena.Arena
	visible mapset.Set[geometry.Point]
	memory  map[geometry.Point]grid.Tile
	fields  map[arena.Faction]*dijkstra.Map
}

// New wraps a generated dungeon in level state with no creatures, no
// vision, and no memory.
func New(d *generation.Dungeon) *Level {
	return &Level{
		tiles:   d.Tiles,
		points:  d.Tiles.Points(),
		open:    d.OpenFloors,
		arena:   arena.New(),
		visible: mapset.New[geometry.Point](),
		memory:  make(map[geometry.Point]grid.Tile),
		fields:  make(map[arena.Faction]*dijkstra.Map),
	}
}

// Tiles returns the level's tile map.
func (l *Level) Tiles() grid.TileMap {
	return l.tiles
}

// Creatures returns the level's creature arena.
func (l *Level) Creatures() *arena.Arena {
	return l.arena
}

// CollisionAt returns what a creature would collide with at p, or a
// CollisionNone value if the point is open.
func (l *Level) CollisionAt(p geometry.Point) Collision {
	tile, ok := l.tiles.At(p)
	if !ok {
		return Collision{Kind: CollisionOutOfBounds}
	}
	if tile.IsWall() {
		return Collision{Kind: CollisionWall}
	}
	if id, occupied := l.arena.At(p); occupied {
		return Collision{Kind: CollisionCreature, Creature: id}
	}
	return Collision{Kind: CollisionNone}
}

// Spawn places a creature at p, reporting the collision if the point is
// not open.
func (l *Level) Spawn(f arena.Faction, p geometry.Point) (arena.ID, Collision) {
	if c := l.CollisionAt(p); c.Kind != CollisionNone {
		return 0, c
	}
	id, _ := l.arena.Spawn(f, p)
	return id, Collision{Kind: CollisionNone}
}

// SpawnAnywhere places a creature on the first open floor tile with no
// occupant, in row-major order. It fails only if the level is full.
func (l *Level) SpawnAnywhere(f arena.Faction) (arena.ID, bool) {
	for _, p := range l.open {
		if !l.arena.Occupied(p) {
			id, _ := l.arena.Spawn(f, p)
			return id, true
		}
	}
	return 0, false
}

// MoveCreature attempts to translate a creature by off, returning the
// collision that refused the move, if any. Resolution of creature-on-
// creature collisions (combat) is the surrounding game's concern.
func (l *Level) MoveCreature(id arena.ID, off geometry.Vector) Collision {
	c, ok := l.arena.Get(id)
	if !ok {
		panic("level: moving a creature that is not in the arena")
	}
	to := c.Pos.Add(off)
	if collision := l.CollisionAt(to); collision.Kind != CollisionNone {
		return collision
	}
	l.arena.Move(id, to)
	return Collision{Kind: CollisionNone}
}

// UpdateVision recomputes the visible set from the viewer origin and folds
// every visible carved tile into the level's memory.
func (l *Level) UpdateVision(origin geometry.Point) {
	l.visible = vision.Visible(origin, l.tiles.Blocks)
	l.visible.Each(func(p geometry.Point) {
		if tile, ok := l.tiles.At(p); ok {
			l.memory[p] = tile
		}
	})
}

// Visible reports whether p is in the current visible set.
func (l *Level) Visible(p geometry.Point) bool {
	return l.visible.Has(p)
}

// VisibleSet returns the current visible set. The set is replaced, not
// mutated, by UpdateVision, so callers may hold it for the turn.
func (l *Level) VisibleSet() mapset.Set[geometry.Point] {
	return l.visible
}

// Remembered returns the tile the viewer remembers at p, if it has ever
// been seen.
func (l *Level) Remembered(p geometry.Point) (grid.Tile, bool) {
	tile, ok := l.memory[p]
	return tile, ok
}

// UpdateInfluence rebuilds the influence map of every faction with living
// members from their current positions. Stale maps of extinct factions are
// dropped.
func (l *Level) UpdateInfluence() {
	fields := make(map[arena.Faction]*dijkstra.Map)
	for _, f := range l.arena.Factions() {
		fields[f] = dijkstra.Build(l.points, l.arena.GoalFunc(f), l.tiles.Blocks)
	}
	l.fields = fields
}

// Influence returns the faction's influence map from the last
// UpdateInfluence.
func (l *Level) Influence(f arena.Faction) (*dijkstra.Map, bool) {
	m, ok := l.fields[f]
	return m, ok
}
