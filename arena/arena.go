// Package arena owns the live creatures of a level, addressed by stable
// identifier. The spatial engines never inspect creatures directly; they
// receive boolean predicates built over the arena.
package arena

import (
	"sort"

	"github.com/jonathansharman/rl/geometry"
)

// ID is a unique identifier for a creature, stable for the creature's
// lifetime.
type ID uint64

// Faction groups creatures that share goals. Influence maps are built per
// faction.
type Faction int

const (
	FactionHumans Faction = iota
	FactionGoblins
)

// Creature is a live occupant of the level. Combat stats live outside this
// core; the arena tracks only identity, allegiance, and position.
type Creature struct {
	ID      ID
	Faction Faction
	Pos     geometry.Point
}

// Arena manages all creatures on a level with a position index for
// constant-time occupancy checks.
type Arena struct {
	nextID    ID
	creatures map[ID]*Creature
	byPos     map[geometry.Point]ID
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{
		creatures: make(map[ID]*Creature),
		byPos:     make(map[geometry.Point]ID),
	}
}

// Spawn adds a creature at pos and returns its ID. Spawning on an occupied
// tile fails.
func (a *Arena) Spawn(f Faction, pos geometry.Point) (ID, bool) {
	if _, occupied := a.byPos[pos]; occupied {
		return 0, false
	}
	a.nextID++
	id := a.nextID
	a.creatures[id] = &Creature{ID: id, Faction: f, Pos: pos}
	a.byPos[pos] = id
	return id, true
}

// Remove deletes a creature and frees its tile. Removing an unknown ID is
// a no-op.
func (a *Arena) Remove(id ID) {
	if c, ok := a.creatures[id]; ok {
		delete(a.byPos, c.Pos)
		delete(a.creatures, id)
	}
}

// Get returns the creature with the given ID.
func (a *Arena) Get(id ID) (*Creature, bool) {
	c, ok := a.creatures[id]
	return c, ok
}

// At returns the ID of the creature standing at pos, if any.
func (a *Arena) At(pos geometry.Point) (ID, bool) {
	id, ok := a.byPos[pos]
	return id, ok
}

// Occupied reports whether any creature stands at pos.
func (a *Arena) Occupied(pos geometry.Point) bool {
	_, ok := a.byPos[pos]
	return ok
}

// Move relocates a creature to an unoccupied tile, keeping the position
// index consistent. Moving onto an occupied tile fails; tile passability
// is the caller's concern.
func (a *Arena) Move(id ID, to geometry.Point) bool {
	c, ok := a.creatures[id]
	if !ok {
		return false
	}
	if occupant, occupied := a.byPos[to]; occupied && occupant != id {
		return false
	}
	delete(a.byPos, c.Pos)
	c.Pos = to
	a.byPos[to] = id
	return true
}

// Size returns the number of live creatures.
func (a *Arena) Size() int {
	return len(a.creatures)
}

// Factions returns the distinct factions with living members, in ascending
// order.
func (a *Arena) Factions() []Faction {
	seen := make(map[Faction]bool)
	for _, c := range a.creatures {
		seen[c.Faction] = true
	}
	factions := make([]Faction, 0, len(seen))
	for f := range seen {
		factions = append(factions, f)
	}
	sort.Slice(factions, func(i, j int) bool { return factions[i] < factions[j] })
	return factions
}

// GoalFunc returns a goal predicate satisfied at the positions of the
// faction's living members, for seeding that faction's influence map. The
// predicate reads the arena live, so it must not outlive the turn it was
// built for.
func (a *Arena) GoalFunc(f Faction) func(geometry.Point) bool {
	return func(p geometry.Point) bool {
		id, ok := a.byPos[p]
		return ok && a.creatures[id].Faction == f
	}
}
