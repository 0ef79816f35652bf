package level_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathansharman/rl/arena"
	"github.com/jonathansharman/rl/generation"
	"github.com/jonathansharman/rl/geometry"
	"github.com/jonathansharman/rl/grid"
	"github.com/jonathansharman/rl/level"
)

// smallDungeon hand-builds a two-room dungeon with one corridor so tests
// have exact geometry to assert against.
//
//	##########
//	#...######
//	#........#
//	#...####.#
//	##########
func smallDungeon() *generation.Dungeon {
	rows := []string{
		"##########",
		"#...######",
		"#........#",
		"#...####.#",
		"##########",
	}
	tiles := grid.TileMap{}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			p := geometry.Point{X: x, Y: y}
			switch row[x] {
			case '#':
				tiles[p] = grid.TileWall
			case '.':
				tiles[p] = grid.TileFloorStone
			}
		}
	}
	return &generation.Dungeon{Tiles: tiles, OpenFloors: tiles.FloorPoints()}
}

func TestCollisionTaxonomy(t *testing.T) {
	l := level.New(smallDungeon())

	assert.Equal(t, level.CollisionOutOfBounds, l.CollisionAt(geometry.Point{X: 50, Y: 50}).Kind)
	assert.Equal(t, level.CollisionWall, l.CollisionAt(geometry.Point{X: 0, Y: 0}).Kind)
	assert.Equal(t, level.CollisionNone, l.CollisionAt(geometry.Point{X: 1, Y: 1}).Kind)

	id, c := l.Spawn(arena.FactionHumans, geometry.Point{X: 1, Y: 1})
	require.Equal(t, level.CollisionNone, c.Kind)
	got := l.CollisionAt(geometry.Point{X: 1, Y: 1})
	assert.Equal(t, level.CollisionCreature, got.Kind)
	assert.Equal(t, id, got.Creature)
}

func TestSpawnRefusals(t *testing.T) {
	l := level.New(smallDungeon())

	_, c := l.Spawn(arena.FactionHumans, geometry.Point{X: 0, Y: 0})
	assert.Equal(t, level.CollisionWall, c.Kind)
	_, c = l.Spawn(arena.FactionHumans, geometry.Point{X: 42, Y: 0})
	assert.Equal(t, level.CollisionOutOfBounds, c.Kind)

	id, c := l.Spawn(arena.FactionHumans, geometry.Point{X: 2, Y: 2})
	require.Equal(t, level.CollisionNone, c.Kind)
	_, c = l.Spawn(arena.FactionGoblins, geometry.Point{X: 2, Y: 2})
	assert.Equal(t, level.CollisionCreature, c.Kind)
	assert.Equal(t, id, c.Creature)
}

func TestSpawnAnywhereUsesFirstOpenFloor(t *testing.T) {
	l := level.New(smallDungeon())

	first, ok := l.SpawnAnywhere(arena.FactionHumans)
	require.True(t, ok)
	c, _ := l.Creatures().Get(first)
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, c.Pos, "row-major first open floor")

	second, ok := l.SpawnAnywhere(arena.FactionGoblins)
	require.True(t, ok)
	c, _ = l.Creatures().Get(second)
	assert.Equal(t, geometry.Point{X: 2, Y: 1}, c.Pos, "next open floor when the first is taken")
}

func TestMoveCreature(t *testing.T) {
	l := level.New(smallDungeon())
	id, _ := l.Spawn(arena.FactionHumans, geometry.Point{X: 1, Y: 1})

	assert.Equal(t, level.CollisionNone, l.MoveCreature(id, geometry.Down).Kind)
	c, _ := l.Creatures().Get(id)
	assert.Equal(t, geometry.Point{X: 1, Y: 2}, c.Pos)

	// Refused moves leave the creature in place.
	assert.Equal(t, level.CollisionWall, l.MoveCreature(id, geometry.Left).Kind)
	c, _ = l.Creatures().Get(id)
	assert.Equal(t, geometry.Point{X: 1, Y: 2}, c.Pos)

	blocker, _ := l.Spawn(arena.FactionGoblins, geometry.Point{X: 2, Y: 2})
	got := l.MoveCreature(id, geometry.Right)
	assert.Equal(t, level.CollisionCreature, got.Kind)
	assert.Equal(t, blocker, got.Creature)

	assert.Panics(t, func() { l.MoveCreature(arena.ID(999), geometry.Up) })
}

func TestVisionAndMemory(t *testing.T) {
	l := level.New(smallDungeon())
	behindBend := geometry.Point{X: 8, Y: 3}

	l.UpdateVision(geometry.Point{X: 2, Y: 2})
	assert.True(t, l.Visible(geometry.Point{X: 2, Y: 2}))
	assert.True(t, l.Visible(geometry.Point{X: 6, Y: 2}), "corridor is in line of sight")
	assert.False(t, l.Visible(behindBend), "the far cell is around a corner")

	// Seen tiles are remembered.
	tile, ok := l.Remembered(geometry.Point{X: 6, Y: 2})
	require.True(t, ok)
	assert.True(t, tile.IsFloor())
	_, ok = l.Remembered(behindBend)
	assert.False(t, ok)

	// Memory persists after vision moves elsewhere.
	l.UpdateVision(geometry.Point{X: 8, Y: 2})
	assert.False(t, l.Visible(geometry.Point{X: 1, Y: 1}))
	_, ok = l.Remembered(geometry.Point{X: 6, Y: 2})
	assert.True(t, ok)
	_, ok = l.Remembered(behindBend)
	assert.True(t, ok)
}

func TestInfluenceMapsPerFaction(t *testing.T) {
	l := level.New(smallDungeon())
	humanPos := geometry.Point{X: 1, Y: 1}
	goblinPos := geometry.Point{X: 8, Y: 2}
	l.Spawn(arena.FactionHumans, humanPos)
	goblin, _ := l.Spawn(arena.FactionGoblins, goblinPos)

	_, ok := l.Influence(arena.FactionHumans)
	assert.False(t, ok, "no influence maps before the first update")

	l.UpdateInfluence()
	humans, ok := l.Influence(arena.FactionHumans)
	require.True(t, ok)
	goblins, ok := l.Influence(arena.FactionGoblins)
	require.True(t, ok)

	d, ok := humans.Distance(humanPos)
	require.True(t, ok)
	assert.Zero(t, d)
	d, ok = humans.Distance(goblinPos)
	require.True(t, ok)
	assert.Equal(t, 8, d)
	d, ok = goblins.Distance(goblinPos)
	require.True(t, ok)
	assert.Zero(t, d)

	// Following the human map's gradient walks the goblin to the human.
	rng := rand.New(rand.NewSource(1))
	p := goblinPos
	for i := 0; i < 8; i++ {
		off, ok := humans.StepTowards(p, rng)
		require.True(t, ok)
		p = p.Add(off)
	}
	assert.Equal(t, humanPos, p)

	// Extinct factions drop out on the next update.
	l.Creatures().Remove(goblin)
	l.UpdateInfluence()
	_, ok = l.Influence(arena.FactionGoblins)
	assert.False(t, ok)
}

func TestGeneratedLevelEndToEnd(t *testing.T) {
	g := generation.NewGenerator()
	g.SetSeed(9)
	l := level.New(g.Generate(generation.NewConfig()))

	id, ok := l.SpawnAnywhere(arena.FactionHumans)
	require.True(t, ok)
	c, _ := l.Creatures().Get(id)

	l.UpdateVision(c.Pos)
	assert.True(t, l.Visible(c.Pos))

	l.UpdateInfluence()
	humans, ok := l.Influence(arena.FactionHumans)
	require.True(t, ok)
	d, ok := humans.Distance(c.Pos)
	require.True(t, ok)
	assert.Zero(t, d)
}
