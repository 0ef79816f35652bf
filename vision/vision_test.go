package vision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathansharman/rl/geometry"
	"github.com/jonathansharman/rl/vision"
)

// blockingFrom builds a sight-blocking predicate from an ASCII map where
// '#' blocks and '.' is open. Anything outside the rows blocks, which also
// bounds the scan.
func blockingFrom(rows []string) func(geometry.Point) bool {
	return func(p geometry.Point) bool {
		if p.Y < 0 || p.Y >= len(rows) || p.X < 0 || p.X >= len(rows[p.Y]) {
			return true
		}
		return rows[p.Y][p.X] == '#'
	}
}

// floorsOf lists the open points of an ASCII map.
func floorsOf(rows []string) []geometry.Point {
	var floors []geometry.Point
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '.' {
				floors = append(floors, geometry.Point{X: x, Y: y})
			}
		}
	}
	return floors
}

var openRoom = []string{
	"#######",
	"#.....#",
	"#.....#",
	"#.....#",
	"#.....#",
	"#.....#",
	"#######",
}

func TestOriginAlwaysVisible(t *testing.T) {
	blockedEverywhere := func(geometry.Point) bool { return true }
	origin := geometry.Point{X: 3, Y: 7}

	visible := vision.Visible(origin, blockedEverywhere)
	assert.True(t, visible.Has(origin))
	// The adjacent ring of walls is revealed; nothing past it is.
	assert.Equal(t, 9, visible.Size())
	for _, off := range geometry.NeighborOffsets8 {
		assert.True(t, visible.Has(origin.Add(off)))
	}
}

func TestOpenRoomFullyVisibleFromCenter(t *testing.T) {
	visible := vision.Visible(geometry.Point{X: 3, Y: 3}, blockingFrom(openRoom))

	// All 25 floor tiles of a 5x5 open room are visible from its center.
	for _, p := range floorsOf(openRoom) {
		assert.True(t, visible.Has(p), "floor %v not visible", p)
	}
}

func TestExpansiveWallsRevealConvexRoomBoundary(t *testing.T) {
	visible := vision.Visible(geometry.Point{X: 3, Y: 3}, blockingFrom(openRoom))

	// Every wall bounding the room is revealed, including the corners,
	// even where the strict center test would hide them.
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if openRoom[y][x] == '#' {
				assert.True(t, visible.Has(geometry.Point{X: x, Y: y}),
					"boundary wall (%d,%d) not visible", x, y)
			}
		}
	}
	// 25 floors plus the 24 boundary walls, and nothing beyond.
	assert.Equal(t, 49, visible.Size())
}

func TestFloorVisibilityIsSymmetric(t *testing.T) {
	maps := [][]string{
		openRoom,
		{
			"#######",
			"#...###",
			"###.###",
			"###...#",
			"#######",
		},
	}
	for _, rows := range maps {
		floors := floorsOf(rows)
		isBlocking := blockingFrom(rows)
		for _, a := range floors {
			visibleFromA := vision.Visible(a, isBlocking)
			for _, b := range floors {
				if a == b {
					continue
				}
				assert.Equal(t,
					visibleFromA.Has(b),
					vision.Visible(b, isBlocking).Has(a),
					"asymmetric vision between %v and %v", a, b)
			}
		}
	}
}

func TestCorridorBendBlocksFarEnd(t *testing.T) {
	bend := []string{
		"#####",
		"#...#",
		"###.#",
		"###.#",
		"#####",
	}
	isBlocking := blockingFrom(bend)
	farEnd := geometry.Point{X: 1, Y: 1}
	corner := geometry.Point{X: 3, Y: 1}
	aroundBend := geometry.Point{X: 3, Y: 3}

	fromFarEnd := vision.Visible(farEnd, isBlocking)
	require.True(t, fromFarEnd.Has(corner), "the bend corner should be visible down the corridor")
	assert.False(t, fromFarEnd.Has(aroundBend), "the tile around the bend should be hidden from the far end")

	fromCorner := vision.Visible(corner, isBlocking)
	assert.True(t, fromCorner.Has(aroundBend))
	assert.True(t, fromCorner.Has(farEnd))
}

func TestInteriorPillarCastsShadow(t *testing.T) {
	pillar := []string{
		"#########",
		"#.......#",
		"#.......#",
		"#...#...#",
		"#.......#",
		"#.......#",
		"#########",
	}
	isBlocking := blockingFrom(pillar)
	origin := geometry.Point{X: 1, Y: 3}

	visible := vision.Visible(origin, isBlocking)
	assert.True(t, visible.Has(geometry.Point{X: 4, Y: 3}), "the pillar itself is visible")
	assert.False(t, visible.Has(geometry.Point{X: 5, Y: 3}), "the tile directly behind the pillar is shadowed")
	assert.False(t, visible.Has(geometry.Point{X: 7, Y: 3}), "the far wall behind the pillar is shadowed")
	assert.True(t, visible.Has(geometry.Point{X: 5, Y: 1}), "tiles outside the shadow cone remain visible")
	assert.True(t, visible.Has(geometry.Point{X: 5, Y: 5}))
}

func TestVisionTerminatesOnLargeOpenField(t *testing.T) {
	// A large bounded field exercises many row splits without hanging.
	field := geometry.Rectangle{
		Pos:  geometry.Point{X: 0, Y: 0},
		Size: geometry.Vector{X: 101, Y: 101},
	}
	isBlocking := func(p geometry.Point) bool { return !field.Contains(p) }

	visible := vision.Visible(geometry.Point{X: 50, Y: 50}, isBlocking)
	// Every interior tile and the revealed boundary ring are present.
	assert.GreaterOrEqual(t, visible.Size(), field.Area())
}
