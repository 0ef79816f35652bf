// Package vision computes field of view over the tile grid using symmetric
// shadowcasting with diamond-shaped walls, adapted from
// https://www.albertford.com/shadowcasting/.
package vision

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/jonathansharman/rl/geometry"
)

// Visible computes the set of grid points visible from origin, blocked by
// any points where isBlocking returns true. Points outside the generated
// region must block sight, or the scan will not terminate. The origin is
// always visible. The result is symmetric for floor tiles: if A sees B
// then B sees A. Walls are revealed whenever their row section reaches
// them ("expansive walls"), so every wall bounding a convex room is
// visible from anywhere in that room.
func Visible(origin geometry.Point, isBlocking func(geometry.Point) bool) mapset.Set[geometry.Point] {
	visible := mapset.New[geometry.Point]()
	visible.Put(origin)

	for q := quadrantNorth; q <= quadrantWest; q++ {
		isWall := func(p quadrantPoint) bool {
			return isBlocking(q.transform(origin, p))
		}

		// Process the quadrant by row sections, starting with the entire
		// arc of the first row.
		stack := []quadrantRow{{
			distance: 1,
			start:    newSlope(-1, 1),
			end:      newSlope(1, 1),
		}}
		for len(stack) > 0 {
			row := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			prev := prevNone
			// A tile is in the row if the sector swept out by the row's
			// start and end slopes overlaps a diamond inscribed in the
			// tile, hence the tie-breaking round directions.
			minColumn := row.start.roundTiesUp(row.distance)
			maxColumn := row.end.roundTiesDown(row.distance)
			for column := minColumn; column <= maxColumn; column++ {
				p := quadrantPoint{distance: row.distance, column: column}
				wall := isWall(p)
				// Reveal walls unconditionally and floor tiles only if
				// their center is inside the slope bounds, preserving
				// symmetry for floors.
				if wall || row.containsCenter(p) {
					visible.Put(q.transform(origin, p))
				}
				if prev == prevFloor && wall {
					// Continue scanning the section before the wall on
					// the next row.
					stack = append(stack, quadrantRow{
						distance: row.distance + 1,
						start:    row.start,
						end:      p.wallTangentSlope(),
					})
				}
				if prev == prevWall && !wall {
					// Scanned past the far side of a wall: resume the
					// current row beyond it.
					row.start = p.wallTangentSlope()
				}
				if wall {
					prev = prevWall
				} else {
					prev = prevFloor
				}
			}
			if prev == prevFloor {
				stack = append(stack, quadrantRow{
					distance: row.distance + 1,
					start:    row.start,
					end:      row.end,
				})
			}
		}
	}

	return visible
}

// quadrant identifies one of the four 90-degree sectors around an origin.
type quadrant int

const (
	quadrantNorth quadrant = iota
	quadrantSouth
	quadrantEast
	quadrantWest
)

// transform maps quadrant-local coordinates back to grid coordinates
// relative to the given origin.
func (q quadrant) transform(origin geometry.Point, p quadrantPoint) geometry.Point {
	switch q {
	case quadrantNorth:
		return geometry.Point{X: origin.X - p.column, Y: origin.Y - p.distance}
	case quadrantSouth:
		return geometry.Point{X: origin.X + p.column, Y: origin.Y + p.distance}
	case quadrantEast:
		return geometry.Point{X: origin.X + p.distance, Y: origin.Y - p.column}
	default:
		return geometry.Point{X: origin.X - p.distance, Y: origin.Y + p.column}
	}
}

// quadrantPoint is a tile coordinate local to a quadrant: distance from the
// origin and lateral offset within the row.
type quadrantPoint struct {
	distance int
	column   int
}

// wallTangentSlope returns the slope from the quadrant origin to the
// origin-facing tangent line of a diamond-shaped wall at p.
func (p quadrantPoint) wallTangentSlope() slope {
	return newSlope(2*p.column-1, 2*p.distance)
}

// quadrantRow is a section of one row of a quadrant, bounded by start and
// end slopes.
type quadrantRow struct {
	distance   int
	start, end slope
}

// containsCenter reports whether the center of the tile at p lies between
// the row's slopes.
func (r quadrantRow) containsCenter(p quadrantPoint) bool {
	return r.start.atMost(r.distance, p.column) &&
		r.end.atLeast(r.distance, p.column)
}

// prevTile tracks what the previous tile in a row scan was.
type prevTile int

const (
	prevNone prevTile = iota
	prevFloor
	prevWall
)
