// Package geometry provides the integer grid primitives shared by dungeon
// generation, vision, and pathfinding: points, vectors, rectangles, and
// rectangle-intersection arithmetic.
package geometry

import "math/rand"

// Point is an integer coordinate on the tile grid.
type Point struct {
	X, Y int
}

// Vector is an integer offset between grid points.
type Vector struct {
	X, Y int
}

// Add returns the point offset by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the point offset by the negation of v.
func (p Point) Sub(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Diff returns the offset from q to p.
func (p Point) Diff(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Unit offsets to adjacent tiles. The y-axis points down.
var (
	Up        = Vector{X: 0, Y: -1}
	Down      = Vector{X: 0, Y: 1}
	Left      = Vector{X: -1, Y: 0}
	Right     = Vector{X: 1, Y: 0}
	UpLeft    = Vector{X: -1, Y: -1}
	UpRight   = Vector{X: 1, Y: -1}
	DownLeft  = Vector{X: -1, Y: 1}
	DownRight = Vector{X: 1, Y: 1}
)

// NeighborOffsets4 holds the offsets to the four orthogonally adjacent tiles.
var NeighborOffsets4 = [4]Vector{Up, Down, Left, Right}

// NeighborOffsets8 holds the offsets to all eight adjacent tiles.
var NeighborOffsets8 = [8]Vector{
	Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight,
}

// RandomNeighbor4 returns the offset to a random adjacent tile, excluding
// diagonals.
func RandomNeighbor4(rng *rand.Rand) Vector {
	return NeighborOffsets4[rng.Intn(len(NeighborOffsets4))]
}

// RandomNeighbor8 returns the offset to a random adjacent tile, including
// diagonals.
func RandomNeighbor8(rng *rand.Rand) Vector {
	return NeighborOffsets8[rng.Intn(len(NeighborOffsets8))]
}

// Rectangle is an axis-aligned rectangle of tiles. Size components are
// non-negative; a rectangle with a zero size component contains no tiles.
type Rectangle struct {
	Pos  Point
	Size Vector
}

// MaxX returns the exclusive right edge of the rectangle.
func (r Rectangle) MaxX() int {
	return r.Pos.X + r.Size.X
}

// MaxY returns the exclusive bottom edge of the rectangle.
func (r Rectangle) MaxY() int {
	return r.Pos.Y + r.Size.Y
}

// Area returns the rectangle's width times height.
func (r Rectangle) Area() int {
	return r.Size.X * r.Size.Y
}

// Empty reports whether the rectangle contains no tiles.
func (r Rectangle) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X < r.MaxX() && p.Y >= r.Pos.Y && p.Y < r.MaxY()
}

// IntersectionKind classifies how two rectangles relate along each axis.
type IntersectionKind int

const (
	// IntersectReal means the rectangles truly overlap.
	IntersectReal IntersectionKind = iota
	// IntersectHorizontal means the rectangles share x-coordinates but not
	// y-coordinates.
	IntersectHorizontal
	// IntersectVertical means the rectangles share y-coordinates but not
	// x-coordinates.
	IntersectVertical
	// IntersectNone means the rectangles share neither x- nor y-coordinates.
	IntersectNone
)

// Intersection is the result of intersecting two rectangles. For
// IntersectReal, Rect is the overlapping region. Otherwise Rect is the empty
// space between the rectangles: the gap between horizontally overlapping
// regions, between vertically overlapping regions, or between nearest
// corners.
type Intersection struct {
	Kind IntersectionKind
	Rect Rectangle
}

// Distance returns the Manhattan distance between the intersected
// rectangles, measured between nearest edges or corners. Overlapping or
// touching rectangles are zero distance apart.
func (in Intersection) Distance() int {
	switch in.Kind {
	case IntersectReal:
		return 0
	case IntersectHorizontal:
		return in.Rect.Size.Y
	case IntersectVertical:
		return in.Rect.Size.X
	default:
		return in.Rect.Size.X + in.Rect.Size.Y
	}
}

// Intersect classifies the overlap between r and other and returns the
// overlapping region or the gap between them.
func (r Rectangle) Intersect(other Rectangle) Intersection {
	startX := max(r.Pos.X, other.Pos.X)
	startY := max(r.Pos.Y, other.Pos.Y)
	endX := min(r.MaxX(), other.MaxX())
	endY := min(r.MaxY(), other.MaxY())
	switch {
	case startX < endX && startY < endY:
		return Intersection{
			Kind: IntersectReal,
			Rect: Rectangle{
				Pos:  Point{X: startX, Y: startY},
				Size: Vector{X: endX - startX, Y: endY - startY},
			},
		}
	case startX < endX:
		return Intersection{
			Kind: IntersectHorizontal,
			Rect: Rectangle{
				Pos:  Point{X: startX, Y: endY},
				Size: Vector{X: endX - startX, Y: startY - endY},
			},
		}
	case startY < endY:
		return Intersection{
			Kind: IntersectVertical,
			Rect: Rectangle{
				Pos:  Point{X: endX, Y: startY},
				Size: Vector{X: startX - endX, Y: endY - startY},
			},
		}
	default:
		return Intersection{
			Kind: IntersectNone,
			Rect: Rectangle{
				Pos:  Point{X: endX, Y: endY},
				Size: Vector{X: startX - endX, Y: startY - endY},
			},
		}
	}
}

// Touching reports whether r and other overlap or are edge-adjacent,
// inclusive of shared edges and corners.
func (r Rectangle) Touching(other Rectangle) bool {
	startX := max(r.Pos.X, other.Pos.X)
	startY := max(r.Pos.Y, other.Pos.Y)
	endX := min(r.MaxX(), other.MaxX())
	endY := min(r.MaxY(), other.MaxY())
	return startX <= endX && startY <= endY
}
