package generation

import "github.com/jonathansharman/rl/geometry"

// Config holds the dungeon generation parameters.
type Config struct {
	// Region is the tile rectangle the dungeon must fit inside, including a
	// one-tile border reserved for the perimeter wall.
	Region geometry.Rectangle
	// MinFloorRatio is the fraction of the region's area that should be
	// floor before room placement stops. Generation may fall short of this
	// target if the placement retry ceiling is reached first.
	MinFloorRatio float64
	// MinRoomSize and MaxRoomSize bound each side of a room in tiles.
	MinRoomSize int
	MaxRoomSize int
	// PlacementRetries caps how many rejected room candidates are tolerated
	// before room placement gives up.
	PlacementRetries int
	// ConnectionSlack is the gap distance the most recent corridor must
	// exceed before connection stops once all rooms share one set. Without
	// it, a degenerate zero-distance merge could end connection while a
	// better corridor is still queued.
	ConnectionSlack int
}

// NewConfig returns a config with default parameters.
func NewConfig() Config {
	return Config{
		Region: geometry.Rectangle{
			Pos:  geometry.Point{X: 0, Y: 0},
			Size: geometry.Vector{X: 64, Y: 36},
		},
		MinFloorRatio:    0.3,
		MinRoomSize:      5,
		MaxRoomSize:      10,
		PlacementRetries: 100,
		ConnectionSlack:  1,
	}
}
