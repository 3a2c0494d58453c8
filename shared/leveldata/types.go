// Package leveldata parses arena TMX files into world-space data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// ArenaData holds everything the host needs from an arena level, in world
// units. Tiled X maps to world X and Tiled Y maps to world Z.
type ArenaData struct {
	Name      string
	Width     float64
	Depth     float64
	Blocks    []BlockRect
	Elevators []ElevatorRect
	Spawns    []SpawnPoint
}

// BlockRect is a static obstacle.
type BlockRect struct {
	X, Z, W, D float64
	MinY, MaxY float64
}

// ElevatorRect is a platform that travels Travel units up from its resting
// extent and back, once per Period seconds.
type ElevatorRect struct {
	BlockRect
	Travel float64
	Period float64
}

// SpawnPoint is a player start. Y is the height of the capsule base.
type SpawnPoint struct {
	X, Y, Z float64
	Yaw     float64
	Index   int
}
