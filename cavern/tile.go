package cavern

// TileType names the tile families the classifier emits.
type TileType uint8

const (
	// TileNone marks an empty cell
	TileNone TileType = iota

	// TileWallFace is a solid wall seen from the south, variants 0..3
	// keyed by which sides have wall neighbors
	TileWallFace

	// TileWallCap is the solid top of a wall mass and the map border
	TileWallCap

	// TileRock is a solid outcrop with open air to its north; the floor
	// shows through beneath it
	TileRock

	// TileStoneFloor and TileDirtFloor are passable background texture
	TileStoneFloor
	TileDirtFloor
)

// String returns the tile type name for logs.
func (t TileType) String() string {
	switch t {
	case TileNone:
		return "none"
	case TileWallFace:
		return "wall_face"
	case TileWallCap:
		return "wall_cap"
	case TileRock:
		return "rock"
	case TileStoneFloor:
		return "stone_floor"
	case TileDirtFloor:
		return "dirt_floor"
	}
	return "unknown"
}

// Solid reports whether the tile type blocks movement.
func (t TileType) Solid() bool {
	switch t {
	case TileWallFace, TileWallCap, TileRock:
		return true
	}
	return false
}

// TileCode is a classified cell: the tile family plus a texture variation.
type TileCode struct {
	Type      TileType
	Variation int
}

// Wall face variants keyed by flanking walls
const (
	FaceBothSides = 0
	FaceWestOnly  = 1
	FaceEastOnly  = 2
	FaceAlone     = 3
)

// Texture variation counts per family
const (
	WallCapVariants    = 2
	RockVariants       = 2
	StoneFloorVariants = 4
	DirtFloorVariants  = 6
)
