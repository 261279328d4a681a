package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ChunkSize   = 16
	ChunkHeight = 128

	chunkVolume = ChunkSize * ChunkSize * ChunkHeight
)

// BlockType is the code stored in every grid cell. Air (0) is empty, anything else is solid.
type BlockType uint32

const (
	Air   BlockType = 0
	Solid BlockType = 1
)

func (b BlockType) IsSolid() bool {
	return b != Air
}

// ChunkPos locates a chunk in the chunk lattice.
type ChunkPos struct {
	X int
	Z int
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// Direction is one of the four cardinal neighbor slots of a chunk.
type Direction uint8

const (
	PosX Direction = iota
	NegX
	PosZ
	NegZ

	numDirections = 4
)

var directionNames = [numDirections]string{"+X", "-X", "+Z", "-Z"}

func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// DirectionOf maps a lattice offset to its neighbor slot. Only axis-aligned unit
// offsets are representable; zero and diagonal offsets report false.
func DirectionOf(dx, dz int) (Direction, bool) {
	if dx != 0 && dz != 0 {
		return 0, false
	}
	if dx == 1 {
		return PosX, true
	} else if dx == -1 {
		return NegX, true
	} else if dz == 1 {
		return PosZ, true
	} else if dz == -1 {
		return NegZ, true
	}
	return 0, false
}

func (d Direction) Offset() (dx, dz int) {
	switch d {
	case PosX:
		return 1, 0
	case NegX:
		return -1, 0
	case PosZ:
		return 0, 1
	case NegZ:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Vertex is the record handed to the renderer: position, texture coordinate, normal.
// Eight tightly packed float32s, 32 bytes per vertex.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

const (
	VertexStride         = 8 * 4
	VertexPositionOffset = 0
	VertexTexCoordOffset = 3 * 4
	VertexNormalOffset   = 5 * 4
)

// HeightFunc returns the terrain height of a world column.
type HeightFunc func(worldX, worldZ int) int
