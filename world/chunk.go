package world

import "log/slog"

// Chunk is one ChunkSize x ChunkHeight x ChunkSize column of blocks.
//
// Neighbor links are non-owning: whoever owns the chunks (see World) keeps every
// linked chunk alive for as long as the links exist. Any slot may be nil.
type Chunk struct {
	pos ChunkPos

	// blockMap is laid out as x + z*ChunkSize + y*ChunkSize*ChunkSize.
	blockMap  []BlockType
	neighbors [numDirections]*Chunk

	sink MeshSink

	// scratch state for BuildMesh, emptied after every submit
	vertices []Vertex
	indices  []uint32

	faces    int
	rebuilds int
}

// NewChunk returns an all-air chunk at lattice position (chunkX, chunkZ).
// The sink receives every mesh built for it and may be nil.
func NewChunk(chunkX, chunkZ int, sink MeshSink) *Chunk {
	return &Chunk{
		pos:      ChunkPos{X: chunkX, Z: chunkZ},
		blockMap: make([]BlockType, chunkVolume),
		sink:     sink,
	}
}

func (c *Chunk) Position() ChunkPos {
	return c.pos
}

func blockIndex(x, y, z int) int {
	return x + z*ChunkSize + y*ChunkSize*ChunkSize
}

func inRange(a, min, max int) bool {
	return min <= a && a < max
}

func (c *Chunk) toLocal(worldX, worldZ int) (int, int) {
	return worldX - ChunkSize*c.pos.X, worldZ - ChunkSize*c.pos.Z
}

func (c *Chunk) toWorld(x, z int) (int, int) {
	return x + ChunkSize*c.pos.X, z + ChunkSize*c.pos.Z
}

// BlockAt returns the cell at world coordinates, following neighbor links when
// the column lies outside this chunk. It returns nil when y is out of range or
// the chunk that would own the column is not linked.
func (c *Chunk) BlockAt(worldX, y, worldZ int) *BlockType {
	if !inRange(y, 0, ChunkHeight) {
		return nil
	}
	x, z := c.toLocal(worldX, worldZ)

	if !inRange(x, 0, ChunkSize) {
		dir := NegX
		if x > 0 {
			dir = PosX
		}
		neighbor := c.neighbors[dir]
		if neighbor == nil {
			return nil
		}
		return neighbor.BlockAt(worldX, y, worldZ)
	}
	if !inRange(z, 0, ChunkSize) {
		dir := NegZ
		if z > 0 {
			dir = PosZ
		}
		neighbor := c.neighbors[dir]
		if neighbor == nil {
			return nil
		}
		return neighbor.BlockAt(worldX, y, worldZ)
	}

	return &c.blockMap[blockIndex(x, y, z)]
}

// BlockAtLocal is BlockAt restricted to this chunk's own grid.
func (c *Chunk) BlockAtLocal(x, y, z int) *BlockType {
	if !inRange(x, 0, ChunkSize) || !inRange(y, 0, ChunkHeight) || !inRange(z, 0, ChunkSize) {
		return nil
	}
	return &c.blockMap[blockIndex(x, y, z)]
}

func (c *Chunk) SetNeighbor(dir Direction, neighbor *Chunk) {
	if dir >= numDirections {
		return
	}
	c.neighbors[dir] = neighbor
}

func (c *Chunk) Neighbor(dir Direction) *Chunk {
	if dir >= numDirections {
		return nil
	}
	return c.neighbors[dir]
}

// Generate fills the grid from a height source: every cell at or below the
// column height is solid, everything above it is air.
func (c *Chunk) Generate(height HeightFunc) {
	var heightmap [ChunkSize][ChunkSize]int
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			wx, wz := c.toWorld(x, z)
			heightmap[x][z] = height(wx, wz)
		}
	}

	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkHeight; y++ {
			for z := 0; z < ChunkSize; z++ {
				if y <= heightmap[x][z] {
					c.blockMap[blockIndex(x, y, z)] = Solid
				} else {
					c.blockMap[blockIndex(x, y, z)] = Air
				}
			}
		}
	}
}

// RemoveBlock clears the solid cell at world coordinates and returns what it held.
// ok is false when the cell is absent or already air; nothing changes then.
// A successful removal rebuilds this chunk and every linked neighbor; removing
// an air cell rebuilds nothing.
func (c *Chunk) RemoveBlock(worldX, y, worldZ int) (prev BlockType, ok bool) {
	block := c.BlockAt(worldX, y, worldZ)
	if block == nil || *block == Air {
		return Air, false
	}

	prev = *block
	*block = Air

	slog.Debug("block removed", "x", worldX, "y", y, "z", worldZ, "chunk", c.pos, "type", prev)

	c.BuildMesh()
	c.UpdateNeighbors()

	return prev, true
}

// UpdateNeighbors rebuilds the mesh of every linked neighbor.
func (c *Chunk) UpdateNeighbors() {
	for _, neighbor := range c.neighbors {
		if neighbor != nil {
			neighbor.BuildMesh()
		}
	}
}

// Rebuilds counts how many times BuildMesh has run on this chunk.
func (c *Chunk) Rebuilds() int {
	return c.rebuilds
}

// Faces is the number of quads in the last built mesh.
func (c *Chunk) Faces() int {
	return c.faces
}
