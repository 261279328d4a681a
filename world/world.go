package world

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World owns a fixed set of chunks and keeps their neighbor links consistent.
// Chunks are never destroyed, so links handed out between them stay valid.
type World struct {
	chunks map[ChunkPos]*Chunk
	order  []*Chunk
}

// NewWorld creates every chunk in [-radius, radius] on both lattice axes, fills
// them from height, links cardinal neighbors and builds each mesh once.
// newSink may be nil, in which case chunks are built without a sink.
func NewWorld(radius int, height HeightFunc, newSink func(pos ChunkPos) MeshSink) *World {
	w := &World{chunks: make(map[ChunkPos]*Chunk)}

	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			pos := ChunkPos{X: cx, Z: cz}
			var sink MeshSink
			if newSink != nil {
				sink = newSink(pos)
			}
			chunk := NewChunk(cx, cz, sink)
			chunk.Generate(height)
			w.chunks[pos] = chunk
			w.order = append(w.order, chunk)
		}
	}

	// Link is symmetric, so looking forward on each axis covers every pair once.
	for _, chunk := range w.order {
		for _, dir := range [...]Direction{PosX, PosZ} {
			dx, dz := dir.Offset()
			if neighbor, ok := w.chunks[ChunkPos{chunk.pos.X + dx, chunk.pos.Z + dz}]; ok {
				Link(chunk, neighbor)
			}
		}
	}

	for _, chunk := range w.order {
		chunk.BuildMesh()
	}

	slog.Info("world generated", "chunks", len(w.order), "radius", radius)
	return w
}

// Link wires a and b to each other when they are cardinal neighbors in the lattice.
func Link(a, b *Chunk) bool {
	dir, ok := DirectionOf(b.pos.X-a.pos.X, b.pos.Z-a.pos.Z)
	if !ok {
		return false
	}
	a.SetNeighbor(dir, b)
	b.SetNeighbor(dir.Opposite(), a)
	return true
}

func (w *World) Chunk(chunkX, chunkZ int) *Chunk {
	return w.chunks[ChunkPos{X: chunkX, Z: chunkZ}]
}

// ChunkAt returns the chunk owning the world column, or nil.
func (w *World) ChunkAt(worldX, worldZ int) *Chunk {
	return w.Chunk(floorDiv(worldX, ChunkSize), floorDiv(worldZ, ChunkSize))
}

// Chunks returns every chunk in creation order.
func (w *World) Chunks() []*Chunk {
	return w.order
}

func (w *World) BlockAt(worldX, y, worldZ int) *BlockType {
	chunk := w.ChunkAt(worldX, worldZ)
	if chunk == nil {
		return nil
	}
	return chunk.BlockAt(worldX, y, worldZ)
}

func (w *World) Solid(worldX, y, worldZ int) bool {
	block := w.BlockAt(worldX, y, worldZ)
	return block != nil && block.IsSolid()
}

func (w *World) RemoveBlock(worldX, y, worldZ int) (BlockType, bool) {
	chunk := w.ChunkAt(worldX, worldZ)
	if chunk == nil {
		return Air, false
	}
	return chunk.RemoveBlock(worldX, y, worldZ)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Hit is the first solid cell found by Raycast and the face normal the ray entered through.
type Hit struct {
	X, Y, Z int
	Normal  [3]int
}

// Raycast walks the cells crossed by the ray one at a time and returns the first
// solid one within reach. Cell (x, y, z) spans [x, x+1) on every axis.
func (w *World) Raycast(origin, dir mgl32.Vec3, reach float32) (Hit, bool) {
	if dir.Len() == 0 || reach <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	var (
		cell   [3]int
		step   [3]int
		tMax   [3]float64
		tDelta [3]float64
		normal [3]int
	)
	for axis := 0; axis < 3; axis++ {
		o := float64(origin[axis])
		d := float64(dir[axis])
		cell[axis] = int(math.Floor(o))

		switch {
		case d > 0:
			step[axis] = 1
			tDelta[axis] = 1 / d
			tMax[axis] = (float64(cell[axis]+1) - o) / d
		case d < 0:
			step[axis] = -1
			tDelta[axis] = -1 / d
			tMax[axis] = (o - float64(cell[axis])) / -d
		default:
			tDelta[axis] = math.Inf(1)
			tMax[axis] = math.Inf(1)
		}
	}

	t := 0.0
	for t <= float64(reach) {
		if w.Solid(cell[0], cell[1], cell[2]) {
			return Hit{X: cell[0], Y: cell[1], Z: cell[2], Normal: normal}, true
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		t = tMax[axis]
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]
		normal = [3]int{}
		normal[axis] = -step[axis]
	}

	return Hit{}, false
}
