package world

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshSink receives a chunk's mesh after every rebuild. The slices are scratch
// buffers owned by the chunk and are only valid for the duration of the call.
type MeshSink interface {
	SetVertices(vertices []Vertex)
	SetIndices(indices []uint32)
}

// MeshData is a MeshSink that keeps its own copy of the last submitted mesh.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *MeshData) SetVertices(vertices []Vertex) {
	m.Vertices = append(m.Vertices[:0], vertices...)
}

func (m *MeshData) SetIndices(indices []uint32) {
	m.Indices = append(m.Indices[:0], indices...)
}

type face struct {
	dx, dy, dz int
	normal     mgl32.Vec3
	// unit cube corners, ordered so that indices 0,1,2 / 2,3,0 wind counter-clockwise from outside
	corners [4][3]float32
}

// order: +X, -X, +Y, -Y, +Z, -Z
var faces = [6]face{
	{1, 0, 0, mgl32.Vec3{1, 0, 0}, [4][3]float32{{1, 1, 1}, {1, 0, 1}, {1, 0, 0}, {1, 1, 0}}},
	{-1, 0, 0, mgl32.Vec3{-1, 0, 0}, [4][3]float32{{0, 1, 0}, {0, 0, 0}, {0, 0, 1}, {0, 1, 1}}},
	{0, 1, 0, mgl32.Vec3{0, 1, 0}, [4][3]float32{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},
	{0, -1, 0, mgl32.Vec3{0, -1, 0}, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{0, 0, 1, mgl32.Vec3{0, 0, 1}, [4][3]float32{{0, 1, 1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}}},
	{0, 0, -1, mgl32.Vec3{0, 0, -1}, [4][3]float32{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}}},
}

var faceUVs = [4]mgl32.Vec2{{1, 1}, {1, 0}, {0, 0}, {0, 1}}

var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// BuildMesh regenerates the whole mesh from the grid. A face is emitted only when
// the cell across it is present and air; absent cells (no linked neighbor, out of
// vertical range) are treated as occupied.
func (c *Chunk) BuildMesh() {
	c.faces = 0

	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkHeight; y++ {
			for z := 0; z < ChunkSize; z++ {
				current := c.BlockAtLocal(x, y, z)
				if *current == Air {
					continue
				}

				wx, wz := c.toWorld(x, z)
				for i := range faces {
					f := &faces[i]
					adjacent := c.BlockAt(wx+f.dx, y+f.dy, wz+f.dz)
					if adjacent != nil && *adjacent == Air {
						c.addFace(wx, y, wz, f)
					}
				}
			}
		}
	}

	if c.sink != nil {
		c.sink.SetVertices(c.vertices)
		c.sink.SetIndices(c.indices)
	}

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.rebuilds++

	slog.Debug("chunk mesh rebuilt", "chunk", c.pos, "faces", c.faces, "rebuilds", c.rebuilds)
}

func (c *Chunk) addFace(worldX, y, worldZ int, f *face) {
	base := uint32(len(c.vertices))
	origin := mgl32.Vec3{float32(worldX), float32(y), float32(worldZ)}

	for i, corner := range f.corners {
		c.vertices = append(c.vertices, Vertex{
			Position: origin.Add(mgl32.Vec3{corner[0], corner[1], corner[2]}),
			TexCoord: faceUVs[i],
			Normal:   f.normal,
		})
	}
	for _, index := range quadIndices {
		c.indices = append(c.indices, base+index)
	}
	c.faces++
}
