package main

import (
	"VoxelGolang/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glMesh keeps one chunk's geometry on the GPU. It is the chunk's MeshSink, so
// every rebuild uploads straight into its buffers.
type glMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

func newGLMesh() *glMesh {
	m := &glMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, world.VertexStride, world.VertexPositionOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, world.VertexStride, world.VertexTexCoordOffset)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, world.VertexStride, world.VertexNormalOffset)

	gl.BindVertexArray(0)
	return m
}

func (m *glMesh) SetVertices(vertices []world.Vertex) {
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*world.VertexStride, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	}
	gl.BindVertexArray(0)
}

func (m *glMesh) SetIndices(indices []uint32) {
	gl.BindVertexArray(m.vao)
	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)
	}
	m.count = int32(len(indices))
	gl.BindVertexArray(0)
}

func (m *glMesh) draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

func (m *glMesh) delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
