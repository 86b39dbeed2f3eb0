// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/echo/gfx"
)

// Object represents the engine supported model
type Object interface {

	// Vertices returns the vertices for Renderer use,
	// so it has to match the input layout exactly
	Vertices() []Vertex

	// Indices returns the triangle list indices into Vertices.
	Indices() []uint16
}

// Vertex is a model vertex
type Vertex struct {
	Position glm.Vec3
	Color    glm.Vec3
}

// VertexStride is the size of one Vertex in a vertex buffer.
const VertexStride = uint32(unsafe.Sizeof(Vertex{}))

// InputElements describes Vertex for the vertex program input signature.
func InputElements() []gfx.InputElement {
	return []gfx.InputElement{
		{
			SemanticName:      "POSITION",
			Format:            gfx.FormatR32G32B32Float,
			AlignedByteOffset: uint32(unsafe.Offsetof(Vertex{}.Position)),
			InputSlotClass:    gfx.InputPerVertex,
		},
		{
			SemanticName:      "COLOR",
			Format:            gfx.FormatR32G32B32Float,
			AlignedByteOffset: uint32(unsafe.Offsetof(Vertex{}.Color)),
			InputSlotClass:    gfx.InputPerVertex,
		},
	}
}

// StaticObject is an Object whose geometry never changes after creation.
type StaticObject struct {
	vertices []Vertex
	indices  []uint16
}

// NewStaticObject creates an Object from the given geometry.
func NewStaticObject(vertices []Vertex, indices []uint16) *StaticObject {
	return &StaticObject{
		vertices: vertices,
		indices:  indices,
	}
}

// Vertices implements Object
func (s *StaticObject) Vertices() []Vertex {
	return s.vertices
}

// Indices implements Object
func (s *StaticObject) Indices() []uint16 {
	return s.indices
}

// NewCube returns the colored unit cube, spanning -1..1 on every axis.
// Every corner is colored by its position.
func NewCube() *StaticObject {
	vertices := []Vertex{
		{glm.Vec3{-1, -1, -1}, glm.Vec3{0, 0, 0}},
		{glm.Vec3{-1, 1, -1}, glm.Vec3{0, 1, 0}},
		{glm.Vec3{1, 1, -1}, glm.Vec3{1, 1, 0}},
		{glm.Vec3{1, -1, -1}, glm.Vec3{1, 0, 0}},
		{glm.Vec3{-1, -1, 1}, glm.Vec3{0, 0, 1}},
		{glm.Vec3{-1, 1, 1}, glm.Vec3{0, 1, 1}},
		{glm.Vec3{1, 1, 1}, glm.Vec3{1, 1, 1}},
		{glm.Vec3{1, -1, 1}, glm.Vec3{1, 0, 1}},
	}
	indices := []uint16{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		4, 5, 1, 4, 1, 0,
		3, 2, 6, 3, 6, 7,
		1, 5, 6, 1, 6, 2,
		4, 0, 3, 4, 3, 7,
	}
	return NewStaticObject(vertices, indices)
}

// VertexBytes returns the vertices as laid out in a vertex buffer.
func VertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	size := len(vertices) * int(VertexStride)
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), size))
	return out
}

// IndexBytes returns the indices as laid out in a R16 index buffer.
func IndexBytes(indices []uint16) []byte {
	if len(indices) == 0 {
		return nil
	}
	size := len(indices) * 2
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), size))
	return out
}
