// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"math"
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Matrices are column-vector transforms in mgl32's column-major layout,
// which matches a column_major HLSL constant buffer byte for byte.

// MatrixSize is the size of one Mat4 in a constant buffer.
const MatrixSize = uint32(unsafe.Sizeof(glm.Mat4{}))

// Transforms defines a model-view-projection object
type Transforms struct {
	World      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// Camera is a fixed left-handed viewer.
type Camera struct {
	Eye   glm.Vec3
	Focus glm.Vec3
	Up    glm.Vec3
}

// DefaultCamera looks at the origin from ten units behind it.
var DefaultCamera = Camera{
	Eye:   glm.Vec3{0, 0, -10},
	Focus: glm.Vec3{0, 0, 0},
	Up:    glm.Vec3{0, 1, 0},
}

// View returns the view matrix of the camera.
func (c Camera) View() glm.Mat4 {
	return LookAtLH(c.Eye, c.Focus, c.Up)
}

// Projection parameters used by the scene
const (
	FieldOfView float32 = 45
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100
)

// PerspectiveLH builds a left-handed perspective projection mapping depth to 0..1.
// fovy is the vertical field of view in degrees.
func PerspectiveLH(fovy, aspect, near, far float32) glm.Mat4 {
	yScale := float32(1 / math.Tan(float64(glm.DegToRad(fovy))/2))
	xScale := yScale / aspect
	zRange := far / (far - near)

	return glm.Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, zRange, 1,
		0, 0, -near * zRange, 0,
	}
}

// ClientProjection is the scene projection for a client area.
func ClientProjection(width, height uint32) glm.Mat4 {
	return PerspectiveLH(FieldOfView, float32(width)/float32(height), NearPlane, FarPlane)
}

// LookAtLH builds a left-handed view matrix.
func LookAtLH(eye, focus, up glm.Vec3) glm.Mat4 {
	z := focus.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return glm.Mat4FromRows(
		x.Vec4(-x.Dot(eye)),
		y.Vec4(-y.Dot(eye)),
		z.Vec4(-z.Dot(eye)),
		glm.Vec4{0, 0, 0, 1},
	)
}

// Rotation accumulates an angle about a fixed axis.
type Rotation struct {
	Axis glm.Vec3

	// Angle in degrees, grows without bound
	Angle float32

	// Speed in degrees per second
	Speed float32
}

// NewRotation returns a rotation about axis at speed degrees per second.
func NewRotation(axis glm.Vec3, speed float32) *Rotation {
	return &Rotation{
		Axis:  axis.Normalize(),
		Speed: speed,
	}
}

// Advance moves the rotation forward by dt seconds.
func (r *Rotation) Advance(dt float32) {
	r.Angle += r.Speed * dt
}

// Matrix returns the world matrix of the current angle.
func (r *Rotation) Matrix() glm.Mat4 {
	return glm.HomogRotate3D(glm.DegToRad(r.Angle), r.Axis)
}

// MatrixBytes returns m as laid out in a constant buffer.
func MatrixBytes(m glm.Mat4) []byte {
	out := make([]byte, MatrixSize)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), MatrixSize))
	return out
}
