// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"errors"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/model"
)

// Constant buffer slots, tiered by update frequency
const (
	SlotApplication = iota
	SlotFrame
	SlotObject

	NumConstantBuffers
)

// Content stages
const (
	StageVertexBuffer   = "device.CreateBuffer(vertex)"
	StageIndexBuffer    = "device.CreateBuffer(index)"
	StageConstantBuffer = "device.CreateBuffer(constant)"
	StageVertexBytecode = "store.ReadAll(vertex)"
	StageVertexShader   = "device.CreateVertexShader()"
	StageInputLayout    = "device.CreateInputLayout()"
	StagePixelBytecode  = "store.ReadAll(pixel)"
	StagePixelShader    = "device.CreatePixelShader()"
)

// ConstantBufferDesc describes a constant buffer holding one matrix.
var ConstantBufferDesc = gfx.BufferDesc{
	ByteWidth:      model.MatrixSize,
	Usage:          gfx.UsageDefault,
	BindFlags:      gfx.BindConstantBuffer,
	CPUAccessFlags: 0,
}

// SceneResources holds the geometry, shaders and constant buffers of
// the scene. They depend on, but do not own, the device that created them.
type SceneResources struct {
	Object model.Object

	VertexBuffer    gfx.Buffer
	IndexBuffer     gfx.Buffer
	ConstantBuffers [NumConstantBuffers]gfx.Buffer

	VertexShader gfx.VertexShader
	InputLayout  gfx.InputLayout
	PixelShader  gfx.PixelShader

	Projection glm.Mat4

	releaser gfx.Releaser
}

// IndexCount is the number of indices drawn for the scene object.
func (s *SceneResources) IndexCount() uint32 {
	if s.Object == nil {
		return 0
	}
	return uint32(len(s.Object.Indices()))
}

// LoadContent uploads obj, creates the constant buffers and the shader pair read
// from store. The projection for a width x height client is pushed right away.
// A failed stage returns the resources built so far together with a *StageError,
// the caller decides whether to keep rendering with them.
func LoadContent(dev gfx.Device, ctx gfx.Context, store ShaderStore, names ShaderNames, obj model.Object, width, height uint32) (*SceneResources, error) {
	s := &SceneResources{Object: obj}

	vertices := model.VertexBytes(obj.Vertices())
	vb, err := dev.CreateBuffer(gfx.BufferDesc{
		ByteWidth: uint32(len(vertices)),
		Usage:     gfx.UsageDefault,
		BindFlags: gfx.BindVertexBuffer,
	}, vertices)
	if err != nil {
		return s, &StageError{Stage: StageVertexBuffer, Err: err}
	}
	s.VertexBuffer = vb
	s.releaser.Track(vb)

	indices := model.IndexBytes(obj.Indices())
	ib, err := dev.CreateBuffer(gfx.BufferDesc{
		ByteWidth: uint32(len(indices)),
		Usage:     gfx.UsageDefault,
		BindFlags: gfx.BindIndexBuffer,
	}, indices)
	if err != nil {
		return s, &StageError{Stage: StageIndexBuffer, Err: err}
	}
	s.IndexBuffer = ib
	s.releaser.Track(ib)

	for i := range s.ConstantBuffers {
		cb, err := dev.CreateBuffer(ConstantBufferDesc, nil)
		if err != nil {
			return s, &StageError{Stage: StageConstantBuffer, Err: err}
		}
		s.ConstantBuffers[i] = cb
		s.releaser.Track(cb)
	}

	s.Projection = model.ClientProjection(width, height)
	ctx.UpdateSubresource(s.ConstantBuffers[SlotApplication], model.MatrixBytes(s.Projection))

	vsBytecode, err := store.ReadAll(names.Vertex)
	if err != nil {
		return s, &StageError{Stage: StageVertexBytecode, Err: err}
	}
	if s.VertexShader, err = dev.CreateVertexShader(vsBytecode); err != nil {
		return s, &StageError{Stage: StageVertexShader, Err: err}
	}
	s.releaser.Track(s.VertexShader)

	if s.InputLayout, err = dev.CreateInputLayout(model.InputElements(), vsBytecode); err != nil {
		return s, &StageError{Stage: StageInputLayout, Err: err}
	}
	s.releaser.Track(s.InputLayout)

	psBytecode, err := store.ReadAll(names.Pixel)
	if err != nil {
		return s, &StageError{Stage: StagePixelBytecode, Err: err}
	}
	if s.PixelShader, err = dev.CreatePixelShader(psBytecode); err != nil {
		return s, &StageError{Stage: StagePixelShader, Err: err}
	}
	s.releaser.Track(s.PixelShader)

	return s, nil
}

// PushConstants replaces the contents of the constant buffer in slot with m.
// Slots whose buffer was never created are skipped.
func (s *SceneResources) PushConstants(ctx gfx.Context, slot int, m glm.Mat4) error {
	if slot < 0 || slot >= NumConstantBuffers {
		return errors.New("renderer.PushConstants(): slot out of range")
	}
	if s.ConstantBuffers[slot] == nil {
		return nil
	}
	ctx.UpdateSubresource(s.ConstantBuffers[slot], model.MatrixBytes(m))
	return nil
}

// Release frees every scene resource in reverse creation order.
func (s *SceneResources) Release() {
	if s == nil {
		return
	}
	s.releaser.Release()
	*s = SceneResources{}
}
