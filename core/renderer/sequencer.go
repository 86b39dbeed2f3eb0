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

// Per frame constants
var (
	RotationAxis        = glm.Vec3{0, 1, 1}
	RotationSpeed       = float32(90)
	StencilReference    = uint32(1)
	DepthClearValue     = float32(1)
	StencilClearValue   = uint8(0)
	depthAndStencilMask = gfx.ClearDepth | gfx.ClearStencil
)

// Sequencer advances the scene and draws it, one Update and one Render per tick.
// It borrows the context, swap chain and resources, it releases none of them.
type Sequencer struct {
	ctx          gfx.Context
	swapChain    gfx.SwapChain
	syncInterval uint32

	frame *FrameResources
	scene *SceneResources

	camera     model.Camera
	rotation   *model.Rotation
	clearColor [4]float32

	// Transforms are the matrices last pushed to the constant buffers
	Transforms model.Transforms
}

// NewSequencer creates a Sequencer drawing scene into frame through g.
func NewSequencer(g *gfx.Graphics, frame *FrameResources, scene *SceneResources, clearColor [4]float32) *Sequencer {
	return &Sequencer{
		ctx:          g.Context,
		swapChain:    g.SwapChain,
		syncInterval: g.SyncInterval(),
		frame:        frame,
		scene:        scene,
		camera:       model.DefaultCamera,
		rotation:     model.NewRotation(RotationAxis, RotationSpeed),
		clearColor:   clearColor,
		Transforms: model.Transforms{
			World:      glm.Ident4(),
			View:       glm.Ident4(),
			Projection: scene.Projection,
		},
	}
}

// Angle returns the accumulated rotation in degrees.
func (s *Sequencer) Angle() float32 {
	return s.rotation.Angle
}

// Update advances the scene by dt seconds and pushes
// the view and world matrices to their constant buffers.
func (s *Sequencer) Update(dt float32) error {
	s.Transforms.View = s.camera.View()
	if err := s.scene.PushConstants(s.ctx, SlotFrame, s.Transforms.View); err != nil {
		return errors.New("renderer.Update(): " + err.Error())
	}

	s.rotation.Advance(dt)
	s.Transforms.World = s.rotation.Matrix()
	if err := s.scene.PushConstants(s.ctx, SlotObject, s.Transforms.World); err != nil {
		return errors.New("renderer.Update(): " + err.Error())
	}
	return nil
}

// Render binds the pipeline, draws the scene object once and presents.
func (s *Sequencer) Render() error {
	ctx, frame, scene := s.ctx, s.frame, s.scene

	ctx.ClearRenderTargetView(frame.RenderTargetView, s.clearColor)
	ctx.ClearDepthStencilView(frame.DepthStencilView, depthAndStencilMask, DepthClearValue, StencilClearValue)

	ctx.IASetVertexBuffers(0, scene.VertexBuffer, model.VertexStride, 0)
	ctx.IASetIndexBuffer(scene.IndexBuffer, gfx.FormatR16UInt, 0)
	ctx.IASetInputLayout(scene.InputLayout)
	ctx.IASetPrimitiveTopology(gfx.TopologyTriangleList)

	ctx.VSSetShader(scene.VertexShader)
	ctx.VSSetConstantBuffers(SlotApplication, scene.ConstantBuffers[:])

	ctx.RSSetState(frame.RasterizerState)
	ctx.RSSetViewports(frame.Viewport)

	ctx.PSSetShader(scene.PixelShader)

	ctx.OMSetRenderTargets(frame.RenderTargetView, frame.DepthStencilView)
	ctx.OMSetDepthStencilState(frame.DepthStencilState, StencilReference)

	ctx.DrawIndexed(scene.IndexCount(), 0, 0)

	if err := s.swapChain.Present(s.syncInterval); err != nil {
		return errors.New("swapchain.Present(): " + err.Error())
	}
	return nil
}

// Tick runs Update then Render.
func (s *Sequencer) Tick(dt float32) error {
	if err := s.Update(dt); err != nil {
		return err
	}
	return s.Render()
}
