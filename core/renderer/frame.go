// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"github.com/devblok/echo/gfx"
)

// StageError reports the initialisation stage that failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Frame stages
const (
	StageBackBuffer        = "swapchain.BackBuffer()"
	StageRenderTargetView  = "device.CreateRenderTargetView()"
	StageDepthBuffer       = "device.CreateTexture2D(depth)"
	StageDepthStencilView  = "device.CreateDepthStencilView()"
	StageDepthStencilState = "device.CreateDepthStencilState()"
	StageRasterizerState   = "device.CreateRasterizerState()"
)

// DepthStencilDesc enables depth testing with writes, no stencil.
var DepthStencilDesc = gfx.DepthStencilDesc{
	DepthEnable:    true,
	DepthWriteMask: gfx.DepthWriteMaskAll,
	DepthFunc:      gfx.ComparisonLess,
	StencilEnable:  false,
}

// RasterizerDesc is solid fill with back faces culled. Clockwise triangles are front facing.
var RasterizerDesc = gfx.RasterizerDesc{
	FillMode:              gfx.FillSolid,
	CullMode:              gfx.CullBack,
	FrontCounterClockwise: false,
	DepthBias:             0,
	DepthBiasClamp:        0,
	SlopeScaledDepthBias:  0,
	DepthClipEnable:       true,
	ScissorEnable:         false,
	MultisampleEnable:     false,
	AntialiasedLineEnable: false,
}

// DepthBufferDesc describes a depth/stencil texture covering the client area.
func DepthBufferDesc(width, height uint32) gfx.Texture2DDesc {
	return gfx.Texture2DDesc{
		Width:          width,
		Height:         height,
		MipLevels:      1,
		ArraySize:      1,
		Format:         gfx.FormatD24UNormS8UInt,
		SampleCount:    1,
		SampleQuality:  0,
		Usage:          gfx.UsageDefault,
		BindFlags:      gfx.BindDepthStencil,
		CPUAccessFlags: 0,
	}
}

// ClientViewport covers the client area with depth 0..1.
func ClientViewport(width, height uint32) gfx.Viewport {
	return gfx.Viewport{
		TopLeftX: 0,
		TopLeftY: 0,
		Width:    float32(width),
		Height:   float32(height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

// FrameResources holds the render targets and fixed function
// state derived from the client size. They depend on, but do
// not own, the device that created them.
type FrameResources struct {
	BackBuffer        gfx.Texture2D
	RenderTargetView  gfx.RenderTargetView
	DepthBuffer       gfx.Texture2D
	DepthStencilView  gfx.DepthStencilView
	DepthStencilState gfx.DepthStencilState
	RasterizerState   gfx.RasterizerState
	Viewport          gfx.Viewport

	releaser gfx.Releaser
}

// NewFrameResources creates the frame resources for a width x height client area.
// On failure everything created so far is released and a *StageError is returned.
func NewFrameResources(dev gfx.Device, sc gfx.SwapChain, width, height uint32) (*FrameResources, error) {
	f := &FrameResources{
		Viewport: ClientViewport(width, height),
	}

	var err error
	if f.BackBuffer, err = sc.BackBuffer(); err != nil {
		return nil, f.fail(StageBackBuffer, err)
	}
	f.releaser.Track(f.BackBuffer)

	if f.RenderTargetView, err = dev.CreateRenderTargetView(f.BackBuffer); err != nil {
		return nil, f.fail(StageRenderTargetView, err)
	}
	f.releaser.Track(f.RenderTargetView)

	if f.DepthBuffer, err = dev.CreateTexture2D(DepthBufferDesc(width, height)); err != nil {
		return nil, f.fail(StageDepthBuffer, err)
	}
	f.releaser.Track(f.DepthBuffer)

	if f.DepthStencilView, err = dev.CreateDepthStencilView(f.DepthBuffer); err != nil {
		return nil, f.fail(StageDepthStencilView, err)
	}
	f.releaser.Track(f.DepthStencilView)

	if f.DepthStencilState, err = dev.CreateDepthStencilState(DepthStencilDesc); err != nil {
		return nil, f.fail(StageDepthStencilState, err)
	}
	f.releaser.Track(f.DepthStencilState)

	if f.RasterizerState, err = dev.CreateRasterizerState(RasterizerDesc); err != nil {
		return nil, f.fail(StageRasterizerState, err)
	}
	f.releaser.Track(f.RasterizerState)

	return f, nil
}

func (f *FrameResources) fail(stage string, err error) error {
	f.Release()
	return &StageError{Stage: stage, Err: err}
}

// Release frees every frame resource in reverse creation order.
func (f *FrameResources) Release() {
	if f == nil {
		return
	}
	f.releaser.Release()
	*f = FrameResources{}
}
