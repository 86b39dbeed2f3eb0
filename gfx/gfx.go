// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines rendering related features that graphics backends must implement.
// Enumerations carry the numeric values of their Direct3D 11 / DXGI counterparts,
// so a backend can pass them through unchanged.
package gfx

import "errors"

// package errors
var (
	ErrInvalidArg  = errors.New("invalid argument")
	ErrUnsupported = errors.New("graphics backend not supported on this platform")
)

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// Buffer is a linear block of GPU memory.
type Buffer interface {
	Releasable
}

// Texture2D is a two dimensional GPU image.
type Texture2D interface {
	Releasable
}

// RenderTargetView binds a texture as a color attachment.
type RenderTargetView interface {
	Releasable
}

// DepthStencilView binds a texture as a depth/stencil attachment.
type DepthStencilView interface {
	Releasable
}

// DepthStencilState is an immutable depth/stencil test configuration.
type DepthStencilState interface {
	Releasable
}

// RasterizerState is an immutable rasterizer configuration.
type RasterizerState interface {
	Releasable
}

// VertexShader is a compiled vertex program.
type VertexShader interface {
	Releasable
}

// PixelShader is a compiled pixel program.
type PixelShader interface {
	Releasable
}

// InputLayout binds vertex buffer fields to vertex program inputs.
type InputLayout interface {
	Releasable
}

// Device creates GPU resources. It does not own what it creates,
// callers release every returned handle before releasing the Device.
type Device interface {
	Releasable

	// CreateBuffer creates a buffer, initialised from data when data is not empty.
	CreateBuffer(desc BufferDesc, data []byte) (Buffer, error)

	// CreateTexture2D creates an uninitialised texture.
	CreateTexture2D(desc Texture2DDesc) (Texture2D, error)

	// CreateRenderTargetView wraps tex using format-inherited view parameters.
	CreateRenderTargetView(tex Texture2D) (RenderTargetView, error)

	// CreateDepthStencilView wraps tex using format-inherited view parameters.
	CreateDepthStencilView(tex Texture2D) (DepthStencilView, error)

	CreateDepthStencilState(desc DepthStencilDesc) (DepthStencilState, error)
	CreateRasterizerState(desc RasterizerDesc) (RasterizerState, error)
	CreateVertexShader(bytecode []byte) (VertexShader, error)
	CreatePixelShader(bytecode []byte) (PixelShader, error)

	// CreateInputLayout matches elements against the input signature
	// found in the vertex program bytecode.
	CreateInputLayout(elements []InputElement, bytecode []byte) (InputLayout, error)

	// FeatureLevel returns the feature level the device was created with.
	FeatureLevel() FeatureLevel
}

// Context records commands on the immediate context of a Device.
// Nil handles are bound as empty slots.
type Context interface {
	Releasable

	// UpdateSubresource replaces the entire contents of buf with data.
	UpdateSubresource(buf Buffer, data []byte)

	ClearRenderTargetView(view RenderTargetView, color [4]float32)
	ClearDepthStencilView(view DepthStencilView, flags ClearFlag, depth float32, stencil uint8)

	IASetVertexBuffers(slot uint32, buf Buffer, stride, offset uint32)
	IASetIndexBuffer(buf Buffer, format Format, offset uint32)
	IASetInputLayout(layout InputLayout)
	IASetPrimitiveTopology(topology PrimitiveTopology)

	VSSetShader(shader VertexShader)
	VSSetConstantBuffers(startSlot uint32, bufs []Buffer)

	RSSetState(state RasterizerState)
	RSSetViewports(viewport Viewport)

	PSSetShader(shader PixelShader)

	OMSetRenderTargets(target RenderTargetView, depth DepthStencilView)
	OMSetDepthStencilState(state DepthStencilState, stencilRef uint32)

	DrawIndexed(indexCount, startIndex uint32, baseVertex int32)
}

// SwapChain is the presentation surface bound to a native window.
type SwapChain interface {
	Releasable

	// BackBuffer returns the back buffer at index 0. The returned
	// texture holds its own reference and must be released.
	BackBuffer() (Texture2D, error)

	// Present shows the back buffer, waiting for syncInterval vertical blanks.
	Present(syncInterval uint32) error
}

// Factory is the entry point of a graphics backend.
type Factory interface {

	// Adapters lists the available display adapters.
	Adapters() ([]AdapterInfo, error)

	// DisplayModes enumerates the modes of the first output of the
	// first adapter for format, interlaced modes included.
	DisplayModes(format Format) ([]DisplayMode, error)

	// CreateDeviceAndSwapChain creates a device, its immediate context
	// and a swap chain in one step.
	CreateDeviceAndSwapChain(params DeviceParams, desc SwapChainDesc) (Device, Context, SwapChain, error)
}
