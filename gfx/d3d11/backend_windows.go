// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/devblok/echo/gfx"
)

// NewFactory returns a DXGI backed gfx.Factory.
func NewFactory() (gfx.Factory, error) {
	if err := dxgi.Load(); err != nil {
		return nil, errors.New("d3d11.NewFactory(): " + err.Error())
	}
	if err := d3d11.Load(); err != nil {
		return nil, errors.New("d3d11.NewFactory(): " + err.Error())
	}
	return &factory{}, nil
}

type factory struct{}

// withFactory runs fn with a DXGI factory that lives for the duration of the call.
func withFactory(fn func(f *_IDXGIFactory) error) error {
	f, err := createDXGIFactory()
	if err != nil {
		return err
	}
	defer comRelease(unsafe.Pointer(f))
	return fn(f)
}

func (factory) Adapters() ([]gfx.AdapterInfo, error) {
	var adapters []gfx.AdapterInfo
	err := withFactory(func(f *_IDXGIFactory) error {
		for i := uint32(0); ; i++ {
			adapter, err := f.EnumAdapters(i)
			if err != nil {
				var code ErrorCode
				if errors.As(err, &code) && code.Code == DXGI_ERROR_NOT_FOUND {
					return nil
				}
				return err
			}
			desc, err := adapter.GetDesc()
			comRelease(unsafe.Pointer(adapter))
			if err != nil {
				return err
			}
			adapters = append(adapters, gfx.AdapterInfo{
				Index:                 int(i),
				Description:           windows.UTF16ToString(desc.Description[:]),
				VendorID:              desc.VendorId,
				DeviceID:              desc.DeviceId,
				DedicatedVideoMemory:  uint64(desc.DedicatedVideoMemory),
				DedicatedSystemMemory: uint64(desc.DedicatedSystemMemory),
				SharedSystemMemory:    uint64(desc.SharedSystemMemory),
			})
		}
	})
	return adapters, err
}

func (factory) DisplayModes(format gfx.Format) ([]gfx.DisplayMode, error) {
	var modes []gfx.DisplayMode
	err := withFactory(func(f *_IDXGIFactory) error {
		adapter, err := f.EnumAdapters(0)
		if err != nil {
			return err
		}
		defer comRelease(unsafe.Pointer(adapter))

		output, err := adapter.EnumOutputs(0)
		if err != nil {
			return err
		}
		defer comRelease(unsafe.Pointer(output))

		list, err := output.GetDisplayModeList(uint32(format), _DXGI_ENUM_MODES_INTERLACED)
		if err != nil {
			return err
		}
		modes = make([]gfx.DisplayMode, 0, len(list))
		for _, m := range list {
			modes = append(modes, gfx.DisplayMode{
				Width:  m.Width,
				Height: m.Height,
				RefreshRate: gfx.Rational{
					Numerator:   m.RefreshRate.Numerator,
					Denominator: m.RefreshRate.Denominator,
				},
				Format: gfx.Format(m.Format),
			})
		}
		return nil
	})
	return modes, err
}

func (factory) CreateDeviceAndSwapChain(params gfx.DeviceParams, desc gfx.SwapChainDesc) (gfx.Device, gfx.Context, gfx.SwapChain, error) {
	var flags uint32
	if params.Debug {
		flags |= _CREATE_DEVICE_DEBUG
	}
	levels := make([]uint32, len(params.FeatureLevels))
	for i, l := range params.FeatureLevels {
		levels[i] = uint32(l)
	}
	if len(levels) == 0 {
		return nil, nil, nil, ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: E_INVALIDARG}
	}

	scDesc := _DXGI_SWAP_CHAIN_DESC{
		BufferDesc: _DXGI_MODE_DESC{
			Width:  desc.Width,
			Height: desc.Height,
			RefreshRate: _DXGI_RATIONAL{
				Numerator:   desc.RefreshRate.Numerator,
				Denominator: desc.RefreshRate.Denominator,
			},
			Format: uint32(desc.Format),
		},
		SampleDesc: _DXGI_SAMPLE_DESC{
			Count:   desc.SampleCount,
			Quality: desc.SampleQuality,
		},
		BufferUsage:  desc.BufferUsage,
		BufferCount:  desc.BufferCount,
		OutputWindow: windows.Handle(desc.OutputWindow),
		Windowed:     boolToUint32(desc.Windowed),
		SwapEffect:   uint32(desc.SwapEffect),
	}

	dev, ctx, sc, lvl, err := createDeviceAndSwapChain(uint32(params.DriverType), flags, levels, &scDesc)
	if err != nil {
		return nil, nil, nil, err
	}
	return &device{dev: dev, level: gfx.FeatureLevel(lvl)}, &deviceContext{ctx: ctx}, &swapChain{sc: sc}, nil
}

// object is a reference counted COM pointer.
type object struct {
	ptr unsafe.Pointer
}

func (o *object) Release() {
	comRelease(o.ptr)
	o.ptr = nil
}

// pointer extracts the COM pointer held by a handle created by this package.
func pointer(h gfx.Releasable) unsafe.Pointer {
	switch o := h.(type) {
	case *buffer:
		if o != nil {
			return o.ptr
		}
	case *texture2D:
		if o != nil {
			return o.ptr
		}
	case *object:
		if o != nil {
			return o.ptr
		}
	}
	return nil
}

type buffer struct{ object }

type texture2D struct{ object }

type device struct {
	dev   *_Device
	level gfx.FeatureLevel
}

func (d *device) Release() {
	comRelease(unsafe.Pointer(d.dev))
	d.dev = nil
}

func (d *device) FeatureLevel() gfx.FeatureLevel {
	return d.level
}

func (d *device) CreateBuffer(desc gfx.BufferDesc, data []byte) (gfx.Buffer, error) {
	ptr, err := d.dev.CreateBuffer(&_BUFFER_DESC{
		ByteWidth:      desc.ByteWidth,
		Usage:          uint32(desc.Usage),
		BindFlags:      uint32(desc.BindFlags),
		CPUAccessFlags: uint32(desc.CPUAccessFlags),
	}, data)
	if err != nil {
		return nil, err
	}
	return &buffer{object{ptr}}, nil
}

func (d *device) CreateTexture2D(desc gfx.Texture2DDesc) (gfx.Texture2D, error) {
	ptr, err := d.dev.CreateTexture2D(&_TEXTURE2D_DESC{
		Width:     desc.Width,
		Height:    desc.Height,
		MipLevels: desc.MipLevels,
		ArraySize: desc.ArraySize,
		Format:    uint32(desc.Format),
		SampleDesc: _DXGI_SAMPLE_DESC{
			Count:   desc.SampleCount,
			Quality: desc.SampleQuality,
		},
		Usage:          uint32(desc.Usage),
		BindFlags:      uint32(desc.BindFlags),
		CPUAccessFlags: uint32(desc.CPUAccessFlags),
	})
	if err != nil {
		return nil, err
	}
	return &texture2D{object{ptr}}, nil
}

func (d *device) CreateRenderTargetView(tex gfx.Texture2D) (gfx.RenderTargetView, error) {
	res := pointer(tex)
	if res == nil {
		return nil, fmt.Errorf("CreateRenderTargetView: %w", gfx.ErrInvalidArg)
	}
	ptr, err := d.dev.CreateRenderTargetView(res)
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func (d *device) CreateDepthStencilView(tex gfx.Texture2D) (gfx.DepthStencilView, error) {
	res := pointer(tex)
	if res == nil {
		return nil, fmt.Errorf("CreateDepthStencilView: %w", gfx.ErrInvalidArg)
	}
	ptr, err := d.dev.CreateDepthStencilView(res)
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func stencilOp(desc gfx.StencilOpDesc) _DEPTH_STENCILOP_DESC {
	return _DEPTH_STENCILOP_DESC{
		StencilFailOp:      uint32(desc.FailOp),
		StencilDepthFailOp: uint32(desc.DepthFailOp),
		StencilPassOp:      uint32(desc.PassOp),
		StencilFunc:        uint32(desc.Func),
	}
}

func (d *device) CreateDepthStencilState(desc gfx.DepthStencilDesc) (gfx.DepthStencilState, error) {
	ptr, err := d.dev.CreateDepthStencilState(&_DEPTH_STENCIL_DESC{
		DepthEnable:      boolToUint32(desc.DepthEnable),
		DepthWriteMask:   uint32(desc.DepthWriteMask),
		DepthFunc:        uint32(desc.DepthFunc),
		StencilEnable:    boolToUint32(desc.StencilEnable),
		StencilReadMask:  desc.StencilReadMask,
		StencilWriteMask: desc.StencilWriteMask,
		FrontFace:        stencilOp(desc.FrontFace),
		BackFace:         stencilOp(desc.BackFace),
	})
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func (d *device) CreateRasterizerState(desc gfx.RasterizerDesc) (gfx.RasterizerState, error) {
	ptr, err := d.dev.CreateRasterizerState(&_RASTERIZER_DESC{
		FillMode:              uint32(desc.FillMode),
		CullMode:              uint32(desc.CullMode),
		FrontCounterClockwise: boolToUint32(desc.FrontCounterClockwise),
		DepthBias:             desc.DepthBias,
		DepthBiasClamp:        desc.DepthBiasClamp,
		SlopeScaledDepthBias:  desc.SlopeScaledDepthBias,
		DepthClipEnable:       boolToUint32(desc.DepthClipEnable),
		ScissorEnable:         boolToUint32(desc.ScissorEnable),
		MultisampleEnable:     boolToUint32(desc.MultisampleEnable),
		AntialiasedLineEnable: boolToUint32(desc.AntialiasedLineEnable),
	})
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func (d *device) CreateVertexShader(bytecode []byte) (gfx.VertexShader, error) {
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("CreateVertexShader: %w", gfx.ErrInvalidArg)
	}
	ptr, err := d.dev.CreateVertexShader(bytecode)
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func (d *device) CreatePixelShader(bytecode []byte) (gfx.PixelShader, error) {
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("CreatePixelShader: %w", gfx.ErrInvalidArg)
	}
	ptr, err := d.dev.CreatePixelShader(bytecode)
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

func (d *device) CreateInputLayout(elements []gfx.InputElement, bytecode []byte) (gfx.InputLayout, error) {
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("CreateInputLayout: %w", gfx.ErrInvalidArg)
	}
	descs := make([]_INPUT_ELEMENT_DESC, len(elements))
	for i, e := range elements {
		name, err := windows.BytePtrFromString(e.SemanticName)
		if err != nil {
			return nil, err
		}
		descs[i] = _INPUT_ELEMENT_DESC{
			SemanticName:         name,
			SemanticIndex:        e.SemanticIndex,
			Format:               uint32(e.Format),
			InputSlot:            e.InputSlot,
			AlignedByteOffset:    e.AlignedByteOffset,
			InputSlotClass:       uint32(e.InputSlotClass),
			InstanceDataStepRate: e.InstanceDataStepRate,
		}
	}
	ptr, err := d.dev.CreateInputLayout(descs, bytecode)
	if err != nil {
		return nil, err
	}
	return &object{ptr}, nil
}

type deviceContext struct {
	ctx *_DeviceContext
}

func (c *deviceContext) Release() {
	comRelease(unsafe.Pointer(c.ctx))
	c.ctx = nil
}

func (c *deviceContext) UpdateSubresource(buf gfx.Buffer, data []byte) {
	c.ctx.UpdateSubresource(pointer(buf), data)
}

func (c *deviceContext) ClearRenderTargetView(view gfx.RenderTargetView, color [4]float32) {
	c.ctx.ClearRenderTargetView(pointer(view), &color)
}

func (c *deviceContext) ClearDepthStencilView(view gfx.DepthStencilView, flags gfx.ClearFlag, depth float32, stencil uint8) {
	c.ctx.ClearDepthStencilView(pointer(view), uint32(flags), depth, stencil)
}

func (c *deviceContext) IASetVertexBuffers(slot uint32, buf gfx.Buffer, stride, offset uint32) {
	c.ctx.IASetVertexBuffers(slot, pointer(buf), stride, offset)
}

func (c *deviceContext) IASetIndexBuffer(buf gfx.Buffer, format gfx.Format, offset uint32) {
	c.ctx.IASetIndexBuffer(pointer(buf), uint32(format), offset)
}

func (c *deviceContext) IASetInputLayout(layout gfx.InputLayout) {
	c.ctx.IASetInputLayout(pointer(layout))
}

func (c *deviceContext) IASetPrimitiveTopology(topology gfx.PrimitiveTopology) {
	c.ctx.IASetPrimitiveTopology(uint32(topology))
}

func (c *deviceContext) VSSetShader(shader gfx.VertexShader) {
	c.ctx.VSSetShader(pointer(shader))
}

func (c *deviceContext) VSSetConstantBuffers(startSlot uint32, bufs []gfx.Buffer) {
	ptrs := make([]unsafe.Pointer, len(bufs))
	for i, b := range bufs {
		ptrs[i] = pointer(b)
	}
	c.ctx.VSSetConstantBuffers(startSlot, ptrs)
}

func (c *deviceContext) RSSetState(state gfx.RasterizerState) {
	c.ctx.RSSetState(pointer(state))
}

func (c *deviceContext) RSSetViewports(viewport gfx.Viewport) {
	v := _VIEWPORT(viewport)
	c.ctx.RSSetViewports(&v)
}

func (c *deviceContext) PSSetShader(shader gfx.PixelShader) {
	c.ctx.PSSetShader(pointer(shader))
}

func (c *deviceContext) OMSetRenderTargets(target gfx.RenderTargetView, depth gfx.DepthStencilView) {
	c.ctx.OMSetRenderTargets(pointer(target), pointer(depth))
}

func (c *deviceContext) OMSetDepthStencilState(state gfx.DepthStencilState, stencilRef uint32) {
	c.ctx.OMSetDepthStencilState(pointer(state), stencilRef)
}

func (c *deviceContext) DrawIndexed(indexCount, startIndex uint32, baseVertex int32) {
	c.ctx.DrawIndexed(indexCount, startIndex, baseVertex)
}

type swapChain struct {
	sc *_IDXGISwapChain
}

func (s *swapChain) Release() {
	comRelease(unsafe.Pointer(s.sc))
	s.sc = nil
}

func (s *swapChain) BackBuffer() (gfx.Texture2D, error) {
	ptr, err := s.sc.GetBuffer(0, &_IID_Texture2D)
	if err != nil {
		return nil, err
	}
	return &texture2D{object{ptr}}, nil
}

func (s *swapChain) Present(syncInterval uint32) error {
	return s.sc.Present(syncInterval, 0)
}
