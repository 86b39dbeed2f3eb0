// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11

import (
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	_SDK_VERSION                = 7
	_CREATE_DEVICE_DEBUG        = 0x2
	_DXGI_ENUM_MODES_INTERLACED = 0x1
)

type _GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var (
	_IID_IDXGIFactory = _GUID{0x7b7166ec, 0x21c7, 0x44ae, [8]byte{0xb2, 0x1a, 0xc9, 0xae, 0x32, 0x1a, 0xe3, 0x69}}
	_IID_Texture2D    = _GUID{0x6f15aaf2, 0xd208, 0x4e89, [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
)

var (
	d3d11 = windows.NewLazySystemDLL("d3d11.dll")

	_D3D11CreateDeviceAndSwapChain = d3d11.NewProc("D3D11CreateDeviceAndSwapChain")

	dxgi = windows.NewLazySystemDLL("dxgi.dll")

	_CreateDXGIFactory = dxgi.NewProc("CreateDXGIFactory")
)

type _DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type _DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRate      _DXGI_RATIONAL
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type _DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type _DXGI_SWAP_CHAIN_DESC struct {
	BufferDesc   _DXGI_MODE_DESC
	SampleDesc   _DXGI_SAMPLE_DESC
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow windows.Handle
	Windowed     uint32
	SwapEffect   uint32
	Flags        uint32
}

type _LUID struct {
	LowPart  uint32
	HighPart int32
}

type _DXGI_ADAPTER_DESC struct {
	Description           [128]uint16
	VendorId              uint32
	DeviceId              uint32
	SubSysId              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           _LUID
}

type _BUFFER_DESC struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

type _SUBRESOURCE_DATA struct {
	pSysMem          *byte
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

type _TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     _DXGI_SAMPLE_DESC
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type _DEPTH_STENCILOP_DESC struct {
	StencilFailOp      uint32
	StencilDepthFailOp uint32
	StencilPassOp      uint32
	StencilFunc        uint32
}

type _DEPTH_STENCIL_DESC struct {
	DepthEnable      uint32
	DepthWriteMask   uint32
	DepthFunc        uint32
	StencilEnable    uint32
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        _DEPTH_STENCILOP_DESC
	BackFace         _DEPTH_STENCILOP_DESC
}

type _RASTERIZER_DESC struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	ScissorEnable         uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
}

type _VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type _INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

type _IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type _IDXGIObjectVTbl struct {
	_IUnknownVTbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type _IUnknown struct {
	Vtbl *_IUnknownVTbl
}

type _IDXGIFactory struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		EnumAdapters          uintptr
		MakeWindowAssociation uintptr
		GetWindowAssociation  uintptr
		CreateSwapChain       uintptr
		CreateSoftwareAdapter uintptr
	}
}

type _IDXGIAdapter struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		EnumOutputs           uintptr
		GetDesc               uintptr
		CheckInterfaceSupport uintptr
	}
}

type _IDXGIOutput struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		GetDesc                     uintptr
		GetDisplayModeList          uintptr
		FindClosestMatchingMode     uintptr
		WaitForVBlank               uintptr
		TakeOwnership               uintptr
		ReleaseOwnership            uintptr
		GetGammaControlCapabilities uintptr
		SetGammaControl             uintptr
		GetGammaControl             uintptr
		SetDisplaySurface           uintptr
		GetDisplaySurfaceData       uintptr
		GetFrameStatistics          uintptr
	}
}

type _IDXGISwapChain struct {
	Vtbl *struct {
		_IDXGIObjectVTbl
		GetDevice           uintptr
		Present             uintptr
		GetBuffer           uintptr
		SetFullscreenState  uintptr
		GetFullscreenState  uintptr
		GetDesc             uintptr
		ResizeBuffers       uintptr
		ResizeTarget        uintptr
		GetContainingOutput uintptr
		GetFrameStatistics  uintptr
		GetLastPresentCount uintptr
	}
}

type _Device struct {
	Vtbl *struct {
		_IUnknownVTbl
		CreateBuffer                         uintptr
		CreateTexture1D                      uintptr
		CreateTexture2D                      uintptr
		CreateTexture3D                      uintptr
		CreateShaderResourceView             uintptr
		CreateUnorderedAccessView            uintptr
		CreateRenderTargetView               uintptr
		CreateDepthStencilView               uintptr
		CreateInputLayout                    uintptr
		CreateVertexShader                   uintptr
		CreateGeometryShader                 uintptr
		CreateGeometryShaderWithStreamOutput uintptr
		CreatePixelShader                    uintptr
		CreateHullShader                     uintptr
		CreateDomainShader                   uintptr
		CreateComputeShader                  uintptr
		CreateClassLinkage                   uintptr
		CreateBlendState                     uintptr
		CreateDepthStencilState              uintptr
		CreateRasterizerState                uintptr
		CreateSamplerState                   uintptr
		CreateQuery                          uintptr
		CreatePredicate                      uintptr
		CreateCounter                        uintptr
		CreateDeferredContext                uintptr
		OpenSharedResource                   uintptr
		CheckFormatSupport                   uintptr
		CheckMultisampleQualityLevels        uintptr
		CheckCounterInfo                     uintptr
		CheckCounter                         uintptr
		CheckFeatureSupport                  uintptr
		GetPrivateData                       uintptr
		SetPrivateData                       uintptr
		SetPrivateDataInterface              uintptr
		GetFeatureLevel                      uintptr
	}
}

type _DeviceContext struct {
	Vtbl *struct {
		_IUnknownVTbl
		GetDevice                                 uintptr
		GetPrivateData                            uintptr
		SetPrivateData                            uintptr
		SetPrivateDataInterface                   uintptr
		VSSetConstantBuffers                      uintptr
		PSSetShaderResources                      uintptr
		PSSetShader                               uintptr
		PSSetSamplers                             uintptr
		VSSetShader                               uintptr
		DrawIndexed                               uintptr
		Draw                                      uintptr
		Map                                       uintptr
		Unmap                                     uintptr
		PSSetConstantBuffers                      uintptr
		IASetInputLayout                          uintptr
		IASetVertexBuffers                        uintptr
		IASetIndexBuffer                          uintptr
		DrawIndexedInstanced                      uintptr
		DrawInstanced                             uintptr
		GSSetConstantBuffers                      uintptr
		GSSetShader                               uintptr
		IASetPrimitiveTopology                    uintptr
		VSSetShaderResources                      uintptr
		VSSetSamplers                             uintptr
		Begin                                     uintptr
		End                                       uintptr
		GetData                                   uintptr
		SetPredication                            uintptr
		GSSetShaderResources                      uintptr
		GSSetSamplers                             uintptr
		OMSetRenderTargets                        uintptr
		OMSetRenderTargetsAndUnorderedAccessViews uintptr
		OMSetBlendState                           uintptr
		OMSetDepthStencilState                    uintptr
		SOSetTargets                              uintptr
		DrawAuto                                  uintptr
		DrawIndexedInstancedIndirect              uintptr
		DrawInstancedIndirect                     uintptr
		Dispatch                                  uintptr
		DispatchIndirect                          uintptr
		RSSetState                                uintptr
		RSSetViewports                            uintptr
		RSSetScissorRects                         uintptr
		CopySubresourceRegion                     uintptr
		CopyResource                              uintptr
		UpdateSubresource                         uintptr
		CopyStructureCount                        uintptr
		ClearRenderTargetView                     uintptr
		ClearUnorderedAccessViewUint              uintptr
		ClearUnorderedAccessViewFloat             uintptr
		ClearDepthStencilView                     uintptr
	}
}

// comRelease decrements the reference count of a COM object.
func comRelease(obj unsafe.Pointer) {
	if obj == nil {
		return
	}
	u := (*_IUnknown)(obj)
	syscall.SyscallN(u.Vtbl.Release, uintptr(obj))
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func createDXGIFactory() (*_IDXGIFactory, error) {
	var factory *_IDXGIFactory
	r, _, _ := _CreateDXGIFactory.Call(
		uintptr(unsafe.Pointer(&_IID_IDXGIFactory)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "CreateDXGIFactory", Code: uint32(r)}
	}
	return factory, nil
}

func createDeviceAndSwapChain(driverType, flags uint32, levels []uint32, desc *_DXGI_SWAP_CHAIN_DESC) (*_Device, *_DeviceContext, *_IDXGISwapChain, uint32, error) {
	var (
		dev     *_Device
		ctx     *_DeviceContext
		swchain *_IDXGISwapChain
		featLvl uint32
		pLevels *uint32
	)
	if len(levels) > 0 {
		pLevels = &levels[0]
	}
	r, _, _ := _D3D11CreateDeviceAndSwapChain.Call(
		0,                                 // pAdapter
		uintptr(driverType),               // DriverType
		0,                                 // Software
		uintptr(flags),                    // Flags
		uintptr(unsafe.Pointer(pLevels)),  // pFeatureLevels
		uintptr(len(levels)),              // FeatureLevels
		_SDK_VERSION,                      // SDKVersion
		uintptr(unsafe.Pointer(desc)),     // pSwapChainDesc
		uintptr(unsafe.Pointer(&swchain)), // ppSwapChain
		uintptr(unsafe.Pointer(&dev)),     // ppDevice
		uintptr(unsafe.Pointer(&featLvl)), // pFeatureLevel
		uintptr(unsafe.Pointer(&ctx)),     // ppImmediateContext
	)
	if failed(r) {
		return nil, nil, nil, 0, ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: uint32(r)}
	}
	return dev, ctx, swchain, featLvl, nil
}

func (f *_IDXGIFactory) EnumAdapters(index uint32) (*_IDXGIAdapter, error) {
	var adapter *_IDXGIAdapter
	r, _, _ := syscall.SyscallN(
		f.Vtbl.EnumAdapters,
		uintptr(unsafe.Pointer(f)),
		uintptr(index),
		uintptr(unsafe.Pointer(&adapter)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIFactoryEnumAdapters", Code: uint32(r)}
	}
	return adapter, nil
}

func (a *_IDXGIAdapter) EnumOutputs(index uint32) (*_IDXGIOutput, error) {
	var output *_IDXGIOutput
	r, _, _ := syscall.SyscallN(
		a.Vtbl.EnumOutputs,
		uintptr(unsafe.Pointer(a)),
		uintptr(index),
		uintptr(unsafe.Pointer(&output)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIAdapterEnumOutputs", Code: uint32(r)}
	}
	return output, nil
}

func (a *_IDXGIAdapter) GetDesc() (_DXGI_ADAPTER_DESC, error) {
	var desc _DXGI_ADAPTER_DESC
	r, _, _ := syscall.SyscallN(
		a.Vtbl.GetDesc,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&desc)),
	)
	if failed(r) {
		return desc, ErrorCode{Name: "IDXGIAdapterGetDesc", Code: uint32(r)}
	}
	return desc, nil
}

// GetDisplayModeList performs the two-call enumeration: the first call
// yields the count, the second fills the list.
func (o *_IDXGIOutput) GetDisplayModeList(format, flags uint32) ([]_DXGI_MODE_DESC, error) {
	var n uint32
	r, _, _ := syscall.SyscallN(
		o.Vtbl.GetDisplayModeList,
		uintptr(unsafe.Pointer(o)),
		uintptr(format),
		uintptr(flags),
		uintptr(unsafe.Pointer(&n)),
		0,
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIOutputGetDisplayModeList", Code: uint32(r)}
	}
	if n == 0 {
		return nil, nil
	}
	modes := make([]_DXGI_MODE_DESC, n)
	r, _, _ = syscall.SyscallN(
		o.Vtbl.GetDisplayModeList,
		uintptr(unsafe.Pointer(o)),
		uintptr(format),
		uintptr(flags),
		uintptr(unsafe.Pointer(&n)),
		uintptr(unsafe.Pointer(&modes[0])),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGIOutputGetDisplayModeList", Code: uint32(r)}
	}
	return modes[:n], nil
}

func (s *_IDXGISwapChain) Present(syncInterval, flags uint32) error {
	r, _, _ := syscall.SyscallN(
		s.Vtbl.Present,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags),
	)
	if failed(r) {
		return ErrorCode{Name: "IDXGISwapChainPresent", Code: uint32(r)}
	}
	return nil
}

func (s *_IDXGISwapChain) GetBuffer(index uint32, riid *_GUID) (unsafe.Pointer, error) {
	var buf unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		s.Vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(index),
		uintptr(unsafe.Pointer(riid)),
		uintptr(unsafe.Pointer(&buf)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "IDXGISwapChainGetBuffer", Code: uint32(r)}
	}
	return buf, nil
}

func (d *_Device) CreateBuffer(desc *_BUFFER_DESC, data []byte) (unsafe.Pointer, error) {
	var dataDesc *_SUBRESOURCE_DATA
	if len(data) > 0 {
		dataDesc = &_SUBRESOURCE_DATA{pSysMem: &data[0]}
	}
	var buf unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateBuffer,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(dataDesc)),
		uintptr(unsafe.Pointer(&buf)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateBuffer", Code: uint32(r)}
	}
	return buf, nil
}

func (d *_Device) CreateTexture2D(desc *_TEXTURE2D_DESC) (unsafe.Pointer, error) {
	var tex unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		0, // pInitialData
		uintptr(unsafe.Pointer(&tex)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateTexture2D", Code: uint32(r)}
	}
	return tex, nil
}

func (d *_Device) CreateRenderTargetView(res unsafe.Pointer) (unsafe.Pointer, error) {
	var view unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(res),
		0, // pDesc
		uintptr(unsafe.Pointer(&view)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateRenderTargetView", Code: uint32(r)}
	}
	return view, nil
}

func (d *_Device) CreateDepthStencilView(res unsafe.Pointer) (unsafe.Pointer, error) {
	var view unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateDepthStencilView,
		uintptr(unsafe.Pointer(d)),
		uintptr(res),
		0, // pDesc
		uintptr(unsafe.Pointer(&view)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateDepthStencilView", Code: uint32(r)}
	}
	return view, nil
}

func (d *_Device) CreateInputLayout(descs []_INPUT_ELEMENT_DESC, bytecode []byte) (unsafe.Pointer, error) {
	var pdesc *_INPUT_ELEMENT_DESC
	if len(descs) > 0 {
		pdesc = &descs[0]
	}
	var layout unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateInputLayout,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(pdesc)),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		uintptr(unsafe.Pointer(&layout)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateInputLayout", Code: uint32(r)}
	}
	return layout, nil
}

func (d *_Device) createShader(method uintptr, name string, bytecode []byte) (unsafe.Pointer, error) {
	var shader unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: name, Code: uint32(r)}
	}
	return shader, nil
}

func (d *_Device) CreateVertexShader(bytecode []byte) (unsafe.Pointer, error) {
	return d.createShader(d.Vtbl.CreateVertexShader, "DeviceCreateVertexShader", bytecode)
}

func (d *_Device) CreatePixelShader(bytecode []byte) (unsafe.Pointer, error) {
	return d.createShader(d.Vtbl.CreatePixelShader, "DeviceCreatePixelShader", bytecode)
}

func (d *_Device) CreateDepthStencilState(desc *_DEPTH_STENCIL_DESC) (unsafe.Pointer, error) {
	var state unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateDepthStencilState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateDepthStencilState", Code: uint32(r)}
	}
	return state, nil
}

func (d *_Device) CreateRasterizerState(desc *_RASTERIZER_DESC) (unsafe.Pointer, error) {
	var state unsafe.Pointer
	r, _, _ := syscall.SyscallN(
		d.Vtbl.CreateRasterizerState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if failed(r) {
		return nil, ErrorCode{Name: "DeviceCreateRasterizerState", Code: uint32(r)}
	}
	return state, nil
}

func (d *_Device) GetFeatureLevel() uint32 {
	lvl, _, _ := syscall.SyscallN(d.Vtbl.GetFeatureLevel, uintptr(unsafe.Pointer(d)))
	return uint32(lvl)
}

func (c *_DeviceContext) UpdateSubresource(res unsafe.Pointer, data []byte) {
	if len(data) == 0 {
		return
	}
	syscall.SyscallN(
		c.Vtbl.UpdateSubresource,
		uintptr(unsafe.Pointer(c)),
		uintptr(res),
		0, // DstSubresource
		0, // pDstBox
		uintptr(unsafe.Pointer(&data[0])),
		0, // SrcRowPitch
		0, // SrcDepthPitch
	)
}

func (c *_DeviceContext) ClearRenderTargetView(view unsafe.Pointer, color *[4]float32) {
	syscall.SyscallN(
		c.Vtbl.ClearRenderTargetView,
		uintptr(unsafe.Pointer(c)),
		uintptr(view),
		uintptr(unsafe.Pointer(color)),
	)
}

func (c *_DeviceContext) ClearDepthStencilView(view unsafe.Pointer, flags uint32, depth float32, stencil uint8) {
	syscall.SyscallN(
		c.Vtbl.ClearDepthStencilView,
		uintptr(unsafe.Pointer(c)),
		uintptr(view),
		uintptr(flags),
		uintptr(math.Float32bits(depth)),
		uintptr(stencil),
	)
}

func (c *_DeviceContext) IASetVertexBuffers(slot uint32, buf unsafe.Pointer, stride, offset uint32) {
	syscall.SyscallN(
		c.Vtbl.IASetVertexBuffers,
		uintptr(unsafe.Pointer(c)),
		uintptr(slot),
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&stride)),
		uintptr(unsafe.Pointer(&offset)),
	)
}

func (c *_DeviceContext) IASetIndexBuffer(buf unsafe.Pointer, format, offset uint32) {
	syscall.SyscallN(
		c.Vtbl.IASetIndexBuffer,
		uintptr(unsafe.Pointer(c)),
		uintptr(buf),
		uintptr(format),
		uintptr(offset),
	)
}

func (c *_DeviceContext) IASetInputLayout(layout unsafe.Pointer) {
	syscall.SyscallN(c.Vtbl.IASetInputLayout, uintptr(unsafe.Pointer(c)), uintptr(layout))
}

func (c *_DeviceContext) IASetPrimitiveTopology(mode uint32) {
	syscall.SyscallN(c.Vtbl.IASetPrimitiveTopology, uintptr(unsafe.Pointer(c)), uintptr(mode))
}

func (c *_DeviceContext) VSSetShader(shader unsafe.Pointer) {
	syscall.SyscallN(
		c.Vtbl.VSSetShader,
		uintptr(unsafe.Pointer(c)),
		uintptr(shader),
		0, // ppClassInstances
		0, // NumClassInstances
	)
}

func (c *_DeviceContext) VSSetConstantBuffers(startSlot uint32, bufs []unsafe.Pointer) {
	if len(bufs) == 0 {
		return
	}
	syscall.SyscallN(
		c.Vtbl.VSSetConstantBuffers,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		uintptr(len(bufs)),
		uintptr(unsafe.Pointer(&bufs[0])),
	)
}

func (c *_DeviceContext) PSSetShader(shader unsafe.Pointer) {
	syscall.SyscallN(
		c.Vtbl.PSSetShader,
		uintptr(unsafe.Pointer(c)),
		uintptr(shader),
		0, // ppClassInstances
		0, // NumClassInstances
	)
}

func (c *_DeviceContext) RSSetState(state unsafe.Pointer) {
	syscall.SyscallN(c.Vtbl.RSSetState, uintptr(unsafe.Pointer(c)), uintptr(state))
}

func (c *_DeviceContext) RSSetViewports(viewport *_VIEWPORT) {
	syscall.SyscallN(
		c.Vtbl.RSSetViewports,
		uintptr(unsafe.Pointer(c)),
		1, // NumViewports
		uintptr(unsafe.Pointer(viewport)),
	)
}

func (c *_DeviceContext) OMSetRenderTargets(target, depth unsafe.Pointer) {
	var n uintptr
	if target != nil {
		n = 1
	}
	syscall.SyscallN(
		c.Vtbl.OMSetRenderTargets,
		uintptr(unsafe.Pointer(c)),
		n,
		uintptr(unsafe.Pointer(&target)),
		uintptr(depth),
	)
}

func (c *_DeviceContext) OMSetDepthStencilState(state unsafe.Pointer, stencilRef uint32) {
	syscall.SyscallN(
		c.Vtbl.OMSetDepthStencilState,
		uintptr(unsafe.Pointer(c)),
		uintptr(state),
		uintptr(stencilRef),
	)
}

func (c *_DeviceContext) DrawIndexed(count, start uint32, base int32) {
	syscall.SyscallN(
		c.Vtbl.DrawIndexed,
		uintptr(unsafe.Pointer(c)),
		uintptr(count),
		uintptr(start),
		uintptr(base),
	)
}
