// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "fmt"

// Format is a pixel or vertex element format.
type Format uint32

// Formats in use
const (
	FormatUnknown        Format = 0
	FormatR32G32B32Float Format = 6
	FormatR8G8B8A8UNorm  Format = 28
	FormatD24UNormS8UInt Format = 45
	FormatR16UInt        Format = 57
	FormatB8G8R8A8UNorm  Format = 87
)

// Usage describes the expected read/write pattern of a resource.
type Usage uint32

// Resource usages
const (
	UsageDefault Usage = iota
	UsageImmutable
	UsageDynamic
	UsageStaging
)

// BindFlag describes how a resource is bound to the pipeline.
type BindFlag uint32

// Bind flags
const (
	BindVertexBuffer   BindFlag = 0x1
	BindIndexBuffer    BindFlag = 0x2
	BindConstantBuffer BindFlag = 0x4
	BindShaderResource BindFlag = 0x8
	BindRenderTarget   BindFlag = 0x20
	BindDepthStencil   BindFlag = 0x40
)

// CPUAccess describes CPU access to a resource. Zero is no access.
type CPUAccess uint32

// CPU access flags
const (
	CPUAccessWrite CPUAccess = 0x10000
	CPUAccessRead  CPUAccess = 0x20000
)

// ComparisonFunc compares a source value against a destination value.
type ComparisonFunc uint32

// Comparison functions
const (
	ComparisonNever ComparisonFunc = iota + 1
	ComparisonLess
	ComparisonEqual
	ComparisonLessEqual
	ComparisonGreater
	ComparisonNotEqual
	ComparisonGreaterEqual
	ComparisonAlways
)

// DepthWriteMask selects which part of the depth buffer can be written.
type DepthWriteMask uint32

// Depth write masks
const (
	DepthWriteMaskZero DepthWriteMask = 0
	DepthWriteMaskAll  DepthWriteMask = 1
)

// StencilOp is performed on the stencil buffer after a test.
type StencilOp uint32

// Stencil operations
const (
	StencilOpKeep StencilOp = iota + 1
	StencilOpZero
	StencilOpReplace
)

// FillMode is the rasterizer fill mode.
type FillMode uint32

// Fill modes
const (
	FillWireframe FillMode = 2
	FillSolid     FillMode = 3
)

// CullMode selects the triangles not drawn by the rasterizer.
type CullMode uint32

// Cull modes
const (
	CullNone CullMode = iota + 1
	CullFront
	CullBack
)

// PrimitiveTopology describes how vertices are assembled into primitives.
type PrimitiveTopology uint32

// Primitive topologies
const (
	TopologyTriangleList  PrimitiveTopology = 4
	TopologyTriangleStrip PrimitiveTopology = 5
)

// ClearFlag selects the parts of a depth/stencil view to clear.
type ClearFlag uint32

// Clear flags
const (
	ClearDepth   ClearFlag = 0x1
	ClearStencil ClearFlag = 0x2
)

// InputClassification tells whether an element advances per vertex or per instance.
type InputClassification uint32

// Input classifications
const (
	InputPerVertex InputClassification = iota
	InputPerInstance
)

// FeatureLevel is a capability tier of a device.
type FeatureLevel uint32

// Feature levels
const (
	FeatureLevel9_1  FeatureLevel = 0x9100
	FeatureLevel9_2  FeatureLevel = 0x9200
	FeatureLevel9_3  FeatureLevel = 0x9300
	FeatureLevel10_0 FeatureLevel = 0xa000
	FeatureLevel10_1 FeatureLevel = 0xa100
	FeatureLevel11_0 FeatureLevel = 0xb000
	FeatureLevel11_1 FeatureLevel = 0xb100
)

func (f FeatureLevel) String() string {
	return fmt.Sprintf("%d_%d", uint32(f)>>12, (uint32(f)>>8)&0xf)
}

// DriverType selects the device implementation.
type DriverType uint32

// Driver types
const (
	DriverUnknown DriverType = iota
	DriverHardware
	DriverReference
	DriverNull
	DriverSoftware
	DriverWARP
)

// SwapEffect selects what happens to the back buffer after presentation.
type SwapEffect uint32

// Swap effects
const (
	SwapEffectDiscard SwapEffect = 0
)

// BufferUsageRenderTargetOutput marks swap chain buffers as render targets.
const BufferUsageRenderTargetOutput uint32 = 1 << (1 + 4)

// BufferDesc describes a buffer.
type BufferDesc struct {
	ByteWidth      uint32
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccess
}

// Texture2DDesc describes a two dimensional texture.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	SampleCount    uint32
	SampleQuality  uint32
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccess
}

// StencilOpDesc describes stencil operations for one face.
type StencilOpDesc struct {
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
	Func        ComparisonFunc
}

// DepthStencilDesc describes a depth/stencil state.
type DepthStencilDesc struct {
	DepthEnable      bool
	DepthWriteMask   DepthWriteMask
	DepthFunc        ComparisonFunc
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        StencilOpDesc
	BackFace         StencilOpDesc
}

// RasterizerDesc describes a rasterizer state.
type RasterizerDesc struct {
	FillMode              FillMode
	CullMode              CullMode
	FrontCounterClockwise bool
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       bool
	ScissorEnable         bool
	MultisampleEnable     bool
	AntialiasedLineEnable bool
}

// Viewport maps normalized device coordinates to the render target.
type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// InputElement describes one vertex field.
type InputElement struct {
	SemanticName         string
	SemanticIndex        uint32
	Format               Format
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       InputClassification
	InstanceDataStepRate uint32
}

// Rational is a refresh rate fraction. The zero-numerator value 0/1
// leaves the refresh rate unspecified.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// DefaultRefreshRate is the unspecified refresh rate.
var DefaultRefreshRate = Rational{Numerator: 0, Denominator: 1}

// Hz returns the refresh rate in hertz, 0 for an unspecified rate.
func (r Rational) Hz() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// DisplayMode is one mode supported by an output.
type DisplayMode struct {
	Width       uint32
	Height      uint32
	RefreshRate Rational
	Format      Format
}

// SwapChainDesc describes a windowed swap chain.
type SwapChainDesc struct {
	Width         uint32
	Height        uint32
	Format        Format
	RefreshRate   Rational
	SampleCount   uint32
	SampleQuality uint32
	BufferUsage   uint32
	BufferCount   uint32
	OutputWindow  uintptr
	Windowed      bool
	SwapEffect    SwapEffect
}

// DeviceParams selects how a device is created.
type DeviceParams struct {
	DriverType    DriverType
	Debug         bool
	FeatureLevels []FeatureLevel
}

// AdapterInfo describes a display adapter.
type AdapterInfo struct {
	Index                 int
	Description           string
	VendorID              uint32
	DeviceID              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
}
