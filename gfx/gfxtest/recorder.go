// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfxtest

import (
	"errors"

	"github.com/devblok/echo/gfx"
)

// Resource kinds created by a Recorder
const (
	KindDevice            = "device"
	KindContext           = "context"
	KindSwapChain         = "swapchain"
	KindBuffer            = "buffer"
	KindTexture2D         = "texture2d"
	KindRenderTargetView  = "rendertargetview"
	KindDepthStencilView  = "depthstencilview"
	KindDepthStencilState = "depthstencilstate"
	KindRasterizerState   = "rasterizerstate"
	KindVertexShader      = "vertexshader"
	KindPixelShader       = "pixelshader"
	KindInputLayout       = "inputlayout"
)

// Call is one recorded context or swap chain call.
type Call struct {
	Op   string
	Args []interface{}
}

// Recorder is a fake gfx.Factory. Devices, contexts and swap chains created
// by it record every call and track resource lifetimes in the embedded Tracker.
type Recorder struct {
	Tracker

	// Modes is returned by DisplayModes unless ModesErr is set.
	Modes       []gfx.DisplayMode
	ModesErr    error
	ModeQueries int

	AdapterList []gfx.AdapterInfo

	// CreateErrs are returned, in order, by successive
	// CreateDeviceAndSwapChain calls. Later calls succeed.
	CreateErrs []error
	Attempts   []gfx.DeviceParams
	SwapDesc   gfx.SwapChainDesc

	// Fail makes the named Device or SwapChain method return the error.
	Fail map[string]error

	// PresentErr is returned by every Present call.
	PresentErr error

	Calls []Call

	Device    *Device
	Context   *Context
	SwapChain *SwapChain
}

// NewRecorder creates a Recorder with no failures configured.
func NewRecorder() *Recorder {
	return &Recorder{
		Fail: map[string]error{},
	}
}

var _ gfx.Factory = (*Recorder)(nil)

// Adapters implements gfx.Factory.
func (r *Recorder) Adapters() ([]gfx.AdapterInfo, error) {
	return r.AdapterList, nil
}

// DisplayModes implements gfx.Factory.
func (r *Recorder) DisplayModes(format gfx.Format) ([]gfx.DisplayMode, error) {
	r.ModeQueries++
	if r.ModesErr != nil {
		return nil, r.ModesErr
	}
	return r.Modes, nil
}

// CreateDeviceAndSwapChain implements gfx.Factory.
func (r *Recorder) CreateDeviceAndSwapChain(params gfx.DeviceParams, desc gfx.SwapChainDesc) (gfx.Device, gfx.Context, gfx.SwapChain, error) {
	levels := make([]gfx.FeatureLevel, len(params.FeatureLevels))
	copy(levels, params.FeatureLevels)
	params.FeatureLevels = levels
	r.Attempts = append(r.Attempts, params)

	if len(r.CreateErrs) > 0 {
		err := r.CreateErrs[0]
		r.CreateErrs = r.CreateErrs[1:]
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if len(levels) == 0 {
		return nil, nil, nil, gfx.ErrInvalidArg
	}

	r.SwapDesc = desc
	dev := r.New(KindDevice, params)
	r.Device = &Device{Resource: dev, rec: r, level: levels[0]}
	r.Context = &Context{Resource: r.New(KindContext, nil, dev), rec: r}
	r.SwapChain = &SwapChain{Resource: r.New(KindSwapChain, desc, dev), rec: r}
	return r.Device, r.Context, r.SwapChain, nil
}

// CallsOf returns the recorded calls named op.
func (r *Recorder) CallsOf(op string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

// Ops returns the names of all recorded calls in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// ResetCalls forgets the recorded calls.
func (r *Recorder) ResetCalls() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) record(op string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) fail(op string) error {
	if err, ok := r.Fail[op]; ok {
		return err
	}
	return nil
}

// AsResource returns the Resource behind a handle, nil for empty handles.
func AsResource(h interface{}) *Resource {
	switch v := h.(type) {
	case *Resource:
		return v
	case *Device:
		return v.Resource
	case *Context:
		return v.Resource
	case *SwapChain:
		return v.Resource
	}
	return nil
}

// Device is a recording gfx.Device.
type Device struct {
	*Resource
	rec   *Recorder
	level gfx.FeatureLevel
}

var _ gfx.Device = (*Device)(nil)

// FeatureLevel implements gfx.Device.
func (d *Device) FeatureLevel() gfx.FeatureLevel {
	return d.level
}

func (d *Device) create(op, kind string, desc interface{}, deps ...*Resource) (*Resource, error) {
	if err := d.rec.fail(op); err != nil {
		return nil, err
	}
	return d.rec.New(kind, desc, append([]*Resource{d.Resource}, deps...)...), nil
}

// CreateBuffer implements gfx.Device.
func (d *Device) CreateBuffer(desc gfx.BufferDesc, data []byte) (gfx.Buffer, error) {
	res, err := d.create("CreateBuffer", KindBuffer, desc)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		res.Data = append([]byte(nil), data...)
	}
	return res, nil
}

// CreateTexture2D implements gfx.Device.
func (d *Device) CreateTexture2D(desc gfx.Texture2DDesc) (gfx.Texture2D, error) {
	res, err := d.create("CreateTexture2D", KindTexture2D, desc)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateRenderTargetView implements gfx.Device.
func (d *Device) CreateRenderTargetView(tex gfx.Texture2D) (gfx.RenderTargetView, error) {
	res, err := d.create("CreateRenderTargetView", KindRenderTargetView, nil, AsResource(tex))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateDepthStencilView implements gfx.Device.
func (d *Device) CreateDepthStencilView(tex gfx.Texture2D) (gfx.DepthStencilView, error) {
	res, err := d.create("CreateDepthStencilView", KindDepthStencilView, nil, AsResource(tex))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateDepthStencilState implements gfx.Device.
func (d *Device) CreateDepthStencilState(desc gfx.DepthStencilDesc) (gfx.DepthStencilState, error) {
	res, err := d.create("CreateDepthStencilState", KindDepthStencilState, desc)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateRasterizerState implements gfx.Device.
func (d *Device) CreateRasterizerState(desc gfx.RasterizerDesc) (gfx.RasterizerState, error) {
	res, err := d.create("CreateRasterizerState", KindRasterizerState, desc)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateVertexShader implements gfx.Device.
func (d *Device) CreateVertexShader(bytecode []byte) (gfx.VertexShader, error) {
	if len(bytecode) == 0 {
		return nil, gfx.ErrInvalidArg
	}
	res, err := d.create("CreateVertexShader", KindVertexShader, nil)
	if err != nil {
		return nil, err
	}
	res.Data = append([]byte(nil), bytecode...)
	return res, nil
}

// CreatePixelShader implements gfx.Device.
func (d *Device) CreatePixelShader(bytecode []byte) (gfx.PixelShader, error) {
	if len(bytecode) == 0 {
		return nil, gfx.ErrInvalidArg
	}
	res, err := d.create("CreatePixelShader", KindPixelShader, nil)
	if err != nil {
		return nil, err
	}
	res.Data = append([]byte(nil), bytecode...)
	return res, nil
}

// CreateInputLayout implements gfx.Device.
func (d *Device) CreateInputLayout(elements []gfx.InputElement, bytecode []byte) (gfx.InputLayout, error) {
	if len(elements) == 0 || len(bytecode) == 0 {
		return nil, gfx.ErrInvalidArg
	}
	desc := append([]gfx.InputElement(nil), elements...)
	res, err := d.create("CreateInputLayout", KindInputLayout, desc)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Context is a recording gfx.Context.
type Context struct {
	*Resource
	rec *Recorder
}

var _ gfx.Context = (*Context)(nil)

// UpdateSubresource implements gfx.Context. The buffer keeps a copy of data.
func (c *Context) UpdateSubresource(buf gfx.Buffer, data []byte) {
	c.rec.record("UpdateSubresource", AsResource(buf), len(data))
	if res := AsResource(buf); res != nil {
		res.Data = append(res.Data[:0], data...)
	}
}

// ClearRenderTargetView implements gfx.Context.
func (c *Context) ClearRenderTargetView(view gfx.RenderTargetView, color [4]float32) {
	c.rec.record("ClearRenderTargetView", AsResource(view), color)
}

// ClearDepthStencilView implements gfx.Context.
func (c *Context) ClearDepthStencilView(view gfx.DepthStencilView, flags gfx.ClearFlag, depth float32, stencil uint8) {
	c.rec.record("ClearDepthStencilView", AsResource(view), flags, depth, stencil)
}

// IASetVertexBuffers implements gfx.Context.
func (c *Context) IASetVertexBuffers(slot uint32, buf gfx.Buffer, stride, offset uint32) {
	c.rec.record("IASetVertexBuffers", slot, AsResource(buf), stride, offset)
}

// IASetIndexBuffer implements gfx.Context.
func (c *Context) IASetIndexBuffer(buf gfx.Buffer, format gfx.Format, offset uint32) {
	c.rec.record("IASetIndexBuffer", AsResource(buf), format, offset)
}

// IASetInputLayout implements gfx.Context.
func (c *Context) IASetInputLayout(layout gfx.InputLayout) {
	c.rec.record("IASetInputLayout", AsResource(layout))
}

// IASetPrimitiveTopology implements gfx.Context.
func (c *Context) IASetPrimitiveTopology(topology gfx.PrimitiveTopology) {
	c.rec.record("IASetPrimitiveTopology", topology)
}

// VSSetShader implements gfx.Context.
func (c *Context) VSSetShader(shader gfx.VertexShader) {
	c.rec.record("VSSetShader", AsResource(shader))
}

// VSSetConstantBuffers implements gfx.Context.
func (c *Context) VSSetConstantBuffers(startSlot uint32, bufs []gfx.Buffer) {
	res := make([]*Resource, len(bufs))
	for i, b := range bufs {
		res[i] = AsResource(b)
	}
	c.rec.record("VSSetConstantBuffers", startSlot, res)
}

// RSSetState implements gfx.Context.
func (c *Context) RSSetState(state gfx.RasterizerState) {
	c.rec.record("RSSetState", AsResource(state))
}

// RSSetViewports implements gfx.Context.
func (c *Context) RSSetViewports(viewport gfx.Viewport) {
	c.rec.record("RSSetViewports", viewport)
}

// PSSetShader implements gfx.Context.
func (c *Context) PSSetShader(shader gfx.PixelShader) {
	c.rec.record("PSSetShader", AsResource(shader))
}

// OMSetRenderTargets implements gfx.Context.
func (c *Context) OMSetRenderTargets(target gfx.RenderTargetView, depth gfx.DepthStencilView) {
	c.rec.record("OMSetRenderTargets", AsResource(target), AsResource(depth))
}

// OMSetDepthStencilState implements gfx.Context.
func (c *Context) OMSetDepthStencilState(state gfx.DepthStencilState, stencilRef uint32) {
	c.rec.record("OMSetDepthStencilState", AsResource(state), stencilRef)
}

// DrawIndexed implements gfx.Context.
func (c *Context) DrawIndexed(indexCount, startIndex uint32, baseVertex int32) {
	c.rec.record("DrawIndexed", indexCount, startIndex, baseVertex)
}

// SwapChain is a recording gfx.SwapChain.
type SwapChain struct {
	*Resource
	rec *Recorder
}

var _ gfx.SwapChain = (*SwapChain)(nil)

// BackBuffer implements gfx.SwapChain.
func (s *SwapChain) BackBuffer() (gfx.Texture2D, error) {
	if err := s.rec.fail("BackBuffer"); err != nil {
		return nil, err
	}
	desc := s.Desc.(gfx.SwapChainDesc)
	return s.rec.New(KindTexture2D, gfx.Texture2DDesc{
		Width:     desc.Width,
		Height:    desc.Height,
		MipLevels: 1,
		ArraySize: 1,
		Format:    desc.Format,
		BindFlags: gfx.BindRenderTarget,
	}, s.Resource), nil
}

// Present implements gfx.SwapChain.
func (s *SwapChain) Present(syncInterval uint32) error {
	s.rec.record("Present", syncInterval)
	return s.rec.PresentErr
}

// ErrInjected is a generic error for failure injection.
var ErrInjected = errors.New("injected failure")
