// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// FeatureLevels is the descending list of feature levels requested at device creation.
var FeatureLevels = []FeatureLevel{
	FeatureLevel11_1,
	FeatureLevel11_0,
	FeatureLevel10_1,
	FeatureLevel10_0,
	FeatureLevel9_3,
	FeatureLevel9_2,
	FeatureLevel9_1,
}

// GraphicsConfiguration describes the presentation surface to create.
type GraphicsConfiguration struct {
	Width  uint32
	Height uint32
	VSync  bool
	Debug  bool

	// Window is the native handle the swap chain presents to.
	Window uintptr
}

// Graphics owns a device, its immediate context and the swap chain
// bound to a window. Nothing else releases them.
type Graphics struct {
	Device    Device
	Context   Context
	SwapChain SwapChain

	RefreshRate  Rational
	FeatureLevel FeatureLevel
	VSync        bool
}

// NewGraphics creates a hardware device and a swap chain for cfg.Window.
// When the driver rejects the highest feature level as an invalid argument
// the creation is retried once without it.
func NewGraphics(f Factory, cfg GraphicsConfiguration) (*Graphics, error) {
	refreshRate, err := QueryRefreshRate(f, cfg.Width, cfg.Height, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("gfx.QueryRefreshRate(): %w", err)
	}

	desc := SwapChainDesc{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        FormatR8G8B8A8UNorm,
		RefreshRate:   refreshRate,
		SampleCount:   1,
		SampleQuality: 0,
		BufferUsage:   BufferUsageRenderTargetOutput,
		BufferCount:   1,
		OutputWindow:  cfg.Window,
		Windowed:      true,
		SwapEffect:    SwapEffectDiscard,
	}

	params := DeviceParams{
		DriverType:    DriverHardware,
		Debug:         cfg.Debug,
		FeatureLevels: FeatureLevels,
	}

	device, context, swapChain, err := f.CreateDeviceAndSwapChain(params, desc)
	if errors.Is(err, ErrInvalidArg) {
		log.WithField("featureLevel", FeatureLevels[0]).Debug("feature level rejected, retrying without it")
		params.FeatureLevels = FeatureLevels[1:]
		device, context, swapChain, err = f.CreateDeviceAndSwapChain(params, desc)
	}
	if err != nil {
		return nil, fmt.Errorf("gfx.CreateDeviceAndSwapChain(): %w", err)
	}

	g := &Graphics{
		Device:       device,
		Context:      context,
		SwapChain:    swapChain,
		RefreshRate:  refreshRate,
		FeatureLevel: device.FeatureLevel(),
		VSync:        cfg.VSync,
	}
	log.WithFields(log.Fields{
		"featureLevel": g.FeatureLevel,
		"refreshRate":  g.RefreshRate,
		"vsync":        g.VSync,
	}).Info("graphics device created")
	return g, nil
}

// SyncInterval returns the number of vertical blanks Present waits for.
func (g *Graphics) SyncInterval() uint32 {
	if g.VSync {
		return 1
	}
	return 0
}

// Release releases the swap chain, the context and finally the device.
func (g *Graphics) Release() {
	if g == nil {
		return
	}
	var r Releaser
	r.Track(g.Device, g.Context, g.SwapChain)
	r.Release()
	g.SwapChain = nil
	g.Context = nil
	g.Device = nil
}
