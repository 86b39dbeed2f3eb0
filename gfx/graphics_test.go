// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/gfx/gfxtest"
)

var testConfiguration = gfx.GraphicsConfiguration{
	Width:  1280,
	Height: 720,
	VSync:  true,
	Window: 0xbeef,
}

func TestNewGraphicsSwapChainDescription(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.Modes = testModes

	g, err := gfx.NewGraphics(rec, testConfiguration)
	c.Assert(err, qt.IsNil)
	defer g.Release()

	c.Assert(rec.SwapDesc, qt.DeepEquals, gfx.SwapChainDesc{
		Width:         1280,
		Height:        720,
		Format:        gfx.FormatR8G8B8A8UNorm,
		RefreshRate:   gfx.Rational{Numerator: 60, Denominator: 1},
		SampleCount:   1,
		SampleQuality: 0,
		BufferUsage:   gfx.BufferUsageRenderTargetOutput,
		BufferCount:   1,
		OutputWindow:  0xbeef,
		Windowed:      true,
		SwapEffect:    gfx.SwapEffectDiscard,
	})
	c.Assert(rec.Attempts, qt.HasLen, 1)
	c.Assert(rec.Attempts[0].DriverType, qt.Equals, gfx.DriverHardware)
	c.Assert(rec.Attempts[0].Debug, qt.IsFalse)
	c.Assert(rec.Attempts[0].FeatureLevels, qt.DeepEquals, gfx.FeatureLevels)
	c.Assert(g.FeatureLevel, qt.Equals, gfx.FeatureLevel11_1)
	c.Assert(g.SyncInterval(), qt.Equals, uint32(1))
}

func TestNewGraphicsRetriesWithoutHighestFeatureLevel(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.CreateErrs = []error{fmt.Errorf("driver says: %w", gfx.ErrInvalidArg)}

	cfg := testConfiguration
	cfg.VSync = false
	g, err := gfx.NewGraphics(rec, cfg)
	c.Assert(err, qt.IsNil)
	defer g.Release()

	c.Assert(rec.Attempts, qt.HasLen, 2)
	c.Assert(rec.Attempts[1].FeatureLevels, qt.DeepEquals, gfx.FeatureLevels[1:])
	c.Assert(g.FeatureLevel, qt.Equals, gfx.FeatureLevel11_0)
	c.Assert(g.SyncInterval(), qt.Equals, uint32(0))
	c.Assert(rec.SwapDesc.RefreshRate, qt.Equals, gfx.DefaultRefreshRate)
}

func TestNewGraphicsOtherErrorsAreFatal(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.CreateErrs = []error{gfxtest.ErrInjected}

	_, err := gfx.NewGraphics(rec, testConfiguration)
	c.Assert(err, qt.ErrorMatches, "gfx.CreateDeviceAndSwapChain\\(\\): injected failure")
	c.Assert(rec.Attempts, qt.HasLen, 1)
	c.Assert(rec.Live(), qt.HasLen, 0)
}

func TestNewGraphicsRetryFailureIsFatal(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.CreateErrs = []error{gfx.ErrInvalidArg, gfx.ErrInvalidArg}

	_, err := gfx.NewGraphics(rec, testConfiguration)
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(rec.Attempts, qt.HasLen, 2)
}

func TestNewGraphicsEnumerationFailure(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.ModesErr = errors.New("no outputs")

	_, err := gfx.NewGraphics(rec, testConfiguration)
	c.Assert(err, qt.ErrorMatches, "gfx.QueryRefreshRate\\(\\): .*no outputs")
	c.Assert(rec.Attempts, qt.HasLen, 0)
}

func TestNewGraphicsDebugLayer(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()

	cfg := testConfiguration
	cfg.Debug = true
	g, err := gfx.NewGraphics(rec, cfg)
	c.Assert(err, qt.IsNil)
	defer g.Release()
	c.Assert(rec.Attempts[0].Debug, qt.IsTrue)
}

func TestGraphicsRelease(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()

	g, err := gfx.NewGraphics(rec, testConfiguration)
	c.Assert(err, qt.IsNil)
	g.Release()
	g.Release()

	c.Assert(rec.Violations, qt.HasLen, 0)
	c.Assert(rec.Live(), qt.HasLen, 0)
	c.Assert(rec.Releases[len(rec.Releases)-1].Kind, qt.Equals, gfxtest.KindDevice)
}
