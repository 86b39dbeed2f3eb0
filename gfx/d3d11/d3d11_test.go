// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/echo/gfx"
)

func TestErrorCodeIs(t *testing.T) {
	c := qt.New(t)

	invalid := ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: E_INVALIDARG}
	c.Assert(errors.Is(invalid, gfx.ErrInvalidArg), qt.IsTrue)
	c.Assert(errors.Is(fmt.Errorf("wrapped: %w", invalid), gfx.ErrInvalidArg), qt.IsTrue)
	c.Assert(errors.Is(invalid, gfx.ErrUnsupported), qt.IsFalse)
	c.Assert(invalid.Error(), qt.Equals, "D3D11CreateDeviceAndSwapChain: 0x80070057")

	unsupported := ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: DXGI_ERROR_UNSUPPORTED}
	c.Assert(errors.Is(unsupported, gfx.ErrUnsupported), qt.IsTrue)
	c.Assert(errors.Is(unsupported, gfx.ErrInvalidArg), qt.IsFalse)
}

func TestFailed(t *testing.T) {
	c := qt.New(t)
	c.Assert(failed(0), qt.IsFalse)
	c.Assert(failed(DXGI_STATUS_OCCLUDED), qt.IsFalse)
	c.Assert(failed(E_INVALIDARG), qt.IsTrue)
	c.Assert(failed(DXGI_ERROR_NOT_FOUND), qt.IsTrue)
}
