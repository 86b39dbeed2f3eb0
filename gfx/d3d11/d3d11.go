// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package d3d11 implements the gfx interfaces on top of Direct3D 11 and DXGI.
// The COM interfaces are called through their vtables, no cgo is involved.
// On platforms other than Windows NewFactory returns gfx.ErrUnsupported.
package d3d11

import (
	"fmt"

	"github.com/devblok/echo/gfx"
)

// HRESULT values that callers may need to tell apart
const (
	E_INVALIDARG              = 0x80070057
	E_OUTOFMEMORY             = 0x8007000E
	DXGI_ERROR_NOT_FOUND      = 0x887A0002
	DXGI_ERROR_UNSUPPORTED    = 0x887A0004
	DXGI_ERROR_DEVICE_REMOVED = 0x887A0005
	DXGI_ERROR_DEVICE_RESET   = 0x887A0007
	DXGI_STATUS_OCCLUDED      = 0x087A0001
)

// ErrorCode is a failed HRESULT returned by the named call.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

// Is maps E_INVALIDARG to gfx.ErrInvalidArg and DXGI_ERROR_UNSUPPORTED
// to gfx.ErrUnsupported.
func (e ErrorCode) Is(target error) bool {
	switch target {
	case gfx.ErrInvalidArg:
		return e.Code == E_INVALIDARG
	case gfx.ErrUnsupported:
		return e.Code == DXGI_ERROR_UNSUPPORTED
	}
	return false
}

// failed reports whether an HRESULT denotes failure. Success codes
// such as DXGI_STATUS_OCCLUDED are not failures.
func failed(hr uintptr) bool {
	return int32(uint32(hr)) < 0
}
