// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !windows

package d3d11

import "github.com/devblok/echo/gfx"

// NewFactory returns gfx.ErrUnsupported, Direct3D 11 is only available on Windows.
func NewFactory() (gfx.Factory, error) {
	return nil, gfx.ErrUnsupported
}
