// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer_test

import (
	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/packd"

	"github.com/devblok/echo/core/renderer"
	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/gfx/gfxtest"
)

const (
	testWidth  = 1280
	testHeight = 720
)

var (
	testVertexBytecode = []byte("DXBC vertex program")
	testPixelBytecode  = []byte("DXBC pixel program")
)

func newTestGraphics(c *qt.C, vsync bool) (*gfxtest.Recorder, *gfx.Graphics) {
	rec := gfxtest.NewRecorder()
	g, err := gfx.NewGraphics(rec, gfx.GraphicsConfiguration{
		Width:  testWidth,
		Height: testHeight,
		VSync:  vsync,
		Window: 0xbeef,
	})
	c.Assert(err, qt.IsNil)
	return rec, g
}

func newTestStore(c *qt.C, names renderer.ShaderNames) *renderer.BoxStore {
	box := packd.NewMemoryBox()
	c.Assert(box.AddBytes(names.Vertex, testVertexBytecode), qt.IsNil)
	c.Assert(box.AddBytes(names.Pixel, testPixelBytecode), qt.IsNil)
	return renderer.NewBoxStore(box)
}
