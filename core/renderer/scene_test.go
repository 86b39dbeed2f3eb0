// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/packd"

	"github.com/devblok/echo/core/renderer"
	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/gfx/gfxtest"
	"github.com/devblok/echo/model"
)

func TestLoadContent(t *testing.T) {
	c := qt.New(t)
	rec, g := newTestGraphics(c, true)
	names := renderer.DefaultShaderNames(false)
	cube := model.NewCube()

	scene, err := renderer.LoadContent(g.Device, g.Context, newTestStore(c, names), names, cube, testWidth, testHeight)
	c.Assert(err, qt.IsNil)
	c.Assert(scene.IndexCount(), qt.Equals, uint32(36))

	vb := gfxtest.AsResource(scene.VertexBuffer)
	c.Assert(vb.Data, qt.DeepEquals, model.VertexBytes(cube.Vertices()))
	c.Assert(vb.Desc.(gfx.BufferDesc).BindFlags, qt.Equals, gfx.BindVertexBuffer)
	c.Assert(vb.Desc.(gfx.BufferDesc).ByteWidth, qt.Equals, 8*model.VertexStride)

	ib := gfxtest.AsResource(scene.IndexBuffer)
	c.Assert(ib.Data, qt.HasLen, 72)
	c.Assert(ib.Desc.(gfx.BufferDesc).BindFlags, qt.Equals, gfx.BindIndexBuffer)

	for _, cb := range scene.ConstantBuffers {
		c.Assert(gfxtest.AsResource(cb).Desc, qt.Equals, renderer.ConstantBufferDesc)
	}

	// the projection is pushed once, at load
	updates := rec.CallsOf("UpdateSubresource")
	c.Assert(updates, qt.HasLen, 1)
	c.Assert(updates[0].Args[0], qt.Equals, gfxtest.AsResource(scene.ConstantBuffers[renderer.SlotApplication]))
	c.Assert(gfxtest.AsResource(scene.ConstantBuffers[renderer.SlotApplication]).Data,
		qt.DeepEquals, model.MatrixBytes(model.ClientProjection(testWidth, testHeight)))
	c.Assert(scene.Projection, qt.Equals, model.ClientProjection(testWidth, testHeight))

	c.Assert(gfxtest.AsResource(scene.VertexShader).Data, qt.DeepEquals, testVertexBytecode)
	c.Assert(gfxtest.AsResource(scene.PixelShader).Data, qt.DeepEquals, testPixelBytecode)
	c.Assert(gfxtest.AsResource(scene.InputLayout).Desc, qt.DeepEquals, model.InputElements())

	scene.Release()
	g.Release()
	c.Assert(rec.Violations, qt.HasLen, 0)
	c.Assert(rec.Live(), qt.HasLen, 0)
}

func TestLoadContentMissingPixelShaderIsDegraded(t *testing.T) {
	c := qt.New(t)
	rec, g := newTestGraphics(c, false)
	names := renderer.DefaultShaderNames(false)

	box := packd.NewMemoryBox()
	c.Assert(box.AddBytes(names.Vertex, testVertexBytecode), qt.IsNil)

	scene, err := renderer.LoadContent(g.Device, g.Context, renderer.NewBoxStore(box), names, model.NewCube(), testWidth, testHeight)
	c.Assert(errors.Is(err, renderer.ErrShaderNotFound), qt.IsTrue)

	var stageErr *renderer.StageError
	c.Assert(errors.As(err, &stageErr), qt.IsTrue)
	c.Assert(stageErr.Stage, qt.Equals, renderer.StagePixelBytecode)

	c.Assert(scene, qt.IsNotNil)
	c.Assert(scene.VertexShader, qt.IsNotNil)
	c.Assert(scene.InputLayout, qt.IsNotNil)
	c.Assert(scene.PixelShader, qt.IsNil)
	c.Assert(rec.CallsOf("UpdateSubresource"), qt.HasLen, 1)

	scene.Release()
	g.Release()
	c.Assert(rec.Violations, qt.HasLen, 0)
}

func TestLoadContentFailures(t *testing.T) {
	tests := []struct {
		op    string
		stage string
		live  int
	}{
		{"CreateBuffer", renderer.StageVertexBuffer, 0},
		{"CreateVertexShader", renderer.StageVertexShader, 5},
		{"CreateInputLayout", renderer.StageInputLayout, 6},
		{"CreatePixelShader", renderer.StagePixelShader, 7},
	}

	for _, test := range tests {
		t.Run(test.op, func(t *testing.T) {
			c := qt.New(t)
			rec, g := newTestGraphics(c, false)
			rec.Fail[test.op] = gfxtest.ErrInjected
			names := renderer.DefaultShaderNames(true)

			scene, err := renderer.LoadContent(g.Device, g.Context, newTestStore(c, names), names, model.NewCube(), testWidth, testHeight)
			var stageErr *renderer.StageError
			c.Assert(errors.As(err, &stageErr), qt.IsTrue)
			c.Assert(stageErr.Stage, qt.Equals, test.stage)

			// device, context and swap chain plus whatever the scene built
			c.Assert(rec.Live(), qt.HasLen, 3+test.live)

			scene.Release()
			c.Assert(rec.Live(), qt.HasLen, 3)
			g.Release()
			c.Assert(rec.Violations, qt.HasLen, 0)
		})
	}
}

func TestPushConstants(t *testing.T) {
	c := qt.New(t)
	rec, g := newTestGraphics(c, false)
	defer g.Release()
	names := renderer.DefaultShaderNames(false)

	scene, err := renderer.LoadContent(g.Device, g.Context, newTestStore(c, names), names, model.NewCube(), testWidth, testHeight)
	c.Assert(err, qt.IsNil)
	defer scene.Release()

	view := model.DefaultCamera.View()
	c.Assert(scene.PushConstants(g.Context, renderer.SlotFrame, view), qt.IsNil)
	c.Assert(gfxtest.AsResource(scene.ConstantBuffers[renderer.SlotFrame]).Data, qt.DeepEquals, model.MatrixBytes(view))

	c.Assert(scene.PushConstants(g.Context, renderer.NumConstantBuffers, view), qt.IsNotNil)
	c.Assert(scene.PushConstants(g.Context, -1, view), qt.IsNotNil)
	c.Assert(rec.CallsOf("UpdateSubresource"), qt.HasLen, 2)

	// buffers that were never created are skipped
	empty := &renderer.SceneResources{}
	c.Assert(empty.PushConstants(g.Context, renderer.SlotObject, view), qt.IsNil)
	c.Assert(rec.CallsOf("UpdateSubresource"), qt.HasLen, 2)
}
