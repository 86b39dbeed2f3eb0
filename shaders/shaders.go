// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package shaders holds the HLSL sources of the scene programs.
// The compiled objects land in bin, where cmd/echo embeds them from
// and cmd/kar can pack them into an archive.
package shaders

//go:generate fxc /nologo /T vs_4_0_level_9_1 /E SimpleVertexShader /Fo bin/SimpleVertexShader.cso SimpleVertexShader.hlsl
//go:generate fxc /nologo /T vs_4_0_level_9_1 /E SimpleVertexShader /Zi /Od /Fo bin/SimpleVertexShader_d.cso SimpleVertexShader.hlsl
//go:generate fxc /nologo /T ps_4_0_level_9_1 /E SimplePixelShader /Fo bin/SimplePixelShader.cso SimplePixelShader.hlsl
//go:generate fxc /nologo /T ps_4_0_level_9_1 /E SimplePixelShader /Zi /Od /Fo bin/SimplePixelShader_d.cso SimplePixelShader.hlsl
