// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !debug

package core

// DebugBuild is true when built with the debug tag
const DebugBuild = false
