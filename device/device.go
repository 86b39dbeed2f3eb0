// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device describes the display adapters and modes a Factory sees.
package device

import (
	"errors"

	"github.com/devblok/echo/gfx"
)

// AdapterInfo describes available physical properties of a rendering device
type AdapterInfo struct {
	ID                    int    `json:"id"`
	VendorID              uint32 `json:"vendorId"`
	DeviceID              uint32 `json:"deviceId"`
	Name                  string `json:"name"`
	DedicatedVideoMemory  uint64 `json:"dedicatedVideoMemory"`
	DedicatedSystemMemory uint64 `json:"dedicatedSystemMemory"`
	SharedSystemMemory    uint64 `json:"sharedSystemMemory"`
}

// ModeInfo is a display mode of the primary output
type ModeInfo struct {
	Width       uint32       `json:"width"`
	Height      uint32       `json:"height"`
	RefreshRate gfx.Rational `json:"refreshRate"`
	Hz          float64      `json:"hz"`
}

// Description is everything Describe learned about the system
type Description struct {
	Adapters []AdapterInfo `json:"adapters"`
	Modes    []ModeInfo    `json:"modes"`

	// Selected is the refresh rate a vsynced swap chain of the
	// requested size would use
	Selected gfx.Rational `json:"selected"`
}

// Describe lists the adapters and the display modes of the primary output
// in the swap chain format, and selects the refresh rate for width x height.
func Describe(f gfx.Factory, width, height uint32) (Description, error) {
	var desc Description

	adapters, err := f.Adapters()
	if err != nil {
		return desc, errors.New("device.Describe(): " + err.Error())
	}
	for _, a := range adapters {
		desc.Adapters = append(desc.Adapters, AdapterInfo{
			ID:                    a.Index,
			VendorID:              a.VendorID,
			DeviceID:              a.DeviceID,
			Name:                  a.Description,
			DedicatedVideoMemory:  a.DedicatedVideoMemory,
			DedicatedSystemMemory: a.DedicatedSystemMemory,
			SharedSystemMemory:    a.SharedSystemMemory,
		})
	}

	modes, err := f.DisplayModes(gfx.FormatB8G8R8A8UNorm)
	if err != nil {
		return desc, &gfx.EnumerationError{Format: gfx.FormatB8G8R8A8UNorm, Err: err}
	}
	for _, m := range modes {
		desc.Modes = append(desc.Modes, ModeInfo{
			Width:       m.Width,
			Height:      m.Height,
			RefreshRate: m.RefreshRate,
			Hz:          m.RefreshRate.Hz(),
		})
	}
	desc.Selected = gfx.SelectRefreshRate(modes, width, height)
	return desc, nil
}
