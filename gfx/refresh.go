// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "fmt"

// EnumerationError is returned when display modes could not be enumerated.
type EnumerationError struct {
	Format Format
	Err    error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("display mode enumeration for format %d failed: %s", e.Format, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// SelectRefreshRate returns the refresh rate of the first mode whose
// dimensions match width and height exactly, DefaultRefreshRate otherwise.
func SelectRefreshRate(modes []DisplayMode, width, height uint32) Rational {
	for _, mode := range modes {
		if mode.Width == width && mode.Height == height {
			return mode.RefreshRate
		}
	}
	return DefaultRefreshRate
}

// QueryRefreshRate picks the refresh rate for a swap chain of the given size.
// Without vsync the modes are not enumerated at all.
func QueryRefreshRate(f Factory, width, height uint32, vsync bool) (Rational, error) {
	if !vsync {
		return DefaultRefreshRate, nil
	}

	modes, err := f.DisplayModes(FormatB8G8R8A8UNorm)
	if err != nil {
		return DefaultRefreshRate, &EnumerationError{Format: FormatB8G8R8A8UNorm, Err: err}
	}
	return SelectRefreshRate(modes, width, height), nil
}
