// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/gfx/gfxtest"
)

var testModes = []gfx.DisplayMode{
	{Width: 1280, Height: 720, RefreshRate: gfx.Rational{Numerator: 60, Denominator: 1}},
	{Width: 1280, Height: 720, RefreshRate: gfx.Rational{Numerator: 59, Denominator: 1}},
	{Width: 1920, Height: 1080, RefreshRate: gfx.Rational{Numerator: 60, Denominator: 1}},
}

func TestSelectRefreshRate(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name          string
		width, height uint32
		want          gfx.Rational
	}{
		{"first match wins", 1280, 720, gfx.Rational{Numerator: 60, Denominator: 1}},
		{"single match", 1920, 1080, gfx.Rational{Numerator: 60, Denominator: 1}},
		{"no match", 800, 600, gfx.DefaultRefreshRate},
		{"width only", 1280, 1080, gfx.DefaultRefreshRate},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			c.Assert(gfx.SelectRefreshRate(testModes, test.width, test.height), qt.Equals, test.want)
		})
	}

	c.Assert(gfx.SelectRefreshRate(nil, 1280, 720), qt.Equals, gfx.Rational{Numerator: 0, Denominator: 1})
}

func TestQueryRefreshRateWithoutVSyncSkipsEnumeration(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.Modes = testModes

	rate, err := gfx.QueryRefreshRate(rec, 1280, 720, false)
	c.Assert(err, qt.IsNil)
	c.Assert(rate, qt.Equals, gfx.DefaultRefreshRate)
	c.Assert(rec.ModeQueries, qt.Equals, 0)
}

func TestQueryRefreshRateWithVSync(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.Modes = testModes

	rate, err := gfx.QueryRefreshRate(rec, 1280, 720, true)
	c.Assert(err, qt.IsNil)
	c.Assert(rate, qt.Equals, gfx.Rational{Numerator: 60, Denominator: 1})
	c.Assert(rec.ModeQueries, qt.Equals, 1)
	c.Assert(rate.Hz(), qt.Equals, 60.0)
}

func TestQueryRefreshRateEnumerationFailure(t *testing.T) {
	c := qt.New(t)
	rec := gfxtest.NewRecorder()
	rec.ModesErr = gfxtest.ErrInjected

	_, err := gfx.QueryRefreshRate(rec, 1280, 720, true)
	var enumErr *gfx.EnumerationError
	c.Assert(errors.As(err, &enumErr), qt.IsTrue)
	c.Assert(enumErr.Format, qt.Equals, gfx.FormatB8G8R8A8UNorm)
	c.Assert(errors.Is(err, gfxtest.ErrInjected), qt.IsTrue)
}
