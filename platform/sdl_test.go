// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/echo/core"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  core.Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, core.EventClose, true},
		{"close", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}, core.EventClose, true},
		{"exposed", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_EXPOSED}, core.EventPaint, true},
		{"moved", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, 0, false},
		{"key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN}, 0, false},
	}

	for _, test := range tests {
		got, ok := translate(test.event)
		if got != test.want || ok != test.ok {
			t.Errorf("%s: got %v/%t, want %v/%t", test.name, got, ok, test.want, test.ok)
		}
	}
}
