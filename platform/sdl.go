// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package platform provides the display surface over SDL2.
package platform

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/echo/core"
)

// WindowConfiguration describes the window to create
type WindowConfiguration struct {
	Title  string
	Width  uint32
	Height uint32
}

// SDLSurface is a core.Surface backed by an SDL2 window
type SDLSurface struct {
	window *sdl.Window
}

var _ core.Surface = (*SDLSurface)(nil)

// NewSDLSurface initialises SDL video and opens a centered window
// whose client area is cfg.Width x cfg.Height.
func NewSDLSurface(cfg WindowConfiguration) (*SDLSurface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}

	var version sdl.Version
	sdl.GetVersion(&version)
	log.WithField("version", version).Debug("SDL initialised")

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}
	return &SDLSurface{window: window}, nil
}

// Pump implements core.Surface
func (s *SDLSurface) Pump() []core.Event {
	var events []core.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if events == nil {
			events = []core.Event{}
		}
		if e, ok := translate(event); ok {
			events = append(events, e)
		}
	}
	return events
}

func translate(event sdl.Event) (core.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return core.EventClose, true
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return core.EventClose, true
		case sdl.WINDOWEVENT_EXPOSED:
			return core.EventPaint, true
		}
	}
	return 0, false
}

// ClientSize implements core.Surface
func (s *SDLSurface) ClientSize() (uint32, uint32) {
	w, h := s.window.GetSize()
	return uint32(w), uint32(h)
}

// NativeHandle implements core.Surface. It is the HWND on Windows and 0 elsewhere.
func (s *SDLSurface) NativeHandle() uintptr {
	info, err := s.window.GetWMInfo()
	if err != nil {
		log.WithError(err).Warn("window manager info unavailable")
		return 0
	}
	if info.Subsystem != sdl.SYSWM_WINDOWS {
		return 0
	}
	return uintptr(info.GetWindowsInfo().Window)
}

// ShowError implements core.Surface
func (s *SDLSurface) ShowError(title, message string) {
	var window *sdl.Window
	if s != nil {
		window = s.window
	}
	ShowError(window, title, message)
}

// ShowError blocks on a modal error box, window may be nil.
func ShowError(window *sdl.Window, title, message string) {
	if err := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, message, window); err != nil {
		log.WithError(err).WithField("message", message).Error("cannot show error box")
	}
}

// Destroy closes the window and shuts SDL down
func (s *SDLSurface) Destroy() {
	s.window.Destroy()
	sdl.Quit()
}
