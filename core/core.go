// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Event is a platform event forwarded by a Surface
type Event int

// Events a Surface reports
const (
	// EventPaint asks for the client area to be redrawn
	EventPaint Event = iota + 1

	// EventClose ends the run loop
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventPaint:
		return "paint"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// Surface owns the native window and its message queue.
// All methods are called from the thread that created it.
type Surface interface {
	// Pump drains the pending platform messages without blocking and
	// returns the events among them. It returns nil when no message was
	// pending and an empty slice when none of them was an Event
	Pump() []Event

	// ClientSize returns the size of the drawable area in pixels
	ClientSize() (uint32, uint32)

	// NativeHandle returns the handle a swap chain presents to
	NativeHandle() uintptr

	// ShowError blocks on a modal error message
	ShowError(title, message string)
}

// Messages shown to the user on failure
const (
	TitleError            = "Error"
	TitleQueryRefreshRate = "Query Refresh Rate"

	MessageWindow      = "Failed to create application window."
	MessageDisplayMode = "Failed to query display mode list."
	MessageGraphics    = "Failed to create DirectX device and swap chain."
	MessageFrame       = "Failed to create render targets."
	MessageContent     = "Failed to load content."
)
