// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

// Configuration describes the renderer configuration
type Configuration struct {
	ScreenWidth  uint32 `yaml:"width"`
	ScreenHeight uint32 `yaml:"height"`

	// VSync presents on the vertical blank and
	// matches the swap chain refresh rate to the display
	VSync bool `yaml:"vsync"`

	// Debug requests the device debug layer
	// and the debug variant of the shaders
	Debug bool `yaml:"debug"`

	ClearColor [4]float32 `yaml:"clearColor"`
}

// CornflowerBlue is the default clear color
var CornflowerBlue = [4]float32{0.392156899, 0.584313750, 0.929411829, 1.0}

// DefaultConfiguration renders a 1280x720 client area with vsync on.
func DefaultConfiguration() Configuration {
	return Configuration{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		VSync:        true,
		ClearColor:   CornflowerBlue,
	}
}
