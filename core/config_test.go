// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/devblok/echo/core"
	"github.com/devblok/echo/core/renderer"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := core.DefaultConfiguration()
	if cfg.Renderer.ScreenWidth != 1280 || cfg.Renderer.ScreenHeight != 720 {
		t.Errorf("default size %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if !cfg.Renderer.VSync {
		t.Error("vsync is off by default")
	}
	if cfg.Renderer.Debug != core.DebugBuild {
		t.Error("debug does not follow the build")
	}
	if cfg.Window.Title != "Echo Engine" {
		t.Errorf("default title %q", cfg.Window.Title)
	}
	if cfg.Time.TargetFramerate != 30 {
		t.Errorf("default framerate %d", cfg.Time.TargetFramerate)
	}
	if cfg.Renderer.ClearColor != renderer.CornflowerBlue {
		t.Errorf("default clear color %v", cfg.Renderer.ClearColor)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	cfg, err := core.LoadConfiguration(filepath.Join(t.TempDir(), "echo.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != core.DefaultConfiguration() {
		t.Errorf("missing file changed the configuration: %+v", cfg)
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.yaml")
	contents := `
renderer:
  width: 800
  height: 600
  vsync: false
window:
  title: Cube
shaders:
  archive: shaders.kar
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := core.LoadConfiguration(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer.ScreenWidth != 800 || cfg.Renderer.ScreenHeight != 600 {
		t.Errorf("size %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Renderer.VSync {
		t.Error("vsync not disabled")
	}
	if cfg.Window.Title != "Cube" {
		t.Errorf("title %q", cfg.Window.Title)
	}
	if cfg.Shaders.Archive != "shaders.kar" || cfg.Shaders.Directory != "shaders" {
		t.Errorf("shaders %+v", cfg.Shaders)
	}
	if cfg.Time.TargetFramerate != 30 {
		t.Errorf("unset framerate changed to %d", cfg.Time.TargetFramerate)
	}
}

func TestLoadConfigurationMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.yaml")
	if err := os.WriteFile(path, []byte("renderer: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := core.LoadConfiguration(path); err == nil {
		t.Error("malformed file accepted")
	}
}

// setEnv sets the variables for the duration of the test.
func setEnv(t *testing.T, values map[string]string) {
	t.Cleanup(envy.Reload)
	for key, value := range values {
		t.Setenv(key, value)
	}
	envy.Reload()
}

func TestLoadConfigurationEnvironment(t *testing.T) {
	setEnv(t, map[string]string{
		core.EnvWidth:     "1920",
		core.EnvHeight:    "1080",
		core.EnvVSync:     "false",
		core.EnvDebug:     "true",
		core.EnvShaderDir: "build/shaders",
	})

	cfg, err := core.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer.ScreenWidth != 1920 || cfg.Renderer.ScreenHeight != 1080 {
		t.Errorf("size %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Renderer.VSync || !cfg.Renderer.Debug {
		t.Errorf("flags vsync=%t debug=%t", cfg.Renderer.VSync, cfg.Renderer.Debug)
	}
	if cfg.Shaders.Directory != "build/shaders" {
		t.Errorf("shader directory %q", cfg.Shaders.Directory)
	}
}

func TestLoadConfigurationInvalidEnvironment(t *testing.T) {
	tests := map[string]string{
		core.EnvWidth:  "wide",
		core.EnvHeight: "0",
		core.EnvVSync:  "sometimes",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setEnv(t, map[string]string{key: value})
			if _, err := core.LoadConfiguration(""); err == nil {
				t.Errorf("%s=%s accepted", key, value)
			}
		})
	}
}

func TestLoadConfigurationEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("ECHO_SHADER_ARCHIVE=from-env-file.kar\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the process environment, restore it afterwards
	setEnv(t, map[string]string{core.EnvShaderArchive: ""})
	os.Unsetenv(core.EnvShaderArchive)

	cfg, err := core.LoadConfiguration("", envFile, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shaders.Archive != "from-env-file.kar" {
		t.Errorf("archive %q", cfg.Shaders.Archive)
	}
}
