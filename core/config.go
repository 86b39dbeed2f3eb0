// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/devblok/echo/core/renderer"
)

// Environment overrides
const (
	EnvWidth         = "ECHO_WIDTH"
	EnvHeight        = "ECHO_HEIGHT"
	EnvVSync         = "ECHO_VSYNC"
	EnvDebug         = "ECHO_DEBUG"
	EnvShaderDir     = "ECHO_SHADER_DIR"
	EnvShaderArchive = "ECHO_SHADER_ARCHIVE"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration      `yaml:"time"`
	Renderer renderer.Configuration `yaml:"renderer"`
	Window   WindowConfiguration    `yaml:"window"`
	Shaders  ShaderConfiguration    `yaml:"shaders"`
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// TargetFramerate is the lowest simulated rate, a longer
	// step is clamped to one frame of it. 0 disables clamping
	TargetFramerate int `yaml:"targetFramerate"`
}

// WindowConfiguration describes the application window
type WindowConfiguration struct {
	Title string `yaml:"title"`
}

// ShaderConfiguration tells where compiled shaders are searched,
// after the ones embedded into the executable
type ShaderConfiguration struct {
	Directory string `yaml:"directory"`
	Archive   string `yaml:"archive"`
}

// DefaultConfiguration returns the settings used when nothing overrides them.
func DefaultConfiguration() Configuration {
	rc := renderer.DefaultConfiguration()
	rc.Debug = DebugBuild
	return Configuration{
		Time: TimeConfiguration{
			TargetFramerate: 30,
		},
		Renderer: rc,
		Window: WindowConfiguration{
			Title: "Echo Engine",
		},
		Shaders: ShaderConfiguration{
			Directory: "shaders",
		},
	}
}

// LoadConfiguration starts from DefaultConfiguration, applies the YAML file at path
// when it exists, then the variables from envFiles and the environment.
func LoadConfiguration(path string, envFiles ...string) (Configuration, error) {
	cfg := DefaultConfiguration()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, errors.New("core.LoadConfiguration(): " + err.Error())
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.New("core.LoadConfiguration(): " + err.Error())
			}
		}
	}

	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return cfg, errors.New("godotenv.Load(): " + err.Error())
		}
		envy.Reload()
	}

	if err := applyEnvironment(&cfg); err != nil {
		return cfg, errors.New("core.LoadConfiguration(): " + err.Error())
	}
	return cfg, nil
}

func applyEnvironment(cfg *Configuration) error {
	if err := envUint32(EnvWidth, &cfg.Renderer.ScreenWidth); err != nil {
		return err
	}
	if err := envUint32(EnvHeight, &cfg.Renderer.ScreenHeight); err != nil {
		return err
	}
	if err := envBool(EnvVSync, &cfg.Renderer.VSync); err != nil {
		return err
	}
	if err := envBool(EnvDebug, &cfg.Renderer.Debug); err != nil {
		return err
	}
	cfg.Shaders.Directory = envy.Get(EnvShaderDir, cfg.Shaders.Directory)
	cfg.Shaders.Archive = envy.Get(EnvShaderArchive, cfg.Shaders.Archive)
	return nil
}

func envUint32(key string, out *uint32) error {
	v := envy.Get(key, "")
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return errors.New(key + ": invalid size " + strconv.Quote(v))
	}
	*out = uint32(n)
	return nil
}

func envBool(key string, out *bool) error {
	v := envy.Get(key, "")
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.New(key + ": invalid flag " + strconv.Quote(v))
	}
	*out = b
	return nil
}
