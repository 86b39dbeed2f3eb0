// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/echo/core"
	"github.com/devblok/echo/core/renderer"
	"github.com/devblok/echo/gfx/d3d11"
	"github.com/devblok/echo/platform"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "echo.yaml", "Configuration file, skipped when missing")
	envFile    = flag.String("env", ".env", "Environment file, skipped when missing")
)

// shaderStore searches the configured archive, then the shader
// directory, then the shaders embedded into the executable.
func shaderStore(cfg core.ShaderConfiguration) (renderer.ShaderStore, func()) {
	var (
		chain   renderer.StoreChain
		closers []func()
	)

	if cfg.Archive != "" {
		if archive, err := renderer.OpenArchiveStore(cfg.Archive); err != nil {
			log.WithError(err).WithField("archive", cfg.Archive).Warn("shader archive skipped")
		} else {
			chain = append(chain, archive)
			closers = append(closers, func() { archive.Close() })
		}
	}
	if cfg.Directory != "" {
		chain = append(chain, renderer.DirectoryStore(cfg.Directory))
	}
	chain = append(chain, renderer.NewBoxStore(packr.NewBox("../../shaders/bin")))

	return chain, func() {
		for _, c := range closers {
			c()
		}
	}
}

func run() int {
	flag.Parse()

	cfg, err := core.LoadConfiguration(*configPath, *envFile)
	if err != nil {
		log.WithError(err).Error("configuration rejected")
		platform.ShowError(nil, core.TitleError, err.Error())
		return core.ExitFatal
	}
	if cfg.Renderer.Debug {
		log.SetLevel(log.DebugLevel)
	}

	surface, err := platform.NewSDLSurface(platform.WindowConfiguration{
		Title:  cfg.Window.Title,
		Width:  cfg.Renderer.ScreenWidth,
		Height: cfg.Renderer.ScreenHeight,
	})
	if err != nil {
		log.WithError(err).Error("window creation failed")
		platform.ShowError(nil, core.TitleError, core.MessageWindow)
		return core.ExitFatal
	}
	defer surface.Destroy()

	factory, err := d3d11.NewFactory()
	if err != nil {
		log.WithError(err).Error("graphics factory unavailable")
		surface.ShowError(core.TitleError, core.MessageGraphics)
		return core.ExitFatal
	}

	store, closeStore := shaderStore(cfg.Shaders)
	defer closeStore()

	app := core.NewApplication(cfg, surface, factory, store)
	defer app.Destroy()
	if err := app.Initialise(); err != nil {
		log.WithError(err).Error("initialisation failed")
		return core.ExitFatal
	}

	code := app.Run()
	log.WithField("code", code).Info("run loop exited")
	return code
}

func main() {
	os.Exit(run())
}
