// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/echo/core/renderer"
	"github.com/devblok/echo/gfx"
	"github.com/devblok/echo/model"
)

// Exit codes returned by Run
const (
	ExitClean = 0
	ExitFatal = -1
)

// Application drives one window: it creates the graphics device,
// loads the scene and ticks it until the surface is closed.
// Every method must be called from the thread owning the surface.
type Application struct {
	cfg     Configuration
	surface Surface
	factory gfx.Factory
	store   renderer.ShaderStore

	// Object is drawn by the sequencer, the cube unless replaced before Initialise
	Object model.Object

	graphics  *gfx.Graphics
	frame     *renderer.FrameResources
	scene     *renderer.SceneResources
	sequencer *renderer.Sequencer
	time      *Time

	now       func() time.Time
	lastError string
}

// NewApplication creates an Application, call Initialise before Run.
func NewApplication(cfg Configuration, surface Surface, factory gfx.Factory, store renderer.ShaderStore) *Application {
	return &Application{
		cfg:     cfg,
		surface: surface,
		factory: factory,
		store:   store,
		Object:  model.NewCube(),
		time:    NewTime(cfg.Time),
		now:     time.Now,
	}
}

// Graphics returns the graphics device, nil before Initialise.
func (a *Application) Graphics() *gfx.Graphics {
	return a.graphics
}

// Sequencer returns the frame sequencer, nil before Initialise.
func (a *Application) Sequencer() *renderer.Sequencer {
	return a.sequencer
}

// Initialise creates the graphics device and the frame resources, then loads
// the scene. A failure to create the first two is shown to the user and
// returned, a failure to load the scene is shown and otherwise ignored.
func (a *Application) Initialise() error {
	width, height := a.surface.ClientSize()
	log.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"vsync":  a.cfg.Renderer.VSync,
		"debug":  a.cfg.Renderer.Debug,
	}).Info("initialising")

	g, err := gfx.NewGraphics(a.factory, gfx.GraphicsConfiguration{
		Width:  width,
		Height: height,
		VSync:  a.cfg.Renderer.VSync,
		Debug:  a.cfg.Renderer.Debug,
		Window: a.surface.NativeHandle(),
	})
	if err != nil {
		var enumErr *gfx.EnumerationError
		if errors.As(err, &enumErr) {
			a.surface.ShowError(TitleQueryRefreshRate, MessageDisplayMode)
		} else {
			a.surface.ShowError(TitleError, MessageGraphics)
		}
		return errors.New("core.Initialise(): " + err.Error())
	}
	a.graphics = g

	frame, err := renderer.NewFrameResources(g.Device, g.SwapChain, width, height)
	if err != nil {
		a.surface.ShowError(TitleError, MessageFrame)
		a.Destroy()
		return errors.New("core.Initialise(): " + err.Error())
	}
	a.frame = frame

	names := renderer.DefaultShaderNames(a.cfg.Renderer.Debug)
	scene, err := renderer.LoadContent(g.Device, g.Context, a.store, names, a.Object, width, height)
	if err != nil {
		entry := log.WithError(err)
		var stageErr *renderer.StageError
		if errors.As(err, &stageErr) {
			entry = entry.WithField("stage", stageErr.Stage)
		}
		entry.Error("content load failed, rendering with partial resources")
		a.surface.ShowError(TitleError, MessageContent)
	}
	a.scene = scene

	a.sequencer = renderer.NewSequencer(g, frame, scene, a.cfg.Renderer.ClearColor)
	return nil
}

// Run pumps the surface and ticks the scene until the surface is closed.
func (a *Application) Run() int {
	if a.sequencer == nil {
		log.Error("core.Run(): application is not initialised")
		return ExitFatal
	}

	a.time.Reset(a.now())
	for {
		if events := a.surface.Pump(); events != nil {
			for _, e := range events {
				if e == EventClose {
					log.Debug("close requested, leaving run loop")
					return ExitClean
				}
			}
			continue
		}

		dt := a.time.Step(a.now())
		if err := a.sequencer.Tick(dt); err != nil {
			a.frameError(err)
		}
	}
}

// frameError logs a failed frame once until the failure changes.
func (a *Application) frameError(err error) {
	if msg := err.Error(); msg != a.lastError {
		log.WithError(err).Error("frame failed")
		a.lastError = msg
	}
}

// Destroy releases the scene, the frame resources and the graphics device, in that order.
func (a *Application) Destroy() {
	a.sequencer = nil
	a.scene.Release()
	a.scene = nil
	a.frame.Release()
	a.frame = nil
	a.graphics.Release()
	a.graphics = nil
	log.Debug("application destroyed")
}
