package app

import (
	"context"
	"errors"
	"io"

	"github.com/dungoboogies/la-traffic-scheduler/internal/export"
	"github.com/dungoboogies/la-traffic-scheduler/internal/render"
)

// App renders the master icon once and exports the icon set from it.
type App struct {
	Config   export.Config
	Render   *render.Renderer
	Exporter *export.Exporter
	Logger   Logger

	// MasterSize is the edge of the bitmap every output is derived from.
	MasterSize int
}

// New wires the renderer and an exporter for cfg into an App.
func New(cfg export.Config, renderer *render.Renderer, out io.Writer) *App {
	return &App{
		Config:     cfg,
		Render:     renderer,
		Exporter:   export.New(cfg, out),
		Logger:     NoopLogger{},
		MasterSize: render.MasterSize,
	}
}

// Run executes the whole export sequence.
func (app *App) Run(ctx context.Context) error {
	if app.Render == nil {
		app.Render = render.NewRenderer()
	}
	if app.Exporter == nil {
		return errors.New("exporter not configured")
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Render.Logger = app.Logger
	app.Exporter.Logger = app.Logger

	master, err := app.Render.Render(app.MasterSize)
	if err != nil {
		app.Logger.Errorf("app", "render failed: %v", err)
		return err
	}

	plan := export.DefaultPlan(app.Config)
	app.Logger.Infof("app", "exporting %d targets (filter=%s)", len(plan), app.Exporter.Filter)
	if err := app.Exporter.Run(ctx, master, plan); err != nil {
		return err
	}
	app.Logger.Infof("app", "icon set complete")
	return nil
}
