// Package app is the desktop host: a fyne window with the live overlay view
// and the sidebar controls.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/browmap/internal/camera"
	"github.com/philipparndt/browmap/internal/export"
	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/store"
)

const (
	appID         = "io.github.philipparndt.browmap"
	watchDebounce = 200 * time.Millisecond
)

// Options configure the host
type Options struct {
	Store *store.Store
	// Source provides background frames; nil shows a blank background
	Source      camera.Source
	Gesture     []gesture.Option
	SnapshotDir string
	Log         *slog.Logger
}

// Run opens the window and blocks until it is closed
func Run(model *overlay.Model, opts Options) error {
	if opts.Store == nil {
		return errors.New("no configuration store")
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	a := &App{
		model:       model,
		log:         log,
		snapshotDir: opts.SnapshotDir,
		Camera: CameraState{
			source: opts.Source,
			latest: &camera.Latest{},
		},
		Persist: PersistState{store: opts.Store},
	}
	gopts := append([]gesture.Option{gesture.WithLogger(log)}, opts.Gesture...)
	a.machine = gesture.New(model, gopts...)

	fa := fyneapp.NewWithID(appID)
	a.UI.window = fa.NewWindow("browmap")
	a.setupMainUI()
	a.startCamera()
	a.startWatch()

	a.UI.window.SetCloseIntercept(func() {
		a.shutdown()
		a.UI.window.Close()
	})
	a.UI.window.Resize(fyne.NewSize(1280, 800))
	a.UI.window.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	snapshot := widget.NewButtonWithIcon("", theme.MediaPhotoIcon(), a.snapshot)
	mirror := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		cfg := a.model.Config()
		if a.model.SetDisplay(overlay.DisplayPatch{Mirror: overlay.B(!cfg.Mirror)}) {
			a.UI.sidebar.Sync()
			a.UI.view.Refresh()
		}
	})
	toolbar := container.NewHBox(snapshot, mirror)

	a.UI.view = NewOverlayView(a.model, a.machine, a.Camera.latest, toolbar)
	a.UI.sidebar = NewSidebar(a.model, SidebarActions{
		Save:     a.save,
		Reset:    a.confirmReset,
		Snapshot: a.snapshot,
	}, a.UI.view.Refresh)
	a.UI.view.SetOnEdit(a.UI.sidebar.Sync)

	content := container.NewBorder(nil, nil, nil, a.UI.sidebar.Content(), a.UI.view)
	a.UI.window.SetContent(content)
}

func (a *App) startCamera() {
	if a.Camera.source == nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.Camera.cancel = cancel

	view := a.UI.view
	a.Camera.latest.OnUpdate(func(camera.Frame) {
		fyne.Do(view.Refresh)
	})
	go func() {
		if err := a.Camera.source.Run(ctx, a.Camera.latest); err != nil {
			a.log.Error("camera stopped", "error", err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("camera: %w", err), a.UI.window)
			})
		}
	}()
}

func (a *App) startWatch() {
	stop, err := a.Persist.store.Watch(watchDebounce, func(cfg overlay.Config) {
		fyne.Do(func() {
			if a.model.Replace(cfg) {
				a.log.Info("reloaded configuration", "path", a.Persist.store.Path())
				a.UI.sidebar.Sync()
				a.UI.view.Refresh()
			}
		})
	})
	if err != nil {
		a.log.Warn("not watching configuration", "error", err)
		return
	}
	a.Persist.stopWatch = stop
}

func (a *App) save() {
	if err := a.Persist.store.Save(a.model.Config()); err != nil {
		dialog.ShowError(err, a.UI.window)
		return
	}
	a.log.Info("saved configuration", "path", a.Persist.store.Path())
}

func (a *App) confirmReset() {
	dialog.ShowConfirm("Reset", "Restore the factory mold and forget the saved configuration?", func(ok bool) {
		if !ok {
			return
		}
		a.machine.Reset()
		if err := a.Persist.store.Remove(); err != nil {
			dialog.ShowError(err, a.UI.window)
		}
		a.model.Reset()
		a.UI.sidebar.Sync()
		a.UI.view.Refresh()
	}, a.UI.window)
}

func (a *App) snapshot() {
	var frame camera.Frame
	if f, ok := a.Camera.latest.Get(); ok {
		frame = f
	}
	img := export.Compose(frame.Image, a.model.Config(), export.DefaultOptions())

	dir := a.snapshotDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("browmap-%s.png", time.Now().Format("20060102-150405")))
	if err := export.WriteFile(path, img, 0); err != nil {
		dialog.ShowError(err, a.UI.window)
		return
	}
	a.log.Info("saved snapshot", "path", path)
	dialog.ShowInformation("Snapshot", "Saved to "+path, a.UI.window)
}

// shutdown stops background work and persists the configuration
func (a *App) shutdown() {
	if a.Camera.cancel != nil {
		a.Camera.cancel()
	}
	if a.Persist.stopWatch != nil {
		if err := a.Persist.stopWatch(); err != nil {
			a.log.Debug("failed to stop watcher", "error", err)
		}
	}
	if err := a.Persist.store.Save(a.model.Config()); err != nil {
		a.log.Error("failed to save configuration on exit", "error", err)
	}
}
