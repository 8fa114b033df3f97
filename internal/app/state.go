package app

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/philipparndt/browmap/internal/camera"
	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/store"
)

// CameraState holds the background frame source
type CameraState struct {
	source camera.Source
	latest *camera.Latest
	cancel context.CancelFunc
}

// PersistState holds the snapshot store and its watcher
type PersistState struct {
	store     *store.Store
	stopWatch func() error
}

// UIState holds the window and the widgets that mirror the model
type UIState struct {
	window  fyne.Window
	view    *OverlayView
	sidebar *Sidebar
}

// App is the GUI host: it owns the model and feeds it from gestures,
// sidebar edits and external snapshot changes, all on the UI goroutine.
type App struct {
	model   *overlay.Model
	machine *gesture.Machine
	log     *slog.Logger

	Camera  CameraState
	Persist PersistState
	UI      UIState

	snapshotDir string
}
