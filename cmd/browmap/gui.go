package main

import (
	"github.com/philipparndt/browmap/internal/app"
	"github.com/philipparndt/browmap/internal/camera"
	"github.com/spf13/cobra"
)

var guiFlags struct {
	camera    string
	image     string
	noCamera  bool
	width     int
	height    int
	snapshots string
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the live overlay window",
	Long: `Open the overlay window on top of the camera preview. Drag the background
to move the molds, drag a handle to reshape one side, scroll to zoom.
The configuration is saved on exit and reloaded when the snapshot file
changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	f := guiCmd.Flags()
	f.StringVar(&guiFlags.camera, "camera", "0", "capture device index or stream URL")
	f.StringVar(&guiFlags.image, "image", "", "show a still photo instead of the camera")
	f.BoolVar(&guiFlags.noCamera, "no-camera", false, "start without a background")
	f.IntVar(&guiFlags.width, "width", 1280, "requested capture width")
	f.IntVar(&guiFlags.height, "height", 720, "requested capture height")
	f.StringVar(&guiFlags.snapshots, "snapshots", ".", "directory for snapshots")
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	log := global.logger()
	st := global.store(log)
	model := global.model(st.Load())

	var source camera.Source
	switch {
	case guiFlags.image != "":
		source = camera.Still{Path: guiFlags.image}
	case !guiFlags.noCamera:
		dev := camera.NewDevice(guiFlags.camera)
		dev.Width, dev.Height = guiFlags.width, guiFlags.height
		dev.Log = log
		source = dev
	}

	return app.Run(model, app.Options{
		Store:       st,
		Source:      source,
		Gesture:     global.gestureOptions(),
		SnapshotDir: guiFlags.snapshots,
		Log:         log,
	})
}
