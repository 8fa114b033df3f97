package main

import (
	"log/slog"
	"os"

	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/internal/hittest"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/store"
	"github.com/spf13/cobra"
)

// settings are the persistent flags shared by every subcommand
type settings struct {
	configPath          string
	verbose             bool
	hitThreshold        float64
	flipMirroredPan     bool
	resumePanAfterPinch bool
	mirrorGlobalEdits   bool
}

var global settings

func addPersistentFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&global.configPath, "config", "", "configuration snapshot (default "+store.DefaultPath()+")")
	f.BoolVarP(&global.verbose, "verbose", "v", false, "enable debug logging")
	f.Float64Var(&global.hitThreshold, "hit-threshold", hittest.DefaultThreshold, "handle pick radius in screen units")
	f.BoolVar(&global.flipMirroredPan, "flip-mirrored-pan", false, "invert horizontal panning while the camera is mirrored")
	f.BoolVar(&global.resumePanAfterPinch, "resume-pan-after-pinch", false, "keep panning with the remaining contact when a pinch ends")
	f.BoolVar(&global.mirrorGlobalEdits, "mirror-global-edits", false, "copy global position, scale and rotation edits into both side offsets")
}

func (s settings) logger() *slog.Logger {
	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (s settings) store(log *slog.Logger) *store.Store {
	return store.New(s.configPath, store.WithLogger(log))
}

func (s settings) model(cfg overlay.Config) *overlay.Model {
	return overlay.NewModel(cfg, overlay.WithPolicy(overlay.Policy{MirrorGlobalEdits: s.mirrorGlobalEdits}))
}

func (s settings) gestureOptions() []gesture.Option {
	return []gesture.Option{
		gesture.WithTester(hittest.Tester{Threshold: s.hitThreshold, Shape: anchor.DefaultShape()}),
		gesture.WithPolicy(gesture.Policy{
			FlipPanWhenMirrored: s.flipMirroredPan,
			ResumePanAfterPinch: s.resumePanAfterPinch,
		}),
	}
}
