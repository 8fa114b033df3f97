package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/pkg/geometry"
	"github.com/spf13/cobra"
)

var replayFlags struct {
	save   bool
	width  float64
	height float64
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Feed a recorded gesture script through the gesture engine",
	Long: `Replay a JSON gesture script against the saved configuration and print
the result. Events use surface coordinates of a width x height view whose
center is the overlay origin, unless the script sets its own origin.

  {"events": [{"type": "start", "id": 1, "pos": {"x": 100, "y": 100}}, ...]}`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	f := replayCmd.Flags()
	f.BoolVar(&replayFlags.save, "save", false, "save the resulting configuration")
	f.Float64Var(&replayFlags.width, "width", 800, "surface width")
	f.Float64Var(&replayFlags.height, "height", 600, "surface height")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	script, err := gesture.ReadScript(f)
	if err != nil {
		return err
	}

	log := global.logger()
	st := global.store(log)
	model := global.model(st.Load())

	origin := geometry.Pt(replayFlags.width/2, replayFlags.height/2)
	if script.Origin != nil {
		origin = *script.Origin
	}
	opts := append(global.gestureOptions(), gesture.WithOrigin(origin), gesture.WithLogger(log))
	machine := gesture.New(model, opts...)

	changed := gesture.Replay(machine, script.Events)
	log.Info("replayed gesture script", "events", len(script.Events), "changes", changed, "mode", machine.Mode())

	if replayFlags.save {
		if err := st.Save(model.Config()); err != nil {
			return err
		}
	}
	return printJSON(cmd, model.Config())
}
