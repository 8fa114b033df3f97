package main

import (
	"context"
	"time"

	"github.com/philipparndt/browmap/internal/camera"
	"github.com/spf13/cobra"
)

var captureFlags struct {
	camera  string
	timeout time.Duration
	out     outputFlags
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Grab one camera frame and export it with the overlay",
	Args:  cobra.NoArgs,
	RunE:  runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureFlags.camera, "camera", "0", "capture device index or stream URL")
	captureCmd.Flags().DurationVar(&captureFlags.timeout, "timeout", 10*time.Second, "how long to wait for a frame")
	captureFlags.out.register(captureCmd)
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	log := global.logger()
	cfg := global.store(log).Load()

	ctx, cancel := context.WithTimeout(cmd.Context(), captureFlags.timeout)
	defer cancel()

	dev := camera.NewDevice(captureFlags.camera)
	dev.Log = log
	frame, err := dev.Snapshot(ctx)
	if err != nil {
		return err
	}

	if err := captureFlags.out.write(frame.Image, cfg); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", captureFlags.out.output)
	return nil
}
