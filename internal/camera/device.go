package camera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gocv.io/x/gocv"
)

// ErrClosed is returned when the capture device stops delivering frames
var ErrClosed = errors.New("capture device closed")

// Device captures frames from a video device through OpenCV
type Device struct {
	// ID is a device index ("0") or a stream/file URL
	ID     string
	Width  int
	Height int
	FPS    float64
	// MaxMisses is how many consecutive empty reads end the capture
	MaxMisses int
	Log       *slog.Logger
}

// NewDevice returns a device with default capture settings
func NewDevice(id string) *Device {
	return &Device{ID: id, MaxMisses: 30, Log: slog.Default()}
}

func (d *Device) open() (*gocv.VideoCapture, error) {
	vc, err := gocv.OpenVideoCapture(d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %s: %w", d.ID, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("failed to open capture device %s", d.ID)
	}
	if d.Width > 0 && d.Height > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(d.Width))
		vc.Set(gocv.VideoCaptureFrameHeight, float64(d.Height))
	}
	if d.FPS > 0 {
		vc.Set(gocv.VideoCaptureFPS, d.FPS)
	}
	return vc, nil
}

// Run reads frames until ctx is done or the device fails
func (d *Device) Run(ctx context.Context, out *Latest) error {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	vc, err := d.open()
	if err != nil {
		return err
	}
	defer vc.Close()

	mat := gocv.NewMat()
	defer mat.Close()

	log.Info("camera started", "device", d.ID)
	misses := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("camera stopped", "device", d.ID)
			return nil
		default:
		}

		if !vc.Read(&mat) || mat.Empty() {
			misses++
			if d.MaxMisses > 0 && misses >= d.MaxMisses {
				return fmt.Errorf("%s: %w", d.ID, ErrClosed)
			}
			time.Sleep(10 * time.Millisecond)
			continue
		}
		misses = 0

		img, err := mat.ToImage()
		if err != nil {
			log.Debug("dropping frame", "device", d.ID, "error", err)
			continue
		}
		out.Publish(img)
	}
}

// Snapshot opens the device, grabs one frame and closes it again
func (d *Device) Snapshot(ctx context.Context) (Frame, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var latest Latest
	got := make(chan Frame, 1)
	latest.OnUpdate(func(f Frame) {
		select {
		case got <- f:
			cancel()
		default:
		}
	})

	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx, &latest) }()

	select {
	case f := <-got:
		<-errc
		return f, nil
	case err := <-errc:
		if err == nil {
			err = ctx.Err()
		}
		return Frame{}, err
	}
}
