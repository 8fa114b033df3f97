// Package camera supplies background frames: live from a capture device or
// from a still image.
package camera

import (
	"context"
	"image"
	"sync"
	"time"
)

// Frame is one captured image
type Frame struct {
	Image image.Image
	Seq   uint64
	At    time.Time
}

// Source publishes frames into a Latest holder until ctx is done
type Source interface {
	Run(ctx context.Context, out *Latest) error
}

// Latest holds the most recent frame. It is written by the capture
// goroutine and read by the UI and export.
type Latest struct {
	mu       sync.RWMutex
	frame    Frame
	onUpdate func(Frame)
}

// OnUpdate registers a callback invoked after every Publish, on the
// publishing goroutine.
func (l *Latest) OnUpdate(fn func(Frame)) {
	l.mu.Lock()
	l.onUpdate = fn
	l.mu.Unlock()
}

// Publish replaces the current frame
func (l *Latest) Publish(img image.Image) {
	l.mu.Lock()
	l.frame = Frame{Image: img, Seq: l.frame.Seq + 1, At: time.Now()}
	f, fn := l.frame, l.onUpdate
	l.mu.Unlock()
	if fn != nil {
		fn(f)
	}
}

// Get returns the current frame; ok is false until the first Publish
func (l *Latest) Get() (f Frame, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.frame, l.frame.Seq > 0
}
