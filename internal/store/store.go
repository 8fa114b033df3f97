// Package store persists the overlay configuration as a JSON snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/watcher"
)

const (
	appDir   = "browmap"
	fileName = "config.json"
)

// DefaultPath returns the snapshot location in the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, fileName)
}

// Store reads and writes one snapshot file
type Store struct {
	path     string
	defaults overlay.Config
	limits   overlay.Limits
	log      *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLimits sets the limits loaded values are clamped to
func WithLimits(l overlay.Limits) Option {
	return func(s *Store) { s.limits = l }
}

// WithLogger sets the logger for load problems
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a store for path. An empty path selects DefaultPath.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{
		path:     path,
		defaults: overlay.Default(),
		limits:   overlay.DefaultLimits(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the snapshot file location
func (s *Store) Path() string { return s.path }

// Load reads the snapshot. It never fails: a missing or unreadable file
// yields the defaults, and keys absent from the file keep their defaults.
func (s *Store) Load() overlay.Config {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("no saved configuration, using defaults", "path", s.path)
		return s.defaults
	}
	if err != nil {
		s.log.Warn("failed to read configuration, using defaults", "path", s.path, "error", err)
		return s.defaults
	}

	cfg, err := Decode(data, s.defaults, s.limits)
	if err != nil {
		s.log.Warn("invalid configuration, using defaults", "path", s.path, "error", err)
		return s.defaults
	}
	return cfg
}

// Decode parses a snapshot on top of base and sanitizes the result
func Decode(data []byte, base overlay.Config, l overlay.Limits) (overlay.Config, error) {
	cfg := base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return overlay.Sanitize(cfg, l), nil
}

// Save writes the snapshot atomically: a temp file in the same directory
// is renamed over the previous snapshot.
func (s *Store) Save(cfg overlay.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace configuration: %w", err)
	}
	return nil
}

// Remove deletes the snapshot so the next Load returns defaults.
// A missing snapshot is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove configuration: %w", err)
	}
	return nil
}

// Watch calls onChange with the reloaded configuration whenever the
// snapshot file changes on disk. onChange runs on a watcher goroutine.
// The returned function unwatches the file and releases the watcher.
func (s *Store) Watch(debounce time.Duration, onChange func(overlay.Config)) (stop func() error, err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fw, err := watcher.NewFileWatcher(debounce, s.log)
	if err != nil {
		return nil, err
	}
	err = fw.Watch([]string{s.path}, func(string) {
		s.log.Debug("configuration changed on disk", "path", s.path)
		onChange(s.Load())
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return func() error {
		return errors.Join(fw.RemoveAll(), fw.Close())
	}, nil
}
