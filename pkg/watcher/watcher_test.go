package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case name := <-ch:
		return name
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return ""
	}
}

func TestWatchSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{target}, func(name string) { changed <- name }))
	fw.Start()

	tmp := filepath.Join(dir, "config.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"posX":1}`), 0o644))
	require.NoError(t, os.Rename(tmp, target))

	require.Equal(t, target, waitFor(t, changed))
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.json")

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{target}, func(name string) { changed <- name }))
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	select {
	case name := <-changed:
		t.Fatalf("unexpected change for %s", name)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))
	require.Equal(t, target, waitFor(t, changed))
}

func TestRemoveAllStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.json")

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{target}, func(name string) { changed <- name }))
	fw.Start()
	require.NoError(t, fw.RemoveAll())

	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))
	select {
	case name := <-changed:
		t.Fatalf("unexpected change for %s", name)
	case <-time.After(200 * time.Millisecond):
	}

	// watching again after RemoveAll re-adds the directory
	require.NoError(t, fw.Watch([]string{target}, func(name string) { changed <- name }))
	require.NoError(t, os.WriteFile(target, []byte(`{"posX":2}`), 0o644))
	require.Equal(t, target, waitFor(t, changed))
}
