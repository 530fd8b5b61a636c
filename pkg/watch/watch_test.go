package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sidebar.yaml")
	require.NoError(t, os.WriteFile(file, []byte("/: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	w := &Watcher{
		Paths:    []string{dir},
		Debounce: 50 * time.Millisecond,
		OnChange: func(context.Context) { changes <- struct{}{} },
	}
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("/: []\n# edit\n"), 0644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherMissingPath(t *testing.T) {
	w := &Watcher{
		Paths:    []string{filepath.Join(t.TempDir(), "missing")},
		OnChange: func(context.Context) {},
	}
	require.Error(t, w.Run(context.Background()))
}
