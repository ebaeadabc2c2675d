package dic

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.dic")
	b := filepath.Join(dir, "sub", "b.dic")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	missing := filepath.Join(dir, "nope", "d.dic")
	w := NewWatcher([]string{a, b, a, missing, "http://example.com/c.dic"}, &countReloader{})

	assert.Len(t, w.files, 2)
	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "sub")}, w.dirs)
	assert.True(t, w.relevant(a))
	assert.False(t, w.relevant(filepath.Join(dir, "other.dic")))
	assert.False(t, w.relevant(missing))
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := writeDict(t, dir, "main.dic", "中华")

	r := &countReloader{}
	w := NewWatcher([]string{path}, r)
	w.delay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	// give the watch time to register
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		writeDict(t, dir, "main.dic", "中华", "长城")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), r.calls.Load(), "a burst of writes is one reload")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
