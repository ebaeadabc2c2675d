package dic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ikseg/internal/config"
)

type countReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countReloader) Reload(ctx context.Context) error {
	r.calls.Add(1)
	return r.err
}

// remoteDict answers HEAD polls for a dictionary whose version can change.
type remoteDict struct {
	mu       sync.Mutex
	etag     string
	modified string
	status   int
	heads    int
	lastINM  string
}

func (rd *remoteDict) set(etag, modified string) {
	rd.mu.Lock()
	rd.etag, rd.modified = etag, modified
	rd.mu.Unlock()
}

func (rd *remoteDict) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	if r.Method == http.MethodHead {
		rd.heads++
	}
	rd.lastINM = r.Header.Get("If-None-Match")
	if rd.status != 0 {
		w.WriteHeader(rd.status)
		return
	}
	if rd.lastINM != "" && rd.lastINM == rd.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", rd.etag)
	w.Header().Set("Last-Modified", rd.modified)
	w.WriteHeader(http.StatusOK)
}

func newTestMonitor(url string, r Reloader) *Monitor {
	m := NewMonitor(url, config.Default(), r)
	m.delay = 10 * time.Millisecond
	m.interval = 20 * time.Millisecond
	return m
}

func TestMonitorNotModified(t *testing.T) {
	rd := &remoteDict{status: http.StatusNotModified}
	srv := httptest.NewServer(rd)
	defer srv.Close()

	r := &countReloader{}
	m := newTestMonitor(srv.URL+"/ext.dic", r)
	assert.False(t, m.Poll(context.Background()))
	assert.False(t, m.Poll(context.Background()))
	assert.Equal(t, int32(0), r.calls.Load())
	assert.Equal(t, 2, rd.heads)
}

func TestMonitorModified(t *testing.T) {
	rd := &remoteDict{}
	rd.set(`"v1"`, "Mon, 02 Jan 2023 15:04:05 GMT")
	srv := httptest.NewServer(rd)
	defer srv.Close()

	r := &countReloader{}
	m := newTestMonitor(srv.URL+"/ext.dic", r)

	assert.True(t, m.Poll(context.Background()))
	assert.Equal(t, int32(1), r.calls.Load())
	assert.Equal(t, `"v1"`, m.etag)

	assert.False(t, m.Poll(context.Background()), "validators sent, 304 returned")
	assert.Equal(t, `"v1"`, rd.lastINM)
	assert.Equal(t, int32(1), r.calls.Load())

	rd.set(`"v2"`, "Tue, 03 Jan 2023 15:04:05 GMT")
	assert.True(t, m.Poll(context.Background()))
	assert.Equal(t, int32(2), r.calls.Load())
	assert.Equal(t, "Tue, 03 Jan 2023 15:04:05 GMT", m.lastModified)
}

func TestMonitorUnchangedValidators(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"same"`)
	}))
	defer srv.Close()

	r := &countReloader{}
	m := newTestMonitor(srv.URL, r)
	assert.True(t, m.Poll(context.Background()))
	assert.False(t, m.Poll(context.Background()), "server ignores validators but nothing changed")
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestMonitorReloadFailure(t *testing.T) {
	rd := &remoteDict{}
	rd.set(`"v1"`, "")
	srv := httptest.NewServer(rd)
	defer srv.Close()

	r := &countReloader{err: errors.New("boom")}
	m := newTestMonitor(srv.URL, r)
	assert.False(t, m.Poll(context.Background()))
	assert.Empty(t, m.etag)
	assert.False(t, m.Poll(context.Background()))
	assert.Equal(t, int32(2), r.calls.Load(), "failed reloads are retried")
}

func TestMonitorBadStatus(t *testing.T) {
	rd := &remoteDict{status: http.StatusInternalServerError}
	srv := httptest.NewServer(rd)
	defer srv.Close()

	r := &countReloader{}
	m := newTestMonitor(srv.URL, r)
	assert.False(t, m.Poll(context.Background()))
	assert.Equal(t, int32(0), r.calls.Load())

	srv.Close()
	assert.False(t, m.Poll(context.Background()), "transport errors are tolerated")
}

func TestMonitorServe(t *testing.T) {
	rd := &remoteDict{}
	rd.set(`"v1"`, "")
	srv := httptest.NewServer(rd)
	defer srv.Close()

	r := &countReloader{}
	m := newTestMonitor(srv.URL, r)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		rd.mu.Lock()
		defer rd.mu.Unlock()
		return rd.heads >= 3
	}, 2*time.Second, 10*time.Millisecond)
	rd.set(`"v2"`, "")
	assert.Eventually(t, func() bool { return r.calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestMonitorSupervisor(t *testing.T) {
	rd := &remoteDict{}
	rd.set(`"v1"`, "")
	srv := httptest.NewServer(rd)
	defer srv.Close()

	cfg := config.Default()
	cfg.EnableRemoteDict = true
	cfg.RemoteExtDicts = []string{srv.URL + "/ext.dic"}
	cfg.RemoteExtStopWords = []string{srv.URL + "/stop.dic"}
	cfg.RemoteInitialDelay = 0
	cfg.RemoteRefreshInterval = 1
	require.Len(t, cfg.RemoteSources(), 2)

	r := &countReloader{}
	sup := NewMonitorSupervisor(cfg, r)
	ctx, cancel := context.WithCancel(context.Background())
	errC := sup.ServeBackground(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() == 2 }, 3*time.Second, 10*time.Millisecond,
		"each monitor reloads once on its first poll")

	cancel()
	select {
	case <-errC:
	case <-time.After(15 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}

func TestMonitorInvalidSchedule(t *testing.T) {
	cfg := config.Config{RemoteInitialDelay: -1}
	m := NewMonitor("http://127.0.0.1:1/ext.dic", cfg, &countReloader{})
	assert.Equal(t, time.Duration(config.DefaultRefreshInterval)*time.Second, m.interval)
	assert.Equal(t, time.Duration(0), m.delay)

	rd := &remoteDict{}
	rd.set(`"v1"`, "")
	srv := httptest.NewServer(rd)
	defer srv.Close()

	// a hand built config without a schedule still serves
	cfg = config.Config{
		EnableRemoteDict: true,
		RemoteExtDicts:   []string{srv.URL + "/ext.dic"},
	}
	r := &countReloader{}
	sup := NewMonitorSupervisor(cfg, r)
	ctx, cancel := context.WithCancel(context.Background())
	errC := sup.ServeBackground(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), r.calls.Load())
	rd.mu.Lock()
	assert.Equal(t, 1, rd.heads, "the monitor is not restarted")
	rd.mu.Unlock()

	cancel()
	select {
	case <-errC:
	case <-time.After(15 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
