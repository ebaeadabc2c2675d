package dic

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"

	"ikseg/internal/common"
	"ikseg/internal/config"
)

// Reloader rebuilds the live dictionary.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Monitor polls one remote dictionary and reloads when it changes.
type Monitor struct {
	location string
	client   *http.Client
	reloader Reloader
	delay    time.Duration
	interval time.Duration

	lastModified string
	etag         string
}

// NewMonitor polls location on the configured schedule. A non positive
// interval falls back to the default one.
func NewMonitor(location string, cfg config.Config, reloader Reloader) *Monitor {
	m := &Monitor{
		location: location,
		client:   newHTTPClient(cfg),
		reloader: reloader,
		delay:    cfg.RemoteInitialDelay.Duration(),
		interval: cfg.RemoteRefreshInterval.Duration(),
	}
	if m.interval <= 0 {
		common.WARN("Monitor %v: invalid interval %v, use %vs", location, m.interval, config.DefaultRefreshInterval)
		m.interval = config.Seconds(config.DefaultRefreshInterval).Duration()
	}
	if m.delay < 0 {
		m.delay = 0
	}
	return m
}

func (m *Monitor) String() string {
	return fmt.Sprintf("dic.Monitor@%p(%s)", m, m.location)
}

// Serve runs until ctx is done.
func (m *Monitor) Serve(ctx context.Context) error {
	common.INFO("Remote dictionary monitor on %v, delay %v, interval %v", m.location, m.delay, m.interval)
	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		m.Poll(ctx)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Poll does one HEAD round trip and reports whether a reload ran.
func (m *Monitor) Poll(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.location, nil)
	if err != nil {
		metricPolls.WithLabelValues("error").Inc()
		common.WARN("Monitor %v: %v", m.location, err)
		return false
	}
	if m.lastModified != "" {
		req.Header.Set("If-Modified-Since", m.lastModified)
	}
	if m.etag != "" {
		req.Header.Set("If-None-Match", m.etag)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		metricPolls.WithLabelValues("error").Inc()
		common.WARN("Monitor %v: %v", m.location, err)
		return false
	}
	resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		lastModified := resp.Header.Get("Last-Modified")
		etag := resp.Header.Get("ETag")
		if lastModified == m.lastModified && etag == m.etag {
			metricPolls.WithLabelValues("unchanged").Inc()
			return false
		}
		metricPolls.WithLabelValues("modified").Inc()
		common.INFO("Remote dictionary %v changed (Last-Modified %q, ETag %q)", m.location, lastModified, etag)
		if err := m.reloader.Reload(ctx); err != nil {
			common.WARN("Monitor %v: reload failed, retry next tick: %v", m.location, err)
			return false
		}
		m.lastModified = lastModified
		m.etag = etag
		return true
	case http.StatusNotModified:
		metricPolls.WithLabelValues("not_modified").Inc()
		return false
	default:
		metricPolls.WithLabelValues("bad_status").Inc()
		common.WARN("Monitor %v: unexpected status %v", m.location, resp.Status)
		return false
	}
}

// NewMonitorSupervisor holds a Monitor per remote source and, if enabled,
// a Watcher over the local sources. The caller runs it.
func NewMonitorSupervisor(cfg config.Config, reloader Reloader) *suture.Supervisor {
	sup := suture.New("dic", suture.Spec{
		EventHook: func(e suture.Event) {
			common.WARN("%v", e)
		},
		Timeout: 10 * time.Second,
	})
	for _, loc := range cfg.RemoteSources() {
		sup.Add(NewMonitor(loc, cfg, reloader))
	}
	if cfg.WatchLocalDicts {
		sup.Add(NewWatcher(cfg.LocalSources(), reloader))
	}
	return sup
}
