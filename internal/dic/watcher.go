package dic

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/syncthing/notify"

	"ikseg/internal/common"
)

const watchDelay = 500 * time.Millisecond

// Watcher reloads when a local dictionary file changes. Events are
// collected for watchDelay so a burst of writes costs one reload.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	reloader Reloader
	delay    time.Duration
}

func NewWatcher(files []string, reloader Reloader) *Watcher {
	w := &Watcher{
		files:    make(map[string]struct{}),
		reloader: reloader,
		delay:    watchDelay,
	}
	seen := make(map[string]struct{})
	for _, f := range files {
		if common.IsRemote(f) {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			common.WARN("Watcher skip %v: %v", f, err)
			continue
		}
		dir := filepath.Dir(abs)
		if !common.IsExist(dir) {
			common.WARN("Watcher skip %v: directory missing", f)
			continue
		}
		w.files[abs] = struct{}{}
		// the file itself may be replaced by rename, so watch its directory
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	return w
}

func (w *Watcher) String() string {
	return fmt.Sprintf("dic.Watcher@%p", w)
}

func (w *Watcher) Serve(ctx context.Context) error {
	events := make(chan notify.EventInfo, 64)
	for _, dir := range w.dirs {
		if err := notify.Watch(dir, events, notify.Write|notify.Create|notify.Rename|notify.Remove); err != nil {
			notify.Stop(events)
			return fmt.Errorf("watch %v: %w", dir, err)
		}
	}
	defer notify.Stop(events)
	common.INFO("Watching %v local dictionaries in %v directories", len(w.files), len(w.dirs))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev := <-events:
			if !w.relevant(ev.Path()) {
				continue
			}
			common.DINFO("Dictionary event %v on %v", ev.Event(), ev.Path())
			if ev.Event() == notify.Remove {
				common.DWARN("Dictionary %v removed", ev.Path())
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
				fire = timer.C
			}
		case <-fire:
			timer, fire = nil, nil
			metricWatchEvents.Inc()
			if err := w.reloader.Reload(ctx); err != nil {
				common.WARN("Reload after local change failed: %v", err)
			}
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		}
	}
}

func (w *Watcher) relevant(path string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	_, ok := w.files[path]
	return ok
}
