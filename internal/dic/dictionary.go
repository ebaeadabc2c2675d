package dic

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"ikseg/internal/common"
	"ikseg/internal/config"
)

var (
	ErrNotInitialized  = errors.New("dictionary not initialized, call Initialize first")
	ErrMainDictMissing = errors.New("main dictionary missing")
)

var (
	instMu sync.Mutex
	inst   atomic.Pointer[Dictionary]
)

// Dictionary owns the main, stop word, quantifier and unit tries. Each
// trie sits behind its own atomic reference; Reload swaps them one by one,
// so a reader may briefly pair a new main trie with an old unit trie.
type Dictionary struct {
	cfg    config.Config
	client *http.Client

	main       atomic.Pointer[Trie]
	stop       atomic.Pointer[Trie]
	quantifier atomic.Pointer[Trie]
	unit       atomic.Pointer[Trie]

	fingerprint atomic.Uint64
	// bumped on every publish and runtime word change
	revision    atomic.Uint64
	reloads     singleflight.Group
}

type generation struct {
	main, stop, quantifier, unit *Trie
	fingerprint                  uint64
}

// Initialize builds the process dictionary once. Later calls return the
// existing instance and ignore cfg.
func Initialize(cfg config.Config) (*Dictionary, error) {
	if d := inst.Load(); d != nil {
		return d, nil
	}
	instMu.Lock()
	defer instMu.Unlock()
	if d := inst.Load(); d != nil {
		return d, nil
	}
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	inst.Store(d)
	return d, nil
}

// Instance returns the process dictionary or ErrNotInitialized.
func Instance() (*Dictionary, error) {
	if d := inst.Load(); d != nil {
		return d, nil
	}
	return nil, ErrNotInitialized
}

func MustInstance() *Dictionary {
	d, err := Instance()
	if err != nil {
		panic(err)
	}
	return d
}

// New builds a dictionary that is not registered as the process instance.
func New(cfg config.Config) (*Dictionary, error) {
	d := &Dictionary{
		cfg:    cfg,
		client: newHTTPClient(cfg),
	}
	common.INFO("Loading Dictionary...")
	t := time.Now()
	g, err := d.build(context.Background())
	if err != nil {
		return nil, err
	}
	d.publish(g)
	common.INFO("Complete Loading Dictionary in %v, main %v words, stopwords %v, quantifiers %v, units %v",
		time.Since(t), g.main.Len(), g.stop.Len(), g.quantifier.Len(), g.unit.Len())
	return d, nil
}

func (d *Dictionary) Config() config.Config {
	return d.cfg
}

// build loads a whole generation off to the side.
func (d *Dictionary) build(ctx context.Context) (*generation, error) {
	g := &generation{
		main:       NewTrie(),
		stop:       NewTrie(),
		quantifier: NewTrie(),
		unit:       NewTrie(),
	}
	sums := make([]uint64, 4)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		h := murmur3.New64()
		fill := fillHashing(g.main, h)
		if _, err := loadSource(ctx, d.client, d.cfg.MainDict, fill); err != nil {
			return fmt.Errorf("%w: %v", ErrMainDictMissing, err)
		}
		common.INFO("Loaded main dictionary %v", common.FileName(d.cfg.MainDict))
		d.loadOptional(ctx, "extension", d.cfg.ExtDicts, fill)
		if d.cfg.EnableRemoteDict {
			d.loadOptional(ctx, "remote extension", d.cfg.RemoteExtDicts, fill)
		}
		sums[0] = h.Sum64()
		return nil
	})
	eg.Go(func() error {
		h := murmur3.New64()
		fill := fillHashing(g.stop, h)
		d.loadOptional(ctx, "stopword", d.cfg.ExtStopWords, fill)
		if d.cfg.EnableRemoteDict {
			d.loadOptional(ctx, "remote stopword", d.cfg.RemoteExtStopWords, fill)
		}
		sums[1] = h.Sum64()
		return nil
	})
	eg.Go(func() error {
		h := murmur3.New64()
		err := d.loadCustom(ctx, "quantifier", d.cfg.QuantifierDict, fillHashing(g.quantifier, h))
		sums[2] = h.Sum64()
		return err
	})
	eg.Go(func() error {
		h := murmur3.New64()
		err := d.loadCustom(ctx, "unit", d.cfg.UnitDict, fillHashing(g.unit, h))
		sums[3] = h.Sum64()
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	buf := make([]byte, 8*len(sums))
	for i, s := range sums {
		binary.LittleEndian.PutUint64(buf[i*8:], s)
	}
	g.fingerprint = murmur3.Sum64(buf)
	return g, nil
}

type hasher interface {
	Write([]byte) (int, error)
}

func fillHashing(t *Trie, h hasher) func(string) {
	return func(w string) {
		t.Fill(w)
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
}

// loadOptional skips sources that are missing or fail to load.
func (d *Dictionary) loadOptional(ctx context.Context, kind string, locations []string, fill func(string)) {
	for _, loc := range locations {
		n, err := loadSource(ctx, d.client, loc, fill)
		if err != nil {
			common.WARN("Skip %v dictionary %v: %v", kind, loc, err)
			continue
		}
		common.INFO("Loaded %v dictionary %v, %v entries", kind, common.FileName(loc), n)
	}
}

// loadCustom loads a single purpose dictionary; an empty location disables it.
func (d *Dictionary) loadCustom(ctx context.Context, kind, location string, fill func(string)) error {
	if location == "" {
		common.WARN("No %v dictionary configured", kind)
		return nil
	}
	n, err := loadSource(ctx, d.client, location, fill)
	if err != nil {
		return fmt.Errorf("%v dictionary: %w", kind, err)
	}
	common.INFO("Loaded %v dictionary %v, %v entries", kind, common.FileName(location), n)
	return nil
}

func (d *Dictionary) publish(g *generation) {
	d.main.Store(g.main)
	d.stop.Store(g.stop)
	d.quantifier.Store(g.quantifier)
	d.unit.Store(g.unit)
	d.fingerprint.Store(g.fingerprint)
	d.revision.Add(1)

	metricWords.WithLabelValues("main").Set(float64(g.main.Len()))
	metricWords.WithLabelValues("stopword").Set(float64(g.stop.Len()))
	metricWords.WithLabelValues("quantifier").Set(float64(g.quantifier.Len()))
	metricWords.WithLabelValues("unit").Set(float64(g.unit.Len()))
}

// Reload rebuilds every trie from the configured sources and publishes
// them. Concurrent calls share one build. Words added or disabled at
// runtime are dropped by a successful reload.
func (d *Dictionary) Reload(ctx context.Context) error {
	_, err, shared := d.reloads.Do("reload", func() (any, error) {
		common.INFO("Start to reload dictionary")
		t := time.Now()
		g, err := d.build(ctx)
		if err != nil {
			metricReloads.WithLabelValues("failed").Inc()
			common.FAIL("Reload dictionary failed, keep the current one: %v", err)
			return nil, err
		}
		prev := d.fingerprint.Load()
		d.publish(g)
		metricReloads.WithLabelValues("ok").Inc()
		common.INFO("Reload dictionary done in %v, fingerprint %016x (changed %v)", time.Since(t), g.fingerprint, prev != g.fingerprint)
		return nil, nil
	})
	if shared {
		common.DINFO("Reload request joined an in-flight reload")
	}
	return err
}

// Fingerprint identifies the source content of the live generation.
func (d *Dictionary) Fingerprint() uint64 {
	return d.fingerprint.Load()
}

// Revision changes whenever the live tries do.
func (d *Dictionary) Revision() uint64 {
	return d.revision.Load()
}

func (d *Dictionary) MatchMain(buf []rune, begin, length int) Hit {
	return d.main.Load().Match(buf, begin, length)
}

func (d *Dictionary) MatchQuantifier(buf []rune, begin, length int) Hit {
	return d.quantifier.Load().Match(buf, begin, length)
}

func (d *Dictionary) MatchUnit(buf []rune, begin, length int) Hit {
	return d.unit.Load().Match(buf, begin, length)
}

func (d *Dictionary) IsStopWord(buf []rune, begin, length int) bool {
	return d.stop.Load().Match(buf, begin, length).IsMatch()
}

// ContinueMatch extends prior by the rune at cursor. The hit resumes in
// the trie it came from, even if a reload has replaced it since.
func (d *Dictionary) ContinueMatch(buf []rune, cursor int, prior Hit) Hit {
	return MatchWithHit(buf, cursor, 1, prior)
}

// AddWords fills the live main trie.
func (d *Dictionary) AddWords(words []string) {
	main := d.main.Load()
	for _, w := range words {
		main.Fill(w)
	}
	d.revision.Add(1)
	metricWords.WithLabelValues("main").Set(float64(main.Len()))
}

// DisableWords masks words in the live main trie.
func (d *Dictionary) DisableWords(words []string) {
	main := d.main.Load()
	for _, w := range words {
		main.Disable(w)
	}
	d.revision.Add(1)
	metricWords.WithLabelValues("main").Set(float64(main.Len()))
}

// Words reports the enabled word count per trie.
func (d *Dictionary) Words() map[string]int {
	return map[string]int{
		"main":       d.main.Load().Len(),
		"stopword":   d.stop.Load().Len(),
		"quantifier": d.quantifier.Load().Len(),
		"unit":       d.unit.Load().Len(),
	}
}
