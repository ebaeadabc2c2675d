package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"ikseg/internal/common"
)

var (
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrNoMainDict      = errors.New("main dictionary not configured")
)

const (
	DefaultMainDict       = "config/main2012.dic"
	DefaultQuantifierDict = "config/quantifier.dic"
	DefaultUnitDict       = "config/en_unit.dic"

	DefaultRefreshInterval = 60
	DefaultInitialDelay    = 10
	DefaultConnectTimeout  = 10
	DefaultReadTimeout     = 30
)

// Switch is a boolean that also accepts the words true, yes, on, ok and 1.
type Switch bool

func (s *Switch) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		*s = Switch(x)
	case float64:
		*s = x == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "on", "ok", "1":
			*s = true
		default:
			*s = false
		}
	case nil:
		*s = false
	default:
		return fmt.Errorf("cannot use %s as switch", string(b))
	}
	return nil
}

// Seconds is a duration written as a whole number of seconds.
type Seconds int64

func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

type Config struct {
	MainDict           string   `json:"main_dict"`
	QuantifierDict     string   `json:"quantifier_dict"`
	UnitDict           string   `json:"unit_dict"`
	ExtDicts           []string `json:"ext_dicts,omitempty"`
	ExtStopWords       []string `json:"ext_stopwords,omitempty"`
	RemoteExtDicts     []string `json:"remote_ext_dicts,omitempty"`
	RemoteExtStopWords []string `json:"remote_ext_stopwords,omitempty"`

	EnableRemoteDict      Switch  `json:"enable_remote_dict"`
	RemoteRefreshInterval Seconds `json:"remote_refresh_interval"`
	RemoteInitialDelay    Seconds `json:"remote_initial_delay"`
	ConnectTimeout        Seconds `json:"connect_timeout"`
	ReadTimeout           Seconds `json:"read_timeout"`

	UseSmart        Switch `json:"use_smart"`
	WatchLocalDicts Switch `json:"watch_local_dicts"`
}

func Default() Config {
	return Config{
		MainDict:              DefaultMainDict,
		QuantifierDict:        DefaultQuantifierDict,
		UnitDict:              DefaultUnitDict,
		RemoteRefreshInterval: DefaultRefreshInterval,
		RemoteInitialDelay:    DefaultInitialDelay,
		ConnectTimeout:        DefaultConnectTimeout,
		ReadTimeout:           DefaultReadTimeout,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ExtDicts = clean(cfg.ExtDicts)
	cfg.ExtStopWords = clean(cfg.ExtStopWords)
	cfg.RemoteExtDicts = clean(cfg.RemoteExtDicts)
	cfg.RemoteExtStopWords = clean(cfg.RemoteExtStopWords)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.MainDict) == "" {
		return ErrNoMainDict
	}
	for name, v := range map[string]Seconds{
		"remote_refresh_interval": c.RemoteRefreshInterval,
		"connect_timeout":         c.ConnectTimeout,
		"read_timeout":            c.ReadTimeout,
	} {
		if v <= 0 {
			return fmt.Errorf("%s=%d: %w", name, v, ErrInvalidInterval)
		}
	}
	if c.RemoteInitialDelay < 0 {
		return fmt.Errorf("remote_initial_delay=%d: %w", c.RemoteInitialDelay, ErrInvalidInterval)
	}
	return nil
}

// RemoteSources lists every remote location a monitor should poll.
func (c Config) RemoteSources() []string {
	if !c.EnableRemoteDict {
		return nil
	}
	res := make([]string, 0, len(c.RemoteExtDicts)+len(c.RemoteExtStopWords))
	res = append(res, c.RemoteExtDicts...)
	res = append(res, c.RemoteExtStopWords...)
	return res
}

// LocalSources lists every local dictionary file.
func (c Config) LocalSources() []string {
	res := []string{c.MainDict}
	res = append(res, c.ExtDicts...)
	res = append(res, c.ExtStopWords...)
	for _, v := range []string{c.QuantifierDict, c.UnitDict} {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// clean trims entries and splits legacy ';' joined lists.
func clean(in []string) []string {
	res := []string{}
	for _, v := range in {
		res = append(res, common.SplitList(v)...)
	}
	return res
}
