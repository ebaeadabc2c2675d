// Package ikseg segments mixed Chinese, English and numeric text into
// typed lexemes using a dictionary driven engine.
package ikseg

import (
	"context"
	"errors"
	"io"
	"strings"

	"ikseg/internal/config"
	"ikseg/internal/core"
	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

type (
	Config     = config.Config
	Lexeme     = lexeme.Lexeme
	Type       = lexeme.Type
	Dictionary = dic.Dictionary
)

var (
	ErrNotInitialized  = dic.ErrNotInitialized
	ErrMainDictMissing = dic.ErrMainDictMissing
)

func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// NewDictionary loads a dictionary that is not the process one.
func NewDictionary(cfg Config) (*Dictionary, error) {
	return dic.New(cfg)
}

// Initialize loads the process dictionary. Only the first call loads.
func Initialize(cfg Config) error {
	_, err := dic.Initialize(cfg)
	return err
}

// Analyzer reads one stream. Use one per goroutine.
type Analyzer struct {
	seg *core.IKSegmenter
}

// NewAnalyzer analyzes r with the process dictionary.
func NewAnalyzer(r io.Reader, useSmart bool) (*Analyzer, error) {
	d, err := dic.Instance()
	if err != nil {
		return nil, err
	}
	return NewAnalyzerWithDictionary(r, d, useSmart), nil
}

func NewAnalyzerWithDictionary(r io.Reader, d *Dictionary, useSmart bool) *Analyzer {
	return &Analyzer{seg: core.NewIKSegmenter(r, d, useSmart)}
}

// Next returns the next lexeme or io.EOF.
func (a *Analyzer) Next() (*Lexeme, error) {
	return a.seg.Next()
}

// Reset reuses the analyzer on a new stream.
func (a *Analyzer) Reset(r io.Reader) {
	a.seg.Reset(r)
}

// Analyze collects every lexeme of r.
func Analyze(r io.Reader, useSmart bool) ([]Lexeme, error) {
	a, err := NewAnalyzer(r, useSmart)
	if err != nil {
		return nil, err
	}
	res := []Lexeme{}
	for {
		l, err := a.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, *l)
	}
}

// Split returns the lexeme texts of text, or nil before Initialize.
func Split(text string, useSmart bool) []string {
	ls, err := Analyze(strings.NewReader(text), useSmart)
	if err != nil {
		return nil
	}
	res := make([]string, 0, len(ls))
	for _, l := range ls {
		res = append(res, l.Text)
	}
	return res
}

// StartMonitors runs the remote monitors, and the local watcher when
// enabled, until ctx is done.
func StartMonitors(ctx context.Context, cfg Config) (<-chan error, error) {
	d, err := dic.Instance()
	if err != nil {
		return nil, err
	}
	return dic.NewMonitorSupervisor(cfg, d).ServeBackground(ctx), nil
}
