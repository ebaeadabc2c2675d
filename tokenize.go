package ikseg

import (
	"sync"

	"ikseg/internal/dic"
	"ikseg/internal/filter/cn"
	"ikseg/internal/filter/en"
	"ikseg/internal/tokenizer"
	"ikseg/internal/types"
)

const tokenCacheSize = 1024

type (
	TokenMeta = types.TokenMeta
	Filter    = types.Filter
)

var (
	segOnce    [2]sync.Once
	segmentors [2]*tokenizer.CachedSegmentor
)

func cachedSegmentor(d *dic.Dictionary, useSmart bool) *tokenizer.CachedSegmentor {
	i := 0
	if useSmart {
		i = 1
	}
	segOnce[i].Do(func() {
		segmentors[i] = tokenizer.NewCachedSegmentor(tokenizer.NewIKSegmentor(d, useSmart), tokenCacheSize)
	})
	return segmentors[i]
}

// Tokenize cuts text with the process dictionary and runs each filter in
// order over the tokens. Recent cuts are cached per mode.
func Tokenize(text string, useSmart bool, filters ...Filter) ([]TokenMeta, error) {
	d, err := dic.Instance()
	if err != nil {
		return nil, err
	}
	tz := tokenizer.NewTokenizer(cachedSegmentor(d, useSmart), filters...)
	return tz.Analyze(text), nil
}

// StemFilter stems English tokens.
func StemFilter() Filter { return en.StemmerFilter{} }

// NounFilter drops English tokens not tagged as nouns.
func NounFilter() Filter { return en.NounsFilter{} }

// StopWordFilter drops the stop words of the process dictionary. It fails
// with ErrNotInitialized before Initialize.
func StopWordFilter() (Filter, error) {
	d, err := dic.Instance()
	if err != nil {
		return nil, err
	}
	return en.StopWordFilter{Dict: d}, nil
}

// SingleCharFilter drops uncovered single CJK characters.
func SingleCharFilter() Filter { return cn.SingleCharFilter{} }

// TypeFilter keeps tokens of the given lexeme types.
func TypeFilter(keep ...Type) Filter { return cn.NewTypeFilter(keep...) }

// QuantityFilter keeps numbers and quantities.
func QuantityFilter() Filter { return cn.Quantities() }
