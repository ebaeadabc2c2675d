package tokenizer

import (
	"ikseg/internal/types"
)

// Tokenizer runs a segmentor and then its filters in the order added.
type Tokenizer struct {
	filters []types.Filter
	seg     types.Segmentor
}

func NewTokenizer(seg types.Segmentor, filters ...types.Filter) *Tokenizer {
	return &Tokenizer{
		filters: filters,
		seg:     seg,
	}
}

func (t *Tokenizer) UseSegmentor(seg types.Segmentor) {
	t.seg = seg
}

func (t *Tokenizer) UseFilter(f types.Filter) {
	t.filters = append(t.filters, f)
}

// Analyze cuts text with the segmentor, or on non word runes when none is
// set, then applies the filters.
func (t *Tokenizer) Analyze(text string) []types.TokenMeta {
	var tokens []types.TokenMeta
	if t.seg == nil {
		tokens = FieldsSegmentor{}.Cut(text)
	} else {
		tokens = t.seg.Cut(text)
	}

	for _, filter := range t.filters {
		tokens = filter.Gen(tokens)
	}

	return tokens
}
