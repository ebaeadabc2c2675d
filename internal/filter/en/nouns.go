package en

import (
	"sync"

	"ikseg/internal/types"

	"github.com/jdkato/prose/tag"
)

var (
	taggerOnce sync.Once
	tagger     *tag.PerceptronTagger
)

func perceptron() *tag.PerceptronTagger {
	taggerOnce.Do(func() {
		tagger = tag.NewPerceptronTagger()
	})
	return tagger
}

// NounsFilter keeps the English words tagged as nouns. Other tokens pass
// through.
type NounsFilter struct {
}

func (NounsFilter) Gen(tokens []types.TokenMeta) []types.TokenMeta {
	return NNFilter(tokens)
}

func NNFilter(tokens []types.TokenMeta) []types.TokenMeta {
	words := []string{}
	idx := []int{}
	for i, v := range tokens {
		if isLatin(v) {
			words = append(words, v.Token())
			idx = append(idx, i)
		}
	}
	nouns := make(map[int]bool, len(words))
	for i, token := range perceptron().Tag(words) {
		if token.Tag == "NN" || token.Tag == "NNS" {
			nouns[idx[i]] = true
		}
	}

	r := make([]types.TokenMeta, 0, len(tokens))
	for i, v := range tokens {
		if !isLatin(v) || nouns[i] {
			r = append(r, v)
		}
	}
	return r
}
