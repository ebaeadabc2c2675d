package en

import (
	"ikseg/internal/dic"
	"ikseg/internal/types"
)

// StopWordFilter drops tokens found in the dictionary's stop words. The
// engine already does this for its own output; this serves segmentors
// that bypass it.
type StopWordFilter struct {
	Dict *dic.Dictionary
}

func (f StopWordFilter) Gen(tokens []types.TokenMeta) []types.TokenMeta {
	r := make([]types.TokenMeta, 0)
	for _, token := range tokens {
		w := []rune(token.Token())
		if !f.Dict.IsStopWord(w, 0, len(w)) {
			r = append(r, token)
		}
	}
	return r
}
