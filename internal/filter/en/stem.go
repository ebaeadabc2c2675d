package en

import (
	"ikseg/internal/common"
	"ikseg/internal/types"

	snowballeng "github.com/kljensen/snowball/english"
)

// StemmerFilter reduces English words to their snowball stem.
type StemmerFilter struct {
}

func (StemmerFilter) Gen(tokens []types.TokenMeta) []types.TokenMeta {
	r := common.CopyTokenMetaArray(tokens)
	for i, token := range tokens {
		if !isLatin(token) {
			continue
		}
		r[i].SetToken(snowballeng.Stem(token.Token(), false))
	}
	return r
}
