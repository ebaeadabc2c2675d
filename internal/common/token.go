package common

import "ikseg/internal/types"

func CopyTokenMetaArray(tokens []types.TokenMeta) []types.TokenMeta {
	r := make([]types.TokenMeta, len(tokens))
	for i, v := range tokens {
		r[i] = v.Copy()
	}
	return r
}
