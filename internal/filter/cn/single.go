package cn

import (
	"ikseg/internal/lexeme"
	"ikseg/internal/types"
)

// SingleCharFilter drops the single rune CJK tokens the engine emits for
// text no dictionary word covers.
type SingleCharFilter struct {
}

func (SingleCharFilter) Gen(tokens []types.TokenMeta) []types.TokenMeta {
	token := []types.TokenMeta{}
	for _, v := range tokens {
		switch v.GetMeta(types.MetaType) {
		case lexeme.TypeCNChar, lexeme.TypeOtherCJK:
			continue
		}
		token = append(token, v)
	}
	return token
}
