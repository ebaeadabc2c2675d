package cn

import (
	"ikseg/internal/lexeme"
	"ikseg/internal/types"
)

// TypeFilter keeps tokens of the listed lexeme types.
type TypeFilter struct {
	keep map[lexeme.Type]struct{}
}

func NewTypeFilter(keep ...lexeme.Type) *TypeFilter {
	f := &TypeFilter{keep: make(map[lexeme.Type]struct{}, len(keep))}
	for _, t := range keep {
		f.keep[t] = struct{}{}
	}
	return f
}

func (f *TypeFilter) Gen(tokens []types.TokenMeta) []types.TokenMeta {
	token := []types.TokenMeta{}
	for _, v := range tokens {
		typ, ok := v.GetMeta(types.MetaType).(lexeme.Type)
		if !ok {
			continue
		}
		if _, ok := f.keep[typ]; ok {
			token = append(token, v)
		}
	}
	return token
}

// Quantities keeps numbers and every number+unit or quantifier form.
func Quantities() *TypeFilter {
	return NewTypeFilter(
		lexeme.TypeArabic, lexeme.TypeCNum, lexeme.TypeCQuan,
		lexeme.TypeArabicDenary, lexeme.TypeCNumDenary,
		lexeme.TypeArabicCount, lexeme.TypeCNumCount, lexeme.TypeArabicUnit,
	)
}
