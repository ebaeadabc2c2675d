package tokenizer

import (
	"ikseg/internal/lexeme"
	"ikseg/internal/types"
)

// Token is a lexeme as seen by filters.
type Token struct {
	token string
	typ   lexeme.Type
	begin int
	end   int
	metas map[interface{}]interface{}
}

func NewToken(l *lexeme.Lexeme) *Token {
	return &Token{
		token: l.Text,
		typ:   l.Type,
		begin: l.BeginPosition(),
		end:   l.EndPosition(),
	}
}

func (t *Token) Token() string {
	return t.token
}

func (t *Token) SetToken(s string) {
	t.token = s
}

func (t *Token) Type() lexeme.Type {
	return t.typ
}

func (t *Token) GetMeta(key interface{}) interface{} {
	switch key {
	case types.MetaType:
		return t.typ
	case types.MetaBegin:
		return t.begin
	case types.MetaEnd:
		return t.end
	}
	return t.metas[key]
}

func (t *Token) SetMeta(key interface{}, v interface{}) {
	switch key {
	case types.MetaType:
		t.typ = v.(lexeme.Type)
	case types.MetaBegin:
		t.begin = v.(int)
	case types.MetaEnd:
		t.end = v.(int)
	default:
		if t.metas == nil {
			t.metas = make(map[interface{}]interface{})
		}
		t.metas[key] = v
	}
}

func (t *Token) Copy() types.TokenMeta {
	tt := *t
	if t.metas != nil {
		tt.metas = make(map[interface{}]interface{}, len(t.metas))
		for k, v := range t.metas {
			tt.metas[k] = v
		}
	}
	return &tt
}

func (t *Token) String() string {
	return t.token + "/" + t.typ.String()
}
