package tokenizer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"ikseg/internal/cache"
	"ikseg/internal/common"
	"ikseg/internal/core"
	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
	"ikseg/internal/types"
)

// IKSegmentor cuts text with the dictionary engine.
type IKSegmentor struct {
	dict     *dic.Dictionary
	useSmart bool
}

func NewIKSegmentor(dict *dic.Dictionary, useSmart bool) *IKSegmentor {
	return &IKSegmentor{
		dict:     dict,
		useSmart: useSmart,
	}
}

func (s *IKSegmentor) Cut(text string) []types.TokenMeta {
	seg := core.NewIKSegmenter(strings.NewReader(text), s.dict, s.useSmart)
	tokens := []types.TokenMeta{}
	for {
		l, err := seg.Next()
		if err != nil {
			if err != io.EOF {
				common.WARN("Cut stopped early: %v", err)
			}
			return tokens
		}
		tokens = append(tokens, NewToken(l))
	}
}

// CachedSegmentor remembers recent cuts. Entries are keyed by the
// dictionary revision, so a reload or a word change makes old entries
// unreachable.
type CachedSegmentor struct {
	seg   *IKSegmentor
	cache *cache.LruCache
}

func NewCachedSegmentor(seg *IKSegmentor, size int) *CachedSegmentor {
	return &CachedSegmentor{
		seg:   seg,
		cache: cache.Default(size),
	}
}

func (s *CachedSegmentor) Cut(text string) []types.TokenMeta {
	key := fmt.Sprintf("%x/%v/%s", s.seg.dict.Revision(), s.seg.useSmart, text)
	if v, ok := s.cache.Get(key); ok {
		return common.CopyTokenMetaArray(v.([]types.TokenMeta))
	}
	tokens := s.seg.Cut(text)
	s.cache.Put(key, common.CopyTokenMetaArray(tokens))
	return tokens
}

// FieldsSegmentor splits on anything that is not a letter or a number.
// It needs no dictionary; every piece is typed by its first rune.
type FieldsSegmentor struct{}

func (FieldsSegmentor) Cut(text string) []types.TokenMeta {
	tokens := []types.TokenMeta{}
	pos, last := 0, -1
	runes := []rune(text)
	flush := func() {
		if last == -1 {
			return
		}
		word := strings.ToLower(string(runes[last:pos]))
		tokens = append(tokens, &Token{
			token: word,
			typ:   fieldType(runes[last]),
			begin: last,
			end:   pos,
		})
		last = -1
	}
	for ; pos < len(runes); pos++ {
		v := runes[pos]
		if unicode.IsLetter(v) || unicode.IsNumber(v) {
			if last == -1 {
				last = pos
			}
			continue
		}
		flush()
	}
	flush()
	return tokens
}

func fieldType(r rune) lexeme.Type {
	switch core.Identify(core.Regularize(r)) {
	case core.CharArabic:
		return lexeme.TypeArabic
	case core.CharEnglish:
		return lexeme.TypeEnglish
	case core.CharChinese:
		return lexeme.TypeCNWord
	case core.CharOtherCJK:
		return lexeme.TypeOtherCJK
	}
	return lexeme.TypeUnknown
}
