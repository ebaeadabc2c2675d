package core

import (
	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

const cjkSegmenterName = "CJK_SEGMENTER"

// CJKSegmenter emits every main dictionary word found over Chinese and
// other CJK runes, overlapping ones included.
type CJKSegmenter struct {
	hits []dic.Hit
}

func NewCJKSegmenter() *CJKSegmenter {
	return &CJKSegmenter{}
}

func (s *CJKSegmenter) Name() string { return cjkSegmenterName }

func (s *CJKSegmenter) Reset() {
	s.hits = s.hits[:0]
}

func (s *CJKSegmenter) Analyze(ctx *Context) {
	switch ctx.CurrentCharType() {
	case CharChinese, CharOtherCJK:
		s.hits = advanceHits(ctx, s.hits, func(h dic.Hit) {
			ctx.AddLexeme(ctx.newLexeme(h.Begin, ctx.Cursor()-h.Begin+1, lexeme.TypeCNWord))
		})
		h := ctx.Dict().MatchMain(ctx.Buffer(), ctx.Cursor(), 1)
		if h.IsMatch() {
			ctx.AddLexeme(ctx.newLexeme(ctx.Cursor(), 1, lexeme.TypeCNWord))
		}
		if h.IsPrefix() {
			s.hits = append(s.hits, h)
		}
	default:
		s.hits = s.hits[:0]
	}
	if ctx.IsBufferConsumed() {
		s.hits = s.hits[:0]
	}
	lockIf(ctx, cjkSegmenterName, len(s.hits) > 0)
}
