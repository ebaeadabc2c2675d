package core

import (
	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

const unitSegmenterName = "EN_UNIT_SEGMENTER"

func isUnitSymbol(r rune) bool {
	return r == '℃' || r == '℉'
}

// UnitSegmenter recognizes measurement units such as "cm" or "℃" after
// a number. A unit directly behind an Arabic number also yields the
// joined number+unit lexeme.
type UnitSegmenter struct {
	unitHits []dic.Hit
}

func NewUnitSegmenter() *UnitSegmenter {
	return &UnitSegmenter{}
}

func (s *UnitSegmenter) Name() string { return unitSegmenterName }

func (s *UnitSegmenter) Reset() {
	s.unitHits = s.unitHits[:0]
}

func (s *UnitSegmenter) Analyze(ctx *Context) {
	if s.needScan(ctx) {
		if ctx.CurrentCharType() == CharEnglish {
			s.unitHits = advanceHits(ctx, s.unitHits, func(h dic.Hit) {
				s.emit(ctx, h.Begin, ctx.Cursor()-h.Begin+1)
			})
		} else {
			// units never cross into another script
			s.unitHits = s.unitHits[:0]
		}
		h := ctx.Dict().MatchUnit(ctx.Buffer(), ctx.Cursor(), 1)
		if h.IsMatch() {
			s.emit(ctx, ctx.Cursor(), 1)
		}
		if h.IsPrefix() && ctx.CurrentCharType() == CharEnglish {
			s.unitHits = append(s.unitHits, h)
		}
	} else {
		s.unitHits = s.unitHits[:0]
	}
	if ctx.IsBufferConsumed() {
		s.unitHits = s.unitHits[:0]
	}
	lockIf(ctx, unitSegmenterName, len(s.unitHits) > 0)
}

func (s *UnitSegmenter) needScan(ctx *Context) bool {
	switch ctx.CurrentCharType() {
	case CharEnglish:
		if len(s.unitHits) > 0 {
			return true
		}
		l := ctx.lastLexeme()
		return l != nil && l.Type == lexeme.TypeArabic
	case CharUseless:
		return isUnitSymbol(ctx.CurrentChar())
	}
	return false
}

func (s *UnitSegmenter) emit(ctx *Context, begin, length int) {
	unit := ctx.newLexeme(begin, length, lexeme.TypeUnit)
	ctx.AddLexeme(unit)
	if num := ctx.lexemeEndingAt(begin, lexeme.TypeArabic); num != nil {
		joined := num.Copy()
		if joined.Append(unit, lexeme.TypeArabicUnit) {
			ctx.AddLexeme(joined)
		}
	}
}
