package core

import (
	"strings"

	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

const quantifierSegmenterName = "QUAN_SEGMENTER"

const (
	chnNumChars = "一二两三四五六七八九十零壹贰叁肆伍陆柒捌玖卅廿"
	denaryChars = "十百千万亿兆拾佰仟萬億"
)

func isChnNum(r rune) bool { return strings.ContainsRune(chnNumChars, r) }
func isDenary(r rune) bool { return strings.ContainsRune(denaryChars, r) }

// QuantifierSegmenter recognizes Chinese numerals, decimal scale words,
// quantifiers following a number and "24小时" style number+unit spans.
type QuantifierSegmenter struct {
	// Chinese numeral run
	nStart, nEnd int
	// decimal scale run
	dnStart, dnEnd int
	// pending quantifier words
	countHits []dic.Hit

	// digits, then the Chinese unit part that follows them
	aStart, aEnd int
	cnStart      int
	// end of the longest unit part confirmed by a dictionary
	matchEnd  int
	matchUnit bool
}

func NewQuantifierSegmenter() *QuantifierSegmenter {
	s := &QuantifierSegmenter{}
	s.Reset()
	return s
}

func (s *QuantifierSegmenter) Name() string { return quantifierSegmenterName }

func (s *QuantifierSegmenter) Reset() {
	s.nStart, s.nEnd = -1, -1
	s.dnStart, s.dnEnd = -1, -1
	s.countHits = s.countHits[:0]
	s.resetArabicUnit()
}

func (s *QuantifierSegmenter) resetArabicUnit() {
	s.aStart, s.aEnd, s.cnStart = -1, -1, -1
	s.matchEnd = -1
	s.matchUnit = false
}

func (s *QuantifierSegmenter) Analyze(ctx *Context) {
	s.processDenary(ctx)
	s.processCNumber(ctx)
	s.processCount(ctx)
	s.processArabicUnit(ctx)

	lockIf(ctx, quantifierSegmenterName,
		s.nStart != -1 || s.dnStart != -1 || len(s.countHits) > 0 || s.aStart != -1)
}

func (s *QuantifierSegmenter) processDenary(ctx *Context) {
	if ctx.CurrentCharType() == CharChinese && isDenary(ctx.CurrentChar()) {
		if s.dnStart == -1 {
			s.dnStart = ctx.Cursor()
		}
		s.dnEnd = ctx.Cursor()
	} else {
		s.outputRun(ctx, &s.dnStart, &s.dnEnd, lexeme.TypeDenary)
	}
	if ctx.IsBufferConsumed() {
		s.outputRun(ctx, &s.dnStart, &s.dnEnd, lexeme.TypeDenary)
	}
}

func (s *QuantifierSegmenter) processCNumber(ctx *Context) {
	if ctx.CurrentCharType() == CharChinese && isChnNum(ctx.CurrentChar()) {
		if s.nStart == -1 {
			s.nStart = ctx.Cursor()
		}
		s.nEnd = ctx.Cursor()
	} else {
		s.outputRun(ctx, &s.nStart, &s.nEnd, lexeme.TypeCNum)
	}
	if ctx.IsBufferConsumed() {
		s.outputRun(ctx, &s.nStart, &s.nEnd, lexeme.TypeCNum)
	}
}

func (s *QuantifierSegmenter) outputRun(ctx *Context, start, end *int, typ lexeme.Type) {
	if *start != -1 && *end != -1 {
		ctx.AddLexeme(ctx.newLexeme(*start, *end-*start+1, typ))
	}
	*start, *end = -1, -1
}

// needCountScan reports whether the cursor follows a number.
func (s *QuantifierSegmenter) needCountScan(ctx *Context) bool {
	if s.nStart != -1 || s.dnStart != -1 || len(s.countHits) > 0 {
		return true
	}
	if l := ctx.lastLexeme(); l != nil {
		return l.Type == lexeme.TypeCNum || l.Type == lexeme.TypeDenary || l.Type == lexeme.TypeArabic
	}
	return false
}

func (s *QuantifierSegmenter) processCount(ctx *Context) {
	if !s.needCountScan(ctx) {
		return
	}
	if ctx.CurrentCharType() == CharChinese {
		s.countHits = advanceHits(ctx, s.countHits, func(h dic.Hit) {
			ctx.AddLexeme(ctx.newLexeme(h.Begin, ctx.Cursor()-h.Begin+1, lexeme.TypeCount))
		})
		h := ctx.Dict().MatchQuantifier(ctx.Buffer(), ctx.Cursor(), 1)
		if h.IsMatch() {
			ctx.AddLexeme(ctx.newLexeme(ctx.Cursor(), 1, lexeme.TypeCount))
		}
		if h.IsPrefix() {
			s.countHits = append(s.countHits, h)
		}
	} else {
		s.countHits = s.countHits[:0]
	}
	if ctx.IsBufferConsumed() {
		s.countHits = s.countHits[:0]
	}
}

func (s *QuantifierSegmenter) processArabicUnit(ctx *Context) {
	cur := ctx.Cursor()
	switch typ := ctx.CurrentCharType(); {
	case typ == CharArabic:
		if s.cnStart != -1 {
			// "7月15日": the unit part ended, a new number starts
			s.flushArabicUnit(ctx)
		}
		if s.aStart == -1 {
			s.aStart = cur
		}
		s.aEnd = cur
	case s.aStart == -1:
	case typ == CharChinese:
		if s.cnStart == -1 {
			if s.aEnd != cur-1 {
				s.resetArabicUnit()
				break
			}
			s.cnStart = cur
		}
		buf, length := ctx.Buffer(), cur-s.cnStart+1
		qh := ctx.Dict().MatchQuantifier(buf, s.cnStart, length)
		uh := ctx.Dict().MatchUnit(buf, s.cnStart, length)
		if qh.IsMatch() || uh.IsMatch() {
			s.matchEnd = cur
			s.matchUnit = uh.IsMatch()
		}
		if !qh.IsPrefix() && !uh.IsPrefix() {
			s.flushArabicUnit(ctx)
		}
	case s.cnStart == -1 && isNumConnector(ctx.CurrentChar()):
		// "3.5小时"
	default:
		s.flushArabicUnit(ctx)
	}
	if ctx.IsBufferConsumed() {
		s.flushArabicUnit(ctx)
	}
}

// flushArabicUnit emits the span up to the last confirmed unit and closes it.
func (s *QuantifierSegmenter) flushArabicUnit(ctx *Context) {
	if s.aStart != -1 && s.matchEnd != -1 {
		typ := lexeme.TypeArabicCount
		if s.matchUnit {
			typ = lexeme.TypeArabicUnit
		}
		ctx.AddLexeme(ctx.newLexeme(s.aStart, s.matchEnd-s.aStart+1, typ))
	}
	s.resetArabicUnit()
}
