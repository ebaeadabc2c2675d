package core

import "ikseg/internal/lexeme"

const letterSegmenterName = "LETTER_SEGMENTER"

// LetterSegmenter emits English words, Arabic numbers and mixed
// letter/digit tokens such as "mp3", "c++" or "a@b.com".
type LetterSegmenter struct {
	start, end               int
	englishStart, englishEnd int
	arabicStart, arabicEnd   int
}

func NewLetterSegmenter() *LetterSegmenter {
	s := &LetterSegmenter{}
	s.Reset()
	return s
}

func (s *LetterSegmenter) Name() string { return letterSegmenterName }

func (s *LetterSegmenter) Reset() {
	s.start, s.end = -1, -1
	s.englishStart, s.englishEnd = -1, -1
	s.arabicStart, s.arabicEnd = -1, -1
}

func (s *LetterSegmenter) Analyze(ctx *Context) {
	// runs of one kind are emitted before the mixed run so they keep
	// their type when both cover the same span
	locked := s.processEnglish(ctx)
	locked = s.processArabic(ctx) || locked
	locked = s.processMix(ctx) || locked
	lockIf(ctx, letterSegmenterName, locked)
}

func isLetterConnector(r rune) bool {
	switch r {
	case '#', '&', '+', '-', '.', '@', '_':
		return true
	}
	return false
}

func isNumConnector(r rune) bool {
	return r == ',' || r == '.'
}

func (s *LetterSegmenter) processMix(ctx *Context) bool {
	typ := ctx.CurrentCharType()
	if s.start == -1 {
		if typ == CharArabic || typ == CharEnglish {
			s.start, s.end = ctx.Cursor(), ctx.Cursor()
		}
	} else {
		switch {
		case typ == CharArabic || typ == CharEnglish:
			s.end = ctx.Cursor()
		case typ == CharUseless && isLetterConnector(ctx.CurrentChar()):
			// kept only if a letter or digit follows
		default:
			s.emit(ctx, &s.start, &s.end, lexeme.TypeLetter)
		}
	}
	if ctx.IsBufferConsumed() {
		s.emit(ctx, &s.start, &s.end, lexeme.TypeLetter)
	}
	return s.start != -1
}

func (s *LetterSegmenter) processEnglish(ctx *Context) bool {
	if ctx.CurrentCharType() == CharEnglish {
		if s.englishStart == -1 {
			s.englishStart = ctx.Cursor()
		}
		s.englishEnd = ctx.Cursor()
	} else {
		s.emit(ctx, &s.englishStart, &s.englishEnd, lexeme.TypeEnglish)
	}
	if ctx.IsBufferConsumed() {
		s.emit(ctx, &s.englishStart, &s.englishEnd, lexeme.TypeEnglish)
	}
	return s.englishStart != -1
}

func (s *LetterSegmenter) processArabic(ctx *Context) bool {
	typ := ctx.CurrentCharType()
	switch {
	case typ == CharArabic:
		if s.arabicStart == -1 {
			s.arabicStart = ctx.Cursor()
		}
		s.arabicEnd = ctx.Cursor()
	case s.arabicStart != -1 && typ == CharUseless && isNumConnector(ctx.CurrentChar()):
		// "1,000" and "3.14" stay one number
	default:
		s.emit(ctx, &s.arabicStart, &s.arabicEnd, lexeme.TypeArabic)
	}
	if ctx.IsBufferConsumed() {
		s.emit(ctx, &s.arabicStart, &s.arabicEnd, lexeme.TypeArabic)
	}
	return s.arabicStart != -1
}

func (s *LetterSegmenter) emit(ctx *Context, start, end *int, typ lexeme.Type) {
	if *start != -1 && *end != -1 {
		ctx.AddLexeme(ctx.newLexeme(*start, *end-*start+1, typ))
	}
	*start, *end = -1, -1
}
