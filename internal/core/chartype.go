package core

import (
	"unicode"

	"golang.org/x/text/width"
)

type CharType int

const (
	CharUseless CharType = iota
	CharArabic
	CharEnglish
	CharChinese
	CharOtherCJK
)

func (c CharType) String() string {
	switch c {
	case CharArabic:
		return "ARABIC"
	case CharEnglish:
		return "ENGLISH"
	case CharChinese:
		return "CHINESE"
	case CharOtherCJK:
		return "OTHER_CJK"
	}
	return "USELESS"
}

// Identify classifies a regularized rune.
func Identify(r rune) CharType {
	switch {
	case r >= '0' && r <= '9':
		return CharArabic
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return CharEnglish
	case unicode.Is(unicode.Han, r):
		return CharChinese
	case unicode.In(r, unicode.Hangul, unicode.Hiragana, unicode.Katakana):
		return CharOtherCJK
	}
	return CharUseless
}

// Regularize folds full width forms (including the ideographic space) to
// their narrow counterparts and lower cases the result.
func Regularize(r rune) rune {
	if p := width.LookupRune(r); p.Kind() == width.EastAsianFullwidth {
		if n := p.Narrow(); n != 0 {
			r = n
		}
	}
	return unicode.ToLower(r)
}
