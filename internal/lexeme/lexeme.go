package lexeme

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeLength = errors.New("lexeme length < 0")
)

type Type int

// tag values follow the IK type table so composite tags stay distinct bits
const (
	TypeUnknown      Type = 0
	TypeEnglish      Type = 1
	TypeArabic       Type = 2
	TypeLetter       Type = 3
	TypeCNWord       Type = 4
	TypeOtherCJK     Type = 8
	TypeCNum         Type = 16
	TypeCount        Type = 32
	TypeCQuan        Type = 48
	TypeCNChar       Type = 64
	TypeDenary       Type = 128
	TypeUnit         Type = 256
	TypeArabicDenary Type = 512
	TypeCNumDenary   Type = 1024
	TypeArabicCount  Type = 2048
	TypeCNumCount    Type = 5096
	TypeArabicUnit   Type = 10192
)

var typeNames = map[Type]string{
	TypeEnglish:      "TYPE_ENGLISH",
	TypeArabic:       "TYPE_ARABIC",
	TypeLetter:       "TYPE_LETTER",
	TypeCNWord:       "TYPE_CN_WORD",
	TypeCNChar:       "TYPE_CN_CHAR",
	TypeOtherCJK:     "TYPE_OTHER_CJK",
	TypeCNum:         "TYPE_CNUM",
	TypeCount:        "TYPE_COUNT",
	TypeCQuan:        "TYPE_CQUAN",
	TypeDenary:       "TYPE_DENARY",
	TypeUnit:         "TYPE_EN_UNIT",
	TypeArabicDenary: "TYPE_ARABIC_DENARY",
	TypeCNumDenary:   "TYPE_CNUM_DENARY",
	TypeArabicCount:  "TYPE_ARABIC_COUNT",
	TypeCNumCount:    "TYPE_CNUM_COUNT",
	TypeArabicUnit:   "TYPE_ARABIC_EN_UNIT",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKONW"
}

// IsComposite reports whether t is produced by joining two typed spans.
func (t Type) IsComposite() bool {
	switch t {
	case TypeCQuan, TypeArabicDenary, TypeCNumDenary, TypeArabicCount, TypeCNumCount, TypeArabicUnit:
		return true
	}
	return false
}

// rank orders types at the same span: composite over dictionary typed over generic
func (t Type) rank() int {
	switch {
	case t.IsComposite():
		return 3
	case t == TypeCount || t == TypeUnit || t == TypeDenary || t == TypeCNum || t == TypeCNWord:
		return 2
	case t == TypeUnknown:
		return 0
	}
	return 1
}

// Lexeme is one candidate token. Offset is the displacement of the scan
// buffer inside the whole input, Begin the start inside that buffer.
type Lexeme struct {
	Offset int
	Begin  int
	Length int
	Type   Type
	Text   string
}

func New(offset, begin, length int, typ Type) (*Lexeme, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: offset %d begin %d length %d", ErrNegativeLength, offset, begin, length)
	}
	return &Lexeme{
		Offset: offset,
		Begin:  begin,
		Length: length,
		Type:   typ,
	}, nil
}

// MustNew is New for recognizers, where a negative length is a bug.
func MustNew(offset, begin, length int, typ Type) *Lexeme {
	l, err := New(offset, begin, length, typ)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Lexeme) BeginPosition() int {
	return l.Offset + l.Begin
}

func (l *Lexeme) EndPosition() int {
	return l.Offset + l.Begin + l.Length
}

// End is the exclusive end inside the buffer.
func (l *Lexeme) End() int {
	return l.Begin + l.Length
}

// Compare orders by Begin ascending, then Length descending.
func (l *Lexeme) Compare(o *Lexeme) int {
	switch {
	case l.Begin < o.Begin:
		return -1
	case l.Begin > o.Begin:
		return 1
	case l.Length > o.Length:
		return -1
	case l.Length < o.Length:
		return 1
	}
	return 0
}

func (l *Lexeme) Equal(o *Lexeme) bool {
	if o == nil {
		return false
	}
	return l.Offset == o.Offset && l.Begin == o.Begin && l.Length == o.Length
}

// Append merges o into l when o starts exactly where l ends.
func (l *Lexeme) Append(o *Lexeme, typ Type) bool {
	if o == nil || l.EndPosition() != o.BeginPosition() {
		return false
	}
	l.Length += o.Length
	l.Type = typ
	if l.Text != "" || o.Text != "" {
		l.Text += o.Text
	}
	return true
}

func (l *Lexeme) Copy() *Lexeme {
	c := *l
	return &c
}

func (l *Lexeme) String() string {
	return fmt.Sprintf("%d-%d : %s : \t%s", l.BeginPosition(), l.EndPosition(), l.Text, l.Type)
}
