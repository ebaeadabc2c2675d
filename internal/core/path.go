package core

import (
	"fmt"
	"strings"

	"ikseg/internal/lexeme"
)

// LexemePath is an ordered run of lexemes over one region of the buffer,
// either every crossing candidate or one non overlapping choice.
type LexemePath struct {
	lexeme.Set
	begin   int
	end     int
	payload int
}

func NewLexemePath() *LexemePath {
	return &LexemePath{begin: -1, end: -1}
}

func (p *LexemePath) Begin() int { return p.begin }
func (p *LexemePath) End() int   { return p.end }

// Payload is the number of runes covered by lexemes.
func (p *LexemePath) Payload() int { return p.payload }

func (p *LexemePath) PathLength() int { return p.end - p.begin }

// AddCross adds l if the path is empty or l overlaps it.
func (p *LexemePath) AddCross(l *lexeme.Lexeme) bool {
	if p.IsEmpty() {
		p.Add(l)
		p.begin, p.end = l.Begin, l.End()
		p.payload = l.Length
		return true
	}
	if !p.Cross(l) {
		return false
	}
	p.Add(l)
	if l.End() > p.end {
		p.end = l.End()
	}
	p.payload = p.end - p.begin
	return true
}

// AddNotCross adds l if the path is empty or l overlaps nothing in it.
func (p *LexemePath) AddNotCross(l *lexeme.Lexeme) bool {
	if p.IsEmpty() {
		p.Add(l)
		p.begin, p.end = l.Begin, l.End()
		p.payload = l.Length
		return true
	}
	if p.Cross(l) {
		return false
	}
	p.Add(l)
	p.payload += l.Length
	p.begin = p.First().Begin
	p.end = p.Last().End()
	return true
}

func (p *LexemePath) RemoveTail() *lexeme.Lexeme {
	tail := p.PollLast()
	if p.IsEmpty() {
		p.begin, p.end, p.payload = -1, -1, 0
	} else {
		p.payload -= tail.Length
		p.end = p.Last().End()
	}
	return tail
}

// Cross reports whether l overlaps the span of the path.
func (p *LexemePath) Cross(l *lexeme.Lexeme) bool {
	return (l.Begin >= p.begin && l.Begin < p.end) ||
		(p.begin >= l.Begin && p.begin < l.End())
}

// XWeight is the product of lexeme lengths; even splits score higher.
func (p *LexemePath) XWeight() int {
	w := 1
	for _, l := range p.Items() {
		w *= l.Length
	}
	return w
}

// PWeight favours longer lexemes towards the end of the path.
func (p *LexemePath) PWeight() int {
	w := 0
	for i, l := range p.Items() {
		w += (i + 1) * l.Length
	}
	return w
}

func (p *LexemePath) Composites() int {
	n := 0
	for _, l := range p.Items() {
		if l.Type.IsComposite() {
			n++
		}
	}
	return n
}

func (p *LexemePath) Copy() *LexemePath {
	c := &LexemePath{begin: p.begin, end: p.end, payload: p.payload}
	for _, l := range p.Items() {
		c.Add(l)
	}
	return c
}

// Better reports whether p is preferred over o as the smart mode reading
// of a region.
func (p *LexemePath) Better(o *LexemePath) bool {
	return p.compare(o) < 0
}

func (p *LexemePath) compare(o *LexemePath) int {
	for _, d := range [...]int{
		o.payload - p.payload,
		p.Len() - o.Len(),
		o.PathLength() - p.PathLength(),
		o.end - p.end,
		o.XWeight() - p.XWeight(),
		o.PWeight() - p.PWeight(),
		o.Composites() - p.Composites(),
	} {
		if d != 0 {
			return d
		}
	}
	return 0
}

func (p *LexemePath) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "begin %d end %d payload %d\n", p.begin, p.end, p.payload)
	for _, l := range p.Items() {
		sb.WriteString(l.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
