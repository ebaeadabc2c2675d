package core

import (
	"io"

	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

const (
	BuffSize = 4096
	// refill is considered once the cursor is this close to the end
	BuffExhaustCritical = 100
)

// Context is the scanning window shared by the segmenters of one stream.
type Context struct {
	dict     *dic.Dictionary
	useSmart bool

	buff      []rune
	charTypes []CharType
	// absolute position of buff[0] in the stream
	buffOffset int
	cursor     int
	available  int
	// set once the reader is drained
	eof bool

	locks      map[string]struct{}
	orgLexemes *lexeme.Set
	pathMap    map[int]*LexemePath
	results    []*lexeme.Lexeme
}

func NewContext(dict *dic.Dictionary, useSmart bool) *Context {
	return &Context{
		dict:       dict,
		useSmart:   useSmart,
		buff:       make([]rune, BuffSize),
		charTypes:  make([]CharType, BuffSize),
		locks:      make(map[string]struct{}),
		orgLexemes: lexeme.NewSet(),
		pathMap:    make(map[int]*LexemePath),
	}
}

func (c *Context) Dict() *dic.Dictionary { return c.dict }
func (c *Context) Buffer() []rune        { return c.buff[:c.available] }
func (c *Context) BufferOffset() int     { return c.buffOffset }
func (c *Context) Cursor() int           { return c.cursor }
func (c *Context) Available() int        { return c.available }
func (c *Context) CurrentChar() rune     { return c.buff[c.cursor] }

func (c *Context) CurrentCharType() CharType {
	return c.charTypes[c.cursor]
}

// FillBuffer moves the unconsumed tail to the front and reads until the
// buffer is full or r is drained. It returns the runes now available.
func (c *Context) FillBuffer(r io.RuneReader) (int, error) {
	n := 0
	if c.available > 0 {
		if tail := c.available - c.cursor - 1; tail > 0 {
			copy(c.buff, c.buff[c.cursor+1:c.available])
			copy(c.charTypes, c.charTypes[c.cursor+1:c.available])
			n = tail
		}
	}
	c.available = n
	c.cursor = 0
	err := c.read(r, BuffSize)
	return c.available, err
}

// ExtendBuffer reads up to BuffSize more runes behind the available ones,
// growing the buffer. Nothing moves, so positions held by the segmenters
// stay valid. A read error ends the input.
func (c *Context) ExtendBuffer(r io.RuneReader) error {
	if c.eof {
		return nil
	}
	limit := c.available + BuffSize
	if len(c.buff) < limit {
		buff := make([]rune, limit)
		copy(buff, c.buff[:c.available])
		charTypes := make([]CharType, limit)
		copy(charTypes, c.charTypes[:c.available])
		c.buff, c.charTypes = buff, charTypes
	}
	return c.read(r, limit)
}

func (c *Context) read(r io.RuneReader, limit int) error {
	for !c.eof && c.available < limit {
		ch, _, err := r.ReadRune()
		if err != nil {
			c.eof = true
			if err == io.EOF {
				return nil
			}
			return err
		}
		ch = Regularize(ch)
		c.buff[c.available] = ch
		c.charTypes[c.available] = Identify(ch)
		c.available++
	}
	return nil
}

// AtLastChar reports whether the cursor is on the last available rune.
func (c *Context) AtLastChar() bool {
	return c.cursor == c.available-1
}

func (c *Context) EOF() bool {
	return c.eof
}

func (c *Context) InitCursor() {
	c.cursor = 0
}

// MoveCursor advances one rune; false once the last available rune is
// current.
func (c *Context) MoveCursor() bool {
	if c.cursor < c.available-1 {
		c.cursor++
		return true
	}
	return false
}

// IsBufferConsumed reports the end of the input: the cursor is on the last
// rune and the reader is drained. Segmenters flush open spans here.
func (c *Context) IsBufferConsumed() bool {
	return c.eof && c.AtLastChar()
}

// NeedRefillBuffer reports whether the buffer is near its end with more
// input pending and no segmenter holding scanned runes.
func (c *Context) NeedRefillBuffer() bool {
	return !c.eof &&
		c.cursor < c.available-1 &&
		c.cursor > c.available-BuffExhaustCritical &&
		!c.IsBufferLocked()
}

// MarkBufferOffset accounts the runes up to and including the cursor as
// consumed.
func (c *Context) MarkBufferOffset() {
	c.buffOffset += c.cursor + 1
}

func (c *Context) LockBuffer(name string) {
	c.locks[name] = struct{}{}
}

func (c *Context) UnlockBuffer(name string) {
	delete(c.locks, name)
}

func (c *Context) IsBufferLocked() bool {
	return len(c.locks) > 0
}

func (c *Context) AddLexeme(l *lexeme.Lexeme) {
	c.orgLexemes.Add(l)
}

func (c *Context) OrgLexemes() *lexeme.Set {
	return c.orgLexemes
}

// lastLexeme is the raw lexeme with the greatest begin so far.
func (c *Context) lastLexeme() *lexeme.Lexeme {
	return c.orgLexemes.Last()
}

// lexemeEndingAt finds a raw lexeme of type typ whose span ends at pos.
func (c *Context) lexemeEndingAt(pos int, typ lexeme.Type) *lexeme.Lexeme {
	items := c.orgLexemes.Items()
	for i := len(items) - 1; i >= 0; i-- {
		l := items[i]
		if l.Type == typ && l.End() == pos {
			return l
		}
	}
	return nil
}

func (c *Context) AddLexemePath(p *LexemePath) {
	if p != nil && p.Len() > 0 {
		c.pathMap[p.Begin()] = p
	}
}

func (c *Context) newLexeme(begin, length int, typ lexeme.Type) *lexeme.Lexeme {
	return lexeme.MustNew(c.buffOffset, begin, length, typ)
}

// OutputToResult turns the chosen paths of the consumed part of the
// buffer into the result queue. CJK runes no path covers are emitted one
// by one; other uncovered runes are dropped.
func (c *Context) OutputToResult() {
	for idx := 0; idx <= c.cursor && idx < c.available; {
		if c.charTypes[idx] == CharUseless {
			if _, ok := c.pathMap[idx]; !ok {
				idx++
				continue
			}
		}
		p, ok := c.pathMap[idx]
		if !ok {
			c.outputSingleCJK(idx)
			idx++
			continue
		}
		for l := p.PollFirst(); l != nil; l = p.PollFirst() {
			for ; idx < l.Begin; idx++ {
				c.outputSingleCJK(idx)
			}
			c.results = append(c.results, l)
			if l.End() > idx {
				idx = l.End()
			}
		}
	}
	clear(c.pathMap)
}

func (c *Context) outputSingleCJK(idx int) {
	switch c.charTypes[idx] {
	case CharChinese:
		c.results = append(c.results, c.newLexeme(idx, 1, lexeme.TypeCNChar))
	case CharOtherCJK:
		c.results = append(c.results, c.newLexeme(idx, 1, lexeme.TypeOtherCJK))
	}
}

// NextLexeme pops the next non stop word result with its text filled, or
// nil when the queue is drained.
func (c *Context) NextLexeme() *lexeme.Lexeme {
	for len(c.results) > 0 {
		l := c.pollResult()
		if c.useSmart {
			c.compound(l)
		}
		if c.dict.IsStopWord(c.buff, l.Begin, l.Length) {
			continue
		}
		l.Text = string(c.buff[l.Begin : l.Begin+l.Length])
		return l
	}
	return nil
}

func (c *Context) pollResult() *lexeme.Lexeme {
	l := c.results[0]
	c.results[0] = nil
	c.results = c.results[1:]
	return l
}

// compounds lists the adjacent pairs merged in smart mode.
var compounds = map[[2]lexeme.Type]lexeme.Type{
	{lexeme.TypeArabic, lexeme.TypeDenary}:      lexeme.TypeArabicDenary,
	{lexeme.TypeCNum, lexeme.TypeDenary}:        lexeme.TypeCNumDenary,
	{lexeme.TypeArabic, lexeme.TypeCount}:       lexeme.TypeArabicCount,
	{lexeme.TypeArabicDenary, lexeme.TypeCount}: lexeme.TypeArabicCount,
	{lexeme.TypeCNum, lexeme.TypeCount}:         lexeme.TypeCNumCount,
	{lexeme.TypeCNumDenary, lexeme.TypeCount}:   lexeme.TypeCNumCount,
	{lexeme.TypeArabic, lexeme.TypeUnit}:        lexeme.TypeArabicUnit,
	{lexeme.TypeArabicDenary, lexeme.TypeUnit}:  lexeme.TypeArabicUnit,
}

func (c *Context) compound(l *lexeme.Lexeme) {
	for len(c.results) > 0 {
		next := c.results[0]
		typ, ok := compounds[[2]lexeme.Type{l.Type, next.Type}]
		if !ok || !l.Append(next, typ) {
			return
		}
		c.pollResult()
	}
}

// Reset prepares the context for a new stream.
func (c *Context) Reset() {
	c.buffOffset = 0
	c.cursor = 0
	c.available = 0
	c.eof = false
	if len(c.buff) > BuffSize {
		c.buff = make([]rune, BuffSize)
		c.charTypes = make([]CharType, BuffSize)
	}
	clear(c.locks)
	c.orgLexemes.Clear()
	clear(c.pathMap)
	for i := range c.results {
		c.results[i] = nil
	}
	c.results = c.results[:0]
}
