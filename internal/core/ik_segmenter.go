package core

import (
	"bufio"
	"io"

	"ikseg/internal/common"
	"ikseg/internal/dic"
	"ikseg/internal/lexeme"
)

// IKSegmenter turns one character stream into lexemes. It is not safe
// for concurrent use; run one per goroutine.
type IKSegmenter struct {
	input      *bufio.Reader
	ctx        *Context
	segmenters []Segmenter
	arbitrator *Arbitrator
	useSmart   bool
	// read error seen while extending, reported once the queue drains
	err error
}

func NewIKSegmenter(r io.Reader, dict *dic.Dictionary, useSmart bool) *IKSegmenter {
	return &IKSegmenter{
		input:      bufio.NewReader(r),
		ctx:        NewContext(dict, useSmart),
		segmenters: NewSegmenters(),
		arbitrator: &Arbitrator{},
		useSmart:   useSmart,
	}
}

// Next returns the next lexeme, or io.EOF once the stream is drained.
func (s *IKSegmenter) Next() (*lexeme.Lexeme, error) {
	for {
		if l := s.ctx.NextLexeme(); l != nil {
			return l, nil
		}
		if err := s.err; err != nil {
			s.err = nil
			return nil, err
		}
		n, err := s.ctx.FillBuffer(s.input)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			s.ctx.Reset()
			return nil, io.EOF
		}
		s.analyze()
	}
}

// analyze runs every segmenter over the buffer, stopping early when the
// buffer can be refilled, then arbitrates what was found. A scan still
// open at the last buffered rune makes the buffer grow instead.
func (s *IKSegmenter) analyze() {
	s.ctx.InitCursor()
	for {
		if s.ctx.AtLastChar() && !s.ctx.EOF() {
			if err := s.ctx.ExtendBuffer(s.input); err != nil {
				common.WARN("Read stopped early: %v", err)
				s.err = err
			}
		}
		for _, seg := range s.segmenters {
			seg.Analyze(s.ctx)
		}
		if s.ctx.NeedRefillBuffer() || !s.ctx.MoveCursor() {
			break
		}
	}
	for _, seg := range s.segmenters {
		seg.Reset()
	}
	s.arbitrator.Process(s.ctx, s.useSmart)
	s.ctx.OutputToResult()
	s.ctx.MarkBufferOffset()
}

// Reset points the segmenter at a new stream.
func (s *IKSegmenter) Reset(r io.Reader) {
	s.input.Reset(r)
	s.err = nil
	s.ctx.Reset()
	for _, seg := range s.segmenters {
		seg.Reset()
	}
}
