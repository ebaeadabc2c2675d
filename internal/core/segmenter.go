package core

import "ikseg/internal/dic"

// Segmenter recognizes one family of lexemes. Analyze is called once per
// cursor position and holds a buffer lock named after the segmenter while
// it has unfinished state.
type Segmenter interface {
	Name() string
	Analyze(ctx *Context)
	Reset()
}

// NewSegmenters returns the fixed segmenter chain in analysis order.
func NewSegmenters() []Segmenter {
	return []Segmenter{
		NewLetterSegmenter(),
		NewQuantifierSegmenter(),
		NewUnitSegmenter(),
		NewCJKSegmenter(),
	}
}

// advanceHits resumes every queued hit at the cursor. emit is called for
// each one that became a word; the returned queue holds the hits that may
// still grow.
func advanceHits(ctx *Context, hits []dic.Hit, emit func(dic.Hit)) []dic.Hit {
	buf, cur := ctx.Buffer(), ctx.Cursor()
	kept := hits[:0]
	for _, h := range hits {
		h = ctx.Dict().ContinueMatch(buf, cur, h)
		if h.IsMatch() {
			emit(h)
		}
		if h.IsPrefix() {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(hits); i++ {
		hits[i] = dic.Hit{}
	}
	return kept
}

func lockIf(ctx *Context, name string, locked bool) {
	if locked {
		ctx.LockBuffer(name)
	} else {
		ctx.UnlockBuffer(name)
	}
}
