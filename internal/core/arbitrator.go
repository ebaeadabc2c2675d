package core

import "ikseg/internal/lexeme"

// Arbitrator splits the raw lexemes into regions of crossing candidates
// and decides what each region outputs.
type Arbitrator struct{}

// Process drains ctx's raw lexemes into paths. Fine mode keeps whole
// regions; smart mode keeps the best non overlapping path of each.
func (a *Arbitrator) Process(ctx *Context, useSmart bool) {
	org := ctx.OrgLexemes()
	cross := NewLexemePath()
	for l := org.PollFirst(); l != nil; l = org.PollFirst() {
		if cross.AddCross(l) {
			continue
		}
		ctx.AddLexemePath(a.decide(cross, useSmart))
		cross = NewLexemePath()
		cross.AddCross(l)
	}
	ctx.AddLexemePath(a.decide(cross, useSmart))
}

func (a *Arbitrator) decide(cross *LexemePath, useSmart bool) *LexemePath {
	if !useSmart || cross.Len() <= 1 {
		return cross
	}
	return a.judge(cross.Items())
}

// judge walks the alternatives that begin by dropping each conflicting
// lexeme of the greedy first path and returns the best one.
func (a *Arbitrator) judge(cands []*lexeme.Lexeme) *LexemePath {
	option := NewLexemePath()
	conflicts := a.forward(cands, 0, option)
	best := option.Copy()
	for len(conflicts) > 0 {
		i := conflicts[len(conflicts)-1]
		conflicts = conflicts[:len(conflicts)-1]
		a.back(cands[i], option)
		a.forward(cands, i, option)
		if option.Better(best) {
			best = option.Copy()
		}
	}
	return best
}

// forward adds every candidate from i on that fits and returns the
// indexes of those that did not, in order.
func (a *Arbitrator) forward(cands []*lexeme.Lexeme, i int, option *LexemePath) []int {
	var conflicts []int
	for ; i < len(cands); i++ {
		if !option.AddNotCross(cands[i]) {
			conflicts = append(conflicts, i)
		}
	}
	return conflicts
}

// back removes lexemes from the tail until l fits.
func (a *Arbitrator) back(l *lexeme.Lexeme, option *LexemePath) {
	for option.Cross(l) {
		option.RemoveTail()
	}
}
