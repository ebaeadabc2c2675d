package dic

const (
	hitUnmatch = 0
	hitMatch   = 1 << 0
	hitPrefix  = 1 << 1
)

// Hit is the outcome of one trie probe. A prefix hit keeps the node it
// reached so the next probe can resume from there.
type Hit struct {
	state int
	Begin int
	End   int
	node  *node
}

func (h Hit) IsMatch() bool {
	return h.state&hitMatch != 0
}

func (h Hit) IsPrefix() bool {
	return h.state&hitPrefix != 0
}

func (h Hit) IsUnmatch() bool {
	return h.state == hitUnmatch
}

// Length of the probed span, inclusive of End.
func (h Hit) Length() int {
	return h.End - h.Begin + 1
}
