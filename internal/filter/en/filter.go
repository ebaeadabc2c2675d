package en

import (
	"ikseg/internal/lexeme"
	"ikseg/internal/types"
)

// isLatin reports whether a token is an English word. Tokens without a
// type meta come from foreign segmentors and are treated as Latin.
func isLatin(t types.TokenMeta) bool {
	typ, ok := t.GetMeta(types.MetaType).(lexeme.Type)
	return !ok || typ == lexeme.TypeEnglish
}
