package types

// meta keys every engine token carries
const (
	MetaType  = "type"  // lexeme.Type
	MetaBegin = "begin" // rune offset in the input
	MetaEnd   = "end"   // exclusive rune offset in the input
)

type TokenMeta interface {
	Token() string
	SetToken(string)
	GetMeta(interface{}) interface{}
	SetMeta(interface{}, interface{})
	Copy() TokenMeta
}

type Tokenizer interface {
	Analyze(string) []TokenMeta
	UseSegmentor(Segmentor)
	UseFilter(Filter)
}

type Segmentor interface {
	Cut(text string) []TokenMeta
}

type Filter interface {
	Gen([]TokenMeta) []TokenMeta
}
