package lib

// Position points at a character in the original input. Offset counts runes
// from 0; Line and Col are 1-based so they can be used verbatim in
// diagnostics.
type Position struct {
	Offset int
	Line   int
	Col    int
}

type TokenKind int

const (
	KindInvalid TokenKind = iota
	KindIdentifier
	KindKeyword
	KindInt
	KindFloat
	KindOperator
	KindPunct
	KindEOF
)

func (k TokenKind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIdentifier:
		return "identifier"
	case KindKeyword:
		return "keyword"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindOperator:
		return "operator"
	case KindPunct:
		return "punct"
	case KindEOF:
		return "eof"
	}
	return "unknown"
}

type OperatorKind int

const (
	OpNone OperatorKind = iota
	OpAssign
	OpBang
	OpLess
	OpGreater
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpCaret
	OpAmp
	OpPipe
	OpTilde
	OpEqual
	OpNotEqual
	OpLessOrEqual
	OpGreaterOrEqual
	OpAnd
	OpOr
)

// Token is one classified unit of the input. Text is the exact lexeme and is
// non-empty for every kind except KindEOF. Op is only meaningful when Kind is
// KindOperator.
type Token struct {
	Kind     TokenKind
	Op       OperatorKind
	Text     string
	Location Position
}

// The operator grammar lives in these tables rather than in scanner branches
// so the longest-match rule stays auditable: the two-char table is always
// consulted before the single-char one.
var twoCharOperators = map[string]OperatorKind{
	"==": OpEqual,
	"!=": OpNotEqual,
	"<=": OpLessOrEqual,
	">=": OpGreaterOrEqual,
	"&&": OpAnd,
	"||": OpOr,
}

var singleCharOperators = map[rune]OperatorKind{
	'=': OpAssign,
	'!': OpBang,
	'<': OpLess,
	'>': OpGreater,
	'+': OpPlus,
	'-': OpMinus,
	'*': OpStar,
	'/': OpSlash,
	'%': OpPercent,
	'^': OpCaret,
	'&': OpAmp,
	'|': OpPipe,
	'~': OpTilde,
}

var punctuationChars = map[rune]bool{
	'(': true,
	')': true,
	'{': true,
	'}': true,
	'[': true,
	']': true,
	';': true,
	',': true,
	':': true,
	'.': true,
	'?': true,
}
