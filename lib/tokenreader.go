package lib

// TokenReader is the pull interface a parser consumes. Next returns one token
// per call; done becomes true only after the KindEOF token has already been
// delivered, so the EOF token appears in the stream exactly once.
type TokenReader interface {
	Next() (tok Token, done bool)
	Peek() (tok Token, done bool)
}

type peekResult struct {
	tok  Token
	done bool
}

// tokenStream adapts a Scanner to the TokenReader contract with a one-slot
// peek buffer. The stream is forward-only; re-tokenizing needs a new reader.
type tokenStream struct {
	scanner *Scanner
	peeked  *peekResult
	ended   bool
}

func NewReader(input string) TokenReader {
	return NewReaderWithConfig(input, Config{})
}

func NewReaderWithConfig(input string, cfg Config) TokenReader {
	return &tokenStream{scanner: NewScannerWithConfig(input, cfg)}
}

func (ts *tokenStream) Next() (Token, bool) {
	if ts.peeked != nil {
		res := ts.peeked
		ts.peeked = nil
		return res.tok, res.done
	}

	if ts.ended {
		return Token{}, true
	}

	tok := ts.scanner.Next()
	if tok.Kind == KindEOF {
		ts.ended = true
	}
	return tok, false
}

func (ts *tokenStream) Peek() (Token, bool) {
	if ts.peeked == nil {
		tok, done := ts.Next()
		ts.peeked = &peekResult{tok: tok, done: done}
	}
	return ts.peeked.tok, ts.peeked.done
}
