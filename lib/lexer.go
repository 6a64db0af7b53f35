package lib

// Config enables grammar extensions that are off by default. The zero value
// gives the base grammar: every ident-shaped token is KindIdentifier and //
// lexes as two slash operators.
type Config struct {
	// Keywords lists identifiers to report as KindKeyword instead of
	// KindIdentifier.
	Keywords []string

	// LineComments skips // through end of line like whitespace.
	LineComments bool
}

// Scanner turns an input string into tokens, one per Next call. The stream
// ends with a single KindEOF token; calling Next past that point just returns
// the same KindEOF token again.
type Scanner struct {
	cur      *cursor
	keywords map[string]bool
	comments bool
}

func NewScanner(input string) *Scanner {
	return NewScannerWithConfig(input, Config{})
}

func NewScannerWithConfig(input string, cfg Config) *Scanner {
	var keywords map[string]bool
	if len(cfg.Keywords) > 0 {
		keywords = make(map[string]bool, len(cfg.Keywords))
		for _, kw := range cfg.Keywords {
			keywords[kw] = true
		}
	}
	return &Scanner{
		cur:      newCursor(input),
		keywords: keywords,
		comments: cfg.LineComments,
	}
}

// Scan tokenizes the whole input eagerly. The result always ends with exactly
// one KindEOF token, even for empty input.
func Scan(input string) []Token {
	return ScanWithConfig(input, Config{})
}

func ScanWithConfig(input string, cfg Config) []Token {
	tokens := []Token{}
	s := NewScannerWithConfig(input, cfg)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

// Lex feeds tokens to a callback instead of building a slice, for consumers
// that stream. The KindEOF token is delivered last.
func Lex(input string, emit func(Token)) {
	s := NewScanner(input)
	for {
		tok := s.Next()
		emit(tok)
		if tok.Kind == KindEOF {
			return
		}
	}
}

func (s *Scanner) Next() Token {
	s.skipInsignificant()

	start := s.cur.position()
	ch, ok := s.cur.peek()
	if !ok {
		return Token{Kind: KindEOF, Location: start}
	}

	switch {
	case isIdentStart(ch):
		return s.scanIdent(start)
	case isDigit(ch):
		return s.scanNumber(start)
	case isOperatorStart(ch):
		return s.scanOperator(start)
	case isPunctuation(ch):
		s.cur.advance()
		return Token{Kind: KindPunct, Text: string(ch), Location: start}
	default:
		s.cur.advance()
		return Token{Kind: KindInvalid, Text: string(ch), Location: start}
	}
}

// skipInsignificant eats whitespace, and line comments when enabled. Neither
// shows up in the token stream.
func (s *Scanner) skipInsignificant() {
	for {
		ch, ok := s.cur.peek()
		if !ok {
			return
		}
		if isWhitespace(ch) {
			s.cur.advance()
			continue
		}
		if s.comments && ch == '/' {
			if ahead, ok := s.cur.peekAt(1); ok && ahead == '/' {
				s.skipLineComment()
				continue
			}
		}
		return
	}
}

func (s *Scanner) skipLineComment() {
	for {
		ch, ok := s.cur.peek()
		if !ok || ch == '\n' {
			return
		}
		s.cur.advance()
	}
}

func (s *Scanner) scanIdent(start Position) Token {
	for {
		ch, ok := s.cur.peek()
		if !ok || !isIdentContinue(ch) {
			break
		}
		s.cur.advance()
	}
	text := s.cur.text(start.Offset, s.cur.offset)
	if s.keywords[text] {
		return Token{Kind: KindKeyword, Text: text, Location: start}
	}
	return Token{Kind: KindIdentifier, Text: text, Location: start}
}

func (s *Scanner) scanNumber(start Position) Token {
	s.scanDigits()
	kind := KindInt

	// Only commit to the dot when a digit follows, so "1." lexes as an int
	// and a dot token.
	if ch, ok := s.cur.peek(); ok && ch == '.' {
		if ahead, ok := s.cur.peekAt(1); ok && isDigit(ahead) {
			s.cur.advance()
			s.scanDigits()
			kind = KindFloat
		}
	}

	return Token{Kind: kind, Text: s.cur.text(start.Offset, s.cur.offset), Location: start}
}

func (s *Scanner) scanDigits() {
	for {
		ch, ok := s.cur.peek()
		if !ok || !isDigit(ch) {
			return
		}
		s.cur.advance()
	}
}

func (s *Scanner) scanOperator(start Position) Token {
	ch, _ := s.cur.peek()
	if ahead, ok := s.cur.peekAt(1); ok {
		pair := string([]rune{ch, ahead})
		if op, found := twoCharOperators[pair]; found {
			s.cur.advance()
			s.cur.advance()
			return Token{Kind: KindOperator, Op: op, Text: pair, Location: start}
		}
	}
	s.cur.advance()
	return Token{Kind: KindOperator, Op: singleCharOperators[ch], Text: string(ch), Location: start}
}
