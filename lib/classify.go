package lib

import "unicode"

// Character classification is kept separate from position bookkeeping: these
// predicates are stateless, the cursor never classifies.

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isOperatorStart(ch rune) bool {
	_, ok := singleCharOperators[ch]
	return ok
}

func isPunctuation(ch rune) bool {
	return punctuationChars[ch]
}
