package typeexpr

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	kindCode = iota + 1
	openSquareBracketCode
	closeSquareBracketCode
)

var (
	kindToken               = parsly.NewToken(kindCode, "Kind", &kindMatcher{})
	openSquareBracketToken  = parsly.NewToken(openSquareBracketCode, "[", matcher.NewByte('['))
	closeSquareBracketToken = parsly.NewToken(closeSquareBracketCode, "]", matcher.NewByte(']'))
)

// kindMatcher matches a kind name: a letter followed by letters, digits, '_' or '-'
type kindMatcher struct{}

func (m *kindMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || !isLetter(input[pos]) {
		return 0
	}
	matched := 1
	for i := pos + 1; i < cursor.InputSize; i++ {
		c := input[i]
		if !isLetter(c) && !isDigit(c) && c != '_' && c != '-' {
			break
		}
		matched++
	}
	return matched
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
