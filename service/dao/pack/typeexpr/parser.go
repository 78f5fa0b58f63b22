package typeexpr

import (
	"fmt"
	"strings"

	"github.com/viant/fluxblock/model/types"
	"github.com/viant/parsly"
)

const mapKeyword = "map"

// Parse parses a type expression: kind, []kind or map[key]kind. Whitespace is ignored.
func Parse(expr string) (types.Descriptor, error) {
	input := []byte(strings.Join(strings.Fields(expr), ""))
	if len(input) == 0 {
		return types.Any(), nil
	}
	cursor := parsly.NewCursor("", input, 0)
	var ret types.Descriptor

	matched := cursor.MatchAny(openSquareBracketToken, kindToken)
	switch matched.Code {
	case openSquareBracketCode:
		if matched = cursor.MatchOne(closeSquareBracketToken); matched.Code != closeSquareBracketCode {
			return ret, cursor.NewError(closeSquareBracketToken)
		}
		kind, err := matchKind(cursor)
		if err != nil {
			return ret, err
		}
		ret = types.ArrayOf(kind)
	case kindCode:
		text := matched.Text(cursor)
		if text != mapKeyword || cursor.MatchOne(openSquareBracketToken).Code != openSquareBracketCode {
			ret = types.New(types.Kind(text))
			break
		}
		key, err := matchKind(cursor)
		if err != nil {
			return ret, err
		}
		if matched = cursor.MatchOne(closeSquareBracketToken); matched.Code != closeSquareBracketCode {
			return ret, cursor.NewError(closeSquareBracketToken)
		}
		kind, err := matchKind(cursor)
		if err != nil {
			return ret, err
		}
		ret = types.DictionaryOf(key, kind)
	default:
		return ret, cursor.NewError(kindToken)
	}
	if cursor.Pos < cursor.InputSize {
		return ret, fmt.Errorf("unexpected %q at %v in type expression %q", input[cursor.Pos:], cursor.Pos, expr)
	}
	return ret, nil
}

func matchKind(cursor *parsly.Cursor) (types.Kind, error) {
	matched := cursor.MatchOne(kindToken)
	if matched.Code != kindCode {
		return "", cursor.NewError(kindToken)
	}
	return types.Kind(matched.Text(cursor)), nil
}
