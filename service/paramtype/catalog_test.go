package paramtype

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fluxblock/model/types"
)

func TestCatalog_Default(t *testing.T) {
	catalog := New()
	testCases := []struct {
		description string
		descriptor  types.Descriptor
		expected    interface{}
	}{
		{description: "number", descriptor: types.New(types.KindNumber), expected: float64(0)},
		{description: "string", descriptor: types.New(types.KindString), expected: ""},
		{description: "boolean", descriptor: types.New(types.KindBoolean), expected: false},
		{description: "bigint", descriptor: types.New(types.KindBigInt), expected: big.NewInt(0)},
		{description: "object", descriptor: types.New(types.KindObject), expected: map[string]interface{}{}},
		{description: "array of number", descriptor: types.ArrayOf(types.KindNumber), expected: []float64{}},
		{description: "dictionary", descriptor: types.DictionaryOf(types.KindString, types.KindBoolean), expected: map[string]bool{}},
		{description: "any", descriptor: types.Any(), expected: nil},
		{description: "execute", descriptor: types.Execute(), expected: nil},
		{description: "unknown", descriptor: types.New("enum"), expected: nil},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expected, catalog.Default(testCase.descriptor), testCase.description)
	}
}

func TestCatalog_Register(t *testing.T) {
	catalog := New()
	assert.Equal(t, []types.Kind{types.KindNumber, types.KindBigInt, types.KindString, types.KindBoolean, types.KindObject}, catalog.Kinds())

	catalog.Register("color", reflect.TypeOf(""), func() interface{} { return "#000000" })
	catalog.Register(types.KindNumber, reflect.TypeOf(0), nil)
	assert.Len(t, catalog.Kinds(), 6)
	assert.Equal(t, "#000000", catalog.Default(types.New("color")))
	assert.Equal(t, 0, catalog.Default(types.New(types.KindNumber)))
	color := catalog.Lookup("color")
	assert.Equal(t, reflect.TypeOf(""), color.Type.Type)
	assert.Equal(t, "color", color.Type.Key())
	assert.Equal(t, reflect.TypeOf(0), catalog.Lookup(types.KindNumber).Type.Type, "re-registration replaces the type")
	assert.Nil(t, catalog.Lookup("missing"))
}
