package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	env := map[string]string{"FOO": "bar", "A": "1", "B": "2", "EMPTY": ""}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{description: "no expressions", input: "just a plain string", expected: "just a plain string"},
		{description: "single expression", input: "value is ${env.FOO}", expected: "value is bar"},
		{description: "multiple expressions", input: "${env.A}-${env.B}-${env.A}", expected: "1-2-1"},
		{description: "unset variable becomes empty", input: "unset=${env.NOTSET}-end", expected: "unset=-end"},
		{description: "fallback for unset", input: "${env.NOTSET:-web}", expected: "web"},
		{description: "fallback for empty", input: "${env.EMPTY:-electron}", expected: "electron"},
		{description: "fallback ignored when set", input: "${env.FOO:-baz}", expected: "bar"},
		{description: "missing closing brace", input: "start ${env.FOO and more", expected: "start ${env.FOO and more"},
		{description: "invalid key keeps prefix", input: "start ${env.X and ${env.A} end", expected: "start ${env.X and 1 end"},
		{description: "prefix only no key", input: "${env.}", expected: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, expand(testCase.input, lookup), testCase.description)
	}
}

func TestExpandEnvExpr(t *testing.T) {
	t.Setenv("FLUXBLOCK_PLATFORM", "nodejs")
	assert.Equal(t, "platform: nodejs", expandEnvExpr("platform: ${env.FLUXBLOCK_PLATFORM}"))
}
