package meta

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnvExpr replaces ${env.KEY} with the KEY environment variable.
// ${env.KEY:-fallback} yields fallback when KEY is unset or empty.
func expandEnvExpr(value string) string {
	return expand(value, os.LookupEnv)
}

func expand(value string, lookup func(key string) (string, bool)) string {
	var b strings.Builder
	for {
		start := strings.Index(value, envPrefix)
		if start < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:start])
		rest := value[start+len(envPrefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[start:])
			return b.String()
		}
		key, fallback, hasFallback := strings.Cut(rest[:end], ":-")
		if !isEnvKey(key) {
			// keep the prefix literal and rescan what follows it
			b.WriteString(envPrefix)
			value = rest
			continue
		}
		if actual, ok := lookup(key); ok && actual != "" {
			b.WriteString(actual)
		} else if hasFallback {
			b.WriteString(fallback)
		}
		value = rest[end+1:]
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
