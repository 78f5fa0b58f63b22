//go:build fluxblockdebug

package graph

import "fmt"

// assert panics on a violated invariant
func assert(cond bool, msg string, keysAndValues ...interface{}) bool {
	if !cond {
		panic(fmt.Errorf("%w: %s %v", ErrInvariantViolation, msg, keysAndValues))
	}
	return cond
}
