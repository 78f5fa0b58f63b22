//go:build !fluxblockdebug

package graph

// assert logs a violated invariant and lets the caller recover
func assert(cond bool, msg string, keysAndValues ...interface{}) bool {
	if !cond {
		logger.Error(ErrInvariantViolation, msg, keysAndValues...)
	}
	return cond
}
