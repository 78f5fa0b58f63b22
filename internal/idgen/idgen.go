package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewFunc returns a new GUID. Override in tests for deterministic identifiers.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new GUID
func New() string { return NewFunc() }

// Sequence returns a generator producing prefix-1, prefix-2, ...
func Sequence(prefix string) func() string {
	var counter uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(atomic.AddUint64(&counter, 1), 10)
	}
}
