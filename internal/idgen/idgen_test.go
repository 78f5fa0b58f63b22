package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first := New()
	second := New()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestSequence(t *testing.T) {
	next := Sequence("port")
	assert.Equal(t, "port-1", next())
	assert.Equal(t, "port-2", next())
}
