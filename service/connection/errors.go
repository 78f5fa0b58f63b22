package connection

import (
	"errors"
	"fmt"

	"github.com/viant/fluxblock/model/graph"
)

// Connection refusal kinds. A refused connection never mutates state.
var (
	ErrDirectionMismatch = errors.New("connection: direction mismatch")
	ErrTypeMismatch      = errors.New("connection: type mismatch")
	ErrDetachedPort      = errors.New("connection: port does not belong to a block")
)

// Error describes a refused connection
type Error struct {
	Kind error
	From *graph.Port
	To   *graph.Port
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v %v(%v) -> %v %v(%v)", e.Kind,
		e.From.Direction, e.From.Name, e.From.Type.String(),
		e.To.Direction, e.To.Name, e.To.Type.String())
}

func (e *Error) Unwrap() error {
	return e.Kind
}
