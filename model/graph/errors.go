package graph

import "errors"

var (
	// ErrUnsupportedPlatform is recorded as a block issue, it never stops editing
	ErrUnsupportedPlatform = errors.New("block does not support current platform")
	ErrPortConnected       = errors.New("port is still connected")
	ErrPortExists          = errors.New("port already exists")
	ErrPortNotFound        = errors.New("port not found")
	ErrBlockExists         = errors.New("block already exists")
	ErrBlockNotFound       = errors.New("block not found")
	ErrBlockConnected      = errors.New("block is still connected")
	// ErrInvariantViolation signals a programming defect in the connection model
	ErrInvariantViolation = errors.New("invariant violation")
)

// Issue is a non-fatal warning attached to a block instance
type Issue struct {
	Err     error
	Message string
}

func (i *Issue) Error() string {
	if i.Message == "" {
		return i.Err.Error()
	}
	return i.Message + ": " + i.Err.Error()
}

func (i *Issue) Unwrap() error {
	return i.Err
}
