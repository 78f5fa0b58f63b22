package event

import (
	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/service/messaging"
)

// Option represents a publisher option
type Option func(p *Publisher)

// WithQueue sets the event queue
func WithQueue(queue messaging.Queue[Event]) Option {
	return func(p *Publisher) {
		p.queue = queue
	}
}

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}
