package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/viant/fluxblock/service/messaging"
	"github.com/viant/fluxblock/service/messaging/memory"
)

// Publisher feeds graph change events into a queue. A nil *Publisher discards events.
type Publisher struct {
	queue  messaging.Queue[Event]
	logger logr.Logger
}

// Publish enqueues an event. A full queue drops the event with a warning.
func (p *Publisher) Publish(ctx context.Context, event *Event) {
	if p == nil || event == nil {
		return
	}
	err := p.queue.Publish(ctx, event)
	switch {
	case err == nil:
	case errors.Is(err, messaging.ErrQueueFull):
		p.logger.Info("dropping graph event", "level", "warning", "type", event.Type, "block", event.BlockID)
	default:
		p.logger.Error(err, "failed to publish graph event", "type", event.Type)
	}
}

// Consume returns the next event, blocking until one is available or ctx is done
func (p *Publisher) Consume(ctx context.Context) (*Event, error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, fmt.Errorf("failed to acknowledge event: %w", err)
	}
	return msg.T(), nil
}

// NewPublisher creates a publisher backed by a memory queue unless WithQueue is supplied
func NewPublisher(options ...Option) *Publisher {
	ret := &Publisher{logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.queue == nil {
		ret.queue = memory.NewQueue[Event](memory.DefaultConfig())
	}
	return ret
}
