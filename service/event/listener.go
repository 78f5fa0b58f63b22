package event

import (
	"context"
	"errors"
	"sync"
)

// Listener hands every published event to a handler on its own goroutine
type Listener struct {
	publisher *Publisher
	handler   func(*Event)
	cancel    context.CancelFunc
	done      sync.WaitGroup
}

// NewListener creates a listener; call Start to begin consuming
func NewListener(publisher *Publisher, handler func(*Event)) *Listener {
	return &Listener{publisher: publisher, handler: handler}
}

// Start consumes events until Stop is called
func (l *Listener) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done.Add(1)
	go func() {
		defer l.done.Done()
		for {
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				l.publisher.logger.Error(err, "failed to consume graph event")
				continue
			}
			l.handler(event)
		}
	}()
}

// Stop cancels consumption and waits for the handler to return
func (l *Listener) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.done.Wait()
}
