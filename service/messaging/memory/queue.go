package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/fluxblock/internal/idgen"
	"github.com/viant/fluxblock/service/messaging"
)

// Config for memory queue implementation
type Config struct {
	// Buffer is the queue capacity
	Buffer int
	// MaxRetries is how many times a nacked message is requeued before it is dropped
	MaxRetries int
}

// DefaultConfig returns a standard configuration for memory queue
func DefaultConfig() Config {
	return Config{Buffer: 256, MaxRetries: 1}
}

// Message is a message of an in-memory queue
type Message[T any] struct {
	id         string
	payload    T
	queue      *Queue[T]
	retryCount int
	mu         sync.Mutex
	processed  bool
}

// ID returns the message id
func (m *Message[T]) ID() string {
	return m.id
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	return nil
}

// Nack requeues the message until it runs out of retries; a message that cannot be requeued is dropped
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	if m.retryCount >= m.queue.config.MaxRetries {
		m.queue.dropped.Add(1)
		return nil
	}
	retry := &Message[T]{id: m.id, payload: m.payload, queue: m.queue, retryCount: m.retryCount + 1}
	if !m.queue.offer(retry) {
		m.queue.dropped.Add(1)
		return messaging.ErrQueueFull
	}
	return nil
}

// Queue is an in-memory messaging.Queue. Publish never blocks: once the
// buffer is full new messages are rejected with messaging.ErrQueueFull.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
	dropped  atomic.Int64
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.Buffer <= 0 {
		config.Buffer = DefaultConfig().Buffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.Buffer),
		config:   config,
	}
}

// Publish adds a new item to the queue
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !q.offer(&Message[T]{id: idgen.New(), payload: *t, queue: q}) {
		q.dropped.Add(1)
		return messaging.ErrQueueFull
	}
	return nil
}

func (q *Queue[T]) offer(msg *Message[T]) bool {
	select {
	case q.messages <- msg:
		return true
	default:
		return false
	}
}

// Consume retrieves a single item from the queue
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current number of messages in the queue
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// Dropped returns the number of rejected or exhausted messages
func (q *Queue[T]) Dropped() int {
	return int(q.dropped.Load())
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
