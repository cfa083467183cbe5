package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notifier is closed")
)

// Config sizes the delivery pipeline.
type Config struct {
	QueueSize       int
	Workers         int
	DeliveryTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		QueueSize:       256,
		Workers:         2,
		DeliveryTimeout: 5 * time.Second,
	}
}

// AsyncNotifier implements ports.Notifier. Notify never blocks: when the queue
// is full the event is dropped and a NotifierFailureError is returned, which
// the command handlers log and ignore.
type AsyncNotifier struct {
	sink    Sink
	sinkID  string
	config  Config
	queue   chan workflow.Event
	logger  *slog.Logger
	mu      sync.RWMutex
	closed  bool
	workers sync.WaitGroup
}

// NewAsyncNotifier creates a notifier delivering to sink. sinkID names the
// sink in errors and logs. Call Start before the first Notify.
func NewAsyncNotifier(sink Sink, sinkID string, config Config, logger *slog.Logger) *AsyncNotifier {
	defaults := DefaultConfig()
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.Workers <= 0 {
		config.Workers = defaults.Workers
	}
	if config.DeliveryTimeout <= 0 {
		config.DeliveryTimeout = defaults.DeliveryTimeout
	}

	return &AsyncNotifier{
		sink:   sink,
		sinkID: sinkID,
		config: config,
		queue:  make(chan workflow.Event, config.QueueSize),
		logger: logger.With("component", "notifier", "sink", sinkID),
	}
}

// Start launches the delivery workers.
func (n *AsyncNotifier) Start() {
	for range n.config.Workers {
		n.workers.Add(1)
		go n.run()
	}
	n.logger.Info("Notifier started", "workers", n.config.Workers, "queue_size", n.config.QueueSize)
}

func (n *AsyncNotifier) Notify(_ context.Context, event workflow.Event) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return errs.NewNotifierFailureError(n.sinkID, ErrClosed)
	}

	select {
	case n.queue <- event:
		return nil
	default:
		return errs.NewNotifierFailureError(n.sinkID, ErrQueueFull)
	}
}

// Close stops accepting events and waits until the queued ones are delivered
// or ctx is done.
func (n *AsyncNotifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.logger.Info("Notifier stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *AsyncNotifier) run() {
	defer n.workers.Done()
	for event := range n.queue {
		n.deliver(event)
	}
}

func (n *AsyncNotifier) deliver(event workflow.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), n.config.DeliveryTimeout)
	defer cancel()

	msg := NewMessage(event)
	if err := n.sink.Deliver(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "Workflow event delivery failed",
			"kind", msg.Kind,
			"entity_id", msg.EntityID,
			"status", msg.NewStatus,
			"error", err,
		)
	}
}
