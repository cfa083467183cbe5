package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"careshare/internal/adapters/out/notifier"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	messages []notifier.Message
	block    chan struct{}
	err      error
}

func (s *recordingSink) Deliver(ctx context.Context, msg notifier.Message) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

func (s *recordingSink) delivered() []notifier.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notifier.Message(nil), s.messages...)
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *fakePublisher) FlushWithContext(context.Context) error {
	return nil
}

func approvedEvent() workflow.Event {
	requester := kernel.NewUUID()
	donor := kernel.NewUUID()
	return workflow.NewEvent(workflow.Transition{
		Kind:     workflow.DonateRequest,
		EntityID: kernel.NewUUID(),
		From:     "PENDING",
		To:       "APPROVED",
	}, kernel.NewUUID(), requester, donor)
}

func TestMessage_Subject(t *testing.T) {
	msg := notifier.NewMessage(approvedEvent())

	assert.Equal(t, "careshare.donate_request.approved", msg.Subject("careshare"))
	assert.Equal(t, "careshare.donate_request.approved", msg.Subject("careshare."))
	assert.Equal(t, "donate_request.approved", msg.Subject(""))
	assert.Len(t, msg.Recipients, 2)
}

func TestAsyncNotifier_DeliversQueuedEvents(t *testing.T) {
	sink := &recordingSink{}
	n := notifier.NewAsyncNotifier(sink, "test", notifier.Config{QueueSize: 8, Workers: 2}, slog.New(slog.DiscardHandler))
	n.Start()

	for range 5 {
		require.NoError(t, n.Notify(t.Context(), approvedEvent()))
	}
	require.NoError(t, n.Close(t.Context()))

	assert.Len(t, sink.delivered(), 5)
}

func TestAsyncNotifier_FullQueueDropsEvent(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	n := notifier.NewAsyncNotifier(sink, "test", notifier.Config{QueueSize: 1, Workers: 1}, slog.New(slog.DiscardHandler))
	n.Start()

	// The worker takes the first event and blocks; the second fills the queue.
	require.NoError(t, n.Notify(t.Context(), approvedEvent()))
	require.Eventually(t, func() bool {
		return n.Notify(t.Context(), approvedEvent()) == nil
	}, time.Second, time.Millisecond)

	err := n.Notify(t.Context(), approvedEvent())
	require.ErrorIs(t, err, errs.ErrNotifierFailure)
	var failure *errs.NotifierFailureError
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, failure.Cause, notifier.ErrQueueFull)

	close(sink.block)
	require.NoError(t, n.Close(t.Context()))
	assert.Len(t, sink.delivered(), 2)
}

func TestAsyncNotifier_SlowDeliveryTimesOut(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	n := notifier.NewAsyncNotifier(sink, "test",
		notifier.Config{QueueSize: 4, Workers: 1, DeliveryTimeout: 10 * time.Millisecond},
		slog.New(slog.DiscardHandler))
	n.Start()

	require.NoError(t, n.Notify(t.Context(), approvedEvent()))
	require.NoError(t, n.Notify(t.Context(), approvedEvent()))

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	require.NoError(t, n.Close(ctx), "timed out deliveries release the worker")
	assert.Empty(t, sink.delivered())
}

func TestAsyncNotifier_RejectsAfterClose(t *testing.T) {
	n := notifier.NewAsyncNotifier(&recordingSink{}, "test", notifier.DefaultConfig(), slog.New(slog.DiscardHandler))
	n.Start()
	require.NoError(t, n.Close(t.Context()))

	err := n.Notify(t.Context(), approvedEvent())

	require.ErrorIs(t, err, errs.ErrNotifierFailure)
}

func TestNatsSink_PublishesJSON(t *testing.T) {
	publisher := &fakePublisher{}
	sink := notifier.NewNatsSink(publisher, "careshare", notifier.DefaultBreakerConfig(), slog.New(slog.DiscardHandler))
	event := approvedEvent()

	require.NoError(t, sink.Deliver(t.Context(), notifier.NewMessage(event)))

	require.Equal(t, []string{"careshare.donate_request.approved"}, publisher.subjects)
	var decoded notifier.Message
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &decoded))
	assert.Equal(t, event.Transition.EntityID.String(), decoded.EntityID)
	assert.Equal(t, "PENDING", decoded.OldStatus)
	assert.Equal(t, "APPROVED", decoded.NewStatus)
}

func TestNatsSink_BreakerOpensAfterFailures(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nats: connection closed")}
	sink := notifier.NewNatsSink(publisher, "careshare", notifier.BreakerConfig{
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Minute,
	}, slog.New(slog.DiscardHandler))
	msg := notifier.NewMessage(approvedEvent())

	require.Error(t, sink.Deliver(t.Context(), msg))
	require.Error(t, sink.Deliver(t.Context(), msg))

	err := sink.Deliver(t.Context(), msg)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, gobreaker.StateOpen, sink.State())
}

func TestLogSink_NeverFails(t *testing.T) {
	sink := notifier.NewLogSink(slog.New(slog.DiscardHandler))

	require.NoError(t, sink.Deliver(t.Context(), notifier.NewMessage(approvedEvent())))
}
