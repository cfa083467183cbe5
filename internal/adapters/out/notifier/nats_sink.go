package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sony/gobreaker"
)

// Publisher is the part of *nats.Conn the sink needs.
type Publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// BreakerConfig controls when the NATS sink stops trying.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// NatsSink publishes messages as JSON on "<prefix>.<kind>.<status>". After
// ConsecutiveFailures failed publishes the breaker opens and deliveries fail
// fast until OpenTimeout has passed.
type NatsSink struct {
	publisher Publisher
	prefix    string
	breaker   *gobreaker.CircuitBreaker
}

func NewNatsSink(publisher Publisher, prefix string, config BreakerConfig, logger *slog.Logger) *NatsSink {
	logger = logger.With("component", "nats_sink")

	settings := gobreaker.Settings{
		Name:        "nats-notifier",
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &NatsSink{
		publisher: publisher,
		prefix:    prefix,
		breaker:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *NatsSink) Deliver(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	subject := msg.Subject(s.prefix)
	_, err = s.breaker.Execute(func() (interface{}, error) {
		if err := s.publisher.Publish(subject, data); err != nil {
			return nil, err
		}
		return nil, s.publisher.FlushWithContext(ctx)
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// State reports the breaker state, for health reporting.
func (s *NatsSink) State() gobreaker.State {
	return s.breaker.State()
}

// ConnectNATS opens a connection that keeps reconnecting in the background.
func ConnectNATS(url string, logger *slog.Logger) (*nats.Conn, error) {
	logger = logger.With("component", "nats")

	conn, err := nats.Connect(url,
		nats.Name("careshare-workflow"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats at %s: %w", url, err)
	}
	return conn, nil
}
