// Package metrics exposes workflow activity as Prometheus metrics.
package metrics

import (
	"context"
	"strconv"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "careshare"

type Metrics struct {
	transitions *prometheus.CounterVec
	dropped     *prometheus.CounterVec
	entities    *prometheus.GaugeVec
}

// New registers the workflow metrics with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Committed status transitions, cascades included.",
		}, []string{"kind", "status", "override"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dropped_total",
			Help:      "Workflow events the notifier did not accept.",
		}, []string{"kind"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Entities per kind and status at the last stats snapshot.",
		}, []string{"kind", "status"}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.dropped, m.entities} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Notifier wraps next so that every event passing through is counted.
func (m *Metrics) Notifier(next ports.Notifier) ports.Notifier {
	return &countingNotifier{next: next, metrics: m}
}

// SetEntityCount records one snapshot figure.
func (m *Metrics) SetEntityCount(kind workflow.Kind, status string, count int64) {
	m.entities.WithLabelValues(kind.String(), status).Set(float64(count))
}

type countingNotifier struct {
	next    ports.Notifier
	metrics *Metrics
}

func (n *countingNotifier) Notify(ctx context.Context, event workflow.Event) error {
	kind := event.Transition.Kind.String()
	n.metrics.transitions.
		WithLabelValues(kind, event.Transition.To, strconv.FormatBool(event.Transition.Override)).
		Inc()

	if err := n.next.Notify(ctx, event); err != nil {
		n.metrics.dropped.WithLabelValues(kind).Inc()
		return err
	}
	return nil
}
