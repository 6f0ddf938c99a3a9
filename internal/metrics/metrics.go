package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Providers)
	prometheus.MustRegister(Observer.prometheus.Commands)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementProvider counts a call to an external data provider.
func (m *Metrics) IncrementProvider(provider, operation, outcome string) {
	m.prometheus.Providers.WithLabelValues(provider, operation, outcome).Inc()
}

// IncrementCommand counts a handled user command.
func (m *Metrics) IncrementCommand(command string) {
	m.prometheus.Commands.WithLabelValues(command).Inc()
}
