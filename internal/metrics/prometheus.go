package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Providers *prometheus.CounterVec
	Commands  *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Providers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coin",
				Name:      "provider_requests",
			}, []string{"provider", "operation", "outcome"}),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coin",
				Name:      "commands",
			}, []string{"command"}),
	}
}
