// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ContactMutations counts committed mutations by subject type and operation.
	ContactMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rolodex",
		Name:      "contact_mutations_total",
		Help:      "Committed mutations on contacts and their records.",
	}, []string{"object", "operation"})

	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rolodex",
		Name:      "rpc_requests_total",
		Help:      "RPC calls by procedure and result code.",
	}, []string{"procedure", "code"})

	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rolodex",
		Name:      "rpc_duration_seconds",
		Help:      "RPC latency by procedure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// GravatarLookups counts probes by result: found, missing, error, cached.
	GravatarLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rolodex",
		Name:      "gravatar_lookups_total",
		Help:      "Gravatar existence probes by result.",
	}, []string{"result"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
