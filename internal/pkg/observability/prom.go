package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "cdbackend"
)

var (
	FeedFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "feed", "fetch_duration_seconds"),
		Help:    "Duration of merged feed fetches in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{})
	InboxMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "inbox", "mutations"),
		Help: "Inbox read-state mutations by operation and outcome",
	}, []string{"op", "outcome"})
	InboxRollbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "inbox", "rollbacks"),
		Help: "Optimistic mutations rolled back after upstream failure",
	}, []string{"op"})
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "events", "consumed"),
		Help: "Domain events consumed from the stream by outcome",
	}, []string{"outcome"})
)
