package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote-library fetch outcomes. Fetch failures never surface to callers, so
// these counters are how operators notice a persistently unreachable source.
var (
	remoteFetchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "remote_library_fetch_total",
		Help: "Attempts to fetch the remote knowledge library document.",
	})
	remoteFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "remote_library_fetch_failures_total",
		Help: "Remote library fetches that fell back to the bundled catalog.",
	})
)
