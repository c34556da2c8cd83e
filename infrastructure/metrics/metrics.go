package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache and data-source counters. Every hit/miss/fallback path of the fetch
// orchestrator and every source-chain resolution is counted here, in
// addition to being logged.
var (
	CacheReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_cache_reads_total",
		Help: "Cache read outcomes by result (fresh, live, stale, error).",
	}, []string{"result"})

	CacheClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_cache_clears_total",
		Help: "Number of full cache clears.",
	})

	SourceResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_source_resolutions_total",
		Help: "Which data source satisfied a request (site_data, cache_fresh, live, cache_stale, mock, none).",
	}, []string{"request", "source"})

	UpstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_youtube_api_calls_total",
		Help: "YouTube Data API calls by operation and status.",
	}, []string{"operation", "status"})
)

// ObserveUpstream records one upstream API call.
func ObserveUpstream(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamCalls.WithLabelValues(operation, status).Inc()
}
