// Package metrics provides the central Prometheus registry reference for the
// exporter. All metrics are defined in their respective packages (confluence,
// names, export) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the exporter.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/confluence):
//   - confluence_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - confluence_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - confluence_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Name Cache Metrics (pkg/names):
//   - confluence_name_cache_hits_total (Counter): Display-name cache hits
//   - confluence_name_cache_misses_total (Counter): Display-name cache misses
//   - confluence_name_cache_entries (Gauge): Current number of cached display names
//   - confluence_name_lookup_failures_total (Counter): User lookups that fell back to the account id
//
// Batch Metrics (pkg/export):
//   - export_pages_total{result} (Counter): Pages handled by result (exported, skipped)
//
// Example Prometheus Queries:
//
//   # Name Cache Hit Rate
//   confluence_name_cache_hits_total /
//   (confluence_name_cache_hits_total + confluence_name_cache_misses_total)
//
//   # Skip Rate
//   export_pages_total{result="skipped"} / ignoring(result) sum(export_pages_total)
//
//   # Request Error Rate
//   rate(confluence_errors_total[5m])
