package names

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks display-name cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confluence_name_cache_hits_total",
			Help: "Total number of display-name cache hits",
		},
	)

	// CacheMisses tracks display-name cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confluence_name_cache_misses_total",
			Help: "Total number of display-name cache misses",
		},
	)

	// CacheEntries tracks the number of cached display names.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "confluence_name_cache_entries",
			Help: "Current number of cached display names",
		},
	)

	// LookupFailures tracks user lookups that fell back to the raw account id.
	LookupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confluence_name_lookup_failures_total",
			Help: "Total number of failed user lookups",
		},
	)
)
