package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stayhub_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "stayhub_bookings_created_total",
		Help: "Total number of bookings created.",
	},
)

// ReviewsAddedTotal counts reviews appended to rooms.
var ReviewsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "stayhub_reviews_added_total",
		Help: "Total number of room reviews added.",
	},
)

// RoomCacheHits counts room cache hits (detail and list pages).
var RoomCacheHits = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "stayhub_room_cache_hits_total",
		Help: "Total number of room cache hits.",
	},
)

// RoomCacheMisses counts room cache misses (detail and list pages).
var RoomCacheMisses = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "stayhub_room_cache_misses_total",
		Help: "Total number of room cache misses.",
	},
)
