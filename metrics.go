package main

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	foodEntriesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrition_food_entries_added_total",
		Help: "Food entries appended to the log.",
	})
	foodEntriesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrition_food_entries_removed_total",
		Help: "Food entries removed from the log.",
	})
	foodEntriesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutrition_food_entries_rejected_total",
		Help: "Food entry submissions rejected by validation.",
	})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nutrition_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// requestMetrics records request latency. Unmatched paths share one label so
// scanners can't blow up the series count.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
