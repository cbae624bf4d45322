package obs

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP-level metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Domain metrics
var (
	BidsAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_accepted_total",
		Help: "Bids accepted by the bidding engine.",
	})

	BidsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bids_rejected_total",
			Help: "Bids rejected by the bidding engine, by reason.",
		},
		[]string{"reason"},
	)

	AuctionsEnded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_ended_total",
		Help: "Auctions transitioned to ended.",
	})

	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Inbound payment webhook events, by outcome.",
		},
		[]string{"outcome"},
	)

	BoostsActivated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_activated_total",
		Help: "Boosts activated by verified payment events.",
	})

	BoostsExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_expired_total",
		Help: "Boosts expired by the sweeper.",
	})
)

// Init registers all metrics with the default registry.
func Init() {
	prometheus.MustRegister(
		httpRequestsTotal, httpRequestDuration,
		BidsAccepted, BidsRejected, AuctionsEnded,
		WebhookEvents, BoostsActivated, BoostsExpired,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Instrument records request count and latency for every route.
func Instrument(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	status := strconv.Itoa(c.Writer.Status())

	httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
}
